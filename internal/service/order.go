package service

import (
	"context"
	"time"

	"github.com/ordermart/ordermart/internal/logger"
	"github.com/ordermart/ordermart/internal/models"
	"go.uber.org/zap"
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// GetByID returns order by id, models.ErrDataNotFound when absent
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	// Save stores the order, overwriting any prior record with the same id
	Save(ctx context.Context, order *models.Order) error
	// GetByCustomerID returns customer orders, newest first
	GetByCustomerID(ctx context.Context, customerID string) ([]models.Order, error)
	// GetPendingBefore returns pending orders not updated since the given time
	GetPendingBefore(ctx context.Context, before time.Time) ([]models.Order, error)
	// CustomerSummary returns per-status order counts for the customer
	CustomerSummary(ctx context.Context, customerID string) (models.CustomerSummary, error)
}

// OrderService manages the order lifecycle up to payment
type OrderService struct {
	repo OrderRepository
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create creates empty pending order for the customer and persists it
func (os *OrderService) Create(ctx context.Context, customerID string) (*models.Order, error) {
	order := models.NewOrder(customerID)
	if err := os.repo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get returns order by id
func (os *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	return os.repo.GetByID(ctx, orderID)
}

// ListCustomerOrders returns list of customer orders
func (os *OrderService) ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	return os.repo.GetByCustomerID(ctx, customerID)
}

// AddLine appends line to the order and persists the change
func (os *OrderService) AddLine(ctx context.Context, orderID string, line models.OrderLine) (*models.Order, error) {
	order, err := os.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.AddLine(line); err != nil {
		return nil, err
	}
	if err := os.repo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// RemoveLine removes all lines with the product id and persists the change
func (os *OrderService) RemoveLine(ctx context.Context, orderID string, productID string) (*models.Order, error) {
	order, err := os.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.RemoveLine(productID); err != nil {
		return nil, err
	}
	if err := os.repo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Cancel cancels pending order and persists the change
func (os *OrderService) Cancel(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := os.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.Cancel(); err != nil {
		return nil, err
	}
	if err := os.repo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetCustomerSummary returns per-status order counts for the customer
func (os *OrderService) GetCustomerSummary(ctx context.Context, customerID string) (models.CustomerSummary, error) {
	return os.repo.CustomerSummary(ctx, customerID)
}

// CancelStaleOrders cancels pending orders not touched for maxAge.
// Returns number of cancelled orders.
func (os *OrderService) CancelStaleOrders(ctx context.Context, maxAge time.Duration) (int, error) {
	stale, err := os.repo.GetPendingBefore(ctx, time.Now().Add(-maxAge))
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for i := range stale {
		order := &stale[i]
		if err := order.Cancel(); err != nil {
			logger.Log.Error("cancel stale order", zap.String("order", order.ID), zap.Error(err))
			continue
		}
		if err := os.repo.Save(ctx, order); err != nil {
			logger.Log.Error("save cancelled order", zap.String("order", order.ID), zap.Error(err))
			continue
		}
		cancelled++
	}

	return cancelled, nil
}
