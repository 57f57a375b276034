package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ordermart/ordermart/internal/models"
)

// MemoryOrderRepository is in-memory order store for tests and for running
// without a database. Reads and writes go through deep copies, so a caller
// mutating a fetched order never touches the stored record until Save.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
}

// NewMemoryOrderRepository creates empty in-memory order store
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: map[string]*models.Order{}}
}

// GetByID returns snapshot of the order by id
func (mr *MemoryOrderRepository) GetByID(_ context.Context, orderID string) (*models.Order, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	order, ok := mr.orders[orderID]
	if !ok {
		return nil, models.ErrDataNotFound
	}
	return order.Clone(), nil
}

// Save stores snapshot of the order, overwriting any prior record
func (mr *MemoryOrderRepository) Save(_ context.Context, order *models.Order) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	mr.orders[order.ID] = order.Clone()
	return nil
}

// GetByCustomerID returns customer orders, newest first
func (mr *MemoryOrderRepository) GetByCustomerID(_ context.Context, customerID string) ([]models.Order, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	orders := []models.Order{}
	for _, order := range mr.orders {
		if order.CustomerID == customerID {
			orders = append(orders, *order.Clone())
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

// GetPendingBefore returns pending orders not updated since the given time
func (mr *MemoryOrderRepository) GetPendingBefore(_ context.Context, before time.Time) ([]models.Order, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	orders := []models.Order{}
	for _, order := range mr.orders {
		if order.Status == models.OrderStatusPending && order.UpdatedAt.Before(before) {
			orders = append(orders, *order.Clone())
		}
	}

	return orders, nil
}

// CustomerSummary returns per-status order counts for the customer
func (mr *MemoryOrderRepository) CustomerSummary(_ context.Context, customerID string) (models.CustomerSummary, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	summary := models.CustomerSummary{}
	for _, order := range mr.orders {
		if order.CustomerID != customerID {
			continue
		}
		switch order.Status {
		case models.OrderStatusPending:
			summary.Pending++
		case models.OrderStatusPaid:
			summary.Paid++
		case models.OrderStatusCancelled:
			summary.Cancelled++
		}
	}

	return summary, nil
}

// MemoryCustomerRepository is in-memory customer store
type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*models.Customer
}

// NewMemoryCustomerRepository creates empty in-memory customer store
func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{customers: map[string]*models.Customer{}}
}

// CreateCustomer inserts new customer keyed by login
func (mr *MemoryCustomerRepository) CreateCustomer(_ context.Context, customer *models.Customer) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	if _, ok := mr.customers[customer.Login]; ok {
		return models.ErrConflictData
	}
	clone := *customer
	mr.customers[customer.Login] = &clone
	return nil
}

// GetCustomerByLogin returns customer by login
func (mr *MemoryCustomerRepository) GetCustomerByLogin(_ context.Context, login string) (*models.Customer, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	customer, ok := mr.customers[login]
	if !ok {
		return nil, models.ErrDataNotFound
	}
	clone := *customer
	return &clone, nil
}
