package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ordermart/ordermart/internal/logger"
	"github.com/ordermart/ordermart/internal/models"
	"go.uber.org/zap"
)

// PaymentGateway is interface for charging an order through an external provider.
// A declined charge is (false, nil); transport and provider failures are the error.
type PaymentGateway interface {
	// Charge charges the amount for the order, returns success flag
	Charge(ctx context.Context, orderID string, amount models.Money) (bool, error)
}

// payment result messages
const (
	MsgPaymentSuccessful = "Payment successful"
	MsgGatewayFailed     = "Payment gateway failed"
)

// PaymentResult is outcome of a payment attempt. Not persisted.
type PaymentResult struct {
	Success bool
	Message string
	OrderID string
}

// PayOrderService pays an order: look up, attempt the domain transition,
// charge the gateway, persist on success
type PayOrderService struct {
	repo    OrderRepository
	gateway PaymentGateway
}

// NewPayOrderService creates new PayOrderService instance
func NewPayOrderService(repo OrderRepository, gateway PaymentGateway) *PayOrderService {
	return &PayOrderService{
		repo:    repo,
		gateway: gateway,
	}
}

// Execute pays the order with the given id.
// Domain failures (missing order, empty order, already paid) are absorbed
// into the result; only repository and gateway transport failures are
// returned as errors, with the order left unpersisted.
func (ps *PayOrderService) Execute(ctx context.Context, orderID string) (PaymentResult, error) {
	order, err := ps.repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return PaymentResult{
				Success: false,
				Message: fmt.Sprintf("Order %s not found", orderID),
				OrderID: orderID,
			}, nil
		}
		return PaymentResult{}, err
	}

	// total is computed before the transition so a mixed-currency order
	// fails before any state changes
	total, err := order.Total()
	if err != nil {
		return PaymentResult{}, err
	}

	if err := order.Pay(); err != nil {
		return PaymentResult{
			Success: false,
			Message: err.Error(),
			OrderID: orderID,
		}, nil
	}

	ok, err := ps.gateway.Charge(ctx, orderID, total)
	if err != nil {
		return PaymentResult{}, err
	}
	if !ok {
		// compensating action: the charge was declined, revert the
		// in-memory transition; the repository still holds the
		// pre-charge snapshot, nothing to persist
		order.Status = models.OrderStatusPending
		order.PaidAt = nil
		logger.Log.Info("payment declined by gateway", zap.String("order", orderID))
		return PaymentResult{
			Success: false,
			Message: MsgGatewayFailed,
			OrderID: orderID,
		}, nil
	}

	if err := ps.repo.Save(ctx, order); err != nil {
		return PaymentResult{}, err
	}

	logger.Log.Info("order paid", zap.String("order", orderID), zap.Float64("amount", total.Amount))

	return PaymentResult{
		Success: true,
		Message: MsgPaymentSuccessful,
		OrderID: orderID,
	}, nil
}
