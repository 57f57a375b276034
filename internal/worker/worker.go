package worker

import (
	"context"
	"time"

	"github.com/ordermart/ordermart/internal/logger"
	"go.uber.org/zap"
)

type OrderService interface {
	CancelStaleOrders(ctx context.Context, maxAge time.Duration) (int, error)
}

// OrderSweeper is worker cancelling pending orders that were never paid
type OrderSweeper struct {
	svc      OrderService
	interval time.Duration
	maxAge   time.Duration
}

// NewOrderSweeper creates new order sweeper
func NewOrderSweeper(svc OrderService, interval, maxAge time.Duration) *OrderSweeper {
	return &OrderSweeper{
		svc:      svc,
		interval: interval,
		maxAge:   maxAge,
	}
}

// Run sweeps stale orders until the context is cancelled
func (ow *OrderSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(ow.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("order sweeper is done")
			return
		case <-ticker.C:
			cancelled, err := ow.svc.CancelStaleOrders(ctx, ow.maxAge)
			if err != nil {
				logger.Log.Error("error cancelling stale orders", zap.Error(err))
				continue
			}
			if cancelled > 0 {
				logger.Log.Info("cancelled stale orders", zap.Int("count", cancelled))
			}
		}
	}
}
