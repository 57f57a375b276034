package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingService struct {
	calls atomic.Int64
}

func (cs *countingService) CancelStaleOrders(_ context.Context, _ time.Duration) (int, error) {
	cs.calls.Add(1)
	return 0, nil
}

func TestOrderSweeper_Run(t *testing.T) {
	svc := &countingService{}
	sweeper := NewOrderSweeper(svc, 10*time.Millisecond, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	sweeper.Run(ctx)

	assert.Greater(t, svc.calls.Load(), int64(0))
}
