package gateway

import (
	"context"
	"sync"

	"github.com/ordermart/ordermart/internal/models"
)

// ChargeRecord is one charge attempt seen by the fake gateway
type ChargeRecord struct {
	OrderID string
	Amount  models.Money
}

// FakeGateway records charges and answers with a fixed outcome.
// Used by tests and by the no-database composition.
type FakeGateway struct {
	mu      sync.Mutex
	succeed bool
	charges []ChargeRecord
}

// NewFakeGateway creates fake gateway; succeed controls the charge outcome
func NewFakeGateway(succeed bool) *FakeGateway {
	return &FakeGateway{succeed: succeed}
}

// Charge records the attempt and returns the configured outcome
func (fg *FakeGateway) Charge(_ context.Context, orderID string, amount models.Money) (bool, error) {
	fg.mu.Lock()
	defer fg.mu.Unlock()

	fg.charges = append(fg.charges, ChargeRecord{OrderID: orderID, Amount: amount})
	return fg.succeed, nil
}

// Charges returns copy of recorded charge attempts
func (fg *FakeGateway) Charges() []ChargeRecord {
	fg.mu.Lock()
	defer fg.mu.Unlock()

	charges := make([]ChargeRecord, len(fg.charges))
	copy(charges, fg.charges)
	return charges
}

// SetSucceed switches the charge outcome
func (fg *FakeGateway) SetSucceed(succeed bool) {
	fg.mu.Lock()
	defer fg.mu.Unlock()

	fg.succeed = succeed
}
