package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrConflictData       = errors.New("data conflicts with existing data")
	ErrDataNotFound       = errors.New("data not found")
	ErrInvalidCredentials = errors.New("invalid login or password")

	// value object construction
	ErrNegativeAmount  = errors.New("money amount cannot be negative")
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidQuantity = errors.New("line quantity must be positive")

	// money operations
	ErrCurrencyMismatch = errors.New("cannot add money with different currencies")

	// order state transitions; texts are surfaced to clients as-is
	ErrModifyPaidOrder      = errors.New("Cannot modify paid order")
	ErrModifyCancelledOrder = errors.New("Cannot modify cancelled order")
	ErrPayEmptyOrder        = errors.New("Cannot pay empty order")
	ErrOrderAlreadyPaid     = errors.New("Order already paid")
	ErrPayCancelledOrder    = errors.New("Cannot pay cancelled order")
	ErrCancelPaidOrder      = errors.New("Cannot cancel paid order")

	ErrInternalError = errors.New("internal error")
)

// TooManyRequestsError is returned by the payment gateway client
// when the provider throttles requests
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

// NewTooManyRequestsError creates TooManyRequestsError with retry-after duration
func NewTooManyRequestsError(retryAfter time.Duration) TooManyRequestsError {
	return TooManyRequestsError{RetryAfter: retryAfter}
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}
