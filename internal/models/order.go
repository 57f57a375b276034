package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is order lifecycle state
type OrderStatus string

// PENDING — order accepts line changes and can be paid;
// PAID — terminal, order is charged and frozen;
// CANCELLED — terminal, order was cancelled before payment.
const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderLine is one position of an order. Immutable once constructed.
type OrderLine struct {
	ProductID   string
	ProductName string
	Price       Money
	Quantity    int
}

// NewOrderLine creates order line. Non-positive quantity is rejected.
func NewOrderLine(productID, productName string, price Money, quantity int) (OrderLine, error) {
	if quantity <= 0 {
		return OrderLine{}, ErrInvalidQuantity
	}
	return OrderLine{
		ProductID:   productID,
		ProductName: productName,
		Price:       price,
		Quantity:    quantity,
	}, nil
}

// Total returns price scaled by quantity, currency unchanged
func (l OrderLine) Total() Money {
	return Money{Amount: l.Price.Amount * float64(l.Quantity), Currency: l.Price.Currency}
}

// Order is the aggregate root of the order/payment workflow.
// Lines are mutable only while the order is pending; Pay is a one-way
// transition stamping PaidAt.
type Order struct {
	ID         string
	CustomerID string
	Status     OrderStatus
	Lines      []OrderLine
	CreatedAt  time.Time
	UpdatedAt  time.Time
	PaidAt     *time.Time
}

// NewOrder creates pending order with generated id and no lines
func NewOrder(customerID string) *Order {
	now := time.Now()
	return &Order{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Status:     OrderStatusPending,
		Lines:      []OrderLine{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// guardModify rejects line changes outside the pending state
func (o *Order) guardModify() error {
	switch o.Status {
	case OrderStatusPaid:
		return ErrModifyPaidOrder
	case OrderStatusCancelled:
		return ErrModifyCancelledOrder
	}
	return nil
}

// AddLine appends line to the order
func (o *Order) AddLine(line OrderLine) error {
	if err := o.guardModify(); err != nil {
		return err
	}
	o.Lines = append(o.Lines, line)
	o.UpdatedAt = time.Now()
	return nil
}

// RemoveLine removes all lines with the given product id.
// Missing product id is not an error.
func (o *Order) RemoveLine(productID string) error {
	if err := o.guardModify(); err != nil {
		return err
	}
	lines := o.Lines[:0]
	for _, line := range o.Lines {
		if line.ProductID != productID {
			lines = append(lines, line)
		}
	}
	o.Lines = lines
	o.UpdatedAt = time.Now()
	return nil
}

// Total sums line totals. Empty order totals to zero money in default
// currency; lines of mixed currencies fail with ErrCurrencyMismatch.
func (o *Order) Total() (Money, error) {
	if len(o.Lines) == 0 {
		return ZeroMoney(), nil
	}
	total := o.Lines[0].Total()
	for _, line := range o.Lines[1:] {
		sum, err := total.Add(line.Total())
		if err != nil {
			return Money{}, err
		}
		total = sum
	}
	return total, nil
}

// Pay transitions pending non-empty order to PAID and stamps PaidAt
func (o *Order) Pay() error {
	if len(o.Lines) == 0 {
		return ErrPayEmptyOrder
	}
	switch o.Status {
	case OrderStatusPaid:
		return ErrOrderAlreadyPaid
	case OrderStatusCancelled:
		return ErrPayCancelledOrder
	}
	now := time.Now()
	o.Status = OrderStatusPaid
	o.PaidAt = &now
	o.UpdatedAt = now
	return nil
}

// Cancel transitions pending order to CANCELLED
func (o *Order) Cancel() error {
	switch o.Status {
	case OrderStatusPaid:
		return ErrCancelPaidOrder
	case OrderStatusCancelled:
		return nil
	}
	o.Status = OrderStatusCancelled
	o.UpdatedAt = time.Now()
	return nil
}

// IsPaid reports whether the order has been paid
func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// Clone returns deep copy of the order
func (o *Order) Clone() *Order {
	clone := *o
	clone.Lines = make([]OrderLine, len(o.Lines))
	copy(clone.Lines, o.Lines)
	if o.PaidAt != nil {
		paidAt := *o.PaidAt
		clone.PaidAt = &paidAt
	}
	return &clone
}

// CustomerSummary is per-customer order counts
type CustomerSummary struct {
	Pending   int64
	Paid      int64
	Cancelled int64
}
