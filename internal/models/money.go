package models

// Currency is ISO 4217 currency code
type Currency string

// recognized currencies
const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyRUB Currency = "RUB"
)

// DefaultCurrency is used when no currency is given
const DefaultCurrency = CurrencyRUB

// Money is immutable amount of one currency.
// It is compared by value: two Money are equal when amount and currency match.
type Money struct {
	Amount   float64
	Currency Currency
}

// NewMoney creates Money. Empty currency falls back to DefaultCurrency.
// Negative amount or unrecognized currency is rejected.
func NewMoney(amount float64, currency Currency) (Money, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	switch currency {
	case CurrencyUSD, CurrencyEUR, CurrencyRUB:
	default:
		return Money{}, ErrUnknownCurrency
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// ZeroMoney returns zero amount in default currency
func ZeroMoney() Money {
	return Money{Amount: 0, Currency: DefaultCurrency}
}

// Add returns sum of two amounts of the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}
