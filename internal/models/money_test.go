package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency Currency
		want     Money
		wantErr  error
	}{
		{
			name:     "valid_usd",
			amount:   10.5,
			currency: CurrencyUSD,
			want:     Money{Amount: 10.5, Currency: CurrencyUSD},
		},
		{
			name:     "valid_zero",
			amount:   0,
			currency: CurrencyEUR,
			want:     Money{Amount: 0, Currency: CurrencyEUR},
		},
		{
			name:   "empty_currency_defaults_to_rub",
			amount: 100,
			want:   Money{Amount: 100, Currency: CurrencyRUB},
		},
		{
			name:     "negative_amount",
			amount:   -1,
			currency: CurrencyUSD,
			wantErr:  ErrNegativeAmount,
		},
		{
			name:     "unknown_currency",
			amount:   1,
			currency: Currency("GBP"),
			wantErr:  ErrUnknownCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewMoney(tt.amount, tt.currency)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoneyAdd(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Money
		want    Money
		wantErr error
	}{
		{
			name: "same_currency",
			a:    Money{Amount: 100, Currency: CurrencyRUB},
			b:    Money{Amount: 150.5, Currency: CurrencyRUB},
			want: Money{Amount: 250.5, Currency: CurrencyRUB},
		},
		{
			name:    "currency_mismatch",
			a:       Money{Amount: 100, Currency: CurrencyUSD},
			b:       Money{Amount: 100, Currency: CurrencyEUR},
			wantErr: ErrCurrencyMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Add(tt.b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoneyEquality(t *testing.T) {
	a := Money{Amount: 100, Currency: CurrencyRUB}
	b := Money{Amount: 100, Currency: CurrencyRUB}
	c := Money{Amount: 100, Currency: CurrencyUSD}

	// value objects compare by value
	assert.True(t, a == b)
	assert.False(t, a == c)
}
