package repository

import (
	"context"
	"testing"

	"github.com/ordermart/ordermart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryOrderRepository_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrderRepository()

	order := models.NewOrder("customer_123")
	price, err := models.NewMoney(100, models.CurrencyRUB)
	require.NoError(t, err)
	line, err := models.NewOrderLine("prod_1", "Product 1", price, 1)
	require.NoError(t, err)
	require.NoError(t, order.AddLine(line))
	require.NoError(t, repo.Save(ctx, order))

	// mutating the saved instance does not touch the store
	require.NoError(t, order.Pay())

	saved, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, saved.Status)
	assert.Nil(t, saved.PaidAt)

	// mutating a fetched instance does not touch the store either
	require.NoError(t, saved.Pay())

	again, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, again.Status)
}

func TestMemoryOrderRepository_NotFound(t *testing.T) {
	repo := NewMemoryOrderRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrDataNotFound)
}

func TestMemoryOrderRepository_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrderRepository()

	order := models.NewOrder("customer_123")
	require.NoError(t, repo.Save(ctx, order))

	price, err := models.NewMoney(50, models.CurrencyRUB)
	require.NoError(t, err)
	line, err := models.NewOrderLine("prod_1", "Product 1", price, 2)
	require.NoError(t, err)
	require.NoError(t, order.AddLine(line))
	require.NoError(t, repo.Save(ctx, order))

	saved, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, saved.Lines, 1)
}

func TestMemoryCustomerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCustomerRepository()

	customer := &models.Customer{ID: "id-1", Login: "alice", PasswordHash: "hash"}
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	err := repo.CreateCustomer(ctx, &models.Customer{ID: "id-2", Login: "alice"})
	assert.ErrorIs(t, err, models.ErrConflictData)

	found, err := repo.GetCustomerByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "id-1", found.ID)

	_, err = repo.GetCustomerByLogin(ctx, "bob")
	assert.ErrorIs(t, err, models.ErrDataNotFound)
}
