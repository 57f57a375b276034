package service

import (
	"context"
	"testing"

	"github.com/ordermart/ordermart/internal/models"
	"github.com/ordermart/ordermart/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct{}

func (stubTokenService) CreateToken(customer *models.Customer) (string, error) {
	return "token-" + customer.Login, nil
}

func (stubTokenService) VerifyToken(string) (*models.TokenPayload, error) {
	return nil, models.ErrInvalidCredentials
}

func TestCustomerService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(repository.NewMemoryCustomerRepository(), stubTokenService{})

	token, err := svc.Register(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token-alice", token)

	// duplicate login
	_, err = svc.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, models.ErrConflictData)

	token, err = svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token-alice", token)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "bob", "secret")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
