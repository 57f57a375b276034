package auth

import (
	"testing"

	"github.com/ordermart/ordermart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthToken_RoundTrip(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	customer := &models.Customer{ID: "customer-1", Login: "alice"}

	token, err := at.CreateToken(customer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := at.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "customer-1", payload.CustomerID)
	assert.Equal(t, "alice", payload.Login)
}

func TestAuthToken_WrongKey(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))
	other := NewAuthToken([]byte("fedcba9876543210"))

	token, err := at.CreateToken(&models.Customer{ID: "customer-1", Login: "alice"})
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestAuthToken_Garbage(t *testing.T) {
	at := NewAuthToken([]byte("0123456789abcdef"))

	_, err := at.VerifyToken("not-a-token")
	assert.Error(t, err)
}
