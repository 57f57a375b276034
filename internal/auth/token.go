package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/ordermart/ordermart/internal/models"
)

// token lifetime
const tokenDuration = 24 * time.Hour

var errInvalidToken = errors.New("invalid auth token")

type claims struct {
	jwt.RegisteredClaims
	Login string `json:"login"`
}

// AuthToken creates and verifies HS256 signed auth tokens
type AuthToken struct {
	key []byte
}

// NewAuthToken creates AuthToken with the signing key
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

// CreateToken issues signed token for the customer
func (at *AuthToken) CreateToken(customer *models.Customer) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customer.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
		Login: customer.Login,
	})

	return token.SignedString(at.key)
}

// VerifyToken parses and validates token string
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return at.key, nil
	})
	if err != nil {
		return nil, err
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, errInvalidToken
	}

	return &models.TokenPayload{
		CustomerID: c.Subject,
		Login:      c.Login,
	}, nil
}
