package models

import "time"

// Customer is registered account that owns orders
type Customer struct {
	ID           string
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}

// TokenPayload is verified content of an auth token
type TokenPayload struct {
	CustomerID string
	Login      string
}
