package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ordermart/ordermart/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// CustomerRepository is interface for interacting with customer accounts
type CustomerRepository interface {
	// CreateCustomer inserts new customer, models.ErrConflictData on duplicate login
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	// GetCustomerByLogin returns customer by login, models.ErrDataNotFound when absent
	GetCustomerByLogin(ctx context.Context, login string) (*models.Customer, error)
}

// TokenService creates and verifies auth tokens
type TokenService interface {
	CreateToken(customer *models.Customer) (string, error)
	VerifyToken(tokenString string) (*models.TokenPayload, error)
}

// CustomerService registers and authenticates customers
type CustomerService struct {
	repo  CustomerRepository
	token TokenService
}

// NewCustomerService creates new CustomerService instance
func NewCustomerService(repo CustomerRepository, token TokenService) *CustomerService {
	return &CustomerService{
		repo:  repo,
		token: token,
	}
}

// Register creates customer account and returns auth token
func (cs *CustomerService) Register(ctx context.Context, login, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	customer := &models.Customer{
		ID:           uuid.NewString(),
		Login:        login,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := cs.repo.CreateCustomer(ctx, customer); err != nil {
		return "", err
	}

	return cs.token.CreateToken(customer)
}

// Login verifies credentials and returns auth token
func (cs *CustomerService) Login(ctx context.Context, login, password string) (string, error) {
	customer, err := cs.repo.GetCustomerByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	return cs.token.CreateToken(customer)
}
