package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/ordermart/ordermart/internal/repository/postgres"
)

const (
	insertCustomerQuery = `
						INSERT INTO customers (id, login, password_hash, created_at)
						VALUES ($1, $2, $3, $4)
`
	selectCustomerByLoginQuery = `
						SELECT id, login, password_hash, created_at FROM customers
						WHERE login = $1
`
)

// CustomerRepository implements service.CustomerRepository over postgres
type CustomerRepository struct {
	db *postgres.DB
}

// NewCustomerRepository creates new CustomerRepository instance
func NewCustomerRepository(db *postgres.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CreateCustomer inserts new customer
func (cr *CustomerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	_, err := cr.db.Exec(ctx, insertCustomerQuery,
		customer.ID, customer.Login, customer.PasswordHash, customer.CreatedAt)
	if err != nil {
		if errCode := cr.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return models.ErrConflictData
		}
		return err
	}
	return nil
}

// GetCustomerByLogin returns customer by login
func (cr *CustomerRepository) GetCustomerByLogin(ctx context.Context, login string) (*models.Customer, error) {
	customer := models.Customer{}
	err := cr.db.QueryRow(ctx, selectCustomerByLoginQuery, login).
		Scan(&customer.ID, &customer.Login, &customer.PasswordHash, &customer.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}
	return &customer, nil
}
