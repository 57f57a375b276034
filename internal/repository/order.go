package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/ordermart/ordermart/internal/repository/postgres"
)

const pgErrUniqueViolationCode = "23505"

const (
	upsertOrderQuery = `
						INSERT INTO orders (id, customer_id, status, created_at, updated_at, paid_at)
						VALUES ($1, $2, $3, $4, $5, $6)
						ON CONFLICT (id) DO UPDATE
						SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at, paid_at = EXCLUDED.paid_at
`
	deleteLinesQuery = `
						DELETE FROM order_lines WHERE order_id = $1
`
	insertLineQuery = `
						INSERT INTO order_lines (order_id, position, product_id, product_name, price, currency, quantity)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	selectOrderByIDQuery = `
						SELECT id, customer_id, status, created_at, updated_at, paid_at FROM orders
						WHERE id = $1
`
	selectLinesQuery = `
						SELECT product_id, product_name, price, currency, quantity FROM order_lines
						WHERE order_id = $1
						ORDER BY position
`
	selectOrdersByCustomerIDQuery = `
						SELECT id, customer_id, status, created_at, updated_at, paid_at FROM orders
						WHERE customer_id = $1
						ORDER BY created_at DESC
`
	selectPendingBeforeQuery = `
						SELECT id, customer_id, status, created_at, updated_at, paid_at FROM orders
						WHERE status = 'PENDING' AND updated_at < $1
`
	selectCustomerSummaryQuery = `
						SELECT count(*) FILTER (WHERE status = 'PENDING'),
						       count(*) FILTER (WHERE status = 'PAID'),
						       count(*) FILTER (WHERE status = 'CANCELLED')
						FROM orders
						WHERE customer_id = $1
`
)

// OrderRepository implements service.OrderRepository over postgres
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Save stores the order and its lines in one transaction,
// overwriting any prior record with the same id
func (or *OrderRepository) Save(ctx context.Context, order *models.Order) error {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, upsertOrderQuery,
		order.ID, order.CustomerID, order.Status, order.CreatedAt, order.UpdatedAt, order.PaidAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, deleteLinesQuery, order.ID); err != nil {
		return err
	}

	for i, line := range order.Lines {
		_, err := tx.Exec(ctx, insertLineQuery,
			order.ID, i, line.ProductID, line.ProductName, line.Price.Amount, line.Price.Currency, line.Quantity)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID returns order with lines by id
func (or *OrderRepository) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	order := models.Order{}
	err := or.db.QueryRow(ctx, selectOrderByIDQuery, orderID).
		Scan(&order.ID, &order.CustomerID, &order.Status, &order.CreatedAt, &order.UpdatedAt, &order.PaidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	lines, err := or.selectLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	return &order, nil
}

func (or *OrderRepository) selectLines(ctx context.Context, orderID string) ([]models.OrderLine, error) {
	rows, err := or.db.Query(ctx, selectLinesQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.OrderLine{}

	for rows.Next() {
		line := models.OrderLine{}
		err = rows.Scan(&line.ProductID, &line.ProductName, &line.Price.Amount, &line.Price.Currency, &line.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// GetByCustomerID returns customer orders, newest first
func (or *OrderRepository) GetByCustomerID(ctx context.Context, customerID string) ([]models.Order, error) {
	return or.selectOrders(ctx, selectOrdersByCustomerIDQuery, customerID)
}

// GetPendingBefore returns pending orders not updated since the given time
func (or *OrderRepository) GetPendingBefore(ctx context.Context, before time.Time) ([]models.Order, error) {
	return or.selectOrders(ctx, selectPendingBeforeQuery, before)
}

func (or *OrderRepository) selectOrders(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	rows, err := or.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		err = rows.Scan(&order.ID, &order.CustomerID, &order.Status, &order.CreatedAt, &order.UpdatedAt, &order.PaidAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		lines, err := or.selectLines(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}

	return orders, nil
}

// CustomerSummary returns per-status order counts for the customer
func (or *OrderRepository) CustomerSummary(ctx context.Context, customerID string) (models.CustomerSummary, error) {
	summary := models.CustomerSummary{}
	err := or.db.QueryRow(ctx, selectCustomerSummaryQuery, customerID).
		Scan(&summary.Pending, &summary.Paid, &summary.Cancelled)
	if err != nil {
		return models.CustomerSummary{}, err
	}
	return summary, nil
}
