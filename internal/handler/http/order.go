package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ordermart/ordermart/internal/models"
)

type OrderService interface {
	// Create creates empty pending order for the customer
	Create(ctx context.Context, customerID string) (*models.Order, error)
	// Get returns order by id
	Get(ctx context.Context, orderID string) (*models.Order, error)
	// ListCustomerOrders returns list of customer orders
	ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error)
	// AddLine appends line to the order
	AddLine(ctx context.Context, orderID string, line models.OrderLine) (*models.Order, error)
	// RemoveLine removes all lines with the product id
	RemoveLine(ctx context.Context, orderID string, productID string) (*models.Order, error)
	// Cancel cancels pending order
	Cancel(ctx context.Context, orderID string) (*models.Order, error)
	// GetCustomerSummary returns per-status order counts for the customer
	GetCustomerSummary(ctx context.Context, customerID string) (models.CustomerSummary, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type orderLineResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Quantity    int     `json:"quantity"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	Status    string              `json:"status"`
	Lines     []orderLineResponse `json:"lines"`
	Total     *float64            `json:"total,omitempty"`
	Currency  string              `json:"currency,omitempty"`
	CreatedAt string              `json:"created_at"`
	UpdatedAt string              `json:"updated_at"`
	PaidAt    string              `json:"paid_at,omitempty"`
}

func newOrderResponse(order *models.Order) orderResponse {
	resp := orderResponse{
		ID:        order.ID,
		Status:    string(order.Status),
		Lines:     []orderLineResponse{},
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
		UpdatedAt: order.UpdatedAt.Format(time.RFC3339),
	}

	for _, line := range order.Lines {
		resp.Lines = append(resp.Lines, orderLineResponse{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Price:       line.Price.Amount,
			Currency:    string(line.Price.Currency),
			Quantity:    line.Quantity,
		})
	}

	// mixed-currency orders are shown without a total
	if total, err := order.Total(); err == nil {
		resp.Total = &total.Amount
		resp.Currency = string(total.Currency)
	}

	if order.PaidAt != nil {
		resp.PaidAt = order.PaidAt.Format(time.RFC3339)
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return
	}
}

// CreateOrder creates new empty order for the authenticated customer
// 201 — заказ создан;
// 401 — пользователь не аутентифицирован;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		order, err := oh.svc.Create(r.Context(), payload.CustomerID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, newOrderResponse(order))
	}
}

// GetOrder returns order by id
// 200 — успешная обработка запроса;
// 404 — заказ не найден;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := oh.svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, models.ErrDataNotFound) {
				http.Error(w, "order not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, newOrderResponse(order))
	}
}

// ListOrders returns orders of the authenticated customer
// 200 — успешная обработка запроса;
// 401 — пользователь не аутентифицирован;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		orders, err := oh.svc.ListCustomerOrders(r.Context(), payload.CustomerID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := []orderResponse{}
		for i := range orders {
			resp = append(resp, newOrderResponse(&orders[i]))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type addLineRequest struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Quantity    int     `json:"quantity"`
}

// AddLine appends line to the order
// 200 — строка добавлена;
// 400 — неверный формат запроса;
// 404 — заказ не найден;
// 409 — заказ уже оплачен или отменён;
// 422 — некорректная цена, валюта или количество;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) AddLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addLineRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		price, err := models.NewMoney(req.Price, models.Currency(req.Currency))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		line, err := models.NewOrderLine(req.ProductID, req.ProductName, price, req.Quantity)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		order, err := oh.svc.AddLine(r.Context(), chi.URLParam(r, "id"), line)
		if err != nil {
			writeOrderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newOrderResponse(order))
	}
}

// RemoveLine removes all lines with the product id from the order
// 200 — строки удалены (отсутствие товара не ошибка);
// 404 — заказ не найден;
// 409 — заказ уже оплачен или отменён;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) RemoveLine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := oh.svc.RemoveLine(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "productID"))
		if err != nil {
			writeOrderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newOrderResponse(order))
	}
}

// CancelOrder cancels pending order
// 200 — заказ отменён;
// 404 — заказ не найден;
// 409 — заказ уже оплачен;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := oh.svc.Cancel(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeOrderError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newOrderResponse(order))
	}
}

type summaryResponse struct {
	Pending   int64 `json:"pending"`
	Paid      int64 `json:"paid"`
	Cancelled int64 `json:"cancelled"`
}

// GetCustomerSummary returns order counts of the authenticated customer
// 200 — успешная обработка запроса;
// 401 — пользователь не аутентифицирован;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) GetCustomerSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := getAuthPayload(r.Context())
		if !ok {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		summary, err := oh.svc.GetCustomerSummary(r.Context(), payload.CustomerID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, summaryResponse{
			Pending:   summary.Pending,
			Paid:      summary.Paid,
			Cancelled: summary.Cancelled,
		})
	}
}

// writeOrderError maps order operation errors to status codes
func writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrDataNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, models.ErrModifyPaidOrder),
		errors.Is(err, models.ErrModifyCancelledOrder),
		errors.Is(err, models.ErrCancelPaidOrder):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
