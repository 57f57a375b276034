package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ordermart/ordermart/internal/service"
)

type PaymentService interface {
	// Execute pays the order with the given id
	Execute(ctx context.Context, orderID string) (service.PaymentResult, error)
}

// PaymentHandler represents HTTP handler for payment requests
type PaymentHandler struct {
	svc PaymentService
}

// NewPaymentHandler creates new PaymentHandler instance
func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type paymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// PayOrder pays the order. Domain failures (missing order, empty order,
// already paid, declined charge) come back as a 200 with success=false.
// 200 — попытка оплаты обработана, исход в теле ответа;
// 500 — внутренняя ошибка сервера или сбой платёжного провайдера.
func (ph *PaymentHandler) PayOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := ph.svc.Execute(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, paymentResponse{
			Success: result.Success,
			Message: result.Message,
			OrderID: result.OrderID,
		})
	}
}
