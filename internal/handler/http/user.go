package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ordermart/ordermart/internal/models"
)

type CustomerService interface {
	// Register creates customer account and returns auth token
	Register(ctx context.Context, login, password string) (string, error)
	// Login verifies credentials and returns auth token
	Login(ctx context.Context, login, password string) (string, error)
}

// CustomerHandler represents HTTP handler for customer account requests
type CustomerHandler struct {
	svc CustomerService
}

// NewCustomerHandler creates new CustomerHandler instance
func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// RegisterCustomer registers new customer and authenticates it
// 200 — пользователь успешно зарегистрирован и аутентифицирован;
// 400 — неверный формат запроса;
// 409 — логин уже занят;
// 500 — внутренняя ошибка сервера.
func (ch *CustomerHandler) RegisterCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if req.Login == "" || req.Password == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		token, err := ch.svc.Register(r.Context(), req.Login, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrConflictData) {
				http.Error(w, "login already taken", http.StatusConflict)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		setAuthCookie(w, token)
		w.WriteHeader(http.StatusOK)
	}
}

// LoginCustomer authenticates customer
// 200 — пользователь успешно аутентифицирован;
// 400 — неверный формат запроса;
// 401 — неверная пара логин/пароль;
// 500 — внутренняя ошибка сервера.
func (ch *CustomerHandler) LoginCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		token, err := ch.svc.Login(r.Context(), req.Login, req.Password)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		setAuthCookie(w, token)
		w.WriteHeader(http.StatusOK)
	}
}
