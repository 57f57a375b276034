package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ordermart/ordermart/internal/models"
)

// default time of retry after
const delaySeconds = 60

// charge outcomes reported by the provider
const (
	chargeStatusApproved = "APPROVED"
	chargeStatusDeclined = "DECLINED"
)

// Client is HTTP client of the external payment provider
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient creates new payment provider client
func NewClient(baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: baseURL,
	}
}

type chargeRequest struct {
	Order    string  `json:"order"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type chargeResponse struct {
	Order  string `json:"order"`
	Status string `json:"status"`
}

// Charge charges the amount for the order, returns success flag.
// 200 — запрос обработан, исход в теле ответа.
// 402 — провайдер отклонил списание.
// 429 — превышено количество запросов к сервису.
// 500 — внутренняя ошибка сервера.
func (c *Client) Charge(ctx context.Context, orderID string, amount models.Money) (bool, error) {
	// POST /api/charge
	url, err := url.JoinPath(c.baseURL, "api", "charge")
	if err != nil {
		return false, err
	}

	body, err := json.Marshal(chargeRequest{
		Order:    orderID,
		Amount:   amount.Amount,
		Currency: string(amount.Currency),
	})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return false, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
		chResp := chargeResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&chResp); err != nil {
			return false, err
		}
		return chResp.Status == chargeStatusApproved, nil
	case http.StatusPaymentRequired:
		return false, nil
	case http.StatusTooManyRequests:
		t := delaySeconds
		if val := resp.Header.Get("Retry-After"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				t = parsed
			}
		}
		return false, models.NewTooManyRequestsError(time.Duration(t) * time.Second)
	case http.StatusInternalServerError:
		return false, models.ErrInternalError
	default:
		return false, models.ErrInternalError
	}
}
