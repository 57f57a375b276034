package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/ordermart/ordermart/internal/handler/http/mocks"
	"github.com/ordermart/ordermart/internal/service"
	"github.com/stretchr/testify/require"
)

// newRequestWithOrderID builds request with chi route parameter "id"
func newRequestWithOrderID(method, target, orderID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", orderID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestPaymentHandler_PayOrder(t *testing.T) {
	tests := []struct {
		name           string
		orderID        string
		setup          func(t *testing.T) *mocks.MockPaymentService
		wantStatusCode int
		wantBody       *paymentResponse
	}{
		{
			name:    "successful_payment_return_200",
			orderID: "order-1",
			setup: func(t *testing.T) *mocks.MockPaymentService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Execute(gomock.Any(), "order-1").Return(service.PaymentResult{
					Success: true,
					Message: service.MsgPaymentSuccessful,
					OrderID: "order-1",
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: &paymentResponse{
				Success: true,
				Message: "Payment successful",
				OrderID: "order-1",
			},
		},
		{
			name:    "already_paid_return_200_with_failure",
			orderID: "order-1",
			setup: func(t *testing.T) *mocks.MockPaymentService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Execute(gomock.Any(), "order-1").Return(service.PaymentResult{
					Success: false,
					Message: "Order already paid",
					OrderID: "order-1",
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: &paymentResponse{
				Success: false,
				Message: "Order already paid",
				OrderID: "order-1",
			},
		},
		{
			name:    "missing_order_return_200_with_failure",
			orderID: "missing",
			setup: func(t *testing.T) *mocks.MockPaymentService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Execute(gomock.Any(), "missing").Return(service.PaymentResult{
					Success: false,
					Message: "Order missing not found",
					OrderID: "missing",
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: &paymentResponse{
				Success: false,
				Message: "Order missing not found",
				OrderID: "missing",
			},
		},
		{
			name:    "service_error_return_500",
			orderID: "order-1",
			setup: func(t *testing.T) *mocks.MockPaymentService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockPaymentService(ctrl)
				svcMock.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(service.PaymentResult{}, errors.New("gateway is down")).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ph := NewPaymentHandler(tt.setup(t))

			req := newRequestWithOrderID(http.MethodPost, "/api/orders/"+tt.orderID+"/pay", tt.orderID)
			rec := httptest.NewRecorder()

			ph.PayOrder().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantBody != nil {
				var got paymentResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				if diff := cmp.Diff(*tt.wantBody, got); diff != "" {
					t.Errorf("unexpected response (-want +got):\n%s", diff)
				}
			}
		})
	}
}
