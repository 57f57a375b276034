package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ordermart/ordermart/internal/handler/http/mocks"
	"github.com/ordermart/ordermart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerHandler_RegisterCustomer(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockCustomerService
		wantStatusCode int
		wantCookie     bool
	}{
		{
			name: "valid_request_return_200",
			body: `{"login":"alice","password":"secret"}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), "alice", "secret").Return("token", nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantCookie:     true,
		},
		{
			name: "empty_login_return_400",
			body: `{"login":"","password":"secret"}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "bad_json_return_400",
			body: "{",
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "taken_login_return_409",
			body: `{"login":"alice","password":"secret"}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return("", models.ErrConflictData).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := NewCustomerHandler(tt.setup(t))

			req := httptest.NewRequest(http.MethodPost, "/api/customer/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			ch.RegisterCustomer().ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantCookie {
				cookies := rec.Result().Cookies()
				require.Len(t, cookies, 1)
				assert.Equal(t, "auth_token", cookies[0].Name)
				assert.Equal(t, "token", cookies[0].Value)
			}
		})
	}
}

func TestCustomerHandler_LoginCustomer(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockCustomerService
		wantStatusCode int
	}{
		{
			name: "valid_request_return_200",
			body: `{"login":"alice","password":"secret"}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().Login(gomock.Any(), "alice", "secret").Return("token", nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "wrong_password_return_401",
			body: `{"login":"alice","password":"wrong"}`,
			setup: func(t *testing.T) *mocks.MockCustomerService {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svcMock := mocks.NewMockCustomerService(ctrl)
				svcMock.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", models.ErrInvalidCredentials).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := NewCustomerHandler(tt.setup(t))

			req := httptest.NewRequest(http.MethodPost, "/api/customer/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			ch.LoginCustomer().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
		})
	}
}
