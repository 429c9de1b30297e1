package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/quickgigs/wallet-service/internal/middlewares"
	"github.com/quickgigs/wallet-service/internal/models"
)

func TestGetWalletHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	wallet := models.NewWallet(userID, models.DefaultCurrency)
	wallet.Balance = decimal.RequireFromString("100.00")
	wallet.AvailableBalance = decimal.RequireFromString("100.00")

	tests := []struct {
		name           string
		authed         bool
		mockSetup      func(m *MockWalletProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			authed: true,
			mockSetup: func(m *MockWalletProvider) {
				m.EXPECT().GetOrCreateWallet(gomock.Any(), userID).Return(wallet, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"available_balance":"100"`,
		},
		{
			name:           "Unauthorized",
			authed:         false,
			mockSetup:      func(m *MockWalletProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"Unauthorized"`,
		},
		{
			name:   "ServiceError",
			authed: true,
			mockSetup: func(m *MockWalletProvider) {
				m.EXPECT().GetOrCreateWallet(gomock.Any(), userID).
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Internal server error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockWalletProvider(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetWalletHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/wallet", nil)
			if tt.authed {
				req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}
