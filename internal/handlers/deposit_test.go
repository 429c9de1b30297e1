package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/quickgigs/wallet-service/internal/middlewares"
	"github.com/quickgigs/wallet-service/internal/models"
	"github.com/quickgigs/wallet-service/internal/services"
)

func TestInitiateDepositHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	wallet := models.NewWallet(userID, models.DefaultCurrency)

	tests := []struct {
		name           string
		authed         bool
		body           string
		mockSetup      func(m *MockDepositInitiator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			authed: true,
			body:   `{"amount": "100.00", "reference": "stripe_cs_123"}`,
			mockSetup: func(m *MockDepositInitiator) {
				txn := models.NewTransaction(wallet.WalletID, models.TypeDeposit,
					decimal.RequireFromString("100.00"), "stripe_cs_123", models.StatusPending, nil)
				m.EXPECT().GetOrCreateWallet(gomock.Any(), userID).Return(wallet, nil)
				m.EXPECT().InitiateDeposit(gomock.Any(), wallet.WalletID, gomock.Any(), "stripe_cs_123", gomock.Any()).
					Return(txn, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"pending"`,
		},
		{
			name:           "Unauthorized",
			authed:         false,
			body:           `{"amount": "100.00"}`,
			mockSetup:      func(m *MockDepositInitiator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"Unauthorized"`,
		},
		{
			name:           "MalformedBody",
			authed:         true,
			body:           `{"amount": `,
			mockSetup:      func(m *MockDepositInitiator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid request body"`,
		},
		{
			name:   "InvalidAmount",
			authed: true,
			body:   `{"amount": "-5.00"}`,
			mockSetup: func(m *MockDepositInitiator) {
				m.EXPECT().GetOrCreateWallet(gomock.Any(), userID).Return(wallet, nil)
				m.EXPECT().InitiateDeposit(gomock.Any(), wallet.WalletID, gomock.Any(), "", gomock.Any()).
					Return(nil, services.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   services.ErrInvalidAmount.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDepositInitiator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewInitiateDepositHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/wallet/deposit", strings.NewReader(tt.body))
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
