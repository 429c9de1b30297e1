package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/quickgigs/wallet-service/internal/middlewares"
	"github.com/quickgigs/wallet-service/internal/models"
	"github.com/quickgigs/wallet-service/internal/services"
)

func TestConfirmTransactionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	wallet := models.NewWallet(userID, models.DefaultCurrency)
	txn := models.NewTransaction(wallet.WalletID, models.TypeDeposit,
		decimal.RequireFromString("100.00"), "ref", models.StatusPending, nil)

	foreignTxn := models.NewTransaction(uuid.New(), models.TypeDeposit,
		decimal.RequireFromString("100.00"), "ref", models.StatusPending, nil)

	tests := []struct {
		name           string
		transactionID  string
		mockSetup      func(svc *MockTransactionSettler, txns *MockTransactionOwnerReader)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:          "Success",
			transactionID: txn.TransactionID.String(),
			mockSetup: func(svc *MockTransactionSettler, txns *MockTransactionOwnerReader) {
				svc.EXPECT().GetOrCreateWallet(gomock.Any(), userID).Return(wallet, nil)
				txns.EXPECT().GetByID(gomock.Any(), txn.TransactionID).Return(txn, nil)
				svc.EXPECT().ConfirmTransaction(gomock.Any(), txn.TransactionID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Transaction confirmed"`,
		},
		{
			name:           "UnparsableID",
			transactionID:  "not-a-uuid",
			mockSetup:      func(svc *MockTransactionSettler, txns *MockTransactionOwnerReader) {},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Not found"`,
		},
		{
			name:          "ForeignTransaction",
			transactionID: foreignTxn.TransactionID.String(),
			mockSetup: func(svc *MockTransactionSettler, txns *MockTransactionOwnerReader) {
				svc.EXPECT().GetOrCreateWallet(gomock.Any(), userID).Return(wallet, nil)
				txns.EXPECT().GetByID(gomock.Any(), foreignTxn.TransactionID).Return(foreignTxn, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"Not found"`,
		},
		{
			name:          "AlreadySettled",
			transactionID: txn.TransactionID.String(),
			mockSetup: func(svc *MockTransactionSettler, txns *MockTransactionOwnerReader) {
				svc.EXPECT().GetOrCreateWallet(gomock.Any(), userID).Return(wallet, nil)
				txns.EXPECT().GetByID(gomock.Any(), txn.TransactionID).Return(txn, nil)
				svc.EXPECT().ConfirmTransaction(gomock.Any(), txn.TransactionID).
					Return(services.ErrInvalidStateTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   services.ErrInvalidStateTransition.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTransactionSettler(ctrl)
			mockTxns := NewMockTransactionOwnerReader(ctrl)
			tt.mockSetup(mockSvc, mockTxns)

			router := chi.NewRouter()
			router.Post("/wallet/transactions/{transaction_id}/confirm", NewConfirmTransactionHandler(mockSvc, mockTxns))

			target := fmt.Sprintf("/wallet/transactions/%s/confirm", tt.transactionID)
			req := httptest.NewRequest(http.MethodPost, target, nil)
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}

func TestCancelWithdrawHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	wallet := models.NewWallet(userID, models.DefaultCurrency)
	txn := models.NewTransaction(wallet.WalletID, models.TypeWithdraw,
		decimal.RequireFromString("50.00"), "bank_acct_1", models.StatusPending, nil)

	tests := []struct {
		name           string
		mockSetup      func(svc *MockTransactionSettler, txns *MockTransactionOwnerReader)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(svc *MockTransactionSettler, txns *MockTransactionOwnerReader) {
				svc.EXPECT().GetOrCreateWallet(gomock.Any(), userID).Return(wallet, nil)
				txns.EXPECT().GetByID(gomock.Any(), txn.TransactionID).Return(txn, nil)
				svc.EXPECT().CancelWithdraw(gomock.Any(), txn.TransactionID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Withdrawal cancelled"`,
		},
		{
			name: "NotAWithdrawal",
			mockSetup: func(svc *MockTransactionSettler, txns *MockTransactionOwnerReader) {
				svc.EXPECT().GetOrCreateWallet(gomock.Any(), userID).Return(wallet, nil)
				txns.EXPECT().GetByID(gomock.Any(), txn.TransactionID).Return(txn, nil)
				svc.EXPECT().CancelWithdraw(gomock.Any(), txn.TransactionID).
					Return(services.ErrInvalidStateTransition)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   services.ErrInvalidStateTransition.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTransactionSettler(ctrl)
			mockTxns := NewMockTransactionOwnerReader(ctrl)
			tt.mockSetup(mockSvc, mockTxns)

			router := chi.NewRouter()
			router.Post("/wallet/transactions/{transaction_id}/cancel", NewCancelWithdrawHandler(mockSvc, mockTxns))

			target := fmt.Sprintf("/wallet/transactions/%s/cancel", txn.TransactionID)
			req := httptest.NewRequest(http.MethodPost, target, nil)
			req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}
