package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/middlewares"
	"github.com/quickgigs/wallet-service/internal/models"
	"github.com/quickgigs/wallet-service/internal/repositories"
)

// TransactionSettler defines the interface that the service must implement.
type TransactionSettler interface {
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	ConfirmTransaction(ctx context.Context, transactionID uuid.UUID) error
	CancelWithdraw(ctx context.Context, transactionID uuid.UUID) error
}

// TransactionOwnerReader resolves transactions for ownership checks.
type TransactionOwnerReader interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
}

// MessageResponse represents a simple success message
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: ok
	Message string `json:"message"`
}

// ownedTransaction parses the transaction id from the URL and verifies it
// belongs to the caller's wallet. Foreign transactions read as not found.
func ownedTransaction(ctx context.Context, r *http.Request, svc TransactionSettler, txnReader TransactionOwnerReader) (uuid.UUID, error) {
	transactionID, err := uuid.Parse(chi.URLParam(r, "transaction_id"))
	if err != nil {
		return uuid.Nil, repositories.ErrNotFound
	}

	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, repositories.ErrNotFound
	}
	wallet, err := svc.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}

	txn, err := txnReader.GetByID(ctx, transactionID)
	if err != nil {
		return uuid.Nil, err
	}
	if txn.WalletID != wallet.WalletID {
		return uuid.Nil, repositories.ErrNotFound
	}

	return transactionID, nil
}

// NewConfirmTransactionHandler returns an HTTP handler that settles a pending
// transaction according to its type: deposits credit the wallet, withdrawals
// finalize the payout.
// @Summary Confirm transaction
// @Description Settles a pending deposit or withdrawal. Confirming twice returns 409.
// @Tags wallet
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} handlers.MessageResponse "Transaction confirmed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.ErrorResponse "Transaction is not pending"
// @Router /wallet/transactions/{transaction_id}/confirm [post]
// @Security BearerAuth
func NewConfirmTransactionHandler(svc TransactionSettler, txnReader TransactionOwnerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		transactionID, err := ownedTransaction(ctx, r, svc, txnReader)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.ConfirmTransaction(ctx, transactionID); err != nil {
			logger.Log.Errorw("failed to confirm transaction", "transactionID", transactionID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Transaction confirmed"})
	}
}

// NewCancelWithdrawHandler returns an HTTP handler that cancels a pending
// withdrawal and returns the reserved funds to the available balance.
// @Summary Cancel withdrawal
// @Description Cancels a pending withdrawal. The reserved amount becomes spendable again.
// @Tags wallet
// @Produce json
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} handlers.MessageResponse "Withdrawal cancelled"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 409 {object} handlers.ErrorResponse "Transaction is not a pending withdrawal"
// @Router /wallet/transactions/{transaction_id}/cancel [post]
// @Security BearerAuth
func NewCancelWithdrawHandler(svc TransactionSettler, txnReader TransactionOwnerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		transactionID, err := ownedTransaction(ctx, r, svc, txnReader)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.CancelWithdraw(ctx, transactionID); err != nil {
			logger.Log.Errorw("failed to cancel withdrawal", "transactionID", transactionID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Withdrawal cancelled"})
	}
}
