package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/middlewares"
	"github.com/quickgigs/wallet-service/internal/models"
)

// WithdrawInitiator defines the interface that the service must implement.
type WithdrawInitiator interface {
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	InitiateWithdraw(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, reference string, metadata models.Metadata) (*models.Transaction, error)
}

// WithdrawRequest represents the JSON body for initiating a withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw
	// required: true
	// default: 50.00
	Amount decimal.Decimal `json:"amount"`

	// Payout destination, e.g. a bank account alias
	// default: bank_acct_1
	Destination string `json:"destination"`
}

// NewInitiateWithdrawHandler returns an HTTP handler that opens a pending
// withdrawal. The amount moves from available to pending until the payout
// settles or is cancelled.
// @Summary Initiate withdrawal
// @Description Reserves funds for a payout. Only one withdrawal may be pending per wallet at a time.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.WithdrawRequest true "Withdraw Request"
// @Success 201 {object} models.Transaction "Pending withdrawal transaction"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount or insufficient funds"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "A pending withdrawal already exists"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewInitiateWithdrawHandler(svc WithdrawInitiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode withdraw request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		wallet, err := svc.GetOrCreateWallet(ctx, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		var metadata models.Metadata
		if req.Destination != "" {
			metadata = models.Metadata{"destination": req.Destination}
		}

		txn, err := svc.InitiateWithdraw(ctx, wallet.WalletID, req.Amount, req.Destination, metadata)
		if err != nil {
			logger.Log.Errorw("failed to initiate withdrawal", "userID", userID, "amount", req.Amount, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, txn)
	}
}
