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

// DepositInitiator defines the interface that the service must implement.
type DepositInitiator interface {
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	InitiateDeposit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, reference string, metadata models.Metadata) (*models.Transaction, error)
}

// DepositRequest represents the JSON body for initiating a deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit
	// required: true
	// default: 100.00
	Amount decimal.Decimal `json:"amount"`

	// External payment reference, e.g. a checkout session id
	// default: stripe_cs_123
	Reference string `json:"reference"`
}

// NewInitiateDepositHandler returns an HTTP handler that opens a pending
// deposit on the user's wallet. Funds become spendable only after the payment
// gateway confirms.
// @Summary Initiate deposit
// @Description Creates a pending deposit transaction. Balances do not change until the deposit is confirmed.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.DepositRequest true "Deposit Request"
// @Success 201 {object} models.Transaction "Pending deposit transaction"
// @Failure 400 {object} handlers.ErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewInitiateDepositHandler(svc DepositInitiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		wallet, err := svc.GetOrCreateWallet(ctx, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		txn, err := svc.InitiateDeposit(ctx, wallet.WalletID, req.Amount, req.Reference, nil)
		if err != nil {
			logger.Log.Errorw("failed to initiate deposit", "userID", userID, "amount", req.Amount, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, txn)
	}
}
