package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/middlewares"
	"github.com/quickgigs/wallet-service/internal/models"
)

// WalletProvider defines the interface that the service must implement.
type WalletProvider interface {
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
}

// WalletResponse represents a wallet with its four balance buckets
// swagger:model WalletResponse
type WalletResponse struct {
	// Wallet identifier
	WalletID uuid.UUID `json:"wallet_id"`

	// Currency code
	// default: USD
	Currency string `json:"currency"`

	// Total funds in custody
	Balance decimal.Decimal `json:"balance"`

	// Funds spendable right now
	AvailableBalance decimal.Decimal `json:"available_balance"`

	// Funds reserved by pending withdrawals
	PendingBalance decimal.Decimal `json:"pending_balance"`

	// Funds locked in escrow
	HeldBalance decimal.Decimal `json:"held_balance"`
}

func newWalletResponse(wallet *models.Wallet) WalletResponse {
	return WalletResponse{
		WalletID:         wallet.WalletID,
		Currency:         wallet.Currency,
		Balance:          wallet.Balance,
		AvailableBalance: wallet.AvailableBalance,
		PendingBalance:   wallet.PendingBalance,
		HeldBalance:      wallet.HeldBalance,
	}
}

// NewGetWalletHandler returns an HTTP handler for fetching the user's wallet.
// The wallet is created lazily on first access.
// @Summary Get wallet
// @Description Returns the authenticated user's wallet with all balance buckets. Creates the wallet on first access.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.WalletResponse "User wallet"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /wallet [get]
// @Security BearerAuth
func NewGetWalletHandler(svc WalletProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		wallet, err := svc.GetOrCreateWallet(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newWalletResponse(wallet))
	}
}
