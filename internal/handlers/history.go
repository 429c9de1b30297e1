package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/middlewares"
	"github.com/quickgigs/wallet-service/internal/models"
)

// HistoryReader defines the interface that the service must implement.
type HistoryReader interface {
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	GetTransactionHistory(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]models.Transaction, error)
	GetEventHistory(ctx context.Context, walletID uuid.UUID, limit int) ([]models.WalletEvent, error)
	ListPendingTransactions(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error)
}

// TransactionListResponse represents a page of transactions
// swagger:model TransactionListResponse
type TransactionListResponse struct {
	// Transactions, newest first
	Transactions []models.Transaction `json:"transactions"`
}

// EventListResponse represents a page of wallet events
// swagger:model EventListResponse
type EventListResponse struct {
	// Events, newest first
	Events []models.WalletEvent `json:"events"`
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

// NewTransactionHistoryHandler returns an HTTP handler for listing the
// caller's transactions, newest first.
// @Summary Transaction history
// @Description Lists the wallet's transactions in reverse chronological order.
// @Tags wallet
// @Produce json
// @Param limit query int false "Page size (default 50, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} handlers.TransactionListResponse "Transactions"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/transactions [get]
// @Security BearerAuth
func NewTransactionHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		wallet, err := svc.GetOrCreateWallet(ctx, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		txns, err := svc.GetTransactionHistory(ctx, wallet.WalletID, queryInt(r, "limit"), queryInt(r, "offset"))
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "walletID", wallet.WalletID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TransactionListResponse{Transactions: txns})
	}
}

// NewPendingTransactionsHandler returns an HTTP handler for listing the
// caller's unsettled transactions.
// @Summary Pending transactions
// @Description Lists transactions still awaiting confirmation or cancellation.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.TransactionListResponse "Pending transactions"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/transactions/pending [get]
// @Security BearerAuth
func NewPendingTransactionsHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		wallet, err := svc.GetOrCreateWallet(ctx, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		txns, err := svc.ListPendingTransactions(ctx, wallet.WalletID)
		if err != nil {
			logger.Log.Errorw("failed to list pending transactions", "walletID", wallet.WalletID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TransactionListResponse{Transactions: txns})
	}
}

// NewEventHistoryHandler returns an HTTP handler for the wallet's audit trail.
// @Summary Event history
// @Description Lists append-only wallet events, newest first.
// @Tags wallet
// @Produce json
// @Param limit query int false "Page size (default 100, max 500)"
// @Success 200 {object} handlers.EventListResponse "Events"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallet/events [get]
// @Security BearerAuth
func NewEventHistoryHandler(svc HistoryReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := middlewares.UserIDFromContext(ctx)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
			return
		}

		wallet, err := svc.GetOrCreateWallet(ctx, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		events, err := svc.GetEventHistory(ctx, wallet.WalletID, queryInt(r, "limit"))
		if err != nil {
			logger.Log.Errorw("failed to list events", "walletID", wallet.WalletID, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, EventListResponse{Events: events})
	}
}
