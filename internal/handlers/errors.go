package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/repositories"
	"github.com/quickgigs/wallet-service/internal/services"
)

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps domain errors to HTTP status codes with a JSON body.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidJob):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInsufficientBalance):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Insufficient funds"})
	case errors.Is(err, services.ErrInvalidStateTransition),
		errors.Is(err, services.ErrDuplicatePendingWithdrawal):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, repositories.ErrConcurrencyConflict):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "Conflicting concurrent update, retry later"})
	default:
		logger.Log.Errorw("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
