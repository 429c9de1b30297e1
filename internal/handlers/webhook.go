package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/quickgigs/wallet-service/internal/logger"
)

// Payment gateway event types this service reacts to.
const (
	webhookCheckoutCompleted = "checkout.completed"
	webhookChargeDisputed    = "charge.disputed"
)

// GatewayDepositSettler defines the interface that the service must implement.
type GatewayDepositSettler interface {
	ConfirmGatewayDeposit(ctx context.Context, transactionID uuid.UUID, chargeID string) error
	MarkDepositDisputed(ctx context.Context, chargeID, disputeID, reason string) error
}

// WebhookRequest represents a payment gateway event envelope
// swagger:model WebhookRequest
type WebhookRequest struct {
	// Event type
	// default: checkout.completed
	Type string `json:"type"`

	// Event payload
	Data WebhookData `json:"data"`
}

// WebhookData carries the gateway object the event refers to.
type WebhookData struct {
	// Deposit transaction id passed through checkout metadata
	TransactionID uuid.UUID `json:"transaction_id"`

	// Gateway charge identifier
	ChargeID string `json:"charge_id"`

	// Dispute identifier, set on dispute events
	DisputeID string `json:"dispute_id"`

	// Dispute reason, set on dispute events
	Reason string `json:"reason"`
}

// NewPaymentWebhookHandler returns an HTTP handler for payment gateway
// callbacks. The request body must be signed with HMAC-SHA256 over the raw
// payload, hex encoded in the X-Webhook-Signature header. Unknown event types
// are acknowledged so the gateway stops retrying them.
// @Summary Payment webhook
// @Description Receives signed payment gateway events. Confirms deposits on checkout completion and fails them on dispute.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Webhook-Signature header string true "HMAC-SHA256 signature of the raw body, hex encoded"
// @Param request body handlers.WebhookRequest true "Gateway event"
// @Success 200 {object} handlers.MessageResponse "Event processed"
// @Failure 400 {object} handlers.ErrorResponse "Malformed payload"
// @Failure 401 {object} handlers.ErrorResponse "Invalid signature"
// @Router /webhooks/payment [post]
func NewPaymentWebhookHandler(svc GatewayDepositSettler, secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Malformed payload"})
			return
		}

		if !verifySignature(body, r.Header.Get("X-Webhook-Signature"), secret) {
			logger.Log.Warnw("webhook signature mismatch")
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid signature"})
			return
		}

		var req WebhookRequest
		if err := json.Unmarshal(body, &req); err != nil {
			logger.Log.Errorw("failed to decode webhook payload", "error", err)
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Malformed payload"})
			return
		}

		switch req.Type {
		case webhookCheckoutCompleted:
			err = svc.ConfirmGatewayDeposit(ctx, req.Data.TransactionID, req.Data.ChargeID)
		case webhookChargeDisputed:
			err = svc.MarkDepositDisputed(ctx, req.Data.ChargeID, req.Data.DisputeID, req.Data.Reason)
		default:
			logger.Log.Infow("ignoring webhook event", "type", req.Type)
		}
		if err != nil {
			logger.Log.Errorw("failed to process webhook event", "type", req.Type, "error", err)
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
	}
}

func verifySignature(body []byte, signature, secret string) bool {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
