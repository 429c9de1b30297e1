package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet event types emitted by the ledger. Each is recorded in the
// wallet_events log and relayed to external subscribers.
const (
	EventDepositInitiated    = "deposit_initiated"
	EventDepositConfirmed    = "deposit_confirmed"
	EventDepositDisputed     = "deposit_disputed"
	EventWithdrawalInitiated = "withdrawal_initiated"
	EventWithdrawalConfirmed = "withdrawal_confirmed"
	EventWithdrawalCancelled = "withdrawal_cancelled"
	EventEscrowHoldInitiated = "escrow_hold_initiated"
	EventEscrowReleased      = "escrow_released"
	EventEscrowRefunded      = "escrow_refunded"
	EventJobPosted           = "job_posted"
	EventJobCompleted        = "job_completed"
	EventJobCancelled        = "job_cancelled"
)

// WalletEvent is an append-only audit-log entry. It is always derivative of a
// wallet or transaction state change recorded in the same atomic unit; it is
// never mutated or deleted.
type WalletEvent struct {
	EventID   uuid.UUID `json:"event_id" db:"event_id"`
	WalletID  uuid.UUID `json:"wallet_id" db:"wallet_id"`
	Type      string    `json:"type" db:"type"`
	Payload   Metadata  `json:"payload" db:"payload"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewWalletEvent creates a wallet event with a fresh id.
func NewWalletEvent(walletID uuid.UUID, eventType string, payload Metadata) *WalletEvent {
	if payload == nil {
		payload = Metadata{}
	}
	return &WalletEvent{
		EventID:  uuid.New(),
		WalletID: walletID,
		Type:     eventType,
		Payload:  payload,
	}
}
