package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TypeDeposit    = "deposit"
	TypeWithdraw   = "withdraw"
	TypeEscrowHold = "escrow_hold"
	TypeEarning    = "earning"
	TypeFee        = "fee"
)

// Transaction statuses. pending is the sole initial state; the other three
// are terminal.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusFailed    = "failed"
)

// Transaction represents a single money-movement record owned by one wallet.
// It is never deleted; it is the audit/history record of the movement.
type Transaction struct {
	TransactionID uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	WalletID      uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	Type          string          `json:"type" db:"type"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Reference     string          `json:"reference" db:"reference"`
	Status        string          `json:"status" db:"status"`
	Metadata      Metadata        `json:"metadata" db:"metadata"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// NewTransaction creates a transaction in the given status.
func NewTransaction(walletID uuid.UUID, txnType string, amount decimal.Decimal, reference, status string, metadata Metadata) *Transaction {
	if metadata == nil {
		metadata = Metadata{}
	}
	return &Transaction{
		TransactionID: uuid.New(),
		WalletID:      walletID,
		Type:          txnType,
		Amount:        amount,
		Reference:     reference,
		Status:        status,
		Metadata:      metadata,
	}
}

func (t *Transaction) IsPending() bool   { return t.Status == StatusPending }
func (t *Transaction) IsCompleted() bool { return t.Status == StatusCompleted }
func (t *Transaction) IsCancelled() bool { return t.Status == StatusCancelled }
func (t *Transaction) IsFailed() bool    { return t.Status == StatusFailed }
