package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Job statuses the escrow coordinator cares about. The full job lifecycle
// (claiming, review, deliverables) is owned by the jobs domain; the ledger
// only reads status to authorize escrow transitions.
const (
	JobStatusActive    = "active"
	JobStatusCompleted = "completed"
	JobStatusCancelled = "cancelled"
)

// Job is the escrow coordinator's view of a posted job: its budget and the
// escrow hold transaction backing it.
type Job struct {
	JobID               uuid.UUID       `json:"job_id" db:"job_id"`
	ClientID            uuid.UUID       `json:"client_id" db:"client_id"`
	Title               string          `json:"title" db:"title"`
	Description         string          `json:"description" db:"description"`
	BudgetMax           decimal.Decimal `json:"budget_max" db:"budget_max"`
	Status              string          `json:"status" db:"status"`
	EscrowTransactionID *uuid.UUID      `json:"escrow_transaction_id" db:"escrow_transaction_id"`
	CreatedAt           time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at" db:"updated_at"`
}
