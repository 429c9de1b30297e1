package services

import (
	"context"

	"github.com/quickgigs/wallet-service/internal/models"
)

// AuditSink is an external collaborator notified of every recorded wallet
// event, inside the same unit of work. Implementations may no-op without
// affecting ledger correctness; sink errors are logged, never fatal.
type AuditSink interface {
	Record(ctx context.Context, event models.WalletEvent) error
}

// NoopAuditSink discards audit records.
type NoopAuditSink struct{}

func (NoopAuditSink) Record(ctx context.Context, event models.WalletEvent) error { return nil }
