package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/models"
)

// EventWriterRepository appends wallet events. Events are never updated or
// deleted; the table is the durable audit trail.
type EventWriterRepository struct {
	db *sqlx.DB
}

func NewEventWriterRepository(db *sqlx.DB) *EventWriterRepository {
	return &EventWriterRepository{db: db}
}

// Save appends a wallet event.
func (r *EventWriterRepository) Save(ctx context.Context, event *models.WalletEvent) error {
	query := `
		INSERT INTO wallet_events (event_id, wallet_id, type, payload, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{event.EventID, event.WalletID, event.Type, event.Payload}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// EventReaderRepository reads wallet event history.
type EventReaderRepository struct {
	db *sqlx.DB
}

func NewEventReaderRepository(db *sqlx.DB) *EventReaderRepository {
	return &EventReaderRepository{db: db}
}

// ListByWallet returns event history for a wallet, newest first.
func (r *EventReaderRepository) ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]models.WalletEvent, error) {
	query := `
		SELECT event_id, wallet_id, type, payload, created_at
		FROM wallet_events
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	args := []any{walletID, limit}

	var events []models.WalletEvent
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &events, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(events),
		"error", err,
	)

	return events, err
}
