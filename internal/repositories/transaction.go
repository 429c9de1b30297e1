package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/models"
)

// TransactionWriterRepository handles transaction write operations.
type TransactionWriterRepository struct {
	db *sqlx.DB
}

func NewTransactionWriterRepository(db *sqlx.DB) *TransactionWriterRepository {
	return &TransactionWriterRepository{db: db}
}

// Save inserts a new transaction record.
func (r *TransactionWriterRepository) Save(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, wallet_id, type, amount, reference, status, metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	args := []any{
		txn.TransactionID, txn.WalletID, txn.Type, txn.Amount,
		txn.Reference, txn.Status, txn.Metadata,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateStatus moves a pending transaction to a terminal status. Returns
// ErrNotFound if the transaction does not exist or is no longer pending, so
// a terminal transaction can never be settled twice at the storage level.
func (r *TransactionWriterRepository) UpdateStatus(ctx context.Context, transactionID uuid.UUID, status string) error {
	query := `
		UPDATE transactions
		SET status = $2, updated_at = NOW()
		WHERE transaction_id = $1 AND status = 'pending'
	`
	args := []any{transactionID, status}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateMetadata replaces the metadata bag of a transaction.
func (r *TransactionWriterRepository) UpdateMetadata(ctx context.Context, transactionID uuid.UUID, metadata models.Metadata) error {
	query := `
		UPDATE transactions
		SET metadata = $2, updated_at = NOW()
		WHERE transaction_id = $1
	`
	args := []any{transactionID, metadata}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TransactionReaderRepository handles transaction read operations.
type TransactionReaderRepository struct {
	db *sqlx.DB
}

func NewTransactionReaderRepository(db *sqlx.DB) *TransactionReaderRepository {
	return &TransactionReaderRepository{db: db}
}

const transactionColumns = `transaction_id, wallet_id, type, amount, reference, status, metadata, created_at, updated_at`

// GetByID returns a transaction by its id.
func (r *TransactionReaderRepository) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`

	var txn models.Transaction
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &txn, query, transactionID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// GetByMetadata returns the transaction annotated with the given metadata
// key/value, e.g. the external payment charge id set by the gateway.
func (r *TransactionReaderRepository) GetByMetadata(ctx context.Context, key, value string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE metadata->>$1 = $2 LIMIT 1`

	var txn models.Transaction
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &txn, query, key, value)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{key, value},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &txn, nil
}

// ListByWallet returns transaction history for a wallet, newest first.
func (r *TransactionReaderRepository) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	args := []any{walletID, limit, offset}

	var txns []models.Transaction
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &txns, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// ListPendingByWallet returns all pending transactions for a wallet.
func (r *TransactionReaderRepository) ListPendingByWallet(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE wallet_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
	`

	var txns []models.Transaction
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &txns, query, walletID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"result", len(txns),
		"error", err,
	)

	return txns, err
}

// HasPendingWithdrawal reports whether the wallet already has a withdrawal in
// flight. A wallet may have at most one pending withdrawal at a time.
func (r *TransactionReaderRepository) HasPendingWithdrawal(ctx context.Context, walletID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE wallet_id = $1 AND type = 'withdraw' AND status = 'pending'
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &exists, query, walletID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"result", exists,
		"error", err,
	)

	return exists, err
}
