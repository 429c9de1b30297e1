package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/models"
)

// WalletWriterRepository handles wallet write operations.
type WalletWriterRepository struct {
	db *sqlx.DB
}

func NewWalletWriterRepository(db *sqlx.DB) *WalletWriterRepository {
	return &WalletWriterRepository{db: db}
}

// Save inserts a new zero-balance wallet. A concurrent create for the same
// user is a no-op thanks to the user_id unique constraint.
func (r *WalletWriterRepository) Save(ctx context.Context, wallet *models.Wallet) error {
	query := `
		INSERT INTO wallets (wallet_id, user_id, currency, balance, available_balance, pending_balance, held_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	args := []any{
		wallet.WalletID, wallet.UserID, wallet.Currency,
		wallet.Balance, wallet.AvailableBalance, wallet.PendingBalance, wallet.HeldBalance,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateBalances persists the four balance buckets of a wallet.
func (r *WalletWriterRepository) UpdateBalances(ctx context.Context, wallet *models.Wallet) error {
	query := `
		UPDATE wallets
		SET balance = $2,
		    available_balance = $3,
		    pending_balance = $4,
		    held_balance = $5,
		    updated_at = NOW()
		WHERE wallet_id = $1
	`
	args := []any{
		wallet.WalletID,
		wallet.Balance, wallet.AvailableBalance, wallet.PendingBalance, wallet.HeldBalance,
	}

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

// WalletReaderRepository handles wallet read operations.
type WalletReaderRepository struct {
	db *sqlx.DB
}

func NewWalletReaderRepository(db *sqlx.DB) *WalletReaderRepository {
	return &WalletReaderRepository{db: db}
}

const walletColumns = `wallet_id, user_id, currency, balance, available_balance, pending_balance, held_balance, created_at, updated_at`

// GetByUserID returns the wallet owned by a user.
func (r *WalletReaderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`

	var wallet models.Wallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// GetByID returns a wallet by its id.
func (r *WalletReaderRepository) GetByID(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1`

	var wallet models.Wallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &wallet, query, walletID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

// LockByIDs acquires row locks on the given wallets in ascending wallet_id
// order, so concurrent multi-wallet units of work cannot deadlock. Must run
// inside a transaction. Returns ErrNotFound if any wallet is missing.
func (r *WalletReaderRepository) LockByIDs(ctx context.Context, walletIDs ...uuid.UUID) (map[uuid.UUID]*models.Wallet, error) {
	ids := dedupeSorted(walletIDs)

	query, args, err := sqlx.In(
		`SELECT `+walletColumns+` FROM wallets WHERE wallet_id IN (?) ORDER BY wallet_id FOR UPDATE`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var wallets []models.Wallet
	err = sqlx.SelectContext(ctx, executor(ctx, r.db), &wallets, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(wallets),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if len(wallets) != len(ids) {
		return nil, ErrNotFound
	}

	locked := make(map[uuid.UUID]*models.Wallet, len(wallets))
	for i := range wallets {
		locked[wallets[i].WalletID] = &wallets[i]
	}
	return locked, nil
}

// dedupeSorted returns the unique wallet ids in ascending byte order.
func dedupeSorted(ids []uuid.UUID) []uuid.UUID {
	sorted := make([]uuid.UUID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})
	out := sorted[:0]
	for _, id := range sorted {
		if len(out) == 0 || id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}
