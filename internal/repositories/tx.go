package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/quickgigs/wallet-service/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

type hooksKey struct{}

// AfterCommit registers fn to run once the enclosing unit of work commits. If
// the unit rolls back, fn never runs. It reports false when no unit of work is
// open, in which case the caller runs fn itself.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) bool {
	hooks, _ := ctx.Value(hooksKey{}).(*[]func(context.Context))
	if hooks == nil {
		return false
	}
	*hooks = append(*hooks, fn)
	return true
}

// TxRunner runs a function inside a single database transaction. The
// transaction is stashed in the context so that repositories called from the
// function join it. Nested Do calls join the enclosing transaction instead of
// opening a new one, which lets a coordinator compose wallet operations into
// one atomic unit of work.
type TxRunner struct {
	db          *sqlx.DB
	lockTimeout time.Duration
}

// NewTxRunner creates a TxRunner. lockTimeout bounds how long a unit of work
// waits for a contended wallet row lock; past it the request fails with
// ErrConcurrencyConflict.
func NewTxRunner(db *sqlx.DB, lockTimeout time.Duration) *TxRunner {
	return &TxRunner{db: db, lockTimeout: lockTimeout}
}

// Do executes fn inside a serializable transaction. Either every effect of fn
// commits, or none do.
func (r *TxRunner) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx := GetTxFromContext(ctx); tx != nil {
		return fn(ctx)
	}

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return mapStorageError(err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if r.lockTimeout > 0 {
		timeout := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, timeout); err != nil {
			tx.Rollback()
			return mapStorageError(err)
		}
	}

	var hooks []func(context.Context)
	txCtx := context.WithValue(setTxToContext(ctx, tx), hooksKey{}, &hooks)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to roll back transaction", "error", rbErr)
		}
		return mapStorageError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapStorageError(err)
	}

	// Side effects deferred by the unit of work run only now, against the
	// committed state and without the transaction in context.
	for _, hook := range hooks {
		hook(ctx)
	}
	return nil
}

// Postgres error codes that indicate a lost lock race rather than a caller error.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// executor returns the context transaction if present, else the base db.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// mapStorageError translates retryable Postgres contention errors to
// ErrConcurrencyConflict and leaves everything else untouched.
func mapStorageError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return fmt.Errorf("%w: %s", ErrConcurrencyConflict, pgErr.Message)
		}
	}
	return err
}
