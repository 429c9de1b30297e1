package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/quickgigs/wallet-service/internal/logger"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	logger.Initialize("debug")

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxRunner_Commit(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	runner := NewTxRunner(db, 0)
	called := false
	err := runner.Do(context.Background(), func(ctx context.Context) error {
		called = true
		assert.NotNil(t, GetTxFromContext(ctx))
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_SetsLockTimeout(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL lock_timeout = '3000ms'").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	runner := NewTxRunner(db, 3*time.Second)
	err := runner.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	runner := NewTxRunner(db, 0)
	innerErr := errors.New("boom")
	err := runner.Do(context.Background(), func(ctx context.Context) error {
		return innerErr
	})

	assert.ErrorIs(t, err, innerErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_NestedDoJoinsTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	// A single Begin/Commit pair despite two Do calls
	mock.ExpectBegin()
	mock.ExpectCommit()

	runner := NewTxRunner(db, 0)
	err := runner.Do(context.Background(), func(ctx context.Context) error {
		outer := GetTxFromContext(ctx)
		return runner.Do(ctx, func(ctx context.Context) error {
			assert.Equal(t, outer, GetTxFromContext(ctx))
			return nil
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAfterCommit_RunsOnlyAfterCommit(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	runner := NewTxRunner(db, 0)
	ran := 0
	err := runner.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, AfterCommit(ctx, func(context.Context) { ran++ }))
		// Hook must not fire while the transaction is still open
		assert.Zero(t, ran)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, ran)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAfterCommit_DroppedOnRollback(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	runner := NewTxRunner(db, 0)
	ran := 0
	innerErr := errors.New("boom")
	err := runner.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, AfterCommit(ctx, func(context.Context) { ran++ }))
		return innerErr
	})

	assert.ErrorIs(t, err, innerErr)
	assert.Zero(t, ran)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAfterCommit_NestedDoDefersToOuterCommit(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	runner := NewTxRunner(db, 0)
	ran := 0
	err := runner.Do(context.Background(), func(ctx context.Context) error {
		if err := runner.Do(ctx, func(ctx context.Context) error {
			assert.True(t, AfterCommit(ctx, func(context.Context) { ran++ }))
			return nil
		}); err != nil {
			return err
		}
		// Nested Do returned; the hook still waits for the outer commit
		assert.Zero(t, ran)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, ran)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAfterCommit_NoUnitOfWork(t *testing.T) {
	assert.False(t, AfterCommit(context.Background(), func(context.Context) {}))
}

func TestTxRunner_RollbackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	runner := NewTxRunner(db, 0)
	assert.Panics(t, func() {
		runner.Do(context.Background(), func(ctx context.Context) error {
			panic("test panic")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMapStorageError(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		conflict bool
	}{
		{"SerializationFailure", "40001", true},
		{"DeadlockDetected", "40P01", true},
		{"LockNotAvailable", "55P03", true},
		{"UniqueViolation", "23505", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapStorageError(&pgconn.PgError{Code: tt.code, Message: tt.name})
			if tt.conflict {
				assert.ErrorIs(t, err, ErrConcurrencyConflict)
			} else {
				assert.NotErrorIs(t, err, ErrConcurrencyConflict)
			}
		})
	}

	plain := errors.New("plain")
	assert.Equal(t, plain, mapStorageError(plain))
}

func TestExecutor_PrefersContextTransaction(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()

	tx, err := db.BeginTxx(context.Background(), nil)
	assert.NoError(t, err)

	ctx := setTxToContext(context.Background(), tx)
	assert.Equal(t, sqlx.ExtContext(tx), executor(ctx, db))
	assert.Equal(t, sqlx.ExtContext(db), executor(context.Background(), db))
}
