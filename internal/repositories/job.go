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

// JobWriterRepository persists the escrow coordinator's view of jobs.
type JobWriterRepository struct {
	db *sqlx.DB
}

func NewJobWriterRepository(db *sqlx.DB) *JobWriterRepository {
	return &JobWriterRepository{db: db}
}

// Save inserts a new job row.
func (r *JobWriterRepository) Save(ctx context.Context, job *models.Job) error {
	query := `
		INSERT INTO jobs (job_id, client_id, title, description, budget_max, status, escrow_transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	args := []any{
		job.JobID, job.ClientID, job.Title, job.Description,
		job.BudgetMax, job.Status, job.EscrowTransactionID,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update persists job status and escrow transaction link.
func (r *JobWriterRepository) Update(ctx context.Context, job *models.Job) error {
	query := `
		UPDATE jobs
		SET status = $2, escrow_transaction_id = $3, updated_at = NOW()
		WHERE job_id = $1
	`
	args := []any{job.JobID, job.Status, job.EscrowTransactionID}

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

// JobReaderRepository reads jobs.
type JobReaderRepository struct {
	db *sqlx.DB
}

func NewJobReaderRepository(db *sqlx.DB) *JobReaderRepository {
	return &JobReaderRepository{db: db}
}

// GetByID returns a job by its id.
func (r *JobReaderRepository) GetByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	query := `
		SELECT job_id, client_id, title, description, budget_max, status, escrow_transaction_id, created_at, updated_at
		FROM jobs
		WHERE job_id = $1
	`

	var job models.Job
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &job, query, jobID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{jobID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}
