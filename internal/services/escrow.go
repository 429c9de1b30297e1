package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/models"
	"github.com/quickgigs/wallet-service/internal/repositories"
)

// platformFeeRate is the share of the job budget retained by the operator on
// completion.
var platformFeeRate = decimal.RequireFromString("0.10")

// WalletOperations is the subset of wallet aggregate operations the escrow
// coordinator composes into cross-wallet units of work.
type WalletOperations interface {
	GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	HoldEscrow(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, reference string, metadata models.Metadata) (*models.Transaction, error)
	ReleaseEscrow(ctx context.Context, transactionID uuid.UUID) error
	RefundEscrow(ctx context.Context, transactionID uuid.UUID) error
	Credit(ctx context.Context, walletID uuid.UUID, txnType string, amount decimal.Decimal, reference string, metadata models.Metadata) (*models.Transaction, error)
	RecordEvent(ctx context.Context, walletID uuid.UUID, eventType string, payload models.Metadata) (*models.WalletEvent, error)
}

// JobWriter persists jobs for the coordinator.
type JobWriter interface {
	Save(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
}

// JobReader reads jobs for the coordinator.
type JobReader interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (*models.Job, error)
}

// EscrowService orchestrates job-lifecycle money movement: hold at posting,
// release-and-distribute at completion, refund at cancellation. Every
// sequence runs as one atomic unit of work; any precondition failure aborts
// with zero partial effects.
type EscrowService struct {
	uow              UnitOfWork
	walletOps        WalletOperations
	wallets          WalletReader
	txns             TransactionReader
	jobs             JobWriter
	jobsR            JobReader
	platformWalletID uuid.UUID
	budget           AmountPolicy
}

// NewEscrowService creates a new EscrowService. The platform wallet is an
// explicit configuration value, not an implicit well-known account.
func NewEscrowService(
	uow UnitOfWork,
	walletOps WalletOperations,
	wallets WalletReader,
	txns TransactionReader,
	jobs JobWriter,
	jobsR JobReader,
	platformWalletID uuid.UUID,
	budget AmountPolicy,
) *EscrowService {
	return &EscrowService{
		uow:              uow,
		walletOps:        walletOps,
		wallets:          wallets,
		txns:             txns,
		jobs:             jobs,
		jobsR:            jobsR,
		platformWalletID: platformWalletID,
		budget:           budget,
	}
}

// FeeFor returns the platform fee for a budget, rounded to cents.
func FeeFor(budget decimal.Decimal) decimal.Decimal {
	return budget.Mul(platformFeeRate).Round(2)
}

// PostJob creates a job and escrows budget + platform fee from the client's
// wallet in one atomic unit. Nothing persists if the balance is insufficient
// or validation fails.
func (s *EscrowService) PostJob(ctx context.Context, clientUserID uuid.UUID, title, description string, budgetMax decimal.Decimal) (*models.Job, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, ErrInvalidJob
	}
	if err := s.budget.Validate(budgetMax); err != nil {
		return nil, err
	}

	totalHold := budgetMax.Add(FeeFor(budgetMax))

	var job *models.Job
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		wallet, err := s.walletOps.GetOrCreateWallet(ctx, clientUserID)
		if err != nil {
			return err
		}

		job = &models.Job{
			JobID:       uuid.New(),
			ClientID:    clientUserID,
			Title:       title,
			Description: description,
			BudgetMax:   budgetMax,
			Status:      models.JobStatusActive,
		}
		if err = s.jobs.Save(ctx, job); err != nil {
			return err
		}

		txn, err := s.walletOps.HoldEscrow(ctx, wallet.WalletID, totalHold,
			fmt.Sprintf("job_%s_escrow", job.JobID), models.Metadata{
				"job_id":    job.JobID.String(),
				"job_title": job.Title,
			})
		if err != nil {
			return err
		}

		job.EscrowTransactionID = &txn.TransactionID
		if err = s.jobs.Update(ctx, job); err != nil {
			return err
		}

		_, err = s.walletOps.RecordEvent(ctx, wallet.WalletID, models.EventJobPosted, models.Metadata{
			"job_id":     job.JobID.String(),
			"title":      job.Title,
			"budget_max": budgetMax.String(),
			"total_hold": totalHold.String(),
		})
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to post job", "client_id", clientUserID, "budget", budgetMax, "error", err)
		return nil, err
	}

	return job, nil
}

// CompleteJob distributes an escrowed budget on approval: 90% to the
// freelancer as an earning, 10% to the platform as a fee, and the client's
// hold is released. The held funds left the client's custody entirely, so the
// client's spendable balance does not change. All three effects commit
// together or not at all. A retry against an already-completed job is a safe
// no-op.
func (s *EscrowService) CompleteJob(ctx context.Context, jobID, freelancerWalletID uuid.UUID) (*models.Job, error) {
	var job *models.Job
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		if job, err = s.jobsR.GetByID(ctx, jobID); err != nil {
			return err
		}
		if job.Status == models.JobStatusCompleted {
			return nil
		}
		if job.EscrowTransactionID == nil {
			return repositories.ErrNotFound
		}

		escrowTxn, err := s.txns.GetByID(ctx, *job.EscrowTransactionID)
		if err != nil {
			return err
		}

		// Lock all three wallets up front; LockByIDs orders by wallet id so
		// concurrent completions cannot deadlock.
		if _, err = s.wallets.LockByIDs(ctx, escrowTxn.WalletID, freelancerWalletID, s.platformWalletID); err != nil {
			return err
		}
		if escrowTxn, err = s.txns.GetByID(ctx, escrowTxn.TransactionID); err != nil {
			return err
		}
		if !escrowTxn.IsPending() {
			return ErrInvalidStateTransition
		}

		fee := FeeFor(job.BudgetMax)
		earning := job.BudgetMax.Sub(fee)
		meta := models.Metadata{
			"job_id":    job.JobID.String(),
			"job_title": job.Title,
		}

		earningTxn, err := s.walletOps.Credit(ctx, freelancerWalletID, models.TypeEarning, earning,
			fmt.Sprintf("job_%s_completion", job.JobID), meta)
		if err != nil {
			return err
		}
		if _, err = s.walletOps.Credit(ctx, s.platformWalletID, models.TypeFee, fee,
			fmt.Sprintf("job_%s_fee", job.JobID), meta); err != nil {
			return err
		}
		if err = s.walletOps.ReleaseEscrow(ctx, escrowTxn.TransactionID); err != nil {
			return err
		}

		job.Status = models.JobStatusCompleted
		if err = s.jobs.Update(ctx, job); err != nil {
			return err
		}

		_, err = s.walletOps.RecordEvent(ctx, freelancerWalletID, models.EventJobCompleted, models.Metadata{
			"job_id":         job.JobID.String(),
			"earning":        earning.String(),
			"transaction_id": earningTxn.TransactionID.String(),
		})
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to complete job", "job_id", jobID, "error", err)
		return nil, err
	}

	return job, nil
}

// CancelJob cancels an active job and refunds a still-pending escrow hold to
// the client's available balance. A hold already settled by a concurrent
// request is left alone; cancelling an already-cancelled job is a no-op.
func (s *EscrowService) CancelJob(ctx context.Context, jobID uuid.UUID) (*models.Job, error) {
	var job *models.Job
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		if job, err = s.jobsR.GetByID(ctx, jobID); err != nil {
			return err
		}
		if job.Status == models.JobStatusCancelled {
			return nil
		}
		if job.Status != models.JobStatusActive {
			return ErrInvalidStateTransition
		}

		if job.EscrowTransactionID != nil {
			txn, err := s.txns.GetByID(ctx, *job.EscrowTransactionID)
			if err != nil {
				return err
			}
			if txn.IsPending() {
				if err = s.walletOps.RefundEscrow(ctx, txn.TransactionID); err != nil {
					return err
				}
			}
		}

		job.Status = models.JobStatusCancelled
		if err = s.jobs.Update(ctx, job); err != nil {
			return err
		}

		wallet, err := s.walletOps.GetOrCreateWallet(ctx, job.ClientID)
		if err != nil {
			return err
		}
		_, err = s.walletOps.RecordEvent(ctx, wallet.WalletID, models.EventJobCancelled, models.Metadata{
			"job_id": job.JobID.String(),
			"title":  job.Title,
		})
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to cancel job", "job_id", jobID, "error", err)
		return nil, err
	}

	return job, nil
}
