package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickgigs/wallet-service/internal/models"
	"github.com/quickgigs/wallet-service/internal/repositories"
)

// escrowFixture wires an EscrowService against mocks with a passthrough unit
// of work.
type escrowFixture struct {
	uow       *MockUnitOfWork
	walletOps *MockWalletOperations
	wallets   *MockWalletReader
	txns      *MockTransactionReader
	jobs      *MockJobWriter
	jobsR     *MockJobReader
	platform  uuid.UUID
	svc       *EscrowService
}

func newEscrowFixture(t *testing.T) *escrowFixture {
	ctrl := gomock.NewController(t)

	f := &escrowFixture{
		uow:       NewMockUnitOfWork(ctrl),
		walletOps: NewMockWalletOperations(ctrl),
		wallets:   NewMockWalletReader(ctrl),
		txns:      NewMockTransactionReader(ctrl),
		jobs:      NewMockJobWriter(ctrl),
		jobsR:     NewMockJobReader(ctrl),
		platform:  uuid.New(),
	}
	f.uow.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	f.svc = NewEscrowService(f.uow, f.walletOps, f.wallets, f.txns, f.jobs, f.jobsR, f.platform,
		AmountPolicy{Min: dec("10.00"), Max: dec("10000.00")})
	return f
}

func TestFeeFor(t *testing.T) {
	assert.True(t, FeeFor(dec("500.00")).Equal(dec("50.00")))
	assert.True(t, FeeFor(dec("99.99")).Equal(dec("10.00")))
	assert.True(t, FeeFor(dec("10.00")).Equal(dec("1.00")))
}

func TestEscrowService_PostJob(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()

	t.Run("EscrowsBudgetPlusFee", func(t *testing.T) {
		f := newEscrowFixture(t)
		wallet := testWallet("600.00")
		wallet.UserID = clientID
		holdTxn := models.NewTransaction(wallet.WalletID, models.TypeEscrowHold, dec("550.00"), "", models.StatusPending, nil)

		f.walletOps.EXPECT().GetOrCreateWallet(ctx, clientID).Return(wallet, nil)
		f.jobs.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, job *models.Job) error {
				assert.Equal(t, models.JobStatusActive, job.Status)
				assert.Equal(t, clientID, job.ClientID)
				return nil
			},
		)
		f.walletOps.EXPECT().
			HoldEscrow(ctx, wallet.WalletID, dec("550.00"), gomock.Any(), gomock.Any()).
			Return(holdTxn, nil)
		f.jobs.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, job *models.Job) error {
				require.NotNil(t, job.EscrowTransactionID)
				assert.Equal(t, holdTxn.TransactionID, *job.EscrowTransactionID)
				return nil
			},
		)
		f.walletOps.EXPECT().
			RecordEvent(ctx, wallet.WalletID, models.EventJobPosted, gomock.Any()).
			Return(&models.WalletEvent{}, nil)

		job, err := f.svc.PostJob(ctx, clientID, "Build a landing page", "Five sections, responsive", dec("500.00"))
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusActive, job.Status)
	})

	t.Run("RejectsBlankTitleOrDescription", func(t *testing.T) {
		f := newEscrowFixture(t)

		_, err := f.svc.PostJob(ctx, clientID, "  ", "desc", dec("500.00"))
		assert.ErrorIs(t, err, ErrInvalidJob)

		_, err = f.svc.PostJob(ctx, clientID, "title", "", dec("500.00"))
		assert.ErrorIs(t, err, ErrInvalidJob)
	})

	t.Run("RejectsBudgetOutsidePolicy", func(t *testing.T) {
		f := newEscrowFixture(t)

		_, err := f.svc.PostJob(ctx, clientID, "title", "desc", dec("5.00"))
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = f.svc.PostJob(ctx, clientID, "title", "desc", dec("10000.01"))
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("InsufficientFundsAborts", func(t *testing.T) {
		f := newEscrowFixture(t)
		wallet := testWallet("100.00")

		f.walletOps.EXPECT().GetOrCreateWallet(ctx, clientID).Return(wallet, nil)
		f.jobs.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		f.walletOps.EXPECT().
			HoldEscrow(ctx, wallet.WalletID, dec("550.00"), gomock.Any(), gomock.Any()).
			Return(nil, ErrInsufficientBalance)

		_, err := f.svc.PostJob(ctx, clientID, "title", "desc", dec("500.00"))
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})
}

func TestEscrowService_CompleteJob(t *testing.T) {
	ctx := context.Background()

	activeJob := func(clientWalletID uuid.UUID) (*models.Job, *models.Transaction) {
		holdTxn := models.NewTransaction(clientWalletID, models.TypeEscrowHold, dec("550.00"), "", models.StatusPending, nil)
		job := &models.Job{
			JobID:               uuid.New(),
			ClientID:            uuid.New(),
			Title:               "Build a landing page",
			BudgetMax:           dec("500.00"),
			Status:              models.JobStatusActive,
			EscrowTransactionID: &holdTxn.TransactionID,
		}
		return job, holdTxn
	}

	t.Run("DistributesEarningAndFee", func(t *testing.T) {
		f := newEscrowFixture(t)
		clientWallet := testWallet("600.00")
		freelancerWalletID := uuid.New()
		job, holdTxn := activeJob(clientWallet.WalletID)

		f.jobsR.EXPECT().GetByID(ctx, job.JobID).Return(job, nil)
		f.txns.EXPECT().GetByID(ctx, holdTxn.TransactionID).Return(holdTxn, nil).Times(2)
		f.wallets.EXPECT().
			LockByIDs(ctx, clientWallet.WalletID, freelancerWalletID, f.platform).
			Return(map[uuid.UUID]*models.Wallet{}, nil)
		f.walletOps.EXPECT().
			Credit(ctx, freelancerWalletID, models.TypeEarning, dec("450.00"), gomock.Any(), gomock.Any()).
			Return(models.NewTransaction(freelancerWalletID, models.TypeEarning, dec("450.00"), "", models.StatusCompleted, nil), nil)
		f.walletOps.EXPECT().
			Credit(ctx, f.platform, models.TypeFee, dec("50.00"), gomock.Any(), gomock.Any()).
			Return(models.NewTransaction(f.platform, models.TypeFee, dec("50.00"), "", models.StatusCompleted, nil), nil)
		f.walletOps.EXPECT().ReleaseEscrow(ctx, holdTxn.TransactionID).Return(nil)
		f.jobs.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, j *models.Job) error {
				assert.Equal(t, models.JobStatusCompleted, j.Status)
				return nil
			},
		)
		f.walletOps.EXPECT().
			RecordEvent(ctx, freelancerWalletID, models.EventJobCompleted, gomock.Any()).
			Return(&models.WalletEvent{}, nil)

		got, err := f.svc.CompleteJob(ctx, job.JobID, freelancerWalletID)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusCompleted, got.Status)
	})

	t.Run("CompletedJobIsNoOp", func(t *testing.T) {
		f := newEscrowFixture(t)
		job := &models.Job{JobID: uuid.New(), Status: models.JobStatusCompleted}

		f.jobsR.EXPECT().GetByID(ctx, job.JobID).Return(job, nil)

		got, err := f.svc.CompleteJob(ctx, job.JobID, uuid.New())
		assert.NoError(t, err)
		assert.Equal(t, models.JobStatusCompleted, got.Status)
	})

	t.Run("SettledHoldAborts", func(t *testing.T) {
		f := newEscrowFixture(t)
		clientWallet := testWallet("600.00")
		freelancerWalletID := uuid.New()
		job, holdTxn := activeJob(clientWallet.WalletID)
		holdTxn.Status = models.StatusCancelled

		f.jobsR.EXPECT().GetByID(ctx, job.JobID).Return(job, nil)
		f.txns.EXPECT().GetByID(ctx, holdTxn.TransactionID).Return(holdTxn, nil).Times(2)
		f.wallets.EXPECT().
			LockByIDs(ctx, clientWallet.WalletID, freelancerWalletID, f.platform).
			Return(map[uuid.UUID]*models.Wallet{}, nil)

		_, err := f.svc.CompleteJob(ctx, job.JobID, freelancerWalletID)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})

	t.Run("MissingEscrowLinkAborts", func(t *testing.T) {
		f := newEscrowFixture(t)
		job := &models.Job{JobID: uuid.New(), Status: models.JobStatusActive}

		f.jobsR.EXPECT().GetByID(ctx, job.JobID).Return(job, nil)

		_, err := f.svc.CompleteJob(ctx, job.JobID, uuid.New())
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestEscrowService_CancelJob(t *testing.T) {
	ctx := context.Background()

	t.Run("RefundsPendingHold", func(t *testing.T) {
		f := newEscrowFixture(t)
		clientWallet := testWallet("600.00")
		holdTxn := models.NewTransaction(clientWallet.WalletID, models.TypeEscrowHold, dec("550.00"), "", models.StatusPending, nil)
		job := &models.Job{
			JobID:               uuid.New(),
			ClientID:            clientWallet.UserID,
			Title:               "Build a landing page",
			Status:              models.JobStatusActive,
			EscrowTransactionID: &holdTxn.TransactionID,
		}

		f.jobsR.EXPECT().GetByID(ctx, job.JobID).Return(job, nil)
		f.txns.EXPECT().GetByID(ctx, holdTxn.TransactionID).Return(holdTxn, nil)
		f.walletOps.EXPECT().RefundEscrow(ctx, holdTxn.TransactionID).Return(nil)
		f.jobs.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, j *models.Job) error {
				assert.Equal(t, models.JobStatusCancelled, j.Status)
				return nil
			},
		)
		f.walletOps.EXPECT().GetOrCreateWallet(ctx, job.ClientID).Return(clientWallet, nil)
		f.walletOps.EXPECT().
			RecordEvent(ctx, clientWallet.WalletID, models.EventJobCancelled, gomock.Any()).
			Return(&models.WalletEvent{}, nil)

		got, err := f.svc.CancelJob(ctx, job.JobID)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusCancelled, got.Status)
	})

	t.Run("SettledHoldIsLeftAlone", func(t *testing.T) {
		f := newEscrowFixture(t)
		clientWallet := testWallet("600.00")
		holdTxn := models.NewTransaction(clientWallet.WalletID, models.TypeEscrowHold, dec("550.00"), "", models.StatusCompleted, nil)
		job := &models.Job{
			JobID:               uuid.New(),
			ClientID:            clientWallet.UserID,
			Status:              models.JobStatusActive,
			EscrowTransactionID: &holdTxn.TransactionID,
		}

		f.jobsR.EXPECT().GetByID(ctx, job.JobID).Return(job, nil)
		f.txns.EXPECT().GetByID(ctx, holdTxn.TransactionID).Return(holdTxn, nil)
		// No RefundEscrow call expected
		f.jobs.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		f.walletOps.EXPECT().GetOrCreateWallet(ctx, job.ClientID).Return(clientWallet, nil)
		f.walletOps.EXPECT().
			RecordEvent(ctx, clientWallet.WalletID, models.EventJobCancelled, gomock.Any()).
			Return(&models.WalletEvent{}, nil)

		_, err := f.svc.CancelJob(ctx, job.JobID)
		assert.NoError(t, err)
	})

	t.Run("CancelledJobIsNoOp", func(t *testing.T) {
		f := newEscrowFixture(t)
		job := &models.Job{JobID: uuid.New(), Status: models.JobStatusCancelled}

		f.jobsR.EXPECT().GetByID(ctx, job.JobID).Return(job, nil)

		got, err := f.svc.CancelJob(ctx, job.JobID)
		assert.NoError(t, err)
		assert.Equal(t, models.JobStatusCancelled, got.Status)
	})

	t.Run("CompletedJobCannotBeCancelled", func(t *testing.T) {
		f := newEscrowFixture(t)
		job := &models.Job{JobID: uuid.New(), Status: models.JobStatusCompleted}

		f.jobsR.EXPECT().GetByID(ctx, job.JobID).Return(job, nil)

		_, err := f.svc.CancelJob(ctx, job.JobID)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})
}
