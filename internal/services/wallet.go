package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/quickgigs/wallet-service/internal/logger"
	"github.com/quickgigs/wallet-service/internal/models"
	"github.com/quickgigs/wallet-service/internal/repositories"
)

// History pagination caps. Caller-supplied limits are clamped server-side.
const (
	DefaultTransactionLimit = 50
	MaxTransactionLimit     = 100
	DefaultEventLimit       = 100
	MaxEventLimit           = 500
)

// WalletReader defines wallet read operations used by the service.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	GetByID(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error)
	LockByIDs(ctx context.Context, walletIDs ...uuid.UUID) (map[uuid.UUID]*models.Wallet, error)
}

// WalletWriter defines wallet write operations used by the service.
type WalletWriter interface {
	Save(ctx context.Context, wallet *models.Wallet) error
	UpdateBalances(ctx context.Context, wallet *models.Wallet) error
}

// TransactionReader defines transaction read operations used by the service.
type TransactionReader interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.Transaction, error)
	GetByMetadata(ctx context.Context, key, value string) (*models.Transaction, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]models.Transaction, error)
	ListPendingByWallet(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error)
	HasPendingWithdrawal(ctx context.Context, walletID uuid.UUID) (bool, error)
}

// TransactionWriter defines transaction write operations used by the service.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.Transaction) error
	UpdateStatus(ctx context.Context, transactionID uuid.UUID, status string) error
	UpdateMetadata(ctx context.Context, transactionID uuid.UUID, metadata models.Metadata) error
}

// EventWriter appends wallet events.
type EventWriter interface {
	Save(ctx context.Context, event *models.WalletEvent) error
}

// EventReader reads wallet event history.
type EventReader interface {
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]models.WalletEvent, error)
}

// WalletCache caches wallet balance snapshots.
type WalletCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)
	Set(ctx context.Context, wallet *models.Wallet) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// UnitOfWork runs a function atomically. Nested calls join the enclosing
// unit instead of opening a new one.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WalletService owns one user's four balance buckets and enforces the ledger
// invariants on every mutation: balance always equals available + pending +
// held, no bucket ever goes negative, and every transaction settles exactly
// once. Each operation runs in a single unit of work and appends exactly one
// wallet event on success.
type WalletService struct {
	uow         UnitOfWork
	wallets     WalletReader
	walletsW    WalletWriter
	txns        TransactionReader
	txnsW       TransactionWriter
	events      EventWriter
	eventsR     EventReader
	cache       WalletCache
	kafkaWriter KafkaWriter
	audit       AuditSink
	policy      AmountPolicy
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	uow UnitOfWork,
	wallets WalletReader,
	walletsW WalletWriter,
	txns TransactionReader,
	txnsW TransactionWriter,
	events EventWriter,
	eventsR EventReader,
	cache WalletCache,
	kafkaWriter KafkaWriter,
	audit AuditSink,
	policy AmountPolicy,
) *WalletService {
	if audit == nil {
		audit = NoopAuditSink{}
	}
	return &WalletService{
		uow:         uow,
		wallets:     wallets,
		walletsW:    walletsW,
		txns:        txns,
		txnsW:       txnsW,
		events:      events,
		eventsR:     eventsR,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		audit:       audit,
		policy:      policy,
	}
}

// publishEvent relays a committed wallet event to Kafka, best effort.
func (s *WalletService) publishEvent(ctx context.Context, event *models.WalletEvent) {
	if s.kafkaWriter == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal wallet event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.WalletID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish wallet event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
	} else {
		logger.Log.Infow("wallet event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}

// recordEvent appends a wallet event and notifies the audit sink inside the
// current unit of work.
func (s *WalletService) recordEvent(ctx context.Context, walletID uuid.UUID, eventType string, payload models.Metadata) (*models.WalletEvent, error) {
	event := models.NewWalletEvent(walletID, eventType, payload)
	if err := s.events.Save(ctx, event); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, *event); err != nil {
		logger.Log.Errorw("audit sink rejected event", "event_id", event.EventID, "type", eventType, "error", err)
	}
	return event, nil
}

// finish runs post-commit side effects: Kafka relay and cache invalidation.
// Inside an enclosing unit of work the effects are deferred until the
// outermost commit, so a rolled-back unit relays nothing and leaves the cache
// untouched.
func (s *WalletService) finish(ctx context.Context, events []*models.WalletEvent, userIDs ...uuid.UUID) {
	run := func(ctx context.Context) {
		for _, ev := range events {
			s.publishEvent(ctx, ev)
		}
		if s.cache == nil {
			return
		}
		for _, userID := range userIDs {
			if err := s.cache.Invalidate(ctx, userID); err != nil {
				logger.Log.Errorw("failed to invalidate wallet cache", "user_id", userID, "error", err)
			}
		}
	}
	if repositories.AfterCommit(ctx, run) {
		return
	}
	run(ctx)
}

// lockWallet acquires the row lock for one wallet inside the current unit of
// work.
func (s *WalletService) lockWallet(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error) {
	locked, err := s.wallets.LockByIDs(ctx, walletID)
	if err != nil {
		return nil, err
	}
	return locked[walletID], nil
}

// GetOrCreateWallet returns the user's wallet, lazily creating a zero-balance
// USD wallet on first use. Reads go through the cache; the create path is
// idempotent under concurrent requests.
func (s *WalletService) GetOrCreateWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	if s.cache != nil {
		if wallet, err := s.cache.Get(ctx, userID); err == nil {
			return wallet, nil
		}
	}

	wallet, err := s.wallets.GetByUserID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		err = s.uow.Do(ctx, func(ctx context.Context) error {
			return s.walletsW.Save(ctx, models.NewWallet(userID, models.DefaultCurrency))
		})
		if err != nil {
			return nil, err
		}
		wallet, err = s.wallets.GetByUserID(ctx, userID)
	}
	if err != nil {
		logger.Log.Errorw("failed to get or create wallet", "user_id", userID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, wallet); err != nil {
			logger.Log.Errorw("failed to cache wallet", "user_id", userID, "error", err)
		}
	}
	return wallet, nil
}

// InitiateDeposit creates a pending deposit transaction. Balances move only
// when the payment gateway confirms.
func (s *WalletService) InitiateDeposit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, reference string, metadata models.Metadata) (*models.Transaction, error) {
	if err := s.policy.Validate(amount); err != nil {
		return nil, err
	}

	var (
		txn    *models.Transaction
		wallet *models.Wallet
		event  *models.WalletEvent
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		if wallet, err = s.lockWallet(ctx, walletID); err != nil {
			return err
		}

		txn = models.NewTransaction(walletID, models.TypeDeposit, amount, reference, models.StatusPending, metadata)
		if err = s.txnsW.Save(ctx, txn); err != nil {
			return err
		}

		event, err = s.recordEvent(ctx, walletID, models.EventDepositInitiated, models.Metadata{
			"amount":         amount.String(),
			"reference":      reference,
			"transaction_id": txn.TransactionID.String(),
		})
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to initiate deposit", "wallet_id", walletID, "amount", amount, "error", err)
		return nil, err
	}

	s.finish(ctx, []*models.WalletEvent{event}, wallet.UserID)
	return txn, nil
}

// ConfirmDeposit settles a pending deposit: the transaction completes and
// balance and available both grow by the amount. Confirming a non-pending or
// non-deposit transaction fails with ErrInvalidStateTransition.
func (s *WalletService) ConfirmDeposit(ctx context.Context, transactionID uuid.UUID) error {
	var (
		wallet *models.Wallet
		event  *models.WalletEvent
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		txn, err := s.txns.GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if txn.Type != models.TypeDeposit {
			return ErrInvalidStateTransition
		}

		if wallet, err = s.lockWallet(ctx, txn.WalletID); err != nil {
			return err
		}
		// Re-read under the wallet lock: a concurrent confirm may have
		// settled the transaction between the first read and the lock.
		if txn, err = s.txns.GetByID(ctx, transactionID); err != nil {
			return err
		}
		if !txn.IsPending() {
			return ErrInvalidStateTransition
		}

		if err = wallet.ConfirmDeposit(txn.Amount); err != nil {
			return err
		}
		if err = s.txnsW.UpdateStatus(ctx, transactionID, models.StatusCompleted); err != nil {
			return err
		}
		if err = s.walletsW.UpdateBalances(ctx, wallet); err != nil {
			return err
		}

		event, err = s.recordEvent(ctx, wallet.WalletID, models.EventDepositConfirmed, models.Metadata{
			"amount":         txn.Amount.String(),
			"transaction_id": transactionID.String(),
			"new_balance":    wallet.Balance.String(),
		})
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to confirm deposit", "transaction_id", transactionID, "error", err)
		return err
	}

	s.finish(ctx, []*models.WalletEvent{event}, wallet.UserID)
	return nil
}

// InitiateWithdraw creates a pending withdrawal and earmarks the funds
// immediately: available -> pending, before the external payout completes.
// A wallet may have at most one pending withdrawal at a time.
func (s *WalletService) InitiateWithdraw(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, reference string, metadata models.Metadata) (*models.Transaction, error) {
	if err := s.policy.Validate(amount); err != nil {
		return nil, err
	}

	var (
		txn    *models.Transaction
		wallet *models.Wallet
		event  *models.WalletEvent
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		if wallet, err = s.lockWallet(ctx, walletID); err != nil {
			return err
		}

		pending, err := s.txns.HasPendingWithdrawal(ctx, walletID)
		if err != nil {
			return err
		}
		if pending {
			return ErrDuplicatePendingWithdrawal
		}

		if err = wallet.InitiateWithdrawal(amount); err != nil {
			if errors.Is(err, models.ErrInsufficientAvailable) {
				return ErrInsufficientBalance
			}
			return err
		}

		txn = models.NewTransaction(walletID, models.TypeWithdraw, amount, reference, models.StatusPending, metadata)
		if err = s.txnsW.Save(ctx, txn); err != nil {
			return err
		}
		if err = s.walletsW.UpdateBalances(ctx, wallet); err != nil {
			return err
		}

		event, err = s.recordEvent(ctx, walletID, models.EventWithdrawalInitiated, models.Metadata{
			"amount":         amount.String(),
			"reference":      reference,
			"transaction_id": txn.TransactionID.String(),
		})
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to initiate withdrawal", "wallet_id", walletID, "amount", amount, "error", err)
		return nil, err
	}

	s.finish(ctx, []*models.WalletEvent{event}, wallet.UserID)
	return txn, nil
}

// ConfirmWithdraw settles a pending withdrawal: pending funds leave the
// wallet for good.
func (s *WalletService) ConfirmWithdraw(ctx context.Context, transactionID uuid.UUID) error {
	return s.settleWithdrawal(ctx, transactionID, models.StatusCompleted)
}

// CancelWithdraw cancels a pending withdrawal and returns the earmarked funds
// to the available balance.
func (s *WalletService) CancelWithdraw(ctx context.Context, transactionID uuid.UUID) error {
	return s.settleWithdrawal(ctx, transactionID, models.StatusCancelled)
}

func (s *WalletService) settleWithdrawal(ctx context.Context, transactionID uuid.UUID, status string) error {
	var (
		wallet *models.Wallet
		event  *models.WalletEvent
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		txn, err := s.txns.GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if txn.Type != models.TypeWithdraw {
			return ErrInvalidStateTransition
		}

		if wallet, err = s.lockWallet(ctx, txn.WalletID); err != nil {
			return err
		}
		if txn, err = s.txns.GetByID(ctx, transactionID); err != nil {
			return err
		}
		if !txn.IsPending() {
			return ErrInvalidStateTransition
		}

		eventType := models.EventWithdrawalConfirmed
		payload := models.Metadata{
			"amount":         txn.Amount.String(),
			"transaction_id": transactionID.String(),
		}
		if status == models.StatusCompleted {
			if err = wallet.ConfirmWithdrawal(txn.Amount); err != nil {
				return err
			}
			payload["new_balance"] = wallet.Balance.String()
		} else {
			if err = wallet.CancelWithdrawal(txn.Amount); err != nil {
				return err
			}
			eventType = models.EventWithdrawalCancelled
		}

		if err = s.txnsW.UpdateStatus(ctx, transactionID, status); err != nil {
			return err
		}
		if err = s.walletsW.UpdateBalances(ctx, wallet); err != nil {
			return err
		}

		event, err = s.recordEvent(ctx, wallet.WalletID, eventType, payload)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to settle withdrawal", "transaction_id", transactionID, "status", status, "error", err)
		return err
	}

	s.finish(ctx, []*models.WalletEvent{event}, wallet.UserID)
	return nil
}

// ConfirmTransaction settles a pending transaction according to its type.
// Only deposits and withdrawals are confirmable.
func (s *WalletService) ConfirmTransaction(ctx context.Context, transactionID uuid.UUID) error {
	txn, err := s.txns.GetByID(ctx, transactionID)
	if err != nil {
		return err
	}
	switch txn.Type {
	case models.TypeDeposit:
		return s.ConfirmDeposit(ctx, transactionID)
	case models.TypeWithdraw:
		return s.ConfirmWithdraw(ctx, transactionID)
	default:
		return ErrInvalidStateTransition
	}
}

// HoldEscrow locks funds for a job outcome: available -> held, with a pending
// escrow_hold transaction recording the lock.
func (s *WalletService) HoldEscrow(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, reference string, metadata models.Metadata) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var (
		txn    *models.Transaction
		wallet *models.Wallet
		event  *models.WalletEvent
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		if wallet, err = s.lockWallet(ctx, walletID); err != nil {
			return err
		}

		if err = wallet.HoldEscrow(amount); err != nil {
			if errors.Is(err, models.ErrInsufficientAvailable) {
				return ErrInsufficientBalance
			}
			return err
		}

		txn = models.NewTransaction(walletID, models.TypeEscrowHold, amount, reference, models.StatusPending, metadata)
		if err = s.txnsW.Save(ctx, txn); err != nil {
			return err
		}
		if err = s.walletsW.UpdateBalances(ctx, wallet); err != nil {
			return err
		}

		event, err = s.recordEvent(ctx, walletID, models.EventEscrowHoldInitiated, models.Metadata{
			"amount":         amount.String(),
			"reference":      reference,
			"transaction_id": txn.TransactionID.String(),
		})
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to hold escrow", "wallet_id", walletID, "amount", amount, "error", err)
		return nil, err
	}

	s.finish(ctx, []*models.WalletEvent{event}, wallet.UserID)
	return txn, nil
}

// ReleaseEscrow completes an escrow hold. The held funds leave the holding
// wallet entirely; crediting the counterparties is the coordinator's job via
// separate earning and fee transactions.
func (s *WalletService) ReleaseEscrow(ctx context.Context, transactionID uuid.UUID) error {
	return s.settleEscrow(ctx, transactionID, models.StatusCompleted)
}

// RefundEscrow cancels an escrow hold and returns the funds to the holder's
// available balance.
func (s *WalletService) RefundEscrow(ctx context.Context, transactionID uuid.UUID) error {
	return s.settleEscrow(ctx, transactionID, models.StatusCancelled)
}

func (s *WalletService) settleEscrow(ctx context.Context, transactionID uuid.UUID, status string) error {
	var (
		wallet *models.Wallet
		event  *models.WalletEvent
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		txn, err := s.txns.GetByID(ctx, transactionID)
		if err != nil {
			return err
		}
		if txn.Type != models.TypeEscrowHold {
			return ErrInvalidStateTransition
		}

		if wallet, err = s.lockWallet(ctx, txn.WalletID); err != nil {
			return err
		}
		if txn, err = s.txns.GetByID(ctx, transactionID); err != nil {
			return err
		}
		if !txn.IsPending() {
			return ErrInvalidStateTransition
		}

		eventType := models.EventEscrowReleased
		payload := models.Metadata{
			"amount":         txn.Amount.String(),
			"transaction_id": transactionID.String(),
		}
		if status == models.StatusCompleted {
			if err = wallet.ReleaseEscrow(txn.Amount); err != nil {
				return err
			}
			payload["new_balance"] = wallet.Balance.String()
		} else {
			if err = wallet.RefundEscrow(txn.Amount); err != nil {
				return err
			}
			eventType = models.EventEscrowRefunded
		}

		if err = s.txnsW.UpdateStatus(ctx, transactionID, status); err != nil {
			return err
		}
		if err = s.walletsW.UpdateBalances(ctx, wallet); err != nil {
			return err
		}

		event, err = s.recordEvent(ctx, wallet.WalletID, eventType, payload)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to settle escrow", "transaction_id", transactionID, "status", status, "error", err)
		return err
	}

	s.finish(ctx, []*models.WalletEvent{event}, wallet.UserID)
	return nil
}

// Credit records an already-settled inbound transaction (earning or fee) and
// grows balance and available in one step. Used by the escrow coordinator to
// distribute a released hold to the freelancer and the platform.
func (s *WalletService) Credit(ctx context.Context, walletID uuid.UUID, txnType string, amount decimal.Decimal, reference string, metadata models.Metadata) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var (
		txn    *models.Transaction
		wallet *models.Wallet
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		if wallet, err = s.lockWallet(ctx, walletID); err != nil {
			return err
		}

		if err = wallet.CreditEarning(amount); err != nil {
			return err
		}

		txn = models.NewTransaction(walletID, txnType, amount, reference, models.StatusCompleted, metadata)
		if err = s.txnsW.Save(ctx, txn); err != nil {
			return err
		}
		return s.walletsW.UpdateBalances(ctx, wallet)
	})
	if err != nil {
		logger.Log.Errorw("failed to credit wallet", "wallet_id", walletID, "type", txnType, "amount", amount, "error", err)
		return nil, err
	}

	s.finish(ctx, nil, wallet.UserID)
	return txn, nil
}

// RecordEvent appends a wallet event on behalf of an external collaborator
// logging a non-balance-changing fact.
func (s *WalletService) RecordEvent(ctx context.Context, walletID uuid.UUID, eventType string, payload models.Metadata) (*models.WalletEvent, error) {
	var event *models.WalletEvent
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		event, err = s.recordEvent(ctx, walletID, eventType, payload)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to record wallet event", "wallet_id", walletID, "type", eventType, "error", err)
		return nil, err
	}

	s.finish(ctx, []*models.WalletEvent{event})
	return event, nil
}

// ConfirmGatewayDeposit is the payment-gateway confirmation path. The charge
// id is attached to the transaction metadata before settlement. A missing or
// already-settled transaction is acknowledged silently so gateway retries
// stay idempotent.
func (s *WalletService) ConfirmGatewayDeposit(ctx context.Context, transactionID uuid.UUID, chargeID string) error {
	return s.uow.Do(ctx, func(ctx context.Context) error {
		txn, err := s.txns.GetByID(ctx, transactionID)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if !txn.IsPending() {
			return nil
		}

		if chargeID != "" {
			metadata := txn.Metadata
			if metadata == nil {
				metadata = models.Metadata{}
			}
			metadata["charge_id"] = chargeID
			if err := s.txnsW.UpdateMetadata(ctx, transactionID, metadata); err != nil {
				return err
			}
		}

		return s.ConfirmDeposit(ctx, transactionID)
	})
}

// MarkDepositDisputed fails a pending deposit flagged by the payment gateway
// and records a deposit_disputed event. Balances never moved for an
// unconfirmed deposit, so no reversal is needed. A dispute on a deposit that
// already settled (or was otherwise finalized) is acknowledged without
// clawing back funds; recovery there is a manual operation, and a non-2xx
// response would only make the gateway retry forever.
func (s *WalletService) MarkDepositDisputed(ctx context.Context, chargeID, disputeID, reason string) error {
	var (
		wallet *models.Wallet
		event  *models.WalletEvent
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		txn, err := s.txns.GetByMetadata(ctx, "charge_id", chargeID)
		if err != nil {
			return err
		}
		if txn.Type != models.TypeDeposit {
			return ErrInvalidStateTransition
		}

		if wallet, err = s.lockWallet(ctx, txn.WalletID); err != nil {
			return err
		}
		if txn, err = s.txns.GetByID(ctx, txn.TransactionID); err != nil {
			return err
		}
		if !txn.IsPending() {
			logger.Log.Infow("dispute on finalized deposit acknowledged without clawback",
				"charge_id", chargeID, "transaction_id", txn.TransactionID, "status", txn.Status, "dispute_id", disputeID)
			return nil
		}

		metadata := txn.Metadata
		if metadata == nil {
			metadata = models.Metadata{}
		}
		metadata["dispute_id"] = disputeID
		metadata["dispute_reason"] = reason
		if err = s.txnsW.UpdateMetadata(ctx, txn.TransactionID, metadata); err != nil {
			return err
		}
		if err = s.txnsW.UpdateStatus(ctx, txn.TransactionID, models.StatusFailed); err != nil {
			return err
		}

		event, err = s.recordEvent(ctx, wallet.WalletID, models.EventDepositDisputed, models.Metadata{
			"transaction_id": txn.TransactionID.String(),
			"dispute_id":     disputeID,
			"reason":         reason,
		})
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to mark deposit disputed", "charge_id", chargeID, "error", err)
		return err
	}
	if event == nil {
		return nil
	}

	s.finish(ctx, []*models.WalletEvent{event}, wallet.UserID)
	return nil
}

// GetTransactionHistory returns transaction history for a wallet, newest
// first, with the limit clamped server-side.
func (s *WalletService) GetTransactionHistory(ctx context.Context, walletID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	if limit > MaxTransactionLimit {
		limit = MaxTransactionLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.txns.ListByWallet(ctx, walletID, limit, offset)
}

// GetEventHistory returns event history for a wallet, newest first, with the
// limit clamped server-side.
func (s *WalletService) GetEventHistory(ctx context.Context, walletID uuid.UUID, limit int) ([]models.WalletEvent, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}
	if limit > MaxEventLimit {
		limit = MaxEventLimit
	}
	return s.eventsR.ListByWallet(ctx, walletID, limit)
}

// ListPendingTransactions returns all pending transactions for a wallet.
func (s *WalletService) ListPendingTransactions(ctx context.Context, walletID uuid.UUID) ([]models.Transaction, error) {
	return s.txns.ListPendingByWallet(ctx, walletID)
}
