package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Default wallet currency for lazily created wallets.
const DefaultCurrency = "USD"

// Balance bucket errors. Services wrap these into the domain taxonomy.
var (
	ErrInsufficientAvailable = errors.New("insufficient available balance")
	ErrBucketUnderflow       = errors.New("balance bucket would go negative")
	ErrInvariantViolated     = errors.New("wallet balance invariant violated")
)

// Wallet represents a wallet row in the database. Total owned funds are split
// across three buckets: available (spendable), pending (withdrawal in flight)
// and held (escrow-locked). balance must always equal their sum.
type Wallet struct {
	WalletID         uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	UserID           uuid.UUID       `json:"user_id" db:"user_id"`
	Currency         string          `json:"currency" db:"currency"`
	Balance          decimal.Decimal `json:"balance" db:"balance"`
	AvailableBalance decimal.Decimal `json:"available_balance" db:"available_balance"`
	PendingBalance   decimal.Decimal `json:"pending_balance" db:"pending_balance"`
	HeldBalance      decimal.Decimal `json:"held_balance" db:"held_balance"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// NewWallet creates a zero-balance wallet for a user.
func NewWallet(userID uuid.UUID, currency string) *Wallet {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Wallet{
		WalletID: uuid.New(),
		UserID:   userID,
		Currency: currency,
	}
}

// CheckInvariant verifies balance == available + pending + held and that no
// bucket is negative.
func (w *Wallet) CheckInvariant() error {
	sum := w.AvailableBalance.Add(w.PendingBalance).Add(w.HeldBalance)
	if !w.Balance.Equal(sum) {
		return ErrInvariantViolated
	}
	for _, b := range []decimal.Decimal{w.Balance, w.AvailableBalance, w.PendingBalance, w.HeldBalance} {
		if b.IsNegative() {
			return ErrBucketUnderflow
		}
	}
	return nil
}

// ConfirmDeposit settles a confirmed deposit: balance and available both grow.
func (w *Wallet) ConfirmDeposit(amount decimal.Decimal) error {
	w.Balance = w.Balance.Add(amount)
	w.AvailableBalance = w.AvailableBalance.Add(amount)
	return w.CheckInvariant()
}

// InitiateWithdrawal earmarks funds the instant a withdrawal is requested:
// available -> pending, total unchanged.
func (w *Wallet) InitiateWithdrawal(amount decimal.Decimal) error {
	if w.AvailableBalance.LessThan(amount) {
		return ErrInsufficientAvailable
	}
	w.AvailableBalance = w.AvailableBalance.Sub(amount)
	w.PendingBalance = w.PendingBalance.Add(amount)
	return w.CheckInvariant()
}

// ConfirmWithdrawal settles a withdrawal: pending funds leave the wallet.
func (w *Wallet) ConfirmWithdrawal(amount decimal.Decimal) error {
	w.Balance = w.Balance.Sub(amount)
	w.PendingBalance = w.PendingBalance.Sub(amount)
	return w.CheckInvariant()
}

// CancelWithdrawal returns earmarked funds: pending -> available.
func (w *Wallet) CancelWithdrawal(amount decimal.Decimal) error {
	w.PendingBalance = w.PendingBalance.Sub(amount)
	w.AvailableBalance = w.AvailableBalance.Add(amount)
	return w.CheckInvariant()
}

// HoldEscrow locks funds pending a job outcome: available -> held.
func (w *Wallet) HoldEscrow(amount decimal.Decimal) error {
	if w.AvailableBalance.LessThan(amount) {
		return ErrInsufficientAvailable
	}
	w.AvailableBalance = w.AvailableBalance.Sub(amount)
	w.HeldBalance = w.HeldBalance.Add(amount)
	return w.CheckInvariant()
}

// ReleaseEscrow removes held funds from the wallet entirely. The payout to
// the other parties is recorded as separate transactions on their wallets,
// so the holder's spendable balance never grows here.
func (w *Wallet) ReleaseEscrow(amount decimal.Decimal) error {
	w.HeldBalance = w.HeldBalance.Sub(amount)
	w.Balance = w.Balance.Sub(amount)
	return w.CheckInvariant()
}

// RefundEscrow returns held funds to the holder: held -> available.
func (w *Wallet) RefundEscrow(amount decimal.Decimal) error {
	w.HeldBalance = w.HeldBalance.Sub(amount)
	w.AvailableBalance = w.AvailableBalance.Add(amount)
	return w.CheckInvariant()
}

// CreditEarning credits a completed earning or fee transaction.
func (w *Wallet) CreditEarning(amount decimal.Decimal) error {
	w.Balance = w.Balance.Add(amount)
	w.AvailableBalance = w.AvailableBalance.Add(amount)
	return w.CheckInvariant()
}
