package services

import "errors"

// Domain error taxonomy. Every error aborts the whole unit of work with zero
// side effects; none are retried internally. Storage-level NotFound and
// ConcurrencyConflict live in the repositories package.
var (
	// ErrInvalidAmount is returned for non-positive amounts or amounts outside
	// the configured policy bounds.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance is returned when the available balance is too low
	// for a withdrawal or an escrow hold.
	ErrInsufficientBalance = errors.New("insufficient available balance")

	// ErrInvalidStateTransition is returned when a confirm/cancel/release/
	// refund targets a non-pending transaction or the wrong transaction type.
	ErrInvalidStateTransition = errors.New("invalid transaction state transition")

	// ErrDuplicatePendingWithdrawal is returned when a withdrawal is requested
	// while another one is still pending on the same wallet.
	ErrDuplicatePendingWithdrawal = errors.New("a pending withdrawal already exists")

	// ErrInvalidJob is returned when a job is posted without a title or
	// description.
	ErrInvalidJob = errors.New("job title and description are required")
)
