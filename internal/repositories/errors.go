package repositories

import "errors"

// Storage-level errors surfaced to services and handlers.
var (
	// ErrNotFound is returned when a wallet, transaction or job does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConcurrencyConflict is returned when a unit of work loses a lock race
	// (lock timeout, serialization failure, deadlock). Callers may retry with
	// backoff; all other errors must not be retried automatically.
	ErrConcurrencyConflict = errors.New("concurrent update conflict")
)
