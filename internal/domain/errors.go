package domain

import "errors"

// Error taxonomy for the lifecycle engine. Services wrap these with %w and
// context; the HTTP layer maps them to status codes.
var (
	// ErrValidation marks malformed or missing input at entity creation time.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced dress/customer/transaction id that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrGuardViolation marks a failed business-rule guard (dress unavailable,
	// rent not returned, customer busy). Retrying without changed state fails
	// identically, so callers must not retry.
	ErrGuardViolation = errors.New("guard violation")

	// ErrConflict marks a lost race on a guarded mutation. Callers may retry
	// once.
	ErrConflict = errors.New("conflict")
)
