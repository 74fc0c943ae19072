package store

import "errors"

// Error kinds surfaced by every store operation. Callers match them with
// errors.Is and map them to transport-level responses.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")

	// ErrInconsistentState means an entity that the invariants guarantee to
	// exist is missing. It indicates a bug, not a user error.
	ErrInconsistentState = errors.New("inconsistent state")
)
