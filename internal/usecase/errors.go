package usecase

import "errors"

// Shared outcome taxonomy for the manager layer. NotFound is a normal,
// recoverable outcome for single-row fetches; Internal covers any store
// failure after it has been logged.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInternal          = errors.New("internal error")
)
