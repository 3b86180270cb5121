// Package common defines shared sentinel errors used across the eSports Hub
// backend. Callers should use errors.Is to match the sentinels and errors.As
// for *ValidationError.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// ErrStorage marks failures of the persistence layer. The wrapped driver
	// text stays server-side; handlers translate this to a generic message.
	ErrStorage = errors.New("storage error")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports malformed or missing user input. The message is
// safe to return to the client verbatim.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}
