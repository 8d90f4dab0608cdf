package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("invalid or expired session")
	ErrMissingCredential  = errors.New("session token is required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Validation wraps ErrValidation with a caller-facing reason.
func Validation(reason string) error {
	return fmt.Errorf("%w: %s", ErrValidation, reason)
}

// NotFound wraps ErrNotFound with the name of the missing entity.
func NotFound(entity string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, entity)
}

// Conflict wraps ErrConflict with a caller-facing reason.
func Conflict(reason string) error {
	return fmt.Errorf("%w: %s", ErrConflict, reason)
}

// Storage wraps a driver error as ErrStorageUnavailable, keeping the cause.
func Storage(err error) error {
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

// Reason returns the part of a wrapped domain error after the sentinel, or
// the whole message when err is not wrapped.
func Reason(err error) string {
	for _, s := range []error{ErrValidation, ErrNotFound, ErrConflict} {
		if errors.Is(err, s) {
			msg := err.Error()
			prefix := s.Error() + ": "
			if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
				return msg[len(prefix):]
			}
			return msg
		}
	}
	return err.Error()
}
