// Package apperr defines the error taxonomy shared across the core.
// Every failure surfaced by identity resolution, authorization, issuance and
// lifecycle operations wraps exactly one of these kinds, so the transport
// layer can map errors to responses with errors.Is alone.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated: the bearer credential is missing, malformed, or
	// rejected by the identity provider.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnauthorized: the credential is valid but no employee maps to it.
	ErrUnauthorized = errors.New("no employee mapped to credential")

	// ErrForbidden: the authorization policy denied the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound: the referenced document or student does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation: a required field is missing or references an unknown
	// entity.
	ErrValidation = errors.New("validation failed")

	// ErrStorage: a call to the object storage broker failed.
	ErrStorage = errors.New("storage operation failed")

	// ErrConsistency: a compensation step failed and an orphan may exist.
	ErrConsistency = errors.New("consistency violation")
)

// ConsistencyError reports a storage object left behind after a failed
// compensation. It names the orphaned key for out-of-band cleanup; the core
// never auto-heals it.
type ConsistencyError struct {
	Key   string
	Cause error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("orphaned storage object at %q: %v", e.Key, e.Cause)
}

func (e *ConsistencyError) Unwrap() error { return ErrConsistency }
