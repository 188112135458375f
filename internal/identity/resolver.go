// Package identity turns bearer credentials into request-scoped principals.
package identity

import (
	"context"

	"studentdocs/internal/model"
)

// Resolver validates a bearer credential and maps it to an Employee-backed
// Principal. Resolution happens on every request; results are never cached,
// so a role change takes effect on the next call.
type Resolver interface {
	// Resolve returns the Principal for the credential.
	// Returns apperr.ErrUnauthenticated if the credential is missing,
	// malformed or rejected, and apperr.ErrUnauthorized if it is valid but
	// no employee record maps to it.
	Resolve(ctx context.Context, credential string) (*model.Principal, error)
}
