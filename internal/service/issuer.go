package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"studentdocs/internal/apperr"
	"studentdocs/internal/authz"
	"studentdocs/internal/identity"
	"studentdocs/internal/model"
	"studentdocs/internal/repository"
	"studentdocs/internal/storage"
)

// TTL clamp bound for signed URLs. Requested values are pulled into this
// range, never rejected.
const (
	MinTTLSec = 60
	MaxTTLSec = 3600
)

// ClampTTL pulls a requested TTL into [MinTTLSec, MaxTTLSec].
func ClampTTL(sec int) int {
	if sec < MinTTLSec {
		return MinTTLSec
	}
	if sec > MaxTTLSec {
		return MaxTTLSec
	}
	return sec
}

// Issuer answers "give me a temporary link to document X". Issuance mutates
// nothing and may be repeated any number of times while the document exists.
type Issuer interface {
	// Issue resolves the credential, checks the access policy and mints a
	// signed URL for the document's storage object with the clamped TTL.
	Issue(ctx context.Context, credential, documentID string, requestedTTLSec int) (*model.SignedURL, error)
}

type signedURLIssuer struct {
	resolver identity.Resolver
	docs     repository.DocumentRepository
	store    storage.Storage
	now      func() time.Time
}

// NewIssuer constructs a signed URL issuer.
func NewIssuer(resolver identity.Resolver, docs repository.DocumentRepository, store storage.Storage) Issuer {
	return &signedURLIssuer{
		resolver: resolver,
		docs:     docs,
		store:    store,
		now:      time.Now,
	}
}

func (s *signedURLIssuer) Issue(ctx context.Context, credential, documentID string, requestedTTLSec int) (*model.SignedURL, error) {
	principal, err := s.resolver.Resolve(ctx, credential)
	if err != nil {
		return nil, err
	}

	if documentID == "" {
		return nil, fmt.Errorf("doc_id is required: %w", apperr.ErrValidation)
	}

	doc, err := s.docs.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %s: %w", documentID, apperr.ErrNotFound)
		}
		return nil, err
	}

	if authz.Decide(principal, doc) != authz.Allow {
		return nil, fmt.Errorf("document %s: %w", documentID, apperr.ErrForbidden)
	}

	ttl := time.Duration(ClampTTL(requestedTTLSec)) * time.Second
	url, err := s.store.PresignGet(ctx, doc.StorageKey, ttl)
	if err != nil {
		// Surfaced as-is; retrying a mint is safe but left to the caller.
		return nil, fmt.Errorf("%w: presign %q: %v", apperr.ErrStorage, doc.StorageKey, err)
	}

	return &model.SignedURL{
		URL:       url,
		ExpiresAt: s.now().Add(ttl),
	}, nil
}
