package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"studentdocs/internal/apperr"
	"studentdocs/internal/authz"
	"studentdocs/internal/metrics"
	"studentdocs/internal/model"
	"studentdocs/internal/repository"
	"studentdocs/internal/storage"
)

// UploadInput carries the caller-supplied fields for an upload.
type UploadInput struct {
	StudentID   string
	FileName    string
	ContentType string
	Size        int64
	Description string
}

// Lifecycle orchestrates the multi-step upload and delete sequences across
// storage and metadata. The ordering is fixed: storage before metadata on
// both paths. That ordering, not locking, bounds orphan risk — the only
// tolerated orphan window is the span of a single operation, and a failed
// compensation is flagged as a ConsistencyError rather than hidden.
type Lifecycle interface {
	// Upload writes the object, then inserts the metadata row. On insert
	// failure the object is removed again (compensation) and the insert
	// error is surfaced.
	Upload(ctx context.Context, principal *model.Principal, r io.Reader, in UploadInput) (*model.Document, error)

	// Delete removes the object, then the metadata row. A storage failure
	// other than "already absent" aborts before metadata is touched.
	Delete(ctx context.Context, principal *model.Principal, documentID string) error

	// UpdateDescription changes the only field that is mutable post-creation.
	UpdateDescription(ctx context.Context, principal *model.Principal, documentID, description string) (*model.Document, error)

	// ListByStudent returns a student's documents, newest upload first.
	ListByStudent(ctx context.Context, principal *model.Principal, studentID string) ([]model.Document, error)
}

type documentLifecycle struct {
	store    storage.Storage
	docs     repository.DocumentRepository
	students repository.StudentRepository
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewLifecycle constructs the document lifecycle coordinator. metrics may be
// nil, in which case orphans are only reported through the returned error.
func NewLifecycle(store storage.Storage, docs repository.DocumentRepository, students repository.StudentRepository, m *metrics.Metrics) Lifecycle {
	return &documentLifecycle{
		store:    store,
		docs:     docs,
		students: students,
		metrics:  m,
		now:      time.Now,
	}
}

func (s *documentLifecycle) Upload(ctx context.Context, principal *model.Principal, r io.Reader, in UploadInput) (*model.Document, error) {
	if principal == nil {
		return nil, fmt.Errorf("no principal: %w", apperr.ErrUnauthenticated)
	}
	if r == nil {
		return nil, fmt.Errorf("file content is required: %w", apperr.ErrValidation)
	}
	if in.FileName == "" {
		return nil, fmt.Errorf("file_name is required: %w", apperr.ErrValidation)
	}

	if _, err := s.students.FindByID(ctx, in.StudentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("unknown student %s: %w", in.StudentID, apperr.ErrValidation)
		}
		return nil, err
	}

	// Keys live in a per-student namespace, so independently generated keys
	// for concurrent uploads cannot collide across students.
	key := filepath.ToSlash(filepath.Join(in.StudentID, uuid.New().String()+filepath.Ext(in.FileName)))

	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.FileName,
		},
	}); err != nil {
		return nil, fmt.Errorf("%w: put %q: %v", apperr.ErrStorage, key, err)
	}

	doc := &model.Document{
		ID:          uuid.New().String(),
		StudentID:   in.StudentID,
		StorageKey:  key,
		FileName:    in.FileName,
		Size:        in.Size,
		ContentType: in.ContentType,
		Description: in.Description,
		UploadedBy:  principal.ID,
		UploadedAt:  s.now().UTC(),
		Status:      model.DocumentActive,
	}
	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		// Compensate: the object was written but the row never existed, so
		// remove the object and surface the insert failure.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			if s.metrics != nil {
				s.metrics.ConsistencyOrphans.WithLabelValues("upload").Inc()
			}
			return nil, &apperr.ConsistencyError{Key: key, Cause: err}
		}
		return nil, fmt.Errorf("metadata insert failed: %w", err)
	}
	return stored, nil
}

func (s *documentLifecycle) Delete(ctx context.Context, principal *model.Principal, documentID string) error {
	if documentID == "" {
		return fmt.Errorf("document id is required: %w", apperr.ErrValidation)
	}

	doc, err := s.docs.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("document %s: %w", documentID, apperr.ErrNotFound)
		}
		return err
	}

	if authz.Decide(principal, doc) != authz.Allow {
		return fmt.Errorf("document %s: %w", documentID, apperr.ErrForbidden)
	}

	// Storage first. Aborting here keeps the row reachable, which beats a
	// metadata record pointing at nothing. An already-absent object is a
	// success per the storage contract, so concurrent deletes stay safe.
	if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
		return fmt.Errorf("%w: delete %q: %v", apperr.ErrStorage, doc.StorageKey, err)
	}

	return s.docs.Delete(ctx, documentID)
}

func (s *documentLifecycle) UpdateDescription(ctx context.Context, principal *model.Principal, documentID, description string) (*model.Document, error) {
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

	updated, err := s.docs.UpdateDescription(ctx, documentID, description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %s: %w", documentID, apperr.ErrNotFound)
		}
		return nil, err
	}
	return updated, nil
}

func (s *documentLifecycle) ListByStudent(ctx context.Context, principal *model.Principal, studentID string) ([]model.Document, error) {
	if principal == nil {
		return nil, fmt.Errorf("no principal: %w", apperr.ErrUnauthenticated)
	}

	if _, err := s.students.FindByID(ctx, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("student %s: %w", studentID, apperr.ErrNotFound)
		}
		return nil, err
	}

	return s.docs.ListByStudent(ctx, studentID)
}
