package repository

import (
	"context"

	"studentdocs/internal/model"
)

// DocumentRepository defines metadata access for documents using SQL queries only.
// No business logic here — strictly persistence operations. Rows are only
// ever created and deleted by the lifecycle coordinator.
type DocumentRepository interface {
	// Create inserts a new document record.
	// The caller provides required fields (ID, StorageKey, UploadedBy, UploadedAt).
	// Returns the stored document (may include values set by the DB).
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// ListByStudent returns all documents attached to a student, most
	// recently uploaded first.
	ListByStudent(ctx context.Context, studentID string) ([]model.Document, error)

	// UpdateDescription sets the description, the only mutable field after
	// creation, and returns the updated row.
	UpdateDescription(ctx context.Context, id, description string) (*model.Document, error)

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}
