package repository

import (
	"context"

	"studentdocs/internal/model"
)

// StudentRepository is the read-only view of student records this service
// needs: validating that a document's student reference exists. Students are
// owned and mutated by external collaborators.
type StudentRepository interface {
	// FindByID returns a student by ID.
	FindByID(ctx context.Context, id string) (*model.Student, error)
}
