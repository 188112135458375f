package repository

import (
	"context"

	"studentdocs/internal/model"
)

// EmployeeRepository is the read-only identity-to-employee mapping.
// Employee rows are created by an external onboarding process; the identity
// resolver looks them up by the credential's subject id on every request.
type EmployeeRepository interface {
	// FindByID returns an employee by ID.
	FindByID(ctx context.Context, id string) (*model.Employee, error)
}
