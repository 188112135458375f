package postgres

import (
	"context"
	"database/sql"

	"studentdocs/internal/model"
	"studentdocs/internal/repository"
)

// EmployeePostgres is a PostgreSQL implementation of repository.EmployeeRepository.
type EmployeePostgres struct {
	db *sql.DB
}

// NewEmployeePostgres creates a new EmployeePostgres repository.
func NewEmployeePostgres(db *sql.DB) *EmployeePostgres {
	return &EmployeePostgres{db: db}
}

var _ repository.EmployeeRepository = (*EmployeePostgres)(nil)

// FindByID fetches a single employee by its ID.
func (r *EmployeePostgres) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	const q = `
		SELECT id, name, email, role
		FROM employees
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var e model.Employee
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.Role,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
