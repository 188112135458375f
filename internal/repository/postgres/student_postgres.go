package postgres

import (
	"context"
	"database/sql"

	"studentdocs/internal/model"
	"studentdocs/internal/repository"
)

// StudentPostgres is a PostgreSQL implementation of repository.StudentRepository.
type StudentPostgres struct {
	db *sql.DB
}

// NewStudentPostgres creates a new StudentPostgres repository.
func NewStudentPostgres(db *sql.DB) *StudentPostgres {
	return &StudentPostgres{db: db}
}

var _ repository.StudentRepository = (*StudentPostgres)(nil)

// FindByID fetches a single student by its ID.
func (r *StudentPostgres) FindByID(ctx context.Context, id string) (*model.Student, error) {
	const q = `
		SELECT id, name, email, enrollment_date, status, assigned_employee_id
		FROM students
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var s model.Student
	var assigned sql.NullString
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.EnrollmentDate,
		&s.Status,
		&assigned,
	); err != nil {
		return nil, err
	}
	s.AssignedEmployeeID = assigned.String
	return &s, nil
}
