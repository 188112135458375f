package postgres

import (
	"context"
	"database/sql"
	"errors"

	"studentdocs/internal/model"
	"studentdocs/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// IsNoRowsError reports whether err indicates an absent row.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

const documentColumns = `id, student_id, storage_key, file_name, size, content_type, description, uploaded_by, uploaded_at, status`

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.StudentID,
		&d.StorageKey,
		&d.FileName,
		&d.Size,
		&d.ContentType,
		&d.Description,
		&d.UploadedBy,
		&d.UploadedAt,
		&d.Status,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (id, student_id, storage_key, file_name, size, content_type, description, uploaded_by, uploaded_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.StudentID,
		doc.StorageKey,
		doc.FileName,
		doc.Size,
		doc.ContentType,
		doc.Description,
		doc.UploadedBy,
		doc.UploadedAt,
		doc.Status,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListByStudent returns a student's documents ordered by upload time, newest first.
func (r *DocumentPostgres) ListByStudent(ctx context.Context, studentID string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE student_id = $1
		ORDER BY uploaded_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateDescription sets the description column and returns the updated row.
func (r *DocumentPostgres) UpdateDescription(ctx context.Context, id, description string) (*model.Document, error) {
	const q = `
		UPDATE documents
		SET description = $2
		WHERE id = $1
		RETURNING ` + documentColumns
	return scanDocument(r.db.QueryRowContext(ctx, q, id, description))
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	// Ignore rows affected; a concurrent delete winning the race is fine.
	_, _ = res.RowsAffected()
	return nil
}
