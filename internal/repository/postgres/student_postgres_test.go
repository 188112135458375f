package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"studentdocs/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStudentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewStudentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "enrollment_date", "status", "assigned_employee_id"}).
			AddRow("s1", "Ada Lovelace", "ada@example.com", time.Now(), "active", "e1")

		mock.ExpectQuery("SELECT (.+) FROM students").
			WithArgs("s1").
			WillReturnRows(rows)

		s, err := repo.FindByID(ctx, "s1")

		assert.NoError(t, err)
		assert.Equal(t, "s1", s.ID)
		assert.Equal(t, model.StudentActive, s.Status)
		assert.Equal(t, "e1", s.AssignedEmployeeID)
	})

	t.Run("unassigned student", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "enrollment_date", "status", "assigned_employee_id"}).
			AddRow("s2", "Grace Hopper", "grace@example.com", time.Now(), "inactive", nil)

		mock.ExpectQuery("SELECT (.+) FROM students").
			WithArgs("s2").
			WillReturnRows(rows)

		s, err := repo.FindByID(ctx, "s2")

		assert.NoError(t, err)
		assert.Equal(t, model.StudentInactive, s.Status)
		assert.Empty(t, s.AssignedEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM students").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		s, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, s)
	})
}

func TestEmployeePostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEmployeePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "email", "role"}).
			AddRow("e1", "Staff One", "one@example.com", "admin")

		mock.ExpectQuery("SELECT (.+) FROM employees").
			WithArgs("e1").
			WillReturnRows(rows)

		e, err := repo.FindByID(ctx, "e1")

		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, e.Role)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM employees").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		e, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, IsNoRowsError(err))
		assert.Nil(t, e)
	})
}
