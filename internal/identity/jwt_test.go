package identity

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentdocs/internal/apperr"
	"studentdocs/internal/model"
	repoMocks "studentdocs/internal/repository/mocks"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject string, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		credential func(t *testing.T) string
		setupMocks func(mRepo *repoMocks.MockEmployeeRepository)
		wantErr    error
		wantRole   model.Role
	}{
		{
			name:       "member resolves",
			credential: func(t *testing.T) string { return signToken(t, "e1", testSecret) },
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("FindByID", ctx, "e1").
					Return(&model.Employee{ID: "e1", Role: model.RoleMember}, nil)
			},
			wantRole: model.RoleMember,
		},
		{
			name:       "admin resolves",
			credential: func(t *testing.T) string { return signToken(t, "e2", testSecret) },
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("FindByID", ctx, "e2").
					Return(&model.Employee{ID: "e2", Role: model.RoleAdmin}, nil)
			},
			wantRole: model.RoleAdmin,
		},
		{
			name:       "missing credential",
			credential: func(t *testing.T) string { return "" },
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {},
			wantErr:    apperr.ErrUnauthenticated,
		},
		{
			name:       "malformed credential",
			credential: func(t *testing.T) string { return "not-a-jwt" },
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {},
			wantErr:    apperr.ErrUnauthenticated,
		},
		{
			name:       "wrong signing key",
			credential: func(t *testing.T) string { return signToken(t, "e1", "other-secret") },
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {},
			wantErr:    apperr.ErrUnauthenticated,
		},
		{
			name: "expired token",
			credential: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
					Subject:   "e1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				})
				signed, err := token.SignedString([]byte(testSecret))
				require.NoError(t, err)
				return signed
			},
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {},
			wantErr:    apperr.ErrUnauthenticated,
		},
		{
			name:       "empty subject",
			credential: func(t *testing.T) string { return signToken(t, "", testSecret) },
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {},
			wantErr:    apperr.ErrUnauthenticated,
		},
		{
			name:       "valid token without employee mapping",
			credential: func(t *testing.T) string { return signToken(t, "ghost", testSecret) },
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("FindByID", ctx, "ghost").Return(nil, sql.ErrNoRows)
			},
			wantErr: apperr.ErrUnauthorized,
		},
		{
			name:       "employee lookup failure is not unauthorized",
			credential: func(t *testing.T) string { return signToken(t, "e1", testSecret) },
			setupMocks: func(mRepo *repoMocks.MockEmployeeRepository) {
				mRepo.On("FindByID", ctx, "e1").Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockEmployeeRepository)
			tt.setupMocks(mRepo)

			resolver := NewJWTResolver(testSecret, mRepo)
			p, err := resolver.Resolve(ctx, tt.credential(t))

			if tt.wantErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.wantErr, apperr.ErrUnauthenticated) || errors.Is(tt.wantErr, apperr.ErrUnauthorized) {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantRole, p.Role)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
