package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"studentdocs/internal/apperr"
	"studentdocs/internal/model"
	"studentdocs/internal/repository"
)

// claims holds the token claims the resolver cares about. The identity
// provider issues HS256 tokens whose subject is the employee id.
type claims struct {
	jwt.RegisteredClaims
}

// JWTResolver validates HMAC-signed bearer tokens and resolves the subject
// to an employee record. It performs a read-only lookup and holds no state
// between requests.
type JWTResolver struct {
	secret    []byte
	employees repository.EmployeeRepository
}

// NewJWTResolver creates a resolver for tokens signed with the given secret.
func NewJWTResolver(secret string, employees repository.EmployeeRepository) *JWTResolver {
	return &JWTResolver{secret: []byte(secret), employees: employees}
}

var _ Resolver = (*JWTResolver)(nil)

// Resolve validates the credential and looks up the mapped employee.
func (r *JWTResolver) Resolve(ctx context.Context, credential string) (*model.Principal, error) {
	if credential == "" {
		return nil, fmt.Errorf("missing credential: %w", apperr.ErrUnauthenticated)
	}

	var c claims
	token, err := jwt.ParseWithClaims(credential, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid credential: %w", apperr.ErrUnauthenticated)
	}
	if c.Subject == "" {
		return nil, fmt.Errorf("credential has no subject: %w", apperr.ErrUnauthenticated)
	}

	emp, err := r.employees.FindByID(ctx, c.Subject)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subject %s: %w", c.Subject, apperr.ErrUnauthorized)
		}
		return nil, fmt.Errorf("employee lookup: %w", err)
	}

	return emp.Principal(), nil
}
