package mocks

import (
	"context"
	"io"

	"studentdocs/internal/model"
	"studentdocs/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockLifecycle struct {
	mock.Mock
}

func (m *MockLifecycle) Upload(ctx context.Context, principal *model.Principal, r io.Reader, in service.UploadInput) (*model.Document, error) {
	args := m.Called(ctx, principal, r, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockLifecycle) Delete(ctx context.Context, principal *model.Principal, documentID string) error {
	args := m.Called(ctx, principal, documentID)
	return args.Error(0)
}

func (m *MockLifecycle) UpdateDescription(ctx context.Context, principal *model.Principal, documentID, description string) (*model.Document, error) {
	args := m.Called(ctx, principal, documentID, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockLifecycle) ListByStudent(ctx context.Context, principal *model.Principal, studentID string) ([]model.Document, error) {
	args := m.Called(ctx, principal, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}
