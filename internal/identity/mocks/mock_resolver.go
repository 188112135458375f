package mocks

import (
	"context"

	"studentdocs/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, credential string) (*model.Principal, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Principal), args.Error(1)
}
