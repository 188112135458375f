package mocks

import (
	"context"

	"studentdocs/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) Issue(ctx context.Context, credential, documentID string, requestedTTLSec int) (*model.SignedURL, error) {
	args := m.Called(ctx, credential, documentID, requestedTTLSec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SignedURL), args.Error(1)
}
