package mocks

import (
	"context"

	"docqa/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) Create(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
