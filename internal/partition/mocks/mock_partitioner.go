package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPartitioner struct {
	mock.Mock
}

func (m *MockPartitioner) Partition(ctx context.Context, inputPath string) (string, error) {
	args := m.Called(ctx, inputPath)
	return args.String(0), args.Error(1)
}
