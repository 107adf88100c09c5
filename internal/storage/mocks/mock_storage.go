package mocks

import (
	"context"
	"io"

	"docqa/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader) (storage.ObjectInfo, error) {
	args := m.Called(ctx, key, r)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader) storage.ObjectInfo); ok {
		return f(ctx, key, r), args.Error(1)
	}
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}
