package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// FileStore is a mock of repository.FileStore.
type FileStore struct {
	mock.Mock
}

func (m *FileStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *FileStore) PresignGet(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}
