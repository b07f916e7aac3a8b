package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jkrahl/educahub-backend/internal/domain"
)

// LikeRepository is a mock of repository.LikeRepository.
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Create(ctx context.Context, like *domain.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *LikeRepository) Delete(ctx context.Context, userID, postID uint) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *LikeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LikeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}
