package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jkrahl/educahub-backend/internal/domain"
)

// CommentRepository is a mock of repository.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) FindByUUID(ctx context.Context, uuid string) (*domain.Comment, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) ListByPost(ctx context.Context, postID uint) ([]domain.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}
