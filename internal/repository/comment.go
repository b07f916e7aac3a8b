package repository

import (
	"context"

	"github.com/jkrahl/educahub-backend/internal/domain"
)

// CommentRepository stores and retrieves comments.
type CommentRepository interface {
	// FindByUUID returns the comment with the given public identifier, or
	// ErrCommentNotFound.
	FindByUUID(ctx context.Context, uuid string) (*domain.Comment, error)

	// ListByPost returns all comments on a post with their authors
	// preloaded.
	ListByPost(ctx context.Context, postID uint) ([]domain.Comment, error)

	// Create inserts a new comment.
	Create(ctx context.Context, comment *domain.Comment) error

	// Delete removes the comment with the given public identifier.
	Delete(ctx context.Context, uuid string) error
}
