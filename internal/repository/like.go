package repository

import (
	"context"

	"github.com/jkrahl/educahub-backend/internal/domain"
)

// LikeRepository stores and retrieves like records.
type LikeRepository interface {
	// Create inserts a like. Returns ErrDuplicateEntry when the (user,
	// post) pair already exists; the unique index decides, not a pre-check.
	Create(ctx context.Context, like *domain.Like) error

	// Delete removes the like for the (user, post) pair. Returns
	// ErrLikeNotFound when no such like exists.
	Delete(ctx context.Context, userID, postID uint) error

	// CountByPost returns the number of likes on a post.
	CountByPost(ctx context.Context, postID uint) (int64, error)

	// Exists reports whether the user has liked the post.
	Exists(ctx context.Context, userID, postID uint) (bool, error)
}
