package repository

import (
	"context"

	"github.com/jkrahl/educahub-backend/internal/domain"
)

// PostFilter narrows a post listing. Zero values mean "no constraint".
type PostFilter struct {
	// Query is matched case-insensitively against title and description.
	Query   string
	Subject string
	Unit    string
	// UserID restricts to posts owned by a user.
	UserID uint
	// Limit caps the number of rows returned; zero means no cap.
	Limit int
}

// PostRepository stores and retrieves posts.
type PostRepository interface {
	// Search returns posts matching the filter, newest first, with the
	// owning user preloaded.
	Search(ctx context.Context, filter PostFilter) ([]domain.Post, error)

	// FindByURL returns the post with the given url slug, with the owning
	// user preloaded, or ErrPostNotFound.
	FindByURL(ctx context.Context, url string) (*domain.Post, error)

	// FindByID returns the post by primary key, or ErrPostNotFound.
	FindByID(ctx context.Context, id uint) (*domain.Post, error)

	// Create inserts a new post. Returns ErrDuplicateEntry if the url slug
	// is already taken.
	Create(ctx context.Context, post *domain.Post) error

	// Delete removes the post and, in the same transaction, its comments
	// and likes.
	Delete(ctx context.Context, id uint) error
}
