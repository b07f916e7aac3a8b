// Package repository defines the storage interfaces the services depend on.
package repository

import (
	"context"

	"github.com/jkrahl/educahub-backend/internal/domain"
)

// UserRepository stores and retrieves user accounts.
type UserRepository interface {
	// FindByUsername returns the user with the given username, or
	// ErrUserNotFound.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByEmail returns the user with the given email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByUsernameOrEmail returns any user matching either value. Used by
	// registration for a friendly conflict message before the unique index
	// has the final say.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)

	// Save creates the user when ID is zero, updates it otherwise. Returns
	// ErrDuplicateEntry on a uniqueness violation.
	Save(ctx context.Context, user *domain.User) error

	// Delete removes the user by primary key.
	Delete(ctx context.Context, id uint) error
}
