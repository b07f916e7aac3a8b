package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
)

// Profile is a user's public page: the account's public fields plus their
// latest posts.
type Profile struct {
	User  *domain.User
	Posts []domain.Post
}

// UserService serves public user profiles.
type UserService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository) *UserService {
	if userRepo == nil || postRepo == nil {
		panic("UserService dependencies cannot be nil")
	}
	return &UserService{userRepo: userRepo, postRepo: postRepo}
}

// GetProfile returns the profile for username with their latest 20 posts.
func (s *UserService) GetProfile(ctx context.Context, username string) (*Profile, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logrus.WithError(err).Error("Database error fetching profile")
		return nil, ErrInternalServer
	}

	posts, err := s.postRepo.Search(ctx, repository.PostFilter{UserID: user.ID, Limit: 20})
	if err != nil {
		logrus.WithError(err).Error("Database error fetching profile posts")
		return nil, ErrInternalServer
	}

	return &Profile{User: user, Posts: posts}, nil
}
