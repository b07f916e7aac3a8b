package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
)

// LikeStatus is what a reader sees on a post's like counter.
type LikeStatus struct {
	Likes     int64 `json:"likes"`
	UserLiked bool  `json:"userLiked"`
}

// LikeService handles liking and unliking posts.
type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	if likeRepo == nil || postRepo == nil {
		panic("LikeService dependencies cannot be nil")
	}
	return &LikeService{likeRepo: likeRepo, postRepo: postRepo}
}

// Like records user's like on the post at postURL. The unique index on
// (user, post) is the authority on duplicates: a second like surfaces as
// ErrAlreadyLiked no matter how the requests interleave.
func (s *LikeService) Like(ctx context.Context, user *domain.User, postURL string) error {
	post, err := s.findPost(ctx, postURL)
	if err != nil {
		return err
	}

	like := &domain.Like{
		UserID:     user.ID,
		PostID:     post.ID,
		PostUserID: post.UserID,
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return ErrAlreadyLiked
		}
		logrus.WithError(err).Error("Database error creating like")
		return ErrInternalServer
	}

	logrus.WithFields(logrus.Fields{"post_url": postURL, "user_id": user.ID}).Info("Post liked")
	return nil
}

// Unlike removes user's like from the post at postURL. Unliking a post that
// was never liked reports ErrNotLiked.
func (s *LikeService) Unlike(ctx context.Context, user *domain.User, postURL string) error {
	post, err := s.findPost(ctx, postURL)
	if err != nil {
		return err
	}

	if err := s.likeRepo.Delete(ctx, user.ID, post.ID); err != nil {
		if errors.Is(err, repository.ErrLikeNotFound) {
			return ErrNotLiked
		}
		logrus.WithError(err).Error("Database error deleting like")
		return ErrInternalServer
	}

	logrus.WithFields(logrus.Fields{"post_url": postURL, "user_id": user.ID}).Info("Post unliked")
	return nil
}

// Status returns the like count of a post and whether user liked it.
func (s *LikeService) Status(ctx context.Context, user *domain.User, postURL string) (*LikeStatus, error) {
	post, err := s.findPost(ctx, postURL)
	if err != nil {
		return nil, err
	}

	count, err := s.likeRepo.CountByPost(ctx, post.ID)
	if err != nil {
		logrus.WithError(err).Error("Database error counting likes")
		return nil, ErrInternalServer
	}
	liked, err := s.likeRepo.Exists(ctx, user.ID, post.ID)
	if err != nil {
		logrus.WithError(err).Error("Database error checking like")
		return nil, ErrInternalServer
	}

	return &LikeStatus{Likes: count, UserLiked: liked}, nil
}

func (s *LikeService) findPost(ctx context.Context, postURL string) (*domain.Post, error) {
	post, err := s.postRepo.FindByURL(ctx, postURL)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		logrus.WithError(err).Error("Database error fetching post for like operation")
		return nil, ErrInternalServer
	}
	return post, nil
}
