package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
)

// CommentService handles comments on posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	if commentRepo == nil || postRepo == nil {
		panic("CommentService dependencies cannot be nil")
	}
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// Create attaches a comment by author to the post at postURL and returns it.
func (s *CommentService) Create(ctx context.Context, author *domain.User, postURL, content string) (*domain.Comment, error) {
	if content == "" || postURL == "" {
		return nil, ErrInvalidInput
	}

	post, err := s.postRepo.FindByURL(ctx, postURL)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		logrus.WithError(err).Error("Database error fetching post for comment")
		return nil, ErrInternalServer
	}

	comment := &domain.Comment{
		UUID:   uuid.NewString(),
		Text:   content,
		UserID: author.ID,
		PostID: post.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		logrus.WithError(err).Error("Database error creating comment")
		return nil, ErrInternalServer
	}

	logrus.WithFields(logrus.Fields{
		"comment_uuid": comment.UUID,
		"post_url":     postURL,
		"user_id":      author.ID,
	}).Info("Comment created")
	return comment, nil
}

// List returns all comments on the post at postURL with authors preloaded.
func (s *CommentService) List(ctx context.Context, postURL string) ([]domain.Comment, error) {
	post, err := s.postRepo.FindByURL(ctx, postURL)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		logrus.WithError(err).Error("Database error fetching post for comments")
		return nil, ErrInternalServer
	}

	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		logrus.WithError(err).Error("Database error listing comments")
		return nil, ErrInternalServer
	}
	return comments, nil
}

// Delete removes a comment addressed as (postURL, commentUUID). Checks run in
// a fixed order: the comment and its post must exist and match before
// authorship is considered, so a mismatched address reads as not-found rather
// than forbidden.
func (s *CommentService) Delete(ctx context.Context, actor *domain.User, postURL, commentUUID string) error {
	comment, err := s.commentRepo.FindByUUID(ctx, commentUUID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return ErrCommentNotFound
		}
		logrus.WithError(err).Error("Database error fetching comment for deletion")
		return ErrInternalServer
	}

	post, err := s.postRepo.FindByID(ctx, comment.PostID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		logrus.WithError(err).Error("Database error fetching post for comment deletion")
		return ErrInternalServer
	}
	if post.URL != postURL {
		return ErrCommentNotFound
	}

	if comment.UserID != actor.ID {
		return ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, commentUUID); err != nil {
		logrus.WithError(err).Error("Database error deleting comment")
		return ErrInternalServer
	}

	logrus.WithFields(logrus.Fields{
		"comment_uuid": commentUUID,
		"user_id":      actor.ID,
	}).Info("Comment deleted")
	return nil
}
