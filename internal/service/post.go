package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
)

// MaxUploadSize caps post file uploads at 25 MB.
const MaxUploadSize = 25 * 1024 * 1024

// CreatePostInput carries everything needed to publish a post. File is only
// consulted for Document posts.
type CreatePostInput struct {
	Type        domain.PostType
	Title       string
	Description string
	Subject     string
	Unit        string
	File        []byte
	FileType    string
}

// PostService handles publishing, listing and deleting posts.
type PostService struct {
	postRepo repository.PostRepository
	files    repository.FileStore
}

func NewPostService(postRepo repository.PostRepository, files repository.FileStore) *PostService {
	if postRepo == nil || files == nil {
		panic("PostService dependencies cannot be nil")
	}
	return &PostService{postRepo: postRepo, files: files}
}

// List returns up to 20 matching posts, newest first.
func (s *PostService) List(ctx context.Context, query, subject, unit string) ([]domain.Post, error) {
	posts, err := s.postRepo.Search(ctx, repository.PostFilter{
		Query:   query,
		Subject: subject,
		Unit:    unit,
		Limit:   20,
	})
	if err != nil {
		logrus.WithError(err).Error("Database error listing posts")
		return nil, ErrInternalServer
	}
	return posts, nil
}

// Create publishes a post owned by owner. Document posts must carry a PDF,
// which is uploaded under "<url>.pdf" before the record is written so a
// created Document post always has its file.
func (s *PostService) Create(ctx context.Context, owner *domain.User, in CreatePostInput) (*domain.Post, error) {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": owner.ID, "title": in.Title})

	if in.Title == "" || in.Type == "" {
		return nil, ErrInvalidInput
	}
	if !in.Type.Valid() {
		return nil, ErrInvalidInput
	}
	if in.Type == domain.PostTypeDocument {
		if len(in.File) == 0 {
			return nil, ErrInvalidInput
		}
		if in.FileType != "application/pdf" {
			return nil, ErrInvalidInput
		}
		if len(in.File) > MaxUploadSize {
			return nil, ErrInvalidInput
		}
	}

	url := makePostURL(in.Title)

	if in.Type == domain.PostTypeDocument {
		if err := s.files.Upload(ctx, url+".pdf", in.File, in.FileType); err != nil {
			logCtx.WithError(err).Error("Failed to upload post file")
			return nil, ErrInternalServer
		}
	}

	post := &domain.Post{
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		UserID:      owner.ID,
		URL:         url,
		Subject:     in.Subject,
		Unit:        in.Unit,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		logCtx.WithError(err).Error("Database error creating post")
		return nil, ErrInternalServer
	}

	logCtx.WithField("url", post.URL).Info("Post created")
	return post, nil
}

// Get returns a single post by its url slug.
func (s *PostService) Get(ctx context.Context, url string) (*domain.Post, error) {
	post, err := s.postRepo.FindByURL(ctx, url)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		logrus.WithError(err).Error("Database error fetching post")
		return nil, ErrInternalServer
	}
	return post, nil
}

// FileURL returns a time-limited download URL for a Document post's file.
// Non-Document posts have no file and report not found.
func (s *PostService) FileURL(ctx context.Context, url string) (string, error) {
	post, err := s.Get(ctx, url)
	if err != nil {
		return "", err
	}
	if post.Type != domain.PostTypeDocument {
		return "", ErrPostNotFound
	}
	signed, err := s.files.PresignGet(ctx, post.URL+".pdf")
	if err != nil {
		logrus.WithError(err).WithField("url", url).Error("Failed to presign post file")
		return "", ErrInternalServer
	}
	return signed, nil
}

// Delete removes a post. Existence is checked before ownership so a caller
// can never learn about a post's existence from the order of failures.
func (s *PostService) Delete(ctx context.Context, actor *domain.User, url string) error {
	post, err := s.postRepo.FindByURL(ctx, url)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		logrus.WithError(err).Error("Database error fetching post for deletion")
		return ErrInternalServer
	}

	if post.UserID != actor.ID {
		return ErrForbidden
	}

	if err := s.postRepo.Delete(ctx, post.ID); err != nil {
		logrus.WithError(err).WithField("url", url).Error("Database error deleting post")
		return ErrInternalServer
	}

	logrus.WithFields(logrus.Fields{"url": url, "user_id": actor.ID}).Info("Post deleted")
	return nil
}

// makePostURL derives the canonical slug for a title: lowercased,
// URL-safe, disambiguated with the first 8 hex chars of a random UUID.
func makePostURL(title string) string {
	return slug.Make(title) + "-" + strings.Split(uuid.NewString(), "-")[0]
}
