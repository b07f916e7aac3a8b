package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
)

// GormPostRepository is the gorm implementation of repository.PostRepository.
type GormPostRepository struct {
	db *gorm.DB
}

func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	if db == nil {
		panic("database connection cannot be nil for GormPostRepository")
	}
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) Search(ctx context.Context, filter repository.PostFilter) ([]domain.Post, error) {
	q := r.db.WithContext(ctx).Model(&domain.Post{}).Preload("User")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filter.Subject != "" {
		q = q.Where("subject = ?", filter.Subject)
	}
	if filter.Unit != "" {
		q = q.Where("unit = ?", filter.Unit)
	}
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	q = q.Order("created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var posts []domain.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("gorm: search posts: %w", err)
	}
	return posts, nil
}

func (r *GormPostRepository) FindByURL(ctx context.Context, url string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).Preload("User").Where("url = ?", url).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}
		return nil, fmt.Errorf("gorm: find post by url '%s': %w", url, err)
	}
	return &post, nil
}

func (r *GormPostRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	var post domain.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}
		return nil, fmt.Errorf("gorm: find post by id %d: %w", id, err)
	}
	return &post, nil
}

func (r *GormPostRepository) Create(ctx context.Context, post *domain.Post) error {
	err := r.db.WithContext(ctx).Create(post).Error
	if err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create post (url: %s): %w", post.URL, err)
	}
	return nil
}

// Delete removes a post together with its comments and likes. The children
// have no route of their own once the post is gone, so they go in the same
// transaction.
func (r *GormPostRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&domain.Like{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrPostNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return err
		}
		return fmt.Errorf("gorm: delete post %d: %w", id, err)
	}
	return nil
}
