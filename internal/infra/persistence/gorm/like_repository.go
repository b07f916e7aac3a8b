package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
)

// GormLikeRepository is the gorm implementation of repository.LikeRepository.
type GormLikeRepository struct {
	db *gorm.DB
}

func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	if db == nil {
		panic("database connection cannot be nil for GormLikeRepository")
	}
	return &GormLikeRepository{db: db}
}

func (r *GormLikeRepository) Create(ctx context.Context, like *domain.Like) error {
	err := r.db.WithContext(ctx).Create(like).Error
	if err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create like (user %d, post %d): %w", like.UserID, like.PostID, err)
	}
	return nil
}

func (r *GormLikeRepository) Delete(ctx context.Context, userID, postID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&domain.Like{})
	if result.Error != nil {
		return fmt.Errorf("gorm: delete like (user %d, post %d): %w", userID, postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}
	return nil
}

func (r *GormLikeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count likes for post %d: %w", postID, err)
	}
	return count, nil
}

func (r *GormLikeRepository) Exists(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("gorm: check like (user %d, post %d): %w", userID, postID, err)
	}
	return count > 0, nil
}
