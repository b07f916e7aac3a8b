package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
)

// GormCommentRepository is the gorm implementation of
// repository.CommentRepository.
type GormCommentRepository struct {
	db *gorm.DB
}

func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	if db == nil {
		panic("database connection cannot be nil for GormCommentRepository")
	}
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) FindByUUID(ctx context.Context, uuid string) (*domain.Comment, error) {
	var comment domain.Comment
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}
		return nil, fmt.Errorf("gorm: find comment by uuid '%s': %w", uuid, err)
	}
	return &comment, nil
}

func (r *GormCommentRepository) ListByPost(ctx context.Context, postID uint) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := r.db.WithContext(ctx).Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list comments for post %d: %w", postID, err)
	}
	return comments, nil
}

func (r *GormCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	err := r.db.WithContext(ctx).Create(comment).Error
	if err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create comment (uuid: %s): %w", comment.UUID, err)
	}
	return nil
}

func (r *GormCommentRepository) Delete(ctx context.Context, uuid string) error {
	result := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&domain.Comment{})
	if result.Error != nil {
		return fmt.Errorf("gorm: delete comment '%s': %w", uuid, result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}
	return nil
}
