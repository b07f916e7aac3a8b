package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
)

// GormSubjectRepository is the gorm implementation of
// repository.SubjectRepository.
type GormSubjectRepository struct {
	db *gorm.DB
}

func NewGormSubjectRepository(db *gorm.DB) *GormSubjectRepository {
	if db == nil {
		panic("database connection cannot be nil for GormSubjectRepository")
	}
	return &GormSubjectRepository{db: db}
}

func (r *GormSubjectRepository) List(ctx context.Context) ([]domain.Subject, error) {
	var subjects []domain.Subject
	err := r.db.WithContext(ctx).Order("name ASC").Find(&subjects).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list subjects: %w", err)
	}
	return subjects, nil
}

func (r *GormSubjectRepository) Create(ctx context.Context, subject *domain.Subject) error {
	err := r.db.WithContext(ctx).Create(subject).Error
	if err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: create subject '%s': %w", subject.Name, err)
	}
	return nil
}
