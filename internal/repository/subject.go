package repository

import (
	"context"

	"github.com/jkrahl/educahub-backend/internal/domain"
)

// SubjectRepository stores the subject/unit taxonomy.
type SubjectRepository interface {
	// List returns every subject.
	List(ctx context.Context) ([]domain.Subject, error)

	// Create inserts a subject. Returns ErrDuplicateEntry if the name is
	// taken.
	Create(ctx context.Context, subject *domain.Subject) error
}
