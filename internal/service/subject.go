package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
)

// SubjectService handles the subject/unit taxonomy.
type SubjectService struct {
	subjectRepo repository.SubjectRepository
}

func NewSubjectService(subjectRepo repository.SubjectRepository) *SubjectService {
	if subjectRepo == nil {
		panic("SubjectRepository cannot be nil for SubjectService")
	}
	return &SubjectService{subjectRepo: subjectRepo}
}

// List returns every subject with its units.
func (s *SubjectService) List(ctx context.Context) ([]domain.Subject, error) {
	subjects, err := s.subjectRepo.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Database error listing subjects")
		return nil, ErrInternalServer
	}
	return subjects, nil
}

// Create adds a subject. Admin gating happens at the HTTP layer; here only
// shape and uniqueness are enforced.
func (s *SubjectService) Create(ctx context.Context, name string, units []string) (*domain.Subject, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}

	subject := &domain.Subject{Name: name, Units: units}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrSubjectExists
		}
		logrus.WithError(err).Error("Database error creating subject")
		return nil, ErrInternalServer
	}

	logrus.WithField("subject", name).Info("Subject created")
	return subject, nil
}
