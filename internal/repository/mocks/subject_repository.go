package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jkrahl/educahub-backend/internal/domain"
)

// SubjectRepository is a mock of repository.SubjectRepository.
type SubjectRepository struct {
	mock.Mock
}

func (m *SubjectRepository) List(ctx context.Context) ([]domain.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subject), args.Error(1)
}

func (m *SubjectRepository) Create(ctx context.Context, subject *domain.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}
