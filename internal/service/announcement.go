package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/repository"
)

// AnnouncementService reads and writes the site-wide announcement banner. The
// banner is a single shared value; concurrent admin writes are last-write-wins.
type AnnouncementService struct {
	state repository.StateRepository
}

func NewAnnouncementService(state repository.StateRepository) *AnnouncementService {
	if state == nil {
		panic("StateRepository cannot be nil for AnnouncementService")
	}
	return &AnnouncementService{state: state}
}

// Get returns the current banner, or the empty string when none is set.
func (s *AnnouncementService) Get(ctx context.Context) (string, error) {
	text, err := s.state.GetAnnouncement(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to read announcement")
		return "", ErrInternalServer
	}
	return text, nil
}

// Set overwrites the banner. Admin gating happens at the HTTP layer.
func (s *AnnouncementService) Set(ctx context.Context, text string) error {
	if text == "" {
		return ErrInvalidInput
	}
	if err := s.state.SetAnnouncement(ctx, text); err != nil {
		logrus.WithError(err).Error("Failed to write announcement")
		return ErrInternalServer
	}
	logrus.Info("Announcement updated")
	return nil
}
