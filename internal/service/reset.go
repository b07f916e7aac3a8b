package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/repository"
	"github.com/jkrahl/educahub-backend/internal/tasks"
)

// resetTokenTTL bounds how long an issued reset token stays usable.
const resetTokenTTL = 24 * time.Hour

// TaskQueue is the slice of asynq.Client the reset flow needs; an interface so
// tests can capture enqueued tasks.
type TaskQueue interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ResetService implements the password-reset flow: a request binds a fresh
// random token to the account's email with a TTL and mails it out; a
// submission consumes the token exactly once and replaces the credential.
type ResetService struct {
	userRepo repository.UserRepository
	state    repository.StateRepository
	queue    TaskQueue
}

func NewResetService(userRepo repository.UserRepository, state repository.StateRepository, queue TaskQueue) *ResetService {
	if userRepo == nil || state == nil || queue == nil {
		panic("ResetService dependencies cannot be nil")
	}
	return &ResetService{userRepo: userRepo, state: state, queue: queue}
}

// Request starts a reset for the given email. An unknown email is a silent
// no-op: the caller gets the same nil result either way, so responses never
// reveal whether an account exists.
func (s *ResetService) Request(ctx context.Context, email string) error {
	if email == "" {
		return ErrInvalidInput
	}
	logCtx := logrus.WithField("email", email)

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Debug("Reset requested for unknown email, ignoring")
			return nil
		}
		logCtx.WithError(err).Error("Database error during reset request")
		return ErrInternalServer
	}

	resetToken, err := newResetToken()
	if err != nil {
		logCtx.WithError(err).Error("Failed to generate reset token")
		return ErrInternalServer
	}

	if err := s.state.SaveResetToken(ctx, resetToken, email, resetTokenTTL); err != nil {
		logCtx.WithError(err).Error("Failed to store reset token")
		return ErrInternalServer
	}

	task, err := tasks.NewResetEmailTask(email, resetToken)
	if err != nil {
		logCtx.WithError(err).Error("Failed to build reset email task")
		return ErrInternalServer
	}
	if _, err := s.queue.EnqueueContext(ctx, task); err != nil {
		logCtx.WithError(err).Error("Failed to enqueue reset email task")
		return ErrInternalServer
	}

	logCtx.Info("Password reset requested")
	return nil
}

// Confirm consumes a reset token and replaces the account's password. A token
// that was never issued, expired, or was already consumed yields
// ErrInvalidResetToken; consumption is atomic, so the same token can never
// succeed twice.
func (s *ResetService) Confirm(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return ErrInvalidInput
	}
	if len(newPassword) < 3 {
		return ErrInvalidInput
	}

	email, err := s.state.ConsumeResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return ErrInvalidResetToken
		}
		logrus.WithError(err).Error("Failed to consume reset token")
		return ErrInternalServer
	}
	logCtx := logrus.WithField("email", email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// Account deleted between issue and consume. The token is already
		// gone, so report it as invalid.
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Reset token consumed for a no-longer-existing account")
			return ErrInvalidResetToken
		}
		logCtx.WithError(err).Error("Database error during reset confirmation")
		return ErrInternalServer
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash new password")
		return ErrInternalServer
	}
	user.Password = hashed

	if err := s.userRepo.Save(ctx, user); err != nil {
		logCtx.WithError(err).Error("Database error saving new password")
		return ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("Password reset completed")
	return nil
}

// newResetToken returns 32 hex characters of cryptographic randomness.
func newResetToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
