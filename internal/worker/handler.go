package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/infra/mail"
	"github.com/jkrahl/educahub-backend/internal/tasks"
)

// ResetEmailHandler delivers password-reset email tasks.
type ResetEmailHandler struct {
	mailer mail.Mailer
}

func NewResetEmailHandler(mailer mail.Mailer) *ResetEmailHandler {
	return &ResetEmailHandler{mailer: mailer}
}

// ProcessTask implements asynq.Handler. Delivery failures are returned so
// asynq retries them; a payload that cannot be decoded is not retryable.
func (h *ResetEmailHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload tasks.ResetEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logrus.WithError(err).Error("Failed to unmarshal reset email payload")
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	logCtx := logrus.WithFields(logrus.Fields{
		"task_type": t.Type(),
		"email":     payload.Email,
	})
	logCtx.Info("Sending password reset email...")

	if err := h.mailer.SendResetToken(ctx, payload.Email, payload.Token); err != nil {
		logCtx.WithError(err).Error("Failed to send password reset email")
		return err
	}

	logCtx.Info("Password reset email sent")
	return nil
}
