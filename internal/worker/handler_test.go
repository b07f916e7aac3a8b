package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jkrahl/educahub-backend/internal/tasks"
	"github.com/jkrahl/educahub-backend/internal/worker"
)

// mailer is a mock of mail.Mailer.
type mailer struct {
	mock.Mock
}

func (m *mailer) SendResetToken(ctx context.Context, email, token string) error {
	args := m.Called(ctx, email, token)
	return args.Error(0)
}

func TestResetEmailHandler_ProcessTask(t *testing.T) {
	mockMailer := new(mailer)
	h := worker.NewResetEmailHandler(mockMailer)
	ctx := context.Background()

	task, err := tasks.NewResetEmailTask("alice@example.com", "abcd1234")
	require.NoError(t, err)

	mockMailer.On("SendResetToken", ctx, "alice@example.com", "abcd1234").Return(nil).Once()

	err = h.ProcessTask(ctx, task)

	assert.NoError(t, err)
	mockMailer.AssertExpectations(t)
}

func TestResetEmailHandler_DeliveryFailureRetries(t *testing.T) {
	mockMailer := new(mailer)
	h := worker.NewResetEmailHandler(mockMailer)
	ctx := context.Background()

	task, err := tasks.NewResetEmailTask("alice@example.com", "abcd1234")
	require.NoError(t, err)

	sendErr := errors.New("mailersend: 429 too many requests")
	mockMailer.On("SendResetToken", ctx, "alice@example.com", "abcd1234").Return(sendErr).Once()

	err = h.ProcessTask(ctx, task)

	// The raw error goes back to asynq so the task is retried.
	assert.ErrorIs(t, err, sendErr)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestResetEmailHandler_BadPayloadNotRetried(t *testing.T) {
	h := worker.NewResetEmailHandler(new(mailer))

	task := asynq.NewTask(tasks.TypeResetEmail, []byte("{not json"))
	err := h.ProcessTask(context.Background(), task)

	assert.ErrorIs(t, err, asynq.SkipRetry)
}
