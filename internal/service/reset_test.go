package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
	"github.com/jkrahl/educahub-backend/internal/repository/mocks"
	"github.com/jkrahl/educahub-backend/internal/service"
	"github.com/jkrahl/educahub-backend/internal/tasks"
)

// taskQueue is a mock of service.TaskQueue.
type taskQueue struct {
	mock.Mock
}

func (m *taskQueue) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asynq.TaskInfo), args.Error(1)
}

func TestResetService_Request_Success(t *testing.T) {
	// Arrange
	mockUserRepo := new(mocks.UserRepository)
	mockState := new(mocks.StateRepository)
	mockQueue := new(taskQueue)
	resetService := service.NewResetService(mockUserRepo, mockState, mockQueue)
	ctx := context.Background()
	email := "alice@example.com"

	mockUserRepo.On("FindByEmail", ctx, email).
		Return(&domain.User{ID: 1, Email: email}, nil).
		Once()

	var issuedToken string
	mockState.On("SaveResetToken", ctx, mock.AnythingOfType("string"), email, mock.Anything).
		Run(func(args mock.Arguments) {
			issuedToken = args.String(1)
		}).
		Return(nil).
		Once()

	mockQueue.On("EnqueueContext", ctx, mock.MatchedBy(func(task *asynq.Task) bool {
		if task.Type() != tasks.TypeResetEmail {
			return false
		}
		var payload tasks.ResetEmailPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return false
		}
		// The mailed token must be the stored one.
		return payload.Email == email && payload.Token == issuedToken
	})).Return(&asynq.TaskInfo{}, nil).Once()

	// Act
	err := resetService.Request(ctx, email)

	// Assert
	require.NoError(t, err)
	assert.Len(t, issuedToken, 32, "token should be 16 random bytes hex-encoded")
	mockUserRepo.AssertExpectations(t)
	mockState.AssertExpectations(t)
	mockQueue.AssertExpectations(t)
}

func TestResetService_Request_UnknownEmailSilent(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockState := new(mocks.StateRepository)
	mockQueue := new(taskQueue)
	resetService := service.NewResetService(mockUserRepo, mockState, mockQueue)
	ctx := context.Background()

	mockUserRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound).
		Once()

	// An unknown email behaves exactly like a known one from the caller's
	// point of view, so accounts cannot be enumerated.
	err := resetService.Request(ctx, "ghost@example.com")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
	mockState.AssertNotCalled(t, "SaveResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockQueue.AssertNotCalled(t, "EnqueueContext", mock.Anything, mock.Anything)
}

func TestResetService_Confirm_Success(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockState := new(mocks.StateRepository)
	mockQueue := new(taskQueue)
	resetService := service.NewResetService(mockUserRepo, mockState, mockQueue)
	ctx := context.Background()

	stored := &domain.User{ID: 2, Email: "alice@example.com", Password: "old-hash"}
	mockState.On("ConsumeResetToken", ctx, "valid-token").
		Return("alice@example.com", nil).
		Once()
	mockUserRepo.On("FindByEmail", ctx, "alice@example.com").Return(stored, nil).Once()
	mockUserRepo.On("Save", ctx, mock.MatchedBy(func(user *domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-password")) == nil
	})).Return(nil).Once()

	err := resetService.Confirm(ctx, "valid-token", "new-password")

	require.NoError(t, err)
	mockState.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestResetService_Confirm_UnknownToken(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockState := new(mocks.StateRepository)
	mockQueue := new(taskQueue)
	resetService := service.NewResetService(mockUserRepo, mockState, mockQueue)
	ctx := context.Background()

	mockState.On("ConsumeResetToken", ctx, "spent-or-bogus").
		Return("", repository.ErrTokenNotFound).
		Once()

	err := resetService.Confirm(ctx, "spent-or-bogus", "new-password")

	assert.ErrorIs(t, err, service.ErrInvalidResetToken)
	mockState.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestResetService_Confirm_InvalidInput(t *testing.T) {
	resetService := service.NewResetService(new(mocks.UserRepository), new(mocks.StateRepository), new(taskQueue))
	ctx := context.Background()

	assert.ErrorIs(t, resetService.Confirm(ctx, "", "new-password"), service.ErrInvalidInput)
	assert.ErrorIs(t, resetService.Confirm(ctx, "token", ""), service.ErrInvalidInput)
	assert.ErrorIs(t, resetService.Confirm(ctx, "token", "ab"), service.ErrInvalidInput)
}

func TestResetService_Confirm_AccountGone(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockState := new(mocks.StateRepository)
	resetService := service.NewResetService(mockUserRepo, mockState, new(taskQueue))
	ctx := context.Background()

	mockState.On("ConsumeResetToken", ctx, "orphan-token").
		Return("deleted@example.com", nil).
		Once()
	mockUserRepo.On("FindByEmail", ctx, "deleted@example.com").
		Return(nil, repository.ErrUserNotFound).
		Once()

	err := resetService.Confirm(ctx, "orphan-token", "new-password")

	assert.ErrorIs(t, err, service.ErrInvalidResetToken)
	mockState.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}
