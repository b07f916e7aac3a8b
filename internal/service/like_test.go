package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
	"github.com/jkrahl/educahub-backend/internal/repository/mocks"
	"github.com/jkrahl/educahub-backend/internal/service"
)

func TestLikeService_Like_Success(t *testing.T) {
	// Arrange
	mockLikeRepo := new(mocks.LikeRepository)
	mockPostRepo := new(mocks.PostRepository)
	likeService := service.NewLikeService(mockLikeRepo, mockPostRepo)
	ctx := context.Background()
	user := &domain.User{ID: 3}

	post := &domain.Post{ID: 7, UserID: 42, URL: "apuntes-ab12cd34"}
	mockPostRepo.On("FindByURL", ctx, "apuntes-ab12cd34").Return(post, nil).Once()
	mockLikeRepo.On("Create", ctx, mock.MatchedBy(func(like *domain.Like) bool {
		return like.UserID == 3 && like.PostID == 7 && like.PostUserID == 42
	})).Return(nil).Once()

	// Act
	err := likeService.Like(ctx, user, "apuntes-ab12cd34")

	// Assert
	assert.NoError(t, err)
	mockPostRepo.AssertExpectations(t)
	mockLikeRepo.AssertExpectations(t)
}

func TestLikeService_Like_AlreadyLiked(t *testing.T) {
	mockLikeRepo := new(mocks.LikeRepository)
	mockPostRepo := new(mocks.PostRepository)
	likeService := service.NewLikeService(mockLikeRepo, mockPostRepo)
	ctx := context.Background()

	post := &domain.Post{ID: 7, URL: "apuntes-ab12cd34"}
	mockPostRepo.On("FindByURL", ctx, "apuntes-ab12cd34").Return(post, nil).Once()
	// The unique index rejects the second insert; no read-then-write race.
	mockLikeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Like")).
		Return(repository.ErrDuplicateEntry).
		Once()

	err := likeService.Like(ctx, &domain.User{ID: 3}, "apuntes-ab12cd34")

	assert.ErrorIs(t, err, service.ErrAlreadyLiked)
	mockLikeRepo.AssertExpectations(t)
}

func TestLikeService_Like_PostMissing(t *testing.T) {
	mockLikeRepo := new(mocks.LikeRepository)
	mockPostRepo := new(mocks.PostRepository)
	likeService := service.NewLikeService(mockLikeRepo, mockPostRepo)
	ctx := context.Background()

	mockPostRepo.On("FindByURL", ctx, "gone-ab12cd34").
		Return(nil, repository.ErrPostNotFound).
		Once()

	err := likeService.Like(ctx, &domain.User{ID: 3}, "gone-ab12cd34")

	assert.ErrorIs(t, err, service.ErrPostNotFound)
	mockLikeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLikeService_Unlike_Success(t *testing.T) {
	mockLikeRepo := new(mocks.LikeRepository)
	mockPostRepo := new(mocks.PostRepository)
	likeService := service.NewLikeService(mockLikeRepo, mockPostRepo)
	ctx := context.Background()

	post := &domain.Post{ID: 7, URL: "apuntes-ab12cd34"}
	mockPostRepo.On("FindByURL", ctx, "apuntes-ab12cd34").Return(post, nil).Once()
	mockLikeRepo.On("Delete", ctx, uint(3), uint(7)).Return(nil).Once()

	err := likeService.Unlike(ctx, &domain.User{ID: 3}, "apuntes-ab12cd34")

	assert.NoError(t, err)
	mockLikeRepo.AssertExpectations(t)
}

func TestLikeService_Unlike_NotLiked(t *testing.T) {
	mockLikeRepo := new(mocks.LikeRepository)
	mockPostRepo := new(mocks.PostRepository)
	likeService := service.NewLikeService(mockLikeRepo, mockPostRepo)
	ctx := context.Background()

	post := &domain.Post{ID: 7, URL: "apuntes-ab12cd34"}
	mockPostRepo.On("FindByURL", ctx, "apuntes-ab12cd34").Return(post, nil).Once()
	mockLikeRepo.On("Delete", ctx, uint(3), uint(7)).
		Return(repository.ErrLikeNotFound).
		Once()

	err := likeService.Unlike(ctx, &domain.User{ID: 3}, "apuntes-ab12cd34")

	assert.ErrorIs(t, err, service.ErrNotLiked)
	mockLikeRepo.AssertExpectations(t)
}

func TestLikeService_Status(t *testing.T) {
	mockLikeRepo := new(mocks.LikeRepository)
	mockPostRepo := new(mocks.PostRepository)
	likeService := service.NewLikeService(mockLikeRepo, mockPostRepo)
	ctx := context.Background()

	post := &domain.Post{ID: 7, URL: "apuntes-ab12cd34"}
	mockPostRepo.On("FindByURL", ctx, "apuntes-ab12cd34").Return(post, nil).Once()
	mockLikeRepo.On("CountByPost", ctx, uint(7)).Return(int64(12), nil).Once()
	mockLikeRepo.On("Exists", ctx, uint(3), uint(7)).Return(true, nil).Once()

	status, err := likeService.Status(ctx, &domain.User{ID: 3}, "apuntes-ab12cd34")

	require.NoError(t, err)
	assert.Equal(t, int64(12), status.Likes)
	assert.True(t, status.UserLiked)
	mockLikeRepo.AssertExpectations(t)
}
