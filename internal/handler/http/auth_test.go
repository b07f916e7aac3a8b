package http_test

import (
	"bytes"
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jkrahl/educahub-backend/internal/domain"
	handler "github.com/jkrahl/educahub-backend/internal/handler/http"
	"github.com/jkrahl/educahub-backend/internal/repository"
	"github.com/jkrahl/educahub-backend/internal/repository/mocks"
	"github.com/jkrahl/educahub-backend/internal/service"
	"github.com/jkrahl/educahub-backend/internal/token"
)

// noopQueue satisfies service.TaskQueue for handlers that never enqueue.
type noopQueue struct{}

func (noopQueue) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	return &asynq.TaskInfo{}, nil
}

func newAuthHandler(t *testing.T, userRepo repository.UserRepository, state repository.StateRepository) *handler.AuthHandler {
	t.Helper()
	codec, err := token.NewCodec("handler-test-secret")
	require.NoError(t, err)
	authService, err := service.NewAuthService(userRepo, codec)
	require.NoError(t, err)
	resetService := service.NewResetService(userRepo, state, noopQueue{})
	return handler.NewAuthHandler(authService, resetService)
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := nethttp.NewRequest(nethttp.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockUserRepo := new(mocks.UserRepository)
	h := newAuthHandler(t, mockUserRepo, new(mocks.StateRepository))
	router := gin.New()
	router.POST("/auth/register", h.Register)

	t.Run("missing fields rejected before the service runs", func(t *testing.T) {
		w := postJSON(router, "/auth/register", `{"username": "alice"}`)

		assert.Equal(t, nethttp.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Campos vacíos")
		mockUserRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("successful signup returns a token", func(t *testing.T) {
		mockUserRepo.On("FindByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
			Return(nil, repository.ErrUserNotFound).
			Once()
		mockUserRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 1
			}).
			Return(nil).
			Once()

		w := postJSON(router, "/auth/register",
			`{"username": "alice", "email": "alice@example.com", "password": "secret123"}`)

		assert.Equal(t, nethttp.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Usuario creado exitosamente")
		assert.Contains(t, w.Body.String(), `"token"`)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("taken username conflicts", func(t *testing.T) {
		mockUserRepo.On("FindByUsernameOrEmail", mock.Anything, "alice", "other@example.com").
			Return(&domain.User{ID: 1, Username: "alice"}, nil).
			Once()

		w := postJSON(router, "/auth/register",
			`{"username": "alice", "email": "other@example.com", "password": "secret123"}`)

		assert.Equal(t, nethttp.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "usuario ya existe")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockUserRepo := new(mocks.UserRepository)
	h := newAuthHandler(t, mockUserRepo, new(mocks.StateRepository))
	router := gin.New()
	router.POST("/auth/login", h.Login)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("valid credentials log in", func(t *testing.T) {
		stored := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: string(hashed)}
		mockUserRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil).Once()

		w := postJSON(router, "/auth/login",
			`{"email": "alice@example.com", "password": "secret123"}`)

		assert.Equal(t, nethttp.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Login exitoso")
		assert.Contains(t, w.Body.String(), `"token"`)
	})

	t.Run("wrong password is forbidden", func(t *testing.T) {
		stored := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: string(hashed)}
		mockUserRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil).Once()

		w := postJSON(router, "/auth/login",
			`{"email": "alice@example.com", "password": "wrong"}`)

		assert.Equal(t, nethttp.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "contraseña incorrecta")
	})

	t.Run("banned user is told so", func(t *testing.T) {
		banned := &domain.User{ID: 2, Email: "banned@example.com", Password: string(hashed), IsBanned: true}
		mockUserRepo.On("FindByEmail", mock.Anything, "banned@example.com").Return(banned, nil).Once()

		w := postJSON(router, "/auth/login",
			`{"email": "banned@example.com", "password": "secret123"}`)

		assert.Equal(t, nethttp.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "usuario baneado")
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		mockUserRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
			Return(nil, repository.ErrUserNotFound).
			Once()

		w := postJSON(router, "/auth/login",
			`{"email": "ghost@example.com", "password": "secret123"}`)

		assert.Equal(t, nethttp.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "usuario no encontrado")
	})
}

func TestAuthHandler_RequestReset_UniformResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockUserRepo := new(mocks.UserRepository)
	mockState := new(mocks.StateRepository)
	h := newAuthHandler(t, mockUserRepo, mockState)
	router := gin.New()
	router.POST("/auth/reset", h.RequestReset)

	mockUserRepo.On("FindByEmail", mock.Anything, "alice@example.com").
		Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil).
		Once()
	mockState.On("SaveResetToken", mock.Anything, mock.Anything, "alice@example.com", mock.Anything).
		Return(nil).
		Once()
	mockUserRepo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound).
		Once()

	known := postJSON(router, "/auth/reset", `{"email": "alice@example.com"}`)
	unknown := postJSON(router, "/auth/reset", `{"email": "ghost@example.com"}`)

	// Both answers must be byte-identical or the endpoint enumerates users.
	assert.Equal(t, nethttp.StatusOK, known.Code)
	assert.Equal(t, nethttp.StatusOK, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String())
}

func TestAuthHandler_ConfirmReset_BadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockUserRepo := new(mocks.UserRepository)
	mockState := new(mocks.StateRepository)
	h := newAuthHandler(t, mockUserRepo, mockState)
	router := gin.New()
	router.POST("/auth/reset/:token", h.ConfirmReset)

	mockState.On("ConsumeResetToken", mock.Anything, "bogus").
		Return("", repository.ErrTokenNotFound).
		Once()

	w := postJSON(router, "/auth/reset/bogus", `{"password": "newpass123"}`)

	assert.Equal(t, nethttp.StatusNotFound, w.Code)
	mockUserRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
