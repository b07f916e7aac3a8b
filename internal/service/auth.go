package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/repository"
	"github.com/jkrahl/educahub-backend/internal/token"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9-]+(?:\.[a-zA-Z0-9-]+)*$`)

// AuthService handles registration, login, account deletion and identity
// resolution.
type AuthService struct {
	userRepo repository.UserRepository
	codec    *token.Codec
}

func NewAuthService(userRepo repository.UserRepository, codec *token.Codec) (*AuthService, error) {
	if userRepo == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if codec == nil {
		return nil, fmt.Errorf("token codec cannot be nil for AuthService")
	}
	return &AuthService{userRepo: userRepo, codec: codec}, nil
}

// Register creates an account and returns it with a freshly issued token. The
// returned user has its password hash cleared.
func (s *AuthService) Register(ctx context.Context, username, email, password, registerIP string) (*domain.User, string, error) {
	logCtx := logrus.WithFields(logrus.Fields{"username": username, "email": email})

	if username == "" || email == "" || password == "" {
		return nil, "", ErrInvalidInput
	}
	if !emailRegex.MatchString(email) {
		return nil, "", ErrInvalidInput
	}
	if len(username) < 3 || len(password) < 3 {
		return nil, "", ErrInvalidInput
	}

	// Friendly pre-check; the unique indexes have the final say below.
	if _, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email); err == nil {
		logCtx.Warn("Registration failed: username or email already taken")
		return nil, "", ErrUserExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		logCtx.WithError(err).Error("Database error during registration pre-check")
		return nil, "", ErrInternalServer
	}

	hashed, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, "", ErrInternalServer
	}

	user := &domain.User{
		Username:   username,
		Email:      email,
		Password:   hashed,
		RegisterIP: registerIP,
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Registration failed: unique constraint hit on insert")
			return nil, "", ErrUserExists
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, "", ErrInternalServer
	}

	signed, err := s.codec.Issue(user.Username, user.IsAdmin)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue token after registration")
		return nil, "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	user.Password = ""
	return user, signed, nil
}

// Login verifies the credential for an email and returns a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	logCtx := logrus.WithField("email", email)

	if email == "" || password == "" {
		return "", ErrInvalidInput
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logCtx.Warn("Login attempt failed: user not found")
			return "", ErrUserNotFound
		}
		logCtx.WithError(err).Error("Database error during login")
		return "", ErrInternalServer
	}

	if user.IsBanned {
		logCtx.WithField("user_id", user.ID).Warn("Login attempt by banned user")
		return "", ErrUserBanned
	}

	if !checkPassword(password, user.Password) {
		logCtx.Warn("Login attempt failed: invalid password")
		return "", ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(user.Username, user.IsAdmin)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue token during login")
		return "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	return signed, nil
}

// Delete removes an account after re-verifying its credential. No bearer token
// is involved; possession of the password is the proof of ownership.
func (s *AuthService) Delete(ctx context.Context, email, password string) error {
	logCtx := logrus.WithField("email", email)

	if email == "" || password == "" {
		return ErrInvalidInput
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		logCtx.WithError(err).Error("Database error during account deletion")
		return ErrInternalServer
	}

	if !checkPassword(password, user.Password) {
		logCtx.Warn("Account deletion rejected: invalid password")
		return ErrInvalidCredentials
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		logCtx.WithError(err).Error("Database error deleting user")
		return ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User deleted")
	return nil
}

// ResolveUser maps verified token claims to the stored user record, so
// downstream ownership checks compare durable identifiers rather than token
// contents. A claim naming a user that no longer exists is an authentication
// failure, not a lookup miss.
func (s *AuthService) ResolveUser(ctx context.Context, claims *token.Claims) (*domain.User, error) {
	if claims == nil || claims.Username == "" {
		return nil, ErrAuthenticationFailed
	}
	user, err := s.userRepo.FindByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrAuthenticationFailed
		}
		logrus.WithError(err).WithField("username", claims.Username).
			Error("Database error resolving identity")
		return nil, ErrInternalServer
	}
	if user.IsBanned {
		return nil, ErrAuthenticationFailed
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}
	return string(bytes), nil
}

func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
