package services

import (
	"context"
	"errors"

	"github.com/stockrabbit/account-be/internal/auth"
	"github.com/stockrabbit/account-be/internal/models"
)

// AuthServiceProvider defines the interface for the authentication workflow.
type AuthServiceProvider interface {
	Signup(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (models.User, string, error)
	Refresh(ctx context.Context, userID string) (string, error)
	Profile(ctx context.Context, userID string) (models.User, error)
}

// AuthService orchestrates the credential store, password hasher, and token
// manager for signup, login, token refresh, and profile reads.
type AuthService struct {
	users  UserServiceProvider
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserServiceProvider, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Signup registers a new user. The created record is not returned; callers
// only learn that registration succeeded.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrInvalidInput
	}

	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	// The store's uniqueness constraint is authoritative; a concurrent
	// signup that slipped past the pre-check still comes back as ErrEmailTaken.
	if _, err := s.users.CreateUser(ctx, username, email, hash); err != nil {
		return err
	}
	return nil
}

// Login verifies credentials and, on success, returns the user together
// with a freshly issued session token. A password mismatch is an explicit
// ErrInvalidCredentials, never a silent non-answer.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", ErrInvalidInput
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueSession(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Refresh issues a short-lived token for the given user id. The id is
// re-validated against the store so a deleted or never-existing account
// cannot mint new credentials.
func (s *AuthService) Refresh(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrInvalidInput
	}

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return "", err
	}
	return s.tokens.IssueRefresh(userID)
}

// Profile returns the stored record for an already-authenticated user id.
// Handlers serialize it through the redacting projection.
func (s *AuthService) Profile(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrInvalidInput
	}
	return s.users.GetUserByID(ctx, userID)
}
