package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/stockrabbit/account-be/internal/models"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// UserServiceProvider defines the credential store interface.
type UserServiceProvider interface {
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error)
}

// UserService persists and retrieves user records.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// GetUserByID retrieves a single user by their ID. Absence is reported as
// ErrUserNotFound, not as a store failure.
func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.getUser(ctx, "SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?", id)
}

// GetUserByEmail retrieves a single user by their email, including the
// password hash for credential checks.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getUser(ctx, "SELECT id, username, email, password_hash, created_at FROM users WHERE email = ?", email)
}

func (s *UserService) getUser(ctx context.Context, query, arg string) (models.User, error) {
	var user models.User
	row := s.db.QueryRowContext(ctx, query, arg)
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// CreateUser inserts a new user with an already-hashed password and a fresh
// id. A uniqueness violation on email surfaces as ErrEmailTaken, so a
// duplicate-signup race loses cleanly even when the caller pre-checked.
func (s *UserService) CreateUser(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users(id, username, email, password_hash) VALUES(?, ?, ?, ?)",
		user.ID, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}

	return s.GetUserByID(ctx, user.ID)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
