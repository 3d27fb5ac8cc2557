package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stockrabbit/account-be/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return NewUserService(db)
}

func TestUserService_CreateAndGet(t *testing.T) {
	s := newTestUserService(t)
	ctx := context.Background()

	created, err := s.CreateUser(ctx, "alice", "a@x.com", "hashed-password")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "a@x.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := s.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "hashed-password", byEmail.PasswordHash)

	byID, err := s.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)
}

func TestUserService_NotFound(t *testing.T) {
	s := newTestUserService(t)
	ctx := context.Background()

	_, err := s.GetUserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.GetUserByID(ctx, "nonexistent-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DuplicateEmail(t *testing.T) {
	s := newTestUserService(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, "alice", "a@x.com", "hash-one")
	require.NoError(t, err)

	// Same email, different everything else: the store constraint decides.
	_, err = s.CreateUser(ctx, "bob", "a@x.com", "hash-two")
	assert.ErrorIs(t, err, ErrEmailTaken)
}
