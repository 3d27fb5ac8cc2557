package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", time.Hour, time.Minute)
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := newTestManager()

	token, err := m.IssueSession("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenManager_RefreshTokenVerifies(t *testing.T) {
	m := newTestManager()

	token, err := m.IssueRefresh("user-456")
	require.NoError(t, err)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-456", userID)
}

func TestTokenManager_EmptyUserID(t *testing.T) {
	m := newTestManager()

	_, err := m.Issue("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	m := newTestManager()

	for _, ttl := range []time.Duration{0, -time.Minute} {
		token, err := m.Issue("user-123", ttl)
		require.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired, "ttl %s", ttl)
	}
}

func TestTokenManager_TamperedToken(t *testing.T) {
	m := newTestManager()

	token, err := m.IssueSession("user-123")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	flip := func(s string) string {
		b := []byte(s)
		mid := len(b) / 2
		if b[mid] == 'A' {
			b[mid] = 'B'
		} else {
			b[mid] = 'A'
		}
		return string(b)
	}

	tampered := []string{
		parts[0] + "." + flip(parts[1]) + "." + parts[2], // payload flipped
		parts[0] + "." + parts[1] + "." + flip(parts[2]), // signature flipped
		"not-a-token",
		"",
	}
	for _, bad := range tampered {
		_, err := m.Verify(bad)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", bad)
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewTokenManager("different-secret", time.Hour, time.Minute)

	token, err := other.IssueSession("user-123")
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
