package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrEmptyUserID is returned when a token is requested without a subject.
	ErrEmptyUserID = errors.New("user id must not be empty")
	// ErrTokenExpired is returned when a token is past its embedded expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid is returned for malformed, tampered, or mis-signed tokens.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims defines the JWT claims structure carried by both session and
// refresh tokens.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed bearer tokens. The secret
// and TTLs come from configuration at start-up; the manager itself is
// stateless and safe for concurrent use.
type TokenManager struct {
	secret     []byte
	sessionTTL time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a TokenManager with the given signing secret and
// token lifetimes.
func NewTokenManager(secret string, sessionTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		refreshTTL: refreshTTL,
	}
}

// Issue creates a signed token carrying the user id, expiring after ttl.
func (m *TokenManager) Issue(userID string, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", ErrEmptyUserID
	}
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// IssueSession creates a token with the default session lifetime.
func (m *TokenManager) IssueSession(userID string) (string, error) {
	return m.Issue(userID, m.sessionTTL)
}

// IssueRefresh creates a short-lived refresh token. It carries only the user
// id and is meant to be exchanged quickly, not held as a session substitute.
func (m *TokenManager) IssueRefresh(userID string) (string, error) {
	return m.Issue(userID, m.refreshTTL)
}

// Verify parses and validates a token string and returns the embedded user
// id. Expired tokens yield ErrTokenExpired; anything else that fails to
// parse or verify yields ErrTokenInvalid.
func (m *TokenManager) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}
