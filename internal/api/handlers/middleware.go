package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/stockrabbit/account-be/internal/auth"
)

type contextKey string

const userIDKey = contextKey("userID")

// UserIDFromContext returns the authenticated user id attached by
// Authenticator.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Authenticator returns a middleware that validates the bearer token from
// the Authorization header and attaches the verified user id to the request
// context. A missing token is reported as 404 INVALID_REQUEST; a token that
// fails verification as 401 TOKEN_EXPIRED.
func Authenticator(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenStr string
			if parts := strings.Fields(r.Header.Get("Authorization")); len(parts) == 2 {
				tokenStr = parts[1]
			}
			if tokenStr == "" {
				writeCode(w, http.StatusNotFound, CodeInvalidRequest)
				return
			}

			userID, err := tokens.Verify(tokenStr)
			if err != nil {
				writeCode(w, http.StatusUnauthorized, CodeTokenExpired)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
