package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/stockrabbit/account-be/internal/services"
)

// UserHandler handles HTTP requests for identity-gated user reads.
type UserHandler struct {
	service services.AuthServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.AuthServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// Me returns the profile of the user authenticated by the bearer token.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeServerError(w, errors.New("could not retrieve user from token"))
		return
	}

	user, err := h.service.Profile(r.Context(), userID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, envelope{Code: CodeSuccess, User: user.Profile()})
	case errors.Is(err, services.ErrUserNotFound):
		log.Warn().Str("user_id", userID).Msg("User from token not found in DB")
		writeCode(w, http.StatusBadRequest, CodeNotFound)
	default:
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile")
		writeServerError(w, err)
	}
}
