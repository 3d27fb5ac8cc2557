package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/stockrabbit/account-be/internal/services"
)

// AuthHandler handles HTTP requests for the authentication workflow.
type AuthHandler struct {
	service services.AuthServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload SignupPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeCode(w, http.StatusBadRequest, CodeInvalidRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeCode(w, http.StatusBadRequest, CodeInvalidRequest)
		return
	}

	err := h.service.Signup(r.Context(), payload.Username, payload.Email, payload.Password)
	switch {
	case err == nil:
		writeCode(w, http.StatusOK, CodeSuccess)
	case errors.Is(err, services.ErrInvalidInput):
		writeCode(w, http.StatusBadRequest, CodeInvalidRequest)
	case errors.Is(err, services.ErrEmailTaken):
		writeCode(w, http.StatusBadRequest, CodeAlreadyExists)
	default:
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeServerError(w, err)
	}
}

// Login handles credential verification and session-token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeCode(w, http.StatusBadRequest, CodeInvalidRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeCode(w, http.StatusBadRequest, CodeInvalidRequest)
		return
	}

	user, token, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, envelope{Code: CodeSuccess, User: user.Profile(), Token: token})
	case errors.Is(err, services.ErrInvalidInput):
		writeCode(w, http.StatusBadRequest, CodeInvalidRequest)
	case errors.Is(err, services.ErrUserNotFound):
		writeCode(w, http.StatusBadRequest, CodeNotFound)
	case errors.Is(err, services.ErrInvalidCredentials):
		log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
		writeCode(w, http.StatusUnauthorized, CodeInvalidCredentials)
	default:
		log.Error().Err(err).Str("email", payload.Email).Msg("Login failed")
		writeServerError(w, err)
	}
}

// Refresh issues a new short-lived token for the user id in the URL.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	token, err := h.service.Refresh(r.Context(), userID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, envelope{Code: CodeSuccess, Token: token})
	case errors.Is(err, services.ErrInvalidInput):
		writeCode(w, http.StatusBadRequest, CodeInvalidRequest)
	case errors.Is(err, services.ErrUserNotFound):
		writeCode(w, http.StatusBadRequest, CodeNotFound)
	default:
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to refresh token")
		writeServerError(w, err)
	}
}
