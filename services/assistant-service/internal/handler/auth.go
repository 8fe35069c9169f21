package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/config"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/payload"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/usecase"
	"github.com/vasapolrittideah/academia-bot/shared/utilities"
	"github.com/vasapolrittideah/academia-bot/shared/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.Validator
	tokenCfg    config.TokenConfig
	logger      *zerolog.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validator.Validator,
	tokenCfg config.TokenConfig,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		tokenCfg:    tokenCfg,
		logger:      logger,
	}
}

// Signup registers a new user. It does not log the user in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req payload.SignupRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	user, err := h.authUsecase.Signup(r.Context(), usecase.SignupParams{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		CollegeCourseName: req.CollegeCourseName,
		University:        req.University,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			utilities.WriteJSON(w, http.StatusConflict, payload.ErrorResponse{Error: "Email already registered"})
			return
		}
		h.logger.Error().Err(err).Msg("failed to sign up user")
		internalError(w)
		return
	}

	h.logger.Info().Str("user_id", user.ID.Hex()).Msg("user registered")
	utilities.WriteJSON(w, http.StatusCreated, payload.MessageResponse{Message: "User registered successfully."})
}

// Login verifies credentials and returns a session token in the body and as a cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utilities.WriteJSON(w, http.StatusUnauthorized, payload.MessageResponse{Message: "Invalid credentials"})
			return
		}
		h.logger.Error().Err(err).Msg("failed to log in user")
		internalError(w)
		return
	}

	http.SetCookie(w, h.sessionCookie(result.Token, int(h.tokenCfg.ExpiresIn.Seconds()), result.ExpiresAt))
	utilities.WriteJSON(w, http.StatusOK, payload.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout clears the session cookie. The token itself stays valid until it expires.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1, time.Unix(0, 0)))
	utilities.WriteJSON(w, http.StatusOK, payload.MessageResponse{Message: "Logged out"})
}

// sessionCookie builds the cookie carrying the token. Its lifetime matches the
// token's own expiry so the browser never holds a token the server would reject.
func (h *AuthHandler) sessionCookie(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.tokenCfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.tokenCfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
