package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/middleware"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/model"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/payload"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/usecase"
	"github.com/vasapolrittideah/academia-bot/shared/utilities"
	"github.com/vasapolrittideah/academia-bot/shared/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.Validator
	logger         *zerolog.Logger
}

func NewProfileHandler(
	profileUsecase usecase.ProfileUsecase,
	validator *validator.Validator,
	logger *zerolog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
		logger:         logger,
	}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utilities.WriteJSON(w, http.StatusUnauthorized, payload.ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.profileUsecase.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		h.writeError(w, err, "failed to get profile")
		return
	}

	utilities.WriteJSON(w, http.StatusOK, toProfileResponse(user))
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utilities.WriteJSON(w, http.StatusUnauthorized, payload.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req payload.UpdateProfileRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	result, err := h.profileUsecase.UpdateProfile(r.Context(), claims.UserID, usecase.UpdateProfileParams{
		Name:              req.Name,
		CollegeCourseName: req.CollegeCourseName,
		University:        req.University,
		ResponseFormat:    req.ResponseFormat,
	})
	if err != nil {
		h.writeError(w, err, "failed to update profile")
		return
	}

	if !result.Changed {
		utilities.WriteJSON(w, http.StatusOK, payload.UpdateProfileResponse{Message: "No changes detected"})
		return
	}

	utilities.WriteJSON(w, http.StatusOK, payload.UpdateProfileResponse{
		Message: "Profile updated",
		User:    toProfileResponse(result.User),
	})
}

func (h *ProfileHandler) writeError(w http.ResponseWriter, err error, msg string) {
	if errors.Is(err, usecase.ErrUserNotFound) {
		utilities.WriteJSON(w, http.StatusNotFound, payload.ErrorResponse{Error: "User not found"})
		return
	}

	h.logger.Error().Err(err).Msg(msg)
	internalError(w)
}

func toProfileResponse(u *model.User) *payload.ProfileResponse {
	return &payload.ProfileResponse{
		Name:              u.Name,
		CollegeCourseName: u.CollegeCourseName,
		University:        u.University,
		ResponseFormat:    u.ResponseFormat,
	}
}
