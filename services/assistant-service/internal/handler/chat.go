package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/middleware"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/model"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/payload"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/usecase"
	"github.com/vasapolrittideah/academia-bot/shared/provider"
	"github.com/vasapolrittideah/academia-bot/shared/utilities"
	"github.com/vasapolrittideah/academia-bot/shared/validator"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
	validator   *validator.Validator
	cookieName  string
	logger      *zerolog.Logger
}

func NewChatHandler(
	chatUsecase usecase.ChatUsecase,
	validator *validator.Validator,
	cookieName string,
	logger *zerolog.Logger,
) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
		validator:   validator,
		cookieName:  cookieName,
		logger:      logger,
	}
}

// Chat relays one query plus the client-held history to the model.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req payload.ChatRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	token := strings.TrimSpace(req.Token)
	if token == "" {
		token, _ = middleware.TokenFromRequest(r, h.cookieName)
	}

	history := make([]model.ChatTurn, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, model.ChatTurn{Role: provider.Role(turn.Role), Message: turn.Message})
	}

	response, err := h.chatUsecase.Chat(r.Context(), usecase.ChatParams{
		Token:          token,
		Query:          req.Query,
		History:        history,
		ResponseFormat: req.ResponseFormat,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidToken):
			utilities.WriteJSON(w, http.StatusUnauthorized, payload.MessageResponse{Message: "Unauthorized"})
		case errors.Is(err, usecase.ErrUserNotFound):
			utilities.WriteJSON(w, http.StatusNotFound, payload.MessageResponse{Message: "User not found"})
		case errors.Is(err, usecase.ErrUpstream):
			h.logger.Error().Err(err).Msg("generative model call failed")
			utilities.WriteJSON(w, http.StatusBadGateway, payload.MessageResponse{Message: "Something went wrong"})
		default:
			h.logger.Error().Err(err).Msg("failed to process chat request")
			utilities.WriteJSON(w, http.StatusInternalServerError, payload.MessageResponse{Message: "Something went wrong"})
		}
		return
	}

	utilities.WriteJSON(w, http.StatusOK, payload.ChatResponse{Response: response})
}
