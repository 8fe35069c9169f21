package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/model"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/prompt"
	"github.com/vasapolrittideah/academia-bot/shared/metrics"
	"github.com/vasapolrittideah/academia-bot/shared/provider"
)

// ChatModel is the upstream generative model.
type ChatModel interface {
	Generate(ctx context.Context, systemPrompt string, history []provider.Message, query string) (string, error)
}

// ChatUsecase relays one conversation turn to the generative model.
type ChatUsecase interface {
	Chat(ctx context.Context, params ChatParams) (string, error)
}

// ChatParams is a single chat request. History is the full prior conversation
// as held by the client; nothing is persisted between calls.
type ChatParams struct {
	Token          string
	Query          string
	History        []model.ChatTurn
	ResponseFormat string
}

type chatUsecase struct {
	tokenUsecase   TokenUsecase
	profileUsecase ProfileUsecase
	model          ChatModel
}

func NewChatUsecase(tokenUsecase TokenUsecase, profileUsecase ProfileUsecase, model ChatModel) ChatUsecase {
	return &chatUsecase{
		tokenUsecase:   tokenUsecase,
		profileUsecase: profileUsecase,
		model:          model,
	}
}

func (u *chatUsecase) Chat(ctx context.Context, params ChatParams) (string, error) {
	claims, err := u.tokenUsecase.Verify(params.Token)
	if err != nil {
		return "", ErrInvalidToken
	}

	user, err := u.profileUsecase.GetProfile(ctx, claims.UserID)
	if err != nil {
		return "", err
	}

	format := params.ResponseFormat
	if strings.TrimSpace(format) == "" {
		format = user.ResponseFormat
	}

	systemPrompt := prompt.Build(prompt.Profile{
		Name:       user.Name,
		Course:     user.CollegeCourseName,
		University: user.University,
	}, format)

	history := make([]provider.Message, 0, len(params.History))
	for _, turn := range params.History {
		history = append(history, provider.Message{Role: turn.Role, Text: turn.Message})
	}

	start := time.Now()
	text, err := u.model.Generate(ctx, systemPrompt, history, params.Query)
	metrics.ObserveUpstream(start, err)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %w", ErrUpstream, provider.ErrEmptyCompletion)
	}

	return text, nil
}
