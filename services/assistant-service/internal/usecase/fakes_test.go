package usecase

import (
	"context"
	"sync"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/model"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/repository"
	"github.com/vasapolrittideah/academia-bot/shared/provider"
)

type fakeChatModel struct {
	mu           sync.Mutex
	reply        string
	err          error
	calls        int
	systemPrompt string
	history      []provider.Message
	query        string
}

func (f *fakeChatModel) Generate(_ context.Context, systemPrompt string, history []provider.Message, query string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.systemPrompt = systemPrompt
	f.history = history
	f.query = query

	return f.reply, f.err
}

// countingRepository counts profile writes on top of the in-memory store.
type countingRepository struct {
	repository.UserRepository
	profileWrites int
}

func (r *countingRepository) UpdateProfile(
	ctx context.Context,
	id string,
	params repository.UpdateProfileParams,
) (*model.User, error) {
	r.profileWrites++
	return r.UserRepository.UpdateProfile(ctx, id, params)
}
