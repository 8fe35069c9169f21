package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/repository"
)

func TestProfileUsecase_UpdateUnchangedIsNoop(t *testing.T) {
	repo := &countingRepository{UserRepository: repository.NewUserMemoryRepository()}
	authUC, _ := newAuthUsecase(repo)
	profiles := NewProfileUsecase(repo)
	ctx := context.Background()

	user, err := authUC.Signup(ctx, anaSignup)
	require.NoError(t, err)

	result, err := profiles.UpdateProfile(ctx, user.ID.Hex(), UpdateProfileParams{
		Name:              "Ana",
		CollegeCourseName: "CS101",
		University:        "State U",
		ResponseFormat:    "",
	})
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Zero(t, repo.profileWrites)

	stored, err := profiles.GetProfile(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, user.UpdatedAt, stored.UpdatedAt)
}

func TestProfileUsecase_UpdateChanged(t *testing.T) {
	repo := &countingRepository{UserRepository: repository.NewUserMemoryRepository()}
	authUC, _ := newAuthUsecase(repo)
	profiles := NewProfileUsecase(repo)
	ctx := context.Background()

	user, err := authUC.Signup(ctx, anaSignup)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)

	result, err := profiles.UpdateProfile(ctx, user.ID.Hex(), UpdateProfileParams{
		Name:              "Ana",
		CollegeCourseName: "CS101",
		University:        "State U",
		ResponseFormat:    "bullet points",
	})
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 1, repo.profileWrites)
	assert.Equal(t, "bullet points", result.User.ResponseFormat)
	assert.True(t, result.User.UpdatedAt.After(user.UpdatedAt))
	assert.Equal(t, "ana@x.com", result.User.Email)
}

func TestProfileUsecase_UnknownUser(t *testing.T) {
	profiles := NewProfileUsecase(repository.NewUserMemoryRepository())
	ctx := context.Background()

	_, err := profiles.GetProfile(ctx, "0123456789abcdef01234567")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = profiles.UpdateProfile(ctx, "0123456789abcdef01234567", UpdateProfileParams{Name: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
