package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/model"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/repository"
	"github.com/vasapolrittideah/academia-bot/shared/logger"
	"github.com/vasapolrittideah/academia-bot/shared/security"
)

func newAuthUsecase(repo repository.UserRepository) (AuthUsecase, TokenUsecase) {
	tokens := newTokenUsecase(&clock{now: time.Now()})
	return NewAuthUsecase(repo, tokens, logger.Nop()), tokens
}

var anaSignup = SignupParams{
	Name:              "Ana",
	Email:             "ana@x.com",
	Password:          "p@ss1234",
	CollegeCourseName: "CS101",
	University:        "State U",
}

func TestAuthUsecase_SignupThenLogin(t *testing.T) {
	repo := repository.NewUserMemoryRepository()
	authUC, tokens := newAuthUsecase(repo)
	ctx := context.Background()

	user, err := authUC.Signup(ctx, anaSignup)
	require.NoError(t, err)
	assert.NotEqual(t, anaSignup.Password, user.PasswordHash)
	assert.Empty(t, user.ResponseFormat)

	result, err := authUC.Login(ctx, LoginParams{Email: "ANA@x.com", Password: "p@ss1234"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
}

func TestAuthUsecase_SignupDuplicateEmail(t *testing.T) {
	authUC, _ := newAuthUsecase(repository.NewUserMemoryRepository())
	ctx := context.Background()

	_, err := authUC.Signup(ctx, anaSignup)
	require.NoError(t, err)

	dup := anaSignup
	dup.Email = "Ana@X.com"
	_, err = authUC.Signup(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthUsecase_LoginFailuresAreIndistinguishable(t *testing.T) {
	authUC, _ := newAuthUsecase(repository.NewUserMemoryRepository())
	ctx := context.Background()

	_, err := authUC.Signup(ctx, anaSignup)
	require.NoError(t, err)

	_, wrongPassword := authUC.Login(ctx, LoginParams{Email: "ana@x.com", Password: "wrong"})
	_, unknownEmail := authUC.Login(ctx, LoginParams{Email: "nobody@x.com", Password: "p@ss1234"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthUsecase_LoginUpgradesLegacyHash(t *testing.T) {
	repo := repository.NewUserMemoryRepository()
	authUC, _ := newAuthUsecase(repo)
	ctx := context.Background()

	legacy, err := bcrypt.GenerateFromPassword([]byte("p@ss1234"), 10)
	require.NoError(t, err)

	user, err := repo.CreateUser(ctx, &model.User{
		Name:              "Ana",
		Email:             "ana@x.com",
		PasswordHash:      string(legacy),
		CollegeCourseName: "CS101",
		University:        "State U",
	})
	require.NoError(t, err)

	_, err = authUC.Login(ctx, LoginParams{Email: "ana@x.com", Password: "p@ss1234"})
	require.NoError(t, err)

	stored, err := repo.GetUser(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.False(t, security.NeedsRehash(stored.PasswordHash))

	_, err = authUC.Login(ctx, LoginParams{Email: "ana@x.com", Password: "p@ss1234"})
	assert.NoError(t, err)
}

func TestAuthUsecase_LoginWithUnusableHashLooksLikeBadCredentials(t *testing.T) {
	repo := repository.NewUserMemoryRepository()
	authUC, _ := newAuthUsecase(repo)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, &model.User{
		Name:              "Ana",
		Email:             "ana@x.com",
		PasswordHash:      "plaintext-from-a-broken-import",
		CollegeCourseName: "CS101",
		University:        "State U",
	})
	require.NoError(t, err)

	_, broken := authUC.Login(ctx, LoginParams{Email: "ana@x.com", Password: "p@ss1234"})
	_, unknownEmail := authUC.Login(ctx, LoginParams{Email: "nobody@x.com", Password: "p@ss1234"})

	assert.ErrorIs(t, broken, ErrInvalidCredentials)
	assert.Equal(t, unknownEmail.Error(), broken.Error())
}
