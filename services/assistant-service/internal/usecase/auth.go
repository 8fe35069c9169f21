package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/model"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/repository"
	"github.com/vasapolrittideah/academia-bot/shared/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Signup(ctx context.Context, params SignupParams) (*model.User, error)
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)
}

// SignupParams defines the parameters for user registration.
type SignupParams struct {
	Name              string
	Email             string
	Password          string
	CollegeCourseName string
	University        string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

// LoginResult is a freshly issued session for an authenticated user.
type LoginResult struct {
	User      *model.User
	Token     string
	ExpiresAt time.Time
}

type authUsecase struct {
	userRepo     repository.UserRepository
	tokenUsecase TokenUsecase
	logger       *zerolog.Logger

	// dummyHash is compared against when the email is unknown so both
	// failure paths cost one password verification.
	dummyOnce sync.Once
	dummyHash string
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	tokenUsecase TokenUsecase,
	logger *zerolog.Logger,
) AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		tokenUsecase: tokenUsecase,
		logger:       logger,
	}
}

func (u *authUsecase) Signup(ctx context.Context, params SignupParams) (*model.User, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Name:              strings.TrimSpace(params.Name),
		Email:             repository.NormalizeEmail(params.Email),
		PasswordHash:      passwordHash,
		CollegeCourseName: strings.TrimSpace(params.CollegeCourseName),
		University:        strings.TrimSpace(params.University),
		ResponseFormat:    "",
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			u.burnVerification(params.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	userID := user.ID.Hex()

	ok, err := security.VerifyPassword(params.Password, user.PasswordHash)
	if err != nil {
		u.logger.Error().Err(err).Str("user_id", userID).Msg("stored password hash is unusable")
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if security.NeedsRehash(user.PasswordHash) {
		u.upgradeHash(ctx, userID, params.Password)
	}

	token, expiresAt, err := u.tokenUsecase.Issue(userID, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// upgradeHash replaces a legacy hash after a successful login. Failure only
// delays the upgrade to the next login.
func (u *authUsecase) upgradeHash(ctx context.Context, userID, password string) {
	hash, err := security.HashPassword(password)
	if err == nil {
		err = u.userRepo.UpdatePasswordHash(ctx, userID, hash)
	}
	if err != nil {
		u.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to upgrade legacy password hash")
		return
	}

	u.logger.Info().Str("user_id", userID).Msg("upgraded legacy password hash")
}

func (u *authUsecase) burnVerification(password string) {
	u.dummyOnce.Do(func() {
		u.dummyHash, _ = security.HashPassword("academia-bot-dummy-password")
	})
	if u.dummyHash != "" {
		_, _ = security.VerifyPassword(password, u.dummyHash)
	}
}
