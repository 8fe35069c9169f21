package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/model"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/repository"
)

// ProfileUsecase reads and updates the profile fields of a user.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*ProfileUpdateResult, error)
}

// UpdateProfileParams holds the full desired profile. Every field is written.
type UpdateProfileParams struct {
	Name              string
	CollegeCourseName string
	University        string
	ResponseFormat    string
}

// ProfileUpdateResult reports the stored profile after an update request.
// Changed is false when the request matched the stored values and nothing was written.
type ProfileUpdateResult struct {
	User    *model.User
	Changed bool
}

type profileUsecase struct {
	userRepo repository.UserRepository
}

func NewProfileUsecase(userRepo repository.UserRepository) ProfileUsecase {
	return &profileUsecase{userRepo: userRepo}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (u *profileUsecase) UpdateProfile(
	ctx context.Context,
	userID string,
	params UpdateProfileParams,
) (*ProfileUpdateResult, error) {
	current, err := u.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	desired := model.Profile{
		Name:              strings.TrimSpace(params.Name),
		CollegeCourseName: strings.TrimSpace(params.CollegeCourseName),
		University:        strings.TrimSpace(params.University),
		ResponseFormat:    strings.TrimSpace(params.ResponseFormat),
	}

	if current.Profile() == desired {
		return &ProfileUpdateResult{User: current, Changed: false}, nil
	}

	updated, err := u.userRepo.UpdateProfile(ctx, userID, repository.UpdateProfileParams{
		Name:              desired.Name,
		CollegeCourseName: desired.CollegeCourseName,
		University:        desired.University,
		ResponseFormat:    desired.ResponseFormat,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &ProfileUpdateResult{User: updated, Changed: true}, nil
}
