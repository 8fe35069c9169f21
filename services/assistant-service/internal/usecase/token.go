package usecase

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/config"
	authtypes "github.com/vasapolrittideah/academia-bot/services/assistant-service/pkg/types"
	"github.com/vasapolrittideah/academia-bot/shared/auth"
)

// TokenUsecase issues and verifies stateless session tokens. Nothing is stored
// server side: a token is valid while its signature verifies and it has not expired.
type TokenUsecase interface {
	Issue(userID, email string) (token string, expiresAt time.Time, err error)
	Verify(token string) (*authtypes.SessionClaims, error)
}

type tokenUsecase struct {
	jwtAuth  auth.JWTAuthenticator
	tokenCfg config.TokenConfig
}

func NewTokenUsecase(jwtAuth auth.JWTAuthenticator, tokenCfg config.TokenConfig) TokenUsecase {
	return &tokenUsecase{
		jwtAuth:  jwtAuth,
		tokenCfg: tokenCfg,
	}
}

func (u *tokenUsecase) Issue(userID, email string) (string, time.Time, error) {
	now := u.jwtAuth.Now()
	expiresAt := now.Add(u.tokenCfg.ExpiresIn)

	claims := authtypes.SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    u.jwtAuth.Issuer(),
			Audience:  jwt.ClaimStrings{u.jwtAuth.Audience()},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := u.jwtAuth.GenerateToken(claims, u.tokenCfg.Secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func (u *tokenUsecase) Verify(token string) (*authtypes.SessionClaims, error) {
	claims := &authtypes.SessionClaims{}
	if _, err := u.jwtAuth.ValidateTokenWithClaims(token, u.tokenCfg.Secret, claims); err != nil {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" || claims.UserID != claims.Subject {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
