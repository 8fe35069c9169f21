package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func registered(a *JWTAuthenticator, ttl time.Duration) *jwt.RegisteredClaims {
	now := a.Now()
	return &jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    a.Issuer(),
		Audience:  jwt.ClaimStrings{a.Audience()},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func TestJWTAuthenticator_RoundTrip(t *testing.T) {
	t.Parallel()

	a := NewJWTAuthenticator("academia-bot", "academia-bot")
	tok, err := a.GenerateToken(registered(&a, time.Hour), testSecret)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = a.ValidateTokenWithClaims(tok, testSecret, claims)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestJWTAuthenticator_Rejects(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	signer := NewJWTAuthenticator("academia-bot", "academia-bot", WithClock(func() time.Time { return issued }))
	tok, err := signer.GenerateToken(registered(&signer, time.Hour), testSecret)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
		auth   JWTAuthenticator
	}{
		{
			name:   "wrong secret",
			token:  tok,
			secret: "ffffffffffffffffffffffffffffffff",
			auth:   signer,
		},
		{
			name:   "expired",
			token:  tok,
			secret: testSecret,
			auth: NewJWTAuthenticator("academia-bot", "academia-bot",
				WithClock(func() time.Time { return issued.Add(time.Hour + time.Second) })),
		},
		{
			name:   "exactly at expiry",
			token:  tok,
			secret: testSecret,
			auth: NewJWTAuthenticator("academia-bot", "academia-bot",
				WithClock(func() time.Time { return issued.Add(time.Hour) })),
		},
		{
			name:   "other issuer",
			token:  tok,
			secret: testSecret,
			auth: NewJWTAuthenticator("academia-bot", "someone-else",
				WithClock(func() time.Time { return issued })),
		},
		{
			name:   "malformed",
			token:  "not.a.jwt",
			secret: testSecret,
			auth:   signer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.auth.ValidateTokenWithClaims(tt.token, tt.secret, &jwt.RegisteredClaims{})
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTAuthenticator_RejectsUnsignedAlgorithm(t *testing.T) {
	t.Parallel()

	a := NewJWTAuthenticator("academia-bot", "academia-bot")
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, registered(&a, time.Hour))
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = a.ValidateTokenWithClaims(tok, testSecret, &jwt.RegisteredClaims{})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
