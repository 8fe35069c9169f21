package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/payload"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/usecase"
	authtypes "github.com/vasapolrittideah/academia-bot/services/assistant-service/pkg/types"
	"github.com/vasapolrittideah/academia-bot/shared/utilities"
)

type contextKey struct{}

var userClaimsKey = contextKey{}

// TokenFromRequest returns the bearer token, falling back to the session cookie.
func TokenFromRequest(r *http.Request, cookieName string) (string, bool) {
	if token, ok := utilities.BearerToken(r); ok {
		return token, true
	}

	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value, true
	}

	return "", false
}

// Authenticate rejects requests without a valid session token and stores the
// verified claims in the request context.
func Authenticate(tokenUsecase usecase.TokenUsecase, cookieName string, logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := TokenFromRequest(r, cookieName)
			if !ok {
				utilities.WriteJSON(w, http.StatusUnauthorized, payload.ErrorResponse{Error: "Authorization token is missing"})
				return
			}

			claims, err := tokenUsecase.Verify(token)
			if err != nil {
				logger.Debug().Err(err).Str("path", r.URL.Path).Msg("rejected session token")
				utilities.WriteJSON(w, http.StatusUnauthorized, payload.ErrorResponse{Error: "Unauthorized"})
				return
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (*authtypes.SessionClaims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(*authtypes.SessionClaims)
	return claims, ok
}
