package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/config"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/middleware"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/usecase"
	"github.com/vasapolrittideah/academia-bot/shared/metrics"
	"github.com/vasapolrittideah/academia-bot/shared/validator"
)

// Usecases groups everything the HTTP layer depends on.
type Usecases struct {
	Auth    usecase.AuthUsecase
	Token   usecase.TokenUsecase
	Profile usecase.ProfileUsecase
	Chat    usecase.ChatUsecase
}

func NewRouter(
	uc Usecases,
	v *validator.Validator,
	tokenCfg config.TokenConfig,
	logger *zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(metrics.Middleware)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	authHandler := NewAuthHandler(uc.Auth, v, tokenCfg, logger)
	profileHandler := NewProfileHandler(uc.Profile, v, logger)
	chatHandler := NewChatHandler(uc.Chat, v, tokenCfg.CookieName, logger)
	requireSession := middleware.Authenticate(uc.Token, tokenCfg.CookieName, logger)

	routes := func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Get("/logout", authHandler.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireSession)
			r.Get("/profile", profileHandler.GetProfile)
			r.Post("/profile", profileHandler.UpdateProfile)
			r.Put("/profile", profileHandler.UpdateProfile)
		})

		r.Post("/chat", chatHandler.Chat)
	}

	r.Group(routes)
	r.Route("/api", routes)

	return r
}
