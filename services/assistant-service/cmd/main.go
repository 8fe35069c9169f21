package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/config"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/handler"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/repository"
	"github.com/vasapolrittideah/academia-bot/services/assistant-service/internal/usecase"
	"github.com/vasapolrittideah/academia-bot/shared/auth"
	"github.com/vasapolrittideah/academia-bot/shared/database"
	"github.com/vasapolrittideah/academia-bot/shared/logger"
	"github.com/vasapolrittideah/academia-bot/shared/provider"
	"github.com/vasapolrittideah/academia-bot/shared/security"
	"github.com/vasapolrittideah/academia-bot/shared/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Env)

	security.Configure(security.Params{
		TimeCost:    cfg.Password.TimeCost,
		MemoryCost:  cfg.Password.MemoryCost,
		Parallelism: cfg.Password.Parallelism,
	})

	ctx := context.Background()

	var (
		userRepo  repository.UserRepository
		connector *database.MongoConnector
	)
	switch cfg.Database.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("using in-memory user store, data will not survive a restart")
		userRepo = repository.NewUserMemoryRepository()
	default:
		connector = database.NewMongoConnector(log, cfg.Database.URI, cfg.Database.Name, cfg.Database.ConnectTimeout)
		db, err := connector.Database(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}

		userRepo, err = repository.NewUserMongoRepository(ctx, db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize user repository")
		}
	}

	v, err := validator.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize validator")
	}

	gemini, err := provider.NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize gemini client")
	}

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer)
	tokenUsecase := usecase.NewTokenUsecase(jwtAuth, cfg.Token)
	profileUsecase := usecase.NewProfileUsecase(userRepo)

	router := handler.NewRouter(handler.Usecases{
		Auth:    usecase.NewAuthUsecase(userRepo, tokenUsecase, log),
		Token:   tokenUsecase,
		Profile: profileUsecase,
		Chat:    usecase.NewChatUsecase(tokenUsecase, profileUsecase, gemini),
	}, v, cfg.Token, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("assistant service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if connector != nil {
		if err := connector.Disconnect(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from database")
		}
	}

	log.Info().Msg("server stopped")
}
