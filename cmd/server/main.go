package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/fxbank/internal/adapter/http"
	"github.com/iho/fxbank/internal/adapter/http/handler"
	"github.com/iho/fxbank/internal/adapter/http/middleware"
	"github.com/iho/fxbank/internal/adapter/repository/memory"
	redisRepo "github.com/iho/fxbank/internal/adapter/repository/redis"
	"github.com/iho/fxbank/internal/domain"
	"github.com/iho/fxbank/internal/infrastructure/auth"
	"github.com/iho/fxbank/internal/infrastructure/config"
	"github.com/iho/fxbank/internal/infrastructure/logger"
	"github.com/iho/fxbank/internal/infrastructure/metrics"
	"github.com/iho/fxbank/internal/infrastructure/redis"
	"github.com/iho/fxbank/internal/usecase"
)

// declineElicitor refuses every question. REST callers must spell out
// the full transfer, so a question here means a missing to_currency
// that the handler should already have rejected.
type declineElicitor struct{}

func (declineElicitor) Elicit(context.Context, domain.ChoiceRequest) (domain.ChoiceResponse, error) {
	return domain.ChoiceResponse{Action: domain.ChoiceDecline}, nil
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "fxbank-server",
	})
	log.Logger = appLogger

	ctx := context.Background()

	// In-memory ledger seeded with the fixed roster. Nothing survives a
	// restart.
	store := memory.NewStore(memory.SeedUsers()...)
	rates := memory.NewRates(memory.DefaultRate())
	idGen := memory.NewULIDGenerator()

	m := metrics.New()
	m.ExchangeRate.Set(memory.DefaultRate().InexactFloat64())

	// Redis is optional; without it transfer requests simply have no
	// idempotency keys.
	var idempotencyStore middleware.IdempotencyStore
	var healthHandler *handler.HealthHandler
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient, cfg.IdempotencyTTL).WithMetrics(m)
		healthHandler = handler.NewHealthHandler(redisClient)
		log.Info().Msg("connected to redis")
	} else {
		healthHandler = handler.NewHealthHandler(nil)
	}

	// The HTTP surface never prompts, so the resolver gets an elicitor
	// that declines every round.
	resolver := usecase.NewResolver(store, declineElicitor{})
	eval := usecase.NewEvaluator(rates)

	userUC := usecase.NewUserUseCase(store)
	rateUC := usecase.NewRateUseCase(rates)
	transferUC := usecase.NewTransferUseCase(store, rates, store, resolver, eval, idGen)

	var jwtManager *auth.JWTManager
	if cfg.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		UserHandler:      handler.NewUserHandler(userUC),
		RateHandler:      handler.NewRateHandler(rateUC, m),
		TransferHandler:  handler.NewTransferHandler(transferUC, m),
		AuthHandler:      handler.NewAuthHandler(userUC, jwtManager, m),
		HealthHandler:    healthHandler,
		JWTManager:       jwtManager,
		AuthRequired:     cfg.AuthEnabled,
		IdempotencyStore: idempotencyStore,
		Metrics:          m,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Logger:           middleware.NewLoggingMiddleware(appLogger),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
