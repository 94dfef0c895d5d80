// Package http wires the bank's REST surface: roster and balance
// reads, rate administration, and the non-interactive transfer
// endpoint.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iho/fxbank/internal/adapter/http/handler"
	"github.com/iho/fxbank/internal/adapter/http/middleware"
	"github.com/iho/fxbank/internal/infrastructure/auth"
	"github.com/iho/fxbank/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	UserHandler     *handler.UserHandler
	RateHandler     *handler.RateHandler
	TransferHandler *handler.TransferHandler
	AuthHandler     *handler.AuthHandler
	HealthHandler   *handler.HealthHandler

	JWTManager       *auth.JWTManager // nil disables auth routes and claims extraction
	AuthRequired     bool
	IdempotencyStore middleware.IdempotencyStore // nil disables idempotency keys
	Metrics          *metrics.Metrics            // nil disables the metrics middleware
	RateLimiter      *middleware.RateLimiter     // nil disables rate limiting
	Logger           *middleware.LoggingMiddleware
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)

	if cfg.Logger != nil {
		r.Use(cfg.Logger.Wrap)
	} else {
		r.Use(chimiddleware.Logger)
	}

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health and operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTManager != nil {
			r.Post("/auth/login", cfg.AuthHandler.Login)
		}

		r.Group(func(r chi.Router) {
			if cfg.JWTManager != nil {
				if cfg.AuthRequired {
					r.Use(middleware.AuthMiddleware(cfg.JWTManager))
				} else {
					r.Use(middleware.OptionalAuth(cfg.JWTManager))
				}
			}

			// Users
			r.Route("/users", func(r chi.Router) {
				r.Get("/", cfg.UserHandler.List)
				r.Get("/lookup", cfg.UserHandler.Lookup)
				r.Get("/{id}", cfg.UserHandler.Get)
			})
			r.Get("/me", cfg.UserHandler.Me)

			// Exchange rate
			r.Route("/fx", func(r chi.Router) {
				r.Get("/", cfg.RateHandler.Get)
				r.Put("/", cfg.RateHandler.Set)
			})

			// Transfers
			r.Route("/transfer", func(r chi.Router) {
				if cfg.IdempotencyStore != nil {
					r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore).Wrap)
				}

				r.Post("/", cfg.TransferHandler.Create)
				r.Post("/check", cfg.TransferHandler.Check)
			})
		})
	})

	return r
}
