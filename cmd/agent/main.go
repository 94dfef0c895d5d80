package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/iho/fxbank/internal/adapter/repository/memory"
	"github.com/iho/fxbank/internal/adapter/upstream"
	"github.com/iho/fxbank/internal/agent"
	"github.com/iho/fxbank/internal/infrastructure/config"
	"github.com/iho/fxbank/internal/infrastructure/logger"
	"github.com/iho/fxbank/internal/infrastructure/metrics"
	"github.com/iho/fxbank/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Stdout carries the frame protocol, so logs go to stderr.
	appLogger := logger.NewWithWriter(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "fxbank-agent",
	}, os.Stderr)
	log.Logger = appLogger

	client := upstream.NewClient(cfg.UpstreamBaseURL)

	m := metrics.New()
	if cfg.AgentMetricsPort != "" {
		go func() {
			addr := ":" + cfg.AgentMetricsPort
			appLogger.Info().Str("addr", addr).Msg("serving metrics")
			if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
				appLogger.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	var server *agent.Server
	elicitor := agent.NewSessionElicitor(cfg.ElicitationTimeout, func(p agent.PendingElicitation) {
		server.Notify(p)
	}).WithMetrics(m)

	transferUC := usecase.NewTransferUseCase(
		client,
		client,
		client,
		usecase.NewResolver(client, elicitor),
		usecase.NewEvaluator(client),
		memory.NewULIDGenerator(),
	)

	toolbox := agent.NewToolbox(
		usecase.NewUserUseCase(client),
		usecase.NewRateUseCase(client),
		transferUC,
	)
	server = agent.NewServer(toolbox, elicitor, appLogger, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	appLogger.Info().Str("upstream", cfg.UpstreamBaseURL).Msg("agent session started")

	if err := server.Run(ctx, os.Stdin); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("agent session failed")
	}

	appLogger.Info().Msg("agent session ended")
}
