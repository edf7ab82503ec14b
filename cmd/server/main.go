// Package main implements the entry point for the worddrill server,
// which drives tabular vocabulary ingestion, spaced-repetition review
// sessions, and unknown-word training over an HTTP API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/okravchuk/worddrill/internal/config"
	"github.com/okravchuk/worddrill/internal/domain"
	"github.com/okravchuk/worddrill/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", slog.String("error", err.Error()))
	}
}

// initializeApp loads configuration, sets up logging, opens the
// configured store backend, and wires the application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("store_backend", cfg.Store.Backend))

	if len(cfg.SRS.Intervals) > 0 {
		domain.ReviewIntervals = cfg.SRS.Intervals
		domain.MaxStage = len(cfg.SRS.Intervals)
		appLogger.Info("Review interval table overridden",
			slog.Int("stages", domain.MaxStage))
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}
	return app, nil
}
