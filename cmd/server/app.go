package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/okravchuk/worddrill/internal/config"
	"github.com/okravchuk/worddrill/internal/platform/memstore"
	"github.com/okravchuk/worddrill/internal/platform/postgres"
	"github.com/okravchuk/worddrill/internal/platform/sqlite"
	"github.com/okravchuk/worddrill/internal/progress"
	"github.com/okravchuk/worddrill/internal/sentence"
	"github.com/okravchuk/worddrill/internal/service"
	"github.com/okravchuk/worddrill/internal/session"
	"github.com/okravchuk/worddrill/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	kv      store.Store
	session *session.Session

	dictService *service.DictionaryService
	sentences   *sentence.Index

	// closers holds store resources that need releasing on shutdown,
	// in close order.
	closers []io.Closer
}

// newApplication opens the configured store backend, runs migrations
// where the backend needs them, and wires the service graph.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	kv, err := app.setupStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	app.kv = kv

	srs := progress.NewSrsStore(kv, logger)
	unknowns := progress.NewUnknownQueue(kv, logger)
	app.session = session.New(srs, unknowns, logger)
	app.sentences = sentence.NewIndex(context.Background(), kv, logger)
	app.dictService = service.NewDictionaryService(app.session, srs, app.sentences, logger)

	return app, nil
}

// setupStore opens the backend selected by the configuration.
func (app *application) setupStore(cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.Store.Backend {
	case "postgres":
		db, err := setupAppDatabase(cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := runMigrations(db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
		app.closers = append(app.closers, db)
		return postgres.NewKVStore(db, logger), nil

	case "sqlite":
		kv, err := sqlite.Open(cfg.Store.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		app.closers = append(app.closers, kv)
		return kv, nil

	case "memory":
		logger.Warn("Using in-memory store; progress will not survive restarts")
		return memstore.New(), nil

	default:
		return nil, fmt.Errorf("unknown store backend: %q", cfg.Store.Backend)
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	for _, c := range app.closers {
		if err := c.Close(); err != nil {
			app.logger.Error("Failed to close store resource", slog.String("error", err.Error()))
		}
	}
}
