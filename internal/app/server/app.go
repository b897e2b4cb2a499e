package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"jobtracker/internal/app/server/api"
	"jobtracker/internal/app/server/config"
	"jobtracker/internal/infrastructure/migration"
	"jobtracker/internal/infrastructure/storage/postgres"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Hour
)

// SessionSweeper deletes expired sessions.
type SessionSweeper interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type App struct {
	cfg     *config.Config
	log     *slog.Logger
	storage *postgres.Storage
	server  *http.Server
	sweeper SessionSweeper
}

// New migrates the schema, connects to PostgreSQL and builds the HTTP server.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	mg := migration.NewMigration(cfg.DB, migration.DefaultEngine, log)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	storage, err := postgres.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("connect storage: %w", err)
	}

	return &App{
		cfg:     cfg,
		log:     log,
		storage: storage,
		sweeper: postgres.NewSessionRepository(storage.Pool(), log),
		server: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           api.New(storage, cfg, log),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storage.Close(); err != nil {
			a.log.Error("close storage", "error", err)
		}
	}()

	go a.sweepSessions(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", "address", a.server.Addr, "env", a.cfg.Env)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	return nil
}

func (a *App) sweepSessions(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := a.sweeper.DeleteExpired(ctx); err != nil && ctx.Err() == nil {
				a.log.Warn("sweep expired sessions", "error", err)
			}
		}
	}
}
