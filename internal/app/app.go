// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"expense-tracker/internal/auth"
	"expense-tracker/internal/config"
	"expense-tracker/internal/events"
	"expense-tracker/internal/service"
	"expense-tracker/internal/storage"
	"expense-tracker/internal/storage/postgres"
	"expense-tracker/internal/storage/sqlite"
)

// OpenStore connects to the database selected by cfg.DBDriver. The returned
// func releases it.
func OpenStore(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		if err := ensureDir(cfg.DBConn); err != nil {
			return nil, nil, err
		}
		store, err := sqlite.Open(ctx, cfg.DBConn)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				slog.Warn("Failed to close sqlite database", "error", err)
			}
		}, nil
	case config.DriverPostgres:
		pool, err := postgres.Connect(ctx, cfg.DBConn)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewStorage(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}
}

func ensureDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create database dir %s: %w", dir, err)
	}
	return nil
}

// NewEventsClient connects to the broker. It returns nil without error when
// AMQP_URL is unset.
func NewEventsClient(cfg config.Config) (*events.Client, error) {
	if cfg.AMQPURL == "" {
		slog.Info("AMQP_URL not set, propagation retries rely on the sweeper")
		return nil, nil
	}
	client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// NewService builds the service layer. client may be nil.
func NewService(cfg config.Config, store storage.Store, tokens *auth.TokenService, client *events.Client) *service.Service {
	var publisher service.PropagationPublisher
	if client != nil {
		publisher = client
	}
	return service.New(store, tokens, auth.NewPasswordHasher(cfg.BcryptCost), publisher, service.OptionsFromConfig(cfg))
}
