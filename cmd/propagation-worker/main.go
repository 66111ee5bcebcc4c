// cmd/propagation-worker/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"expense-tracker/internal/app"
	"expense-tracker/internal/auth"
	"expense-tracker/internal/config"
	"expense-tracker/internal/worker"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()
	cfg.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := app.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open database", "error", err, "driver", cfg.DBDriver)
		os.Exit(1)
	}
	defer closeStore()

	eventsClient, err := app.NewEventsClient(cfg)
	if err != nil {
		slog.Error("Failed to connect to AMQP", "error", err)
		os.Exit(1)
	}
	if eventsClient != nil {
		defer eventsClient.Close()
	}

	svc := app.NewService(cfg, store, auth.NewTokenService(cfg), eventsClient)
	w := worker.NewPropagationWorker(svc, cfg.PropagationSweepInterval, cfg.PropagationStaleAfter, 0)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.RunSweeper(gctx)
	})
	if eventsClient != nil {
		g.Go(func() error {
			return eventsClient.ConsumePropagationRetries(gctx, w.HandleRetryMessage)
		})
	}

	slog.Info("Propagation worker started",
		"sweep_interval", cfg.PropagationSweepInterval,
		"stale_after", cfg.PropagationStaleAfter,
		"amqp", eventsClient != nil)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Propagation worker stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Propagation worker stopped")
}
