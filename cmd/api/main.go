// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"expense-tracker/internal/app"
	"expense-tracker/internal/auth"
	"expense-tracker/internal/bot"
	"expense-tracker/internal/config"
	"expense-tracker/internal/handler"
	"expense-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

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

	tokenService := auth.NewTokenService(cfg)
	svc := app.NewService(cfg, store, tokenService, eventsClient)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.New(svc), middleware.NewAuthMiddleware(tokenService), cfg.RequestTimeout)

	// Telegram webhook
	if cfg.TelegramBotToken != "" && cfg.TelegramWebhookURL != "" {
		botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			slog.Error("Failed to init telegram bot", "error", err)
			os.Exit(1)
		}
		webhookURL := strings.TrimSuffix(cfg.TelegramWebhookURL, "/") + "/telegram"
		wh, err := tgbotapi.NewWebhook(webhookURL)
		if err != nil {
			slog.Error("Invalid telegram webhook url", "error", err, "url", webhookURL)
			os.Exit(1)
		}
		if _, err := botAPI.Request(wh); err != nil {
			slog.Error("Failed to set telegram webhook", "error", err)
			os.Exit(1)
		}
		router.POST("/telegram", handler.TelegramWebhook(bot.New(svc, botAPI).HandleUpdate))
		slog.Info("Telegram webhook set", "url", webhookURL, "bot", botAPI.Self.UserName)
	}

	srv := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server started",
			"addr", cfg.ServerPort,
			"driver", cfg.DBDriver,
			"consistency_mode", cfg.ConsistencyMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
