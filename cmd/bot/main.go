// cmd/bot/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"expense-tracker/internal/app"
	"expense-tracker/internal/auth"
	"expense-tracker/internal/bot"
	"expense-tracker/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()
	cfg.SetupLogger()

	if cfg.TelegramBotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := app.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open database", "error", err, "driver", cfg.DBDriver)
		os.Exit(1)
	}
	defer closeStore()

	svc := app.NewService(cfg, store, auth.NewTokenService(cfg), nil)

	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		slog.Error("Failed to init telegram bot", "error", err)
		os.Exit(1)
	}
	// long polling gets nothing while a webhook is registered
	if _, err := botAPI.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		slog.Warn("Failed to delete telegram webhook", "error", err)
	}
	slog.Info("Bot started", "bot", botAPI.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := botAPI.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		botAPI.StopReceivingUpdates()
	}()

	if err := bot.New(svc, botAPI).Run(ctx, updates); err != nil {
		slog.Error("Bot stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Bot stopped")
}
