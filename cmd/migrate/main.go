// cmd/migrate/main.go
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"expense-tracker/internal/config"
	"expense-tracker/internal/storage/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

const usage = `Usage: migrate [up|down|status|version]

Applies the embedded migrations for DB_DRIVER to DATABASE_URL.`

func main() {
	_ = godotenv.Load()
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	cfg := config.MustLoad()
	cfg.SetupLogger()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	driverName := "pgx"
	if cfg.DBDriver == config.DriverSQLite {
		driverName = "sqlite"
	}
	db, err := sql.Open(driverName, cfg.DBConn)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	provider, err := migrations.NewProvider(cfg.DBDriver, db)
	if err != nil {
		slog.Error("Failed to load migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			slog.Error("Migrations failed", "error", err)
			os.Exit(1)
		}
		for _, r := range results {
			slog.Info("Migration applied", "version", r.Source.Version, "file", r.Source.Path, "duration", r.Duration)
		}
		slog.Info("Migrations applied", "count", len(results))
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			slog.Error("Rollback failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Migration rolled back", "version", r.Source.Version, "file", r.Source.Path)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			slog.Error("Failed to read migration status", "error", err)
			os.Exit(1)
		}
		for _, s := range statuses {
			slog.Info("Migration", "version", s.Source.Version, "file", s.Source.Path, "state", s.State, "applied_at", s.AppliedAt)
		}
	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			slog.Error("Failed to read database version", "error", err)
			os.Exit(1)
		}
		slog.Info("Database version", "version", v)
	default:
		flag.Usage()
		os.Exit(2)
	}
}
