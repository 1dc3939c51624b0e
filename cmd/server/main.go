// Package main implements the entry point for the GiftWise API server,
// which generates AI-powered gift suggestions and manages users' saved
// gift ideas and recipient profiles.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/giftwise/giftwise-api/internal/config"
	"github.com/giftwise/giftwise-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"Run database migrations (up, down, reset, status, version, create) and exit")
	migrationName := flag.String("migration-name", "",
		"Name for a new migration (used with -migrate create)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd, *migrationName); err != nil {
			slog.Error("Migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, appLogger); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// run establishes the database connection, wires the application
// dependencies, and serves HTTP until shutdown.
func run(cfg *config.Config, appLogger *slog.Logger) error {
	ctx := context.Background()

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
