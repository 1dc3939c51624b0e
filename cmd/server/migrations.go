package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/giftwise/giftwise-api/internal/config"
)

const (
	// migrationsDir is the relative path to the SQL migration files.
	migrationsDir = "migrations"

	// migrationTableName is the table goose uses to record applied versions.
	migrationTableName = "schema_migrations"
)

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct{}

// Printf implements the goose.Logger Printf method by forwarding messages to slog.Info.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages to slog.Error.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

// runMigrations executes the requested goose migration command against the
// configured database and returns once the command completes.
func runMigrations(cfg *config.Config, command, migrationName string) error {
	// A correlation ID on every log line lets the whole operation be traced.
	migrationLogger := slog.Default().With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	startTime := time.Now()
	migrationLogger.Info("Starting migration operation",
		"operation", fmt.Sprintf("goose %s", command))

	goose.SetLogger(&slogGooseLogger{})

	if cfg.Database.URL == "" {
		migrationLogger.Error("Database URL is empty",
			"resolution", "check GIFTWISE_DATABASE_URL or the config file")
		return fmt.Errorf("database URL is empty: check your configuration")
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			migrationLogger.Error("Error closing database connection", "error", closeErr)
		}
		migrationLogger.Info("Migration operation completed",
			"duration_ms", time.Since(startTime).Milliseconds())
	}()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	migrationsDirPath, err := resolveMigrationsDir()
	if err != nil {
		return err
	}
	migrationLogger.Info("Using migrations directory", "path", migrationsDirPath)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	goose.SetTableName(migrationTableName)

	switch command {
	case "up":
		err = goose.Up(db, migrationsDirPath)
	case "down":
		err = goose.Down(db, migrationsDirPath)
	case "reset":
		err = goose.Reset(db, migrationsDirPath)
	case "status":
		err = goose.Status(db, migrationsDirPath)
	case "version":
		err = goose.Version(db, migrationsDirPath)
	case "create":
		if migrationName == "" {
			return fmt.Errorf("migration name is required for 'create' command")
		}
		err = goose.Create(db, migrationsDirPath, migrationName, "sql")
	default:
		return fmt.Errorf(
			"unknown migration command: %s (expected up, down, reset, status, version, or create)",
			command,
		)
	}

	if err != nil {
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	migrationLogger.Info("Migration command executed successfully")
	return nil
}

// resolveMigrationsDir locates the migrations directory relative to the
// working directory.
func resolveMigrationsDir() (string, error) {
	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		return "", fmt.Errorf("could not resolve migrations directory: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("migrations directory not found at %s", absPath)
	}

	return absPath, nil
}
