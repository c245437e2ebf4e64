package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
)

// migrationsDir is the default location of the goose migration files,
// relative to the working directory the server is started from.
const migrationsDir = "migrations"

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct{}

// Printf forwards informational goose output to slog.Info.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

// Fatalf forwards goose failures to slog.Error. Unlike the standard Fatalf
// behavior it does NOT call os.Exit, so main can handle application exit
// consistently.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}

// runMigrations applies all pending goose migrations against db.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	migrationLogger := logger.With(slog.String("component", "migrations"))

	goose.SetLogger(&slogGooseLogger{})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	dir, err := resolveMigrationsDir()
	if err != nil {
		return err
	}
	migrationLogger.Info("Applying pending migrations", slog.String("dir", dir))

	start := time.Now()
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration command 'up' failed: %w", err)
	}

	migrationLogger.Info("Migrations applied",
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// resolveMigrationsDir locates the migrations directory relative to the
// working directory.
func resolveMigrationsDir() (string, error) {
	abs, err := filepath.Abs(migrationsDir)
	if err != nil {
		return "", fmt.Errorf("could not resolve migrations directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("migrations directory not found at %s", abs)
	}
	return abs, nil
}
