// Package main implements the entry point for the posts API server, a
// JWT-gated CRUD service over users and their posts.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"posts-api/internal/config"
	"posts-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run performs all startup steps and blocks serving HTTP until shutdown.
func run() error {
	// A missing .env file is fine; the environment itself may carry the
	// configuration.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logr, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	logr.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("seed", cfg.Database.Seed))

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		logr.Warn("Using the built-in development signing secret; set POSTS_AUTH_JWT_SECRET in production")
	}

	ctx := context.Background()

	db, err := setupAppDatabase(cfg, logr)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, logr); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(ctx, cfg, logr, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if cfg.Database.Seed {
		if err := app.seedSampleData(ctx); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
