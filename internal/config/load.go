package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is the development-only signing secret used when no
// POSTS_AUTH_JWT_SECRET is configured. main logs a warning when it is active.
const DefaultJWTSecret = "insecure-demo-signing-secret-change-me!!"

// DefaultDemoPasswordHash is the bcrypt digest of the demo password "secret"
// for the bundled "testuser" identity.
const DefaultDemoPasswordHash = "$2b$12$EixZaYVK1fsbw1ZfbX3OXePaWxn96p36WQoeG6Lruj3vjPGga31lW"

// Load reads configuration from environment variables with the POSTS_ prefix
// (e.g. POSTS_DATABASE_URL, POSTS_AUTH_JWT_SECRET). Values not present in the
// environment fall back to the registered defaults. Returns a populated
// Config struct or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.url", "")
	v.SetDefault("database.seed", false)
	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.token_lifetime_minutes", 30)
	v.SetDefault("auth.demo_username", "testuser")
	v.SetDefault("auth.demo_password_hash", DefaultDemoPasswordHash)

	v.SetEnvPrefix("POSTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
