// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"PORTFOLIO_DB_PATH" envDefault:"./data/portfolio.db"`
	JWTSecret  string `env:"PORTFOLIO_JWT_SECRET,required"`
	ServerHost string `env:"PORTFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"PORTFOLIO_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"PORTFOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"PORTFOLIO_UPLOADS_DIR" envDefault:"./uploads"`

	// Auth configuration
	BcryptCost    int `env:"PORTFOLIO_BCRYPT_COST" envDefault:"12"`      // bcrypt work factor
	TokenTTLHours int `env:"PORTFOLIO_TOKEN_TTL_HOURS" envDefault:"24"` // bearer token lifetime

	// CORS configuration
	AllowedOrigins []string `env:"PORTFOLIO_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// Seeding configuration
	DoSeed bool `env:"PORTFOLIO_DO_SEED" envDefault:"false"` // Enable default admin seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinJWTSecretLength is the minimum required length for the JWT signing
// secret. HS256 requires a 256-bit (32 byte) key.
const MinJWTSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Refuse to start with key material too short for HS256
	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("PORTFOLIO_JWT_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinJWTSecretLength, len(cfg.JWTSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.JWTSecret == weak {
			return nil, fmt.Errorf("PORTFOLIO_JWT_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.JWTSecret) {
		slog.Warn("PORTFOLIO_JWT_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
