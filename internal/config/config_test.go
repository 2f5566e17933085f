// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"strings"
	"testing"
)

const validSecret = "Abc123!xyz-0123456789-0123456789"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORTFOLIO_JWT_SECRET", validSecret)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "./data/portfolio.db" {
		t.Errorf("unexpected default db path: %q", cfg.DBPath)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("unexpected default port: %d", cfg.ServerPort)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("unexpected default bcrypt cost: %d", cfg.BcryptCost)
	}
	if cfg.TokenTTLHours != 24 {
		t.Errorf("unexpected default token ttl: %d", cfg.TokenTTLHours)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("PORTFOLIO_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without PORTFOLIO_JWT_SECRET")
	}
}

func TestLoadShortSecret(t *testing.T) {
	t.Setenv("PORTFOLIO_JWT_SECRET", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for short secret")
	}
	if !strings.Contains(err.Error(), "at least") {
		t.Errorf("error should mention the minimum length: %v", err)
	}
}

func TestLoadKnownWeakSecret(t *testing.T) {
	t.Setenv("PORTFOLIO_JWT_SECRET", "change-me-to-32-byte-secret-key!")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for known default secret")
	}
}

func TestLoadAllowedOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORTFOLIO_ALLOWED_ORIGINS", "https://example.com,https://www.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://example.com" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestServerAddr(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORTFOLIO_SERVER_HOST", "0.0.0.0")
	t.Setenv("PORTFOLIO_SERVER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerAddr() != "0.0.0.0:9090" {
		t.Errorf("unexpected addr: %q", cfg.ServerAddr())
	}
}
