// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/olegiv/portfolio-go/internal/auth"
	"github.com/olegiv/portfolio-go/internal/config"
	"github.com/olegiv/portfolio-go/internal/service"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/testutil"
)

// newTestHandler creates a Handler backed by a temporary migrated database.
// The returned cleanup function should be deferred.
func newTestHandler(t *testing.T) (*Handler, *sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "portfolio-api-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}
	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cfg := &config.Config{
		DBPath:     dbPath,
		UploadsDir: t.TempDir(),
		BcryptCost: bcrypt.MinCost,
	}
	tokens := auth.NewTokenService([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	authService := service.NewAuthService(db, tokens, bcrypt.MinCost)

	h := NewHandler(db, authService, cfg, testutil.TestLogger())
	return h, db, func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}
}
