// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
)

// testDB creates a temporary test database.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "portfolio-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	return db, func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	// A second run against the same database must be a no-op.
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'users'`).Scan(&count)
	if err != nil {
		t.Fatalf("counting users table: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one users table, got %d", count)
	}
}

func TestMigrateAdditiveColumns(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	for _, tc := range []struct{ table, column string }{
		{"hero_section", "profile_image_url"},
		{"about_section", "profile_image_url"},
	} {
		exists, err := columnExists(db, tc.table, tc.column)
		if err != nil {
			t.Fatalf("columnExists(%s, %s): %v", tc.table, tc.column, err)
		}
		if !exists {
			t.Errorf("column %s.%s missing after migration", tc.table, tc.column)
		}
	}
}

func TestCreateUser(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	queries := New(db)

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        "Admin@Example.com",
		PasswordHash: "hash",
		Role:         "Admin",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "admin@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if !user.IsActive {
		t.Error("new user should be active")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	queries := New(db)

	if _, err := queries.CreateUser(ctx, CreateUserParams{
		Email: "dup@example.com", PasswordHash: "h", Role: "Admin",
	}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	// Same email in a different case is still a conflict.
	_, err := queries.CreateUser(ctx, CreateUserParams{
		Email: "DUP@example.com", PasswordHash: "h", Role: "Admin",
	})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestGetUserByEmailMissing(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	_, err := New(db).GetUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestRecordLogin(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	queries := New(db)

	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email: "login@example.com", PasswordHash: "h", Role: "Admin",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.LastLoginAt.Valid {
		t.Fatal("new user should have no last login")
	}

	if err := queries.RecordLogin(ctx, user.ID); err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}

	user, err = queries.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if !user.LastLoginAt.Valid {
		t.Fatal("last login not recorded")
	}
}
