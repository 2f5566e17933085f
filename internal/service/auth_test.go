// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/olegiv/portfolio-go/internal/auth"
	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/testutil"
)

func testAuthService(t *testing.T) (*AuthService, *auth.TokenService, func()) {
	t.Helper()
	db, cleanup := testutil.TestDB(t)
	tokens := auth.NewTokenService([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	return NewAuthService(db, tokens, bcrypt.MinCost), tokens, cleanup
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc, tokens, cleanup := testAuthService(t)
	defer cleanup()

	ctx := context.Background()
	created, err := svc.Register(ctx, "admin@example.com", "changeme!234", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.Role != model.RoleAdmin {
		t.Errorf("empty role should default to admin, got %q", created.Role)
	}

	user, token, err := svc.Authenticate(ctx, "admin@example.com", "changeme!234")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("authenticated wrong user: %d", user.ID)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify issued token: %v", err)
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID: %v", err)
	}
	if id != created.ID {
		t.Errorf("token subject should match the created user id, got %d", id)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _, cleanup := testAuthService(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := svc.Register(ctx, "admin@example.com", "changeme!234", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, err := svc.Authenticate(ctx, "admin@example.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _, cleanup := testAuthService(t)
	defer cleanup()

	// Unknown email and wrong password must be indistinguishable.
	_, _, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _, cleanup := testAuthService(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := svc.Register(ctx, "admin@example.com", "changeme!234", ""); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Register(ctx, "Admin@Example.COM", "changeme!234", "")
	if !errors.Is(err, store.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthenticateRecordsLogin(t *testing.T) {
	svc, _, cleanup := testAuthService(t)
	defer cleanup()

	ctx := context.Background()
	created, err := svc.Register(ctx, "admin@example.com", "changeme!234", "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Authenticate(ctx, "admin@example.com", "changeme!234"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}

	user, err := svc.queries.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if !user.LastLoginAt.Valid {
		t.Error("successful login should record a timestamp")
	}
}
