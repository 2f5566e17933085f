// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service contains application services composed from the store
// and auth primitives.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/olegiv/portfolio-go/internal/auth"
	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

// ErrInvalidCredentials is returned for any failed authentication. Unknown
// email and wrong password are deliberately indistinguishable to the
// caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService authenticates administrators and registers new accounts.
type AuthService struct {
	queries    *store.Queries
	tokens     *auth.TokenService
	bcryptCost int
}

// NewAuthService creates an AuthService.
func NewAuthService(db *sql.DB, tokens *auth.TokenService, bcryptCost int) *AuthService {
	return &AuthService{
		queries:    store.New(db),
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Authenticate verifies the credentials and, on success, records the login
// and issues a bearer token. Any credential failure returns
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (model.User, string, error) {
	user, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, "", ErrInvalidCredentials
		}
		return model.User{}, "", fmt.Errorf("looking up user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return model.User{}, "", ErrInvalidCredentials
	}

	if err := s.queries.RecordLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the timestamp is best effort.
		slog.Error("failed to record login", "user_id", user.ID, "error", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return model.User{}, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, token, nil
}

// Register creates a new account with a hashed password. An empty role
// defaults to Admin. Returns store.ErrDuplicateEmail on conflict.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (model.User, error) {
	if role == "" {
		role = model.RoleAdmin
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hashing password: %w", err)
	}

	return s.queries.CreateUser(ctx, store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
}
