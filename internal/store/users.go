// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

// ErrDuplicateEmail is returned by CreateUser when an active user already
// holds the (case-normalized) email address.
var ErrDuplicateEmail = errors.New("user with this email already exists")

const userColumns = `id, email, password_hash, role, is_active, created_at, last_login_at`

// GetUserByEmail returns the active user with the given email address.
// Returns sql.ErrNoRows if no active user matches.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? AND is_active = 1`,
		normalizeEmail(email),
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.LastLoginAt)
	return u, err
}

// GetUserByID returns the active user with the given id.
// Returns sql.ErrNoRows if no active user matches.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ? AND is_active = 1`,
		id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.LastLoginAt)
	return u, err
}

// CreateUserParams holds the fields for CreateUser.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	Role         string
}

// CreateUser inserts a new active user and returns the stored row.
// The email is lowercased before storage. Returns ErrDuplicateEmail when an
// active user with the same email exists.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (model.User, error) {
	email := normalizeEmail(arg.Email)

	if _, err := q.GetUserByEmail(ctx, email); err == nil {
		return model.User{}, ErrDuplicateEmail
	} else if !errors.Is(err, sql.ErrNoRows) {
		return model.User{}, err
	}

	var u model.User
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, role, is_active, created_at)
		VALUES (?, ?, ?, 1, ?)
		RETURNING `+userColumns,
		email, arg.PasswordHash, arg.Role, time.Now().UTC(),
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.LastLoginAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return model.User{}, ErrDuplicateEmail
		}
		return model.User{}, err
	}
	return u, nil
}

// RecordLogin sets the user's last login time to now.
func (q *Queries) RecordLogin(ctx context.Context, userID int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE users SET last_login_at = ? WHERE id = ?`,
		time.Now().UTC(), userID,
	)
	return err
}

// ListUsers returns all active users, newest first.
func (q *Queries) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE is_active = 1 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.LastLoginAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
