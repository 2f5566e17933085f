// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models shared across the application:
// users, portfolio content sections and the event log entry.
package model

import (
	"database/sql"
	"time"
)

// RoleAdmin is the default role assigned to registered users.
const RoleAdmin = "Admin"

// User represents an administrator account.
type User struct {
	ID           int64        `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Never expose in JSON
	Role         string       `json:"role"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	LastLoginAt  sql.NullTime `json:"-"`
}

// LastLogin returns the last login time, or nil if the user never logged in.
func (u *User) LastLogin() *time.Time {
	if !u.LastLoginAt.Valid {
		return nil
	}
	return &u.LastLoginAt.Time
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
