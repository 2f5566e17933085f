// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/olegiv/portfolio-go/internal/middleware"
	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/service"
	"github.com/olegiv/portfolio-go/internal/store"
)

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the request body for POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// AuthResponse is returned on successful login or registration.
type AuthResponse struct {
	Token string     `json:"token,omitempty"`
	User  model.User `json:"user"`
}

// validateCredentials checks the shared email/password constraints.
// Returns nil when valid, otherwise a map of field errors.
func validateCredentials(email, password string) map[string]string {
	fieldErrors := make(map[string]string)
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		fieldErrors["email"] = "A valid email address is required"
	}
	if len(password) < 8 {
		fieldErrors["password"] = "Password must be at least 8 characters"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteBadRequest(w, "Email and password are required", nil)
		return
	}

	user, token, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteUnauthorized(w, "Invalid email or password")
			return
		}
		h.logger.Error("login failed", "error", err)
		WriteInternalError(w, "Login failed")
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID, "email", user.Email)
	WriteSuccess(w, AuthResponse{Token: token, User: user})
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if fieldErrors := validateCredentials(req.Email, req.Password); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	user, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			WriteConflict(w, "Email already registered", map[string]string{"email": "already exists"})
			return
		}
		h.logger.Error("registration failed", "error", err)
		WriteInternalError(w, "Registration failed")
		return
	}

	h.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	WriteCreated(w, AuthResponse{User: user})
}

// Me handles GET /api/auth/me. Requires a valid bearer token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.queries.GetUserByID(r.Context(), userID)
	if err != nil {
		// The token may outlive the account.
		WriteUnauthorized(w, "Authentication required")
		return
	}

	WriteSuccess(w, user)
}
