// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for bearer-token
// authentication, login rate limiting and CORS.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/olegiv/portfolio-go/internal/auth"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyClaims is the context key for the verified token claims.
const ContextKeyClaims ContextKey = "claims"

// apiError is the JSON error envelope shared with the handler package.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeAuthError writes a JSON error response.
func writeAuthError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	var e apiError
	e.Error.Code = code
	e.Error.Message = message
	_ = json.NewEncoder(w).Encode(e)
}

// RequireAuth creates middleware that validates the Authorization header's
// bearer token and stores its claims in the request context. Every failure
// mode answers with the same 401 body; which check failed is not revealed.
func RequireAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := bearerClaims(r, tokens)
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerClaims extracts and verifies the bearer token from the request.
func bearerClaims(r *http.Request, tokens *auth.TokenService) (*auth.Claims, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return nil, false
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// GetClaims retrieves the verified token claims from the request context.
// Returns nil if the request is unauthenticated.
func GetClaims(r *http.Request) *auth.Claims {
	claims, ok := r.Context().Value(ContextKeyClaims).(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
