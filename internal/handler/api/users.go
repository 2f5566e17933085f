// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import "net/http"

// ListUsers handles GET /api/users. Requires a valid bearer token.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.queries.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		WriteInternalError(w, "Failed to list users")
		return
	}
	WriteSuccess(w, users)
}
