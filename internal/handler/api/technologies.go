// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

// TechnologyRequest is the request body for creating or updating a technology.
type TechnologyRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	IconURL   *string `json:"icon_url,omitempty"`
	SortOrder int64   `json:"sort_order"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (req *TechnologyRequest) validate() map[string]string {
	fieldErrors := make(map[string]string)
	if req.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if req.Category == "" {
		fieldErrors["category"] = "Category is required"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ListTechnologies handles GET /api/technologies.
func (h *Handler) ListTechnologies(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListTechnologies(r.Context())
	if err != nil {
		h.logger.Error("failed to list technologies", "error", err)
		WriteInternalError(w, "Failed to list technologies")
		return
	}
	if items == nil {
		items = []model.Technology{}
	}
	WriteSuccess(w, items)
}

// GetTechnology handles GET /api/technologies/{id}.
func (h *Handler) GetTechnology(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid technology ID", nil)
		return
	}

	item, err := h.queries.GetTechnologyByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Technology not found")
		} else {
			h.logger.Error("failed to get technology", "id", id, "error", err)
			WriteInternalError(w, "Failed to retrieve technology")
		}
		return
	}
	WriteSuccess(w, item)
}

// CreateTechnology handles POST /api/technologies.
func (h *Handler) CreateTechnology(w http.ResponseWriter, r *http.Request) {
	var req TechnologyRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	item, err := h.queries.CreateTechnology(r.Context(), store.CreateTechnologyParams{
		Name:      req.Name,
		Category:  req.Category,
		IconURL:   req.IconURL,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		h.logger.Error("failed to create technology", "error", err)
		WriteInternalError(w, "Failed to create technology")
		return
	}
	WriteCreated(w, item)
}

// UpdateTechnology handles PUT /api/technologies/{id}.
func (h *Handler) UpdateTechnology(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid technology ID", nil)
		return
	}

	var req TechnologyRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item, err := h.queries.UpdateTechnology(r.Context(), store.UpdateTechnologyParams{
		ID:        id,
		Name:      req.Name,
		Category:  req.Category,
		IconURL:   req.IconURL,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Technology not found")
		} else {
			h.logger.Error("failed to update technology", "id", id, "error", err)
			WriteInternalError(w, "Failed to update technology")
		}
		return
	}
	WriteSuccess(w, item)
}

// DeleteTechnology handles DELETE /api/technologies/{id}.
func (h *Handler) DeleteTechnology(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid technology ID", nil)
		return
	}

	deleted, err := h.queries.DeleteTechnology(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete technology", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete technology")
		return
	}
	if !deleted {
		WriteNotFound(w, "Technology not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
