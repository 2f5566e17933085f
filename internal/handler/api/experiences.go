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

// ExperienceRequest is the request body for creating or updating an experience.
type ExperienceRequest struct {
	Year         string   `json:"year"`
	Role         string   `json:"role"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	SortOrder    int64    `json:"sort_order"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

func (req *ExperienceRequest) validate() map[string]string {
	fieldErrors := make(map[string]string)
	if req.Role == "" {
		fieldErrors["role"] = "Role is required"
	}
	if req.Company == "" {
		fieldErrors["company"] = "Company is required"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ListExperiences handles GET /api/experiences.
func (h *Handler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListExperiences(r.Context())
	if err != nil {
		h.logger.Error("failed to list experiences", "error", err)
		WriteInternalError(w, "Failed to list experiences")
		return
	}
	if items == nil {
		items = []model.Experience{}
	}
	WriteSuccess(w, items)
}

// GetExperience handles GET /api/experiences/{id}.
func (h *Handler) GetExperience(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid experience ID", nil)
		return
	}

	item, err := h.queries.GetExperienceByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Experience not found")
		} else {
			h.logger.Error("failed to get experience", "id", id, "error", err)
			WriteInternalError(w, "Failed to retrieve experience")
		}
		return
	}
	WriteSuccess(w, item)
}

// CreateExperience handles POST /api/experiences.
func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var req ExperienceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	item, err := h.queries.CreateExperience(r.Context(), store.CreateExperienceParams{
		Year:         req.Year,
		Role:         req.Role,
		Company:      req.Company,
		Description:  req.Description,
		Technologies: req.Technologies,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		h.logger.Error("failed to create experience", "error", err)
		WriteInternalError(w, "Failed to create experience")
		return
	}
	WriteCreated(w, item)
}

// UpdateExperience handles PUT /api/experiences/{id}.
func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid experience ID", nil)
		return
	}

	var req ExperienceRequest
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

	item, err := h.queries.UpdateExperience(r.Context(), store.UpdateExperienceParams{
		ID:           id,
		Year:         req.Year,
		Role:         req.Role,
		Company:      req.Company,
		Description:  req.Description,
		Technologies: req.Technologies,
		SortOrder:    req.SortOrder,
		IsActive:     isActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Experience not found")
		} else {
			h.logger.Error("failed to update experience", "id", id, "error", err)
			WriteInternalError(w, "Failed to update experience")
		}
		return
	}
	WriteSuccess(w, item)
}

// DeleteExperience handles DELETE /api/experiences/{id}.
func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid experience ID", nil)
		return
	}

	deleted, err := h.queries.DeleteExperience(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete experience", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete experience")
		return
	}
	if !deleted {
		WriteNotFound(w, "Experience not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
