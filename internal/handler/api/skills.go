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

// SkillRequest is the request body for creating or updating a skill.
type SkillRequest struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	ProficiencyLevel int64   `json:"proficiency_level"`
	IconURL          *string `json:"icon_url,omitempty"`
	SortOrder        int64   `json:"sort_order"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

func (req *SkillRequest) validate() map[string]string {
	fieldErrors := make(map[string]string)
	if req.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if req.ProficiencyLevel < 0 || req.ProficiencyLevel > 100 {
		fieldErrors["proficiency_level"] = "Proficiency level must be between 0 and 100"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ListSkills handles GET /api/skills.
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListSkills(r.Context())
	if err != nil {
		h.logger.Error("failed to list skills", "error", err)
		WriteInternalError(w, "Failed to list skills")
		return
	}
	if items == nil {
		items = []model.Skill{}
	}
	WriteSuccess(w, items)
}

// GetSkill handles GET /api/skills/{id}.
func (h *Handler) GetSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid skill ID", nil)
		return
	}

	item, err := h.queries.GetSkillByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Skill not found")
		} else {
			h.logger.Error("failed to get skill", "id", id, "error", err)
			WriteInternalError(w, "Failed to retrieve skill")
		}
		return
	}
	WriteSuccess(w, item)
}

// CreateSkill handles POST /api/skills.
func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	item, err := h.queries.CreateSkill(r.Context(), store.CreateSkillParams{
		Name:             req.Name,
		Category:         req.Category,
		ProficiencyLevel: req.ProficiencyLevel,
		IconURL:          req.IconURL,
		SortOrder:        req.SortOrder,
	})
	if err != nil {
		h.logger.Error("failed to create skill", "error", err)
		WriteInternalError(w, "Failed to create skill")
		return
	}
	WriteCreated(w, item)
}

// UpdateSkill handles PUT /api/skills/{id}.
func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid skill ID", nil)
		return
	}

	var req SkillRequest
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

	item, err := h.queries.UpdateSkill(r.Context(), store.UpdateSkillParams{
		ID:               id,
		Name:             req.Name,
		Category:         req.Category,
		ProficiencyLevel: req.ProficiencyLevel,
		IconURL:          req.IconURL,
		SortOrder:        req.SortOrder,
		IsActive:         isActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Skill not found")
		} else {
			h.logger.Error("failed to update skill", "id", id, "error", err)
			WriteInternalError(w, "Failed to update skill")
		}
		return
	}
	WriteSuccess(w, item)
}

// DeleteSkill handles DELETE /api/skills/{id}.
func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid skill ID", nil)
		return
	}

	deleted, err := h.queries.DeleteSkill(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete skill", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete skill")
		return
	}
	if !deleted {
		WriteNotFound(w, "Skill not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
