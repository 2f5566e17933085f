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

// AISectionRequest is the request body for creating or updating an AI section.
// Technologies and ProgressItems are optional lists: omitting them stores
// NULL, an empty array stores an empty list.
type AISectionRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	SectionType   string   `json:"section_type"`
	Status        *string  `json:"status,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	ProgressItems []string `json:"progress_items,omitempty"`
	SortOrder     int64    `json:"sort_order"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

func (req *AISectionRequest) validate() map[string]string {
	fieldErrors := make(map[string]string)
	if req.Title == "" {
		fieldErrors["title"] = "Title is required"
	}
	if req.SectionType == "" {
		fieldErrors["section_type"] = "Section type is required"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ListAISections handles GET /api/ai-sections.
func (h *Handler) ListAISections(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListAISections(r.Context())
	if err != nil {
		h.logger.Error("failed to list AI sections", "error", err)
		WriteInternalError(w, "Failed to list AI sections")
		return
	}
	if items == nil {
		items = []model.AISection{}
	}
	WriteSuccess(w, items)
}

// GetAISection handles GET /api/ai-sections/{id}.
func (h *Handler) GetAISection(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid AI section ID", nil)
		return
	}

	item, err := h.queries.GetAISectionByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "AI section not found")
		} else {
			h.logger.Error("failed to get AI section", "id", id, "error", err)
			WriteInternalError(w, "Failed to retrieve AI section")
		}
		return
	}
	WriteSuccess(w, item)
}

// CreateAISection handles POST /api/ai-sections.
func (h *Handler) CreateAISection(w http.ResponseWriter, r *http.Request) {
	var req AISectionRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	item, err := h.queries.CreateAISection(r.Context(), store.CreateAISectionParams{
		Title:         req.Title,
		Content:       req.Content,
		SectionType:   req.SectionType,
		Status:        req.Status,
		Technologies:  req.Technologies,
		ProgressItems: req.ProgressItems,
		SortOrder:     req.SortOrder,
	})
	if err != nil {
		h.logger.Error("failed to create AI section", "error", err)
		WriteInternalError(w, "Failed to create AI section")
		return
	}
	WriteCreated(w, item)
}

// UpdateAISection handles PUT /api/ai-sections/{id}.
func (h *Handler) UpdateAISection(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid AI section ID", nil)
		return
	}

	var req AISectionRequest
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

	item, err := h.queries.UpdateAISection(r.Context(), store.UpdateAISectionParams{
		ID:            id,
		Title:         req.Title,
		Content:       req.Content,
		SectionType:   req.SectionType,
		Status:        req.Status,
		Technologies:  req.Technologies,
		ProgressItems: req.ProgressItems,
		SortOrder:     req.SortOrder,
		IsActive:      isActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "AI section not found")
		} else {
			h.logger.Error("failed to update AI section", "id", id, "error", err)
			WriteInternalError(w, "Failed to update AI section")
		}
		return
	}
	WriteSuccess(w, item)
}

// DeleteAISection handles DELETE /api/ai-sections/{id}.
func (h *Handler) DeleteAISection(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid AI section ID", nil)
		return
	}

	deleted, err := h.queries.DeleteAISection(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete AI section", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete AI section")
		return
	}
	if !deleted {
		WriteNotFound(w, "AI section not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
