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

// ProjectRequest is the request body for creating or updating a project.
type ProjectRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"image_url,omitempty"`
	Technologies []string `json:"technologies"`
	LiveURL      *string  `json:"live_url,omitempty"`
	GithubURL    *string  `json:"github_url,omitempty"`
	SortOrder    int64    `json:"sort_order"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

func (req *ProjectRequest) validate() map[string]string {
	fieldErrors := make(map[string]string)
	if req.Title == "" {
		fieldErrors["title"] = "Title is required"
	}
	if req.Description == "" {
		fieldErrors["description"] = "Description is required"
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ListProjects handles GET /api/projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	items, err := h.queries.ListProjects(r.Context())
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		WriteInternalError(w, "Failed to list projects")
		return
	}
	if items == nil {
		items = []model.Project{}
	}
	WriteSuccess(w, items)
}

// GetProject handles GET /api/projects/{id}.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid project ID", nil)
		return
	}

	item, err := h.queries.GetProjectByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Project not found")
		} else {
			h.logger.Error("failed to get project", "id", id, "error", err)
			WriteInternalError(w, "Failed to retrieve project")
		}
		return
	}
	WriteSuccess(w, item)
}

// CreateProject handles POST /api/projects.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if fieldErrors := req.validate(); fieldErrors != nil {
		WriteValidationError(w, fieldErrors)
		return
	}

	item, err := h.queries.CreateProject(r.Context(), store.CreateProjectParams{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		h.logger.Error("failed to create project", "error", err)
		WriteInternalError(w, "Failed to create project")
		return
	}
	WriteCreated(w, item)
}

// UpdateProject handles PUT /api/projects/{id}.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid project ID", nil)
		return
	}

	var req ProjectRequest
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

	item, err := h.queries.UpdateProject(r.Context(), store.UpdateProjectParams{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Technologies: req.Technologies,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		SortOrder:    req.SortOrder,
		IsActive:     isActive,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Project not found")
		} else {
			h.logger.Error("failed to update project", "id", id, "error", err)
			WriteInternalError(w, "Failed to update project")
		}
		return
	}
	WriteSuccess(w, item)
}

// DeleteProject handles DELETE /api/projects/{id}.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid project ID", nil)
		return
	}

	deleted, err := h.queries.DeleteProject(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete project", "id", id, "error", err)
		WriteInternalError(w, "Failed to delete project")
		return
	}
	if !deleted {
		WriteNotFound(w, "Project not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
