// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/olegiv/portfolio-go/internal/model"
)

// Singleton section handlers. Each GET returns 404 until the first write;
// each PUT replaces the entire row. The store pins the row id and stamps
// updated_at, so request bodies are decoded straight into the model types.

// GetHero handles GET /api/hero.
func (h *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, err := h.queries.GetHeroSection(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Hero section not configured")
		} else {
			h.logger.Error("failed to get hero section", "error", err)
			WriteInternalError(w, "Failed to retrieve hero section")
		}
		return
	}
	WriteSuccess(w, hero)
}

// UpdateHero handles PUT /api/hero.
func (h *Handler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var hero model.HeroSection
	if err := decodeJSON(r, &hero); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if hero.Name == "" || hero.Role == "" {
		WriteValidationError(w, map[string]string{"name": "Name and role are required"})
		return
	}

	stored, err := h.queries.UpsertHeroSection(r.Context(), hero)
	if err != nil {
		h.logger.Error("failed to upsert hero section", "error", err)
		WriteInternalError(w, "Failed to save hero section")
		return
	}
	WriteSuccess(w, stored)
}

// GetAbout handles GET /api/about.
func (h *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.queries.GetAboutSection(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "About section not configured")
		} else {
			h.logger.Error("failed to get about section", "error", err)
			WriteInternalError(w, "Failed to retrieve about section")
		}
		return
	}
	WriteSuccess(w, about)
}

// UpdateAbout handles PUT /api/about.
func (h *Handler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var about model.AboutSection
	if err := decodeJSON(r, &about); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if about.AboutText == "" {
		WriteValidationError(w, map[string]string{"about_text": "About text is required"})
		return
	}

	stored, err := h.queries.UpsertAboutSection(r.Context(), about)
	if err != nil {
		h.logger.Error("failed to upsert about section", "error", err)
		WriteInternalError(w, "Failed to save about section")
		return
	}
	WriteSuccess(w, stored)
}

// GetContact handles GET /api/contact.
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.queries.GetContactInfo(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Contact info not configured")
		} else {
			h.logger.Error("failed to get contact info", "error", err)
			WriteInternalError(w, "Failed to retrieve contact info")
		}
		return
	}
	WriteSuccess(w, contact)
}

// UpdateContact handles PUT /api/contact.
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var contact model.ContactInfo
	if err := decodeJSON(r, &contact); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if contact.Email == "" {
		WriteValidationError(w, map[string]string{"email": "Email is required"})
		return
	}

	stored, err := h.queries.UpsertContactInfo(r.Context(), contact)
	if err != nil {
		h.logger.Error("failed to upsert contact info", "error", err)
		WriteInternalError(w, "Failed to save contact info")
		return
	}
	WriteSuccess(w, stored)
}

// GetPersonalInfo handles GET /api/personal-info.
func (h *Handler) GetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.queries.GetPersonalInfo(r.Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Personal info not configured")
		} else {
			h.logger.Error("failed to get personal info", "error", err)
			WriteInternalError(w, "Failed to retrieve personal info")
		}
		return
	}
	WriteSuccess(w, info)
}

// UpdatePersonalInfo handles PUT /api/personal-info.
func (h *Handler) UpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var info model.PersonalInfo
	if err := decodeJSON(r, &info); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	if info.FullName == "" {
		WriteValidationError(w, map[string]string{"full_name": "Full name is required"})
		return
	}

	stored, err := h.queries.UpsertPersonalInfo(r.Context(), info)
	if err != nil {
		h.logger.Error("failed to upsert personal info", "error", err)
		WriteInternalError(w, "Failed to save personal info")
		return
	}
	WriteSuccess(w, stored)
}
