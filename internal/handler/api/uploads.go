// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/olegiv/portfolio-go/internal/imaging"
)

// MaxUploadSize is the upload limit for a single image file.
const MaxUploadSize = 5 << 20 // 5MB

// DefaultUploadCategory is used when the form does not name a category.
const DefaultUploadCategory = "general"

// UploadResponse describes a stored image.
type UploadResponse struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name,omitempty"`
	Category     string    `json:"category"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	SizeBytes    int64     `json:"size_bytes"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// UploadImage handles POST /api/uploads. Accepts a single multipart image
// file up to MaxUploadSize with a .jpg/.jpeg/.png/.gif/.webp extension.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		WriteBadRequest(w, "File exceeds the 5MB upload limit or the form is malformed", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "No file provided. Use the 'file' form field", nil)
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > MaxUploadSize {
		WriteBadRequest(w, "File exceeds the 5MB upload limit", nil)
		return
	}
	if !imaging.IsSupportedExtension(header.Filename) {
		WriteBadRequest(w, "Unsupported file type. Allowed: "+strings.Join(imaging.SupportedExtensions, ", "), nil)
		return
	}

	category := strings.TrimSpace(r.FormValue("category"))
	if category == "" {
		category = DefaultUploadCategory
	}
	if !validCategory(category) {
		WriteBadRequest(w, "Invalid category name", nil)
		return
	}

	storedName := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))

	processor := imaging.NewProcessor(h.cfg.UploadsDir)
	result, err := processor.Process(file, category, storedName)
	if err != nil {
		h.logger.Error("failed to process upload", "filename", header.Filename, "error", err)
		WriteBadRequest(w, "File is not a valid image", nil)
		return
	}

	resp := UploadResponse{
		Filename:     storedName,
		OriginalName: header.Filename,
		Category:     category,
		URL:          "/uploads/" + category + "/" + storedName,
		SizeBytes:    result.Size,
		Width:        result.Width,
		Height:       result.Height,
		UploadedAt:   time.Now().UTC(),
	}

	if thumbPath, err := processor.CreateThumbnail(result.FilePath, category, storedName); err != nil {
		h.logger.Warn("failed to create thumbnail", "filename", storedName, "error", err)
	} else if thumbPath != "" {
		resp.ThumbnailURL = "/uploads/" + category + "/" + imaging.ThumbnailDir + "/" + storedName
	}

	h.logger.Info("image uploaded",
		"filename", storedName,
		"original", header.Filename,
		"category", category,
		"size", result.Size)
	WriteCreated(w, resp)
}

// ListUploads handles GET /api/uploads. An optional ?category= filter
// limits the listing to one category.
func (h *Handler) ListUploads(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("category")
	if filter != "" && !validCategory(filter) {
		WriteBadRequest(w, "Invalid category name", nil)
		return
	}

	var categories []string
	if filter != "" {
		categories = []string{filter}
	} else {
		entries, err := os.ReadDir(h.cfg.UploadsDir)
		if err != nil {
			if os.IsNotExist(err) {
				WriteSuccess(w, []UploadResponse{})
				return
			}
			h.logger.Error("failed to read uploads directory", "error", err)
			WriteInternalError(w, "Failed to list uploads")
			return
		}
		for _, e := range entries {
			if e.IsDir() {
				categories = append(categories, e.Name())
			}
		}
	}

	uploads := make([]UploadResponse, 0)
	for _, category := range categories {
		entries, err := os.ReadDir(filepath.Join(h.cfg.UploadsDir, category))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			uploads = append(uploads, UploadResponse{
				Filename:   e.Name(),
				Category:   category,
				URL:        "/uploads/" + category + "/" + e.Name(),
				SizeBytes:  info.Size(),
				UploadedAt: info.ModTime().UTC(),
			})
		}
	}

	WriteSuccess(w, uploads)
}

// DeleteUpload handles DELETE /api/uploads/{category}/{filename}.
func (h *Handler) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	filename := chi.URLParam(r, "filename")
	if !validCategory(category) || filename == "" || filename != filepath.Base(filename) {
		WriteBadRequest(w, "Invalid upload path", nil)
		return
	}

	processor := imaging.NewProcessor(h.cfg.UploadsDir)
	if err := processor.Delete(category, filename); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			WriteNotFound(w, "Upload not found")
			return
		}
		h.logger.Error("failed to delete upload", "category", category, "filename", filename, "error", err)
		WriteInternalError(w, "Failed to delete upload")
		return
	}

	h.logger.Info("upload deleted", "category", category, "filename", filename)
	w.WriteHeader(http.StatusNoContent)
}

// validCategory limits category names to simple directory-safe tokens.
func validCategory(category string) bool {
	if category == "" || len(category) > 64 || category == imaging.ThumbnailDir {
		return false
	}
	for _, r := range category {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
