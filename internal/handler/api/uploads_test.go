// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func uploadsRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/uploads", h.UploadImage)
	r.Get("/api/uploads", h.ListUploads)
	r.Delete("/api/uploads/{category}/{filename}", h.DeleteUpload)
	return r
}

// pngBytes renders a small solid PNG for upload tests.
func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename, category string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	if category != "" {
		require.NoError(t, writer.WriteField("category", category))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := uploadsRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartUpload(t, "avatar.png", "profile", pngBytes(t)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data UploadResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "profile", resp.Data.Category)
	require.Equal(t, "avatar.png", resp.Data.OriginalName)
	require.NotEqual(t, "avatar.png", resp.Data.Filename)
	require.Contains(t, resp.Data.URL, "/uploads/profile/")
	require.Equal(t, 8, resp.Data.Width)
	require.Equal(t, 8, resp.Data.Height)
	// A source already inside the thumbnail bounds needs no thumbnail.
	require.Empty(t, resp.Data.ThumbnailURL)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/uploads?category=profile", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Data []UploadResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)
	require.Equal(t, resp.Data.Filename, listed.Data[0].Filename)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/uploads/profile/"+resp.Data.Filename, nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/uploads/profile/"+resp.Data.Filename, nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadDefaultCategory(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := uploadsRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartUpload(t, "pic.png", "", pngBytes(t)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data UploadResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, DefaultUploadCategory, resp.Data.Category)
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := uploadsRouter(h)

	for _, name := range []string{"doc.pdf", "shell.sh", "image.tiff", "noext"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, name, "", pngBytes(t)))
		require.Equalf(t, http.StatusBadRequest, rec.Code, "filename %q should be rejected", name)
	}
}

func TestUploadRejectsInvalidCategory(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := uploadsRouter(h)

	for _, category := range []string{"../escape", "Has Spaces", "thumbs", "UPPER"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload(t, "pic.png", category, pngBytes(t)))
		require.Equalf(t, http.StatusBadRequest, rec.Code, "category %q should be rejected", category)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := uploadsRouter(h)

	oversized := make([]byte, MaxUploadSize+1)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartUpload(t, "big.png", "", oversized))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadRejectsNonImagePayload(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := uploadsRouter(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, multipartUpload(t, "fake.png", "", []byte("not an image at all")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidCategory(t *testing.T) {
	valid := []string{"general", "profile", "project-shots", "ai_sections", "a1"}
	for _, c := range valid {
		require.Truef(t, validCategory(c), "category %q should be valid", c)
	}

	invalid := []string{"", "thumbs", "Has Spaces", "UPPER", "dot.dot", "../up",
		"waytoolongwaytoolongwaytoolongwaytoolongwaytoolongwaytoolongwaytoolong"}
	for _, c := range invalid {
		require.Falsef(t, validCategory(c), "category %q should be invalid", c)
	}
}
