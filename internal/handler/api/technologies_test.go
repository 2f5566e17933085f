// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/portfolio-go/internal/model"
)

// technologiesRouter mounts the technology routes the way the server does,
// so {id} URL parameters resolve through chi.
func technologiesRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/technologies", h.ListTechnologies)
	r.Post("/api/technologies", h.CreateTechnology)
	r.Get("/api/technologies/{id}", h.GetTechnology)
	r.Put("/api/technologies/{id}", h.UpdateTechnology)
	r.Delete("/api/technologies/{id}", h.DeleteTechnology)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTechnologyCRUD(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := technologiesRouter(h)

	// Empty list is a JSON array, not null.
	rec := doJSON(t, router, http.MethodGet, "/api/technologies", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"data":[]}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/technologies", TechnologyRequest{
		Name:      "Go",
		Category:  "Backend",
		SortOrder: 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data model.Technology `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.Data.ID)
	require.True(t, created.Data.IsActive)

	id := created.Data.ID

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/technologies/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/technologies/%d", id), TechnologyRequest{
		Name:      "Golang",
		Category:  "Backend",
		SortOrder: 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated struct {
		Data model.Technology `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, "Golang", updated.Data.Name)
	require.Equal(t, int64(2), updated.Data.SortOrder)
	require.True(t, updated.Data.IsActive)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/technologies/%d", id), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Delete is a hard delete: the row is gone entirely.
	rec = doJSON(t, router, http.MethodGet, "/api/technologies", nil)
	require.JSONEq(t, `{"data":[]}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/technologies/%d", id), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTechnologyDeactivate(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := technologiesRouter(h)

	rec := doJSON(t, router, http.MethodPost, "/api/technologies", TechnologyRequest{
		Name:     "Go",
		Category: "Backend",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data model.Technology `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created.Data.ID

	inactive := false
	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/technologies/%d", id), TechnologyRequest{
		Name:     "Go",
		Category: "Backend",
		IsActive: &inactive,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Deactivation hides the row from the public list but keeps it by id.
	rec = doJSON(t, router, http.MethodGet, "/api/technologies", nil)
	require.JSONEq(t, `{"data":[]}`, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/technologies/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched struct {
		Data model.Technology `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	require.False(t, fetched.Data.IsActive)
}

func TestTechnologyNotFound(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := technologiesRouter(h)

	rec := doJSON(t, router, http.MethodGet, "/api/technologies/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/technologies/999", TechnologyRequest{
		Name:     "Go",
		Category: "Backend",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/technologies/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTechnologyInvalidID(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := technologiesRouter(h)

	rec := doJSON(t, router, http.MethodGet, "/api/technologies/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTechnologyValidation(t *testing.T) {
	h, _, cleanup := newTestHandler(t)
	defer cleanup()
	router := technologiesRouter(h)

	rec := doJSON(t, router, http.MethodPost, "/api/technologies", TechnologyRequest{Name: "Go"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Error.Details, "category")
}
