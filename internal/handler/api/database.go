// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// TableInfo describes one user table in the schema overview.
type TableInfo struct {
	Name     string `json:"name"`
	RowCount int64  `json:"row_count"`
}

// DatabaseInfoResponse is the response for GET /api/database/info.
type DatabaseInfoResponse struct {
	Tables    []TableInfo `json:"tables"`
	Path      string      `json:"path"`
	SizeBytes int64       `json:"size_bytes"`
}

// QueryRequest is the request body for POST /api/database/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResponse is the response for POST /api/database/query. Rows preserve
// column order through the Columns slice; NULL values are encoded as JSON
// null.
type QueryResponse struct {
	RowCount int64            `json:"row_count"`
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
}

// DatabaseInfo handles GET /api/database/info.
func (h *Handler) DatabaseInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := h.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND name <> 'goose_db_version'
		ORDER BY name`)
	if err != nil {
		h.logger.Error("failed to list tables", "error", err)
		WriteInternalError(w, "Failed to inspect database")
		return
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			WriteInternalError(w, "Failed to inspect database")
			return
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		WriteInternalError(w, "Failed to inspect database")
		return
	}

	tables := make([]TableInfo, 0, len(names))
	for _, name := range names {
		var count int64
		// Table names come from sqlite_master, not from the caller.
		if err := h.db.QueryRowContext(ctx,
			fmt.Sprintf(`SELECT COUNT(*) FROM %q`, name)).Scan(&count); err != nil {
			h.logger.Error("failed to count rows", "table", name, "error", err)
			WriteInternalError(w, "Failed to inspect database")
			return
		}
		tables = append(tables, TableInfo{Name: name, RowCount: count})
	}

	var size int64
	if fi, err := os.Stat(h.cfg.DBPath); err == nil {
		size = fi.Size()
	}

	WriteSuccess(w, DatabaseInfoResponse{
		Tables:    tables,
		Path:      h.cfg.DBPath,
		SizeBytes: size,
	})
}

// ExecuteQuery handles POST /api/database/query. Only read-only statements
// pass the prefix check; anything else is rejected before touching the
// store. This is a coarse syntactic gate, not a SQL parser.
func (h *Handler) ExecuteQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		WriteBadRequest(w, "Query is required", nil)
		return
	}
	if !isSelectQuery(query) {
		WriteBadRequest(w, "Only SELECT queries are allowed", nil)
		return
	}

	rows, err := h.db.QueryContext(r.Context(), query)
	if err != nil {
		WriteBadRequest(w, "Query failed: "+err.Error(), nil)
		return
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		WriteInternalError(w, "Failed to read result columns")
		return
	}

	resultRows := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			WriteInternalError(w, "Failed to read result row")
			return
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		resultRows = append(resultRows, row)
	}
	if err := rows.Err(); err != nil {
		WriteInternalError(w, "Failed to read result rows")
		return
	}

	WriteSuccess(w, QueryResponse{
		RowCount: int64(len(resultRows)),
		Columns:  columns,
		Rows:     resultRows,
	})
}

// DownloadDatabase handles GET /api/database/download. Serves the raw
// database file as an attachment named with a UTC timestamp.
func (h *Handler) DownloadDatabase(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.cfg.DBPath); err != nil {
		WriteNotFound(w, "Database file not found")
		return
	}

	// Flush the WAL so the main file is complete on its own.
	if _, err := h.db.ExecContext(r.Context(), `PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
		h.logger.Warn("wal checkpoint before download failed", "error", err)
	}

	filename := fmt.Sprintf("portfolio-backup-%s.db", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	http.ServeFile(w, r, h.cfg.DBPath)
}

// isSelectQuery checks if the query is a read-only statement.
func isSelectQuery(query string) bool {
	q := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(q, "SELECT")
}

// normalizeValue converts a driver value into a JSON-friendly one.
// NULL stays nil, blobs become strings.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return val
	}
}
