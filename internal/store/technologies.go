// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

const technologyColumns = `id, name, category, icon_url, sort_order, is_active, created_at`

func scanTechnology(row interface{ Scan(...any) error }) (model.Technology, error) {
	var t model.Technology
	err := row.Scan(&t.ID, &t.Name, &t.Category, &t.IconURL, &t.SortOrder, &t.IsActive, &t.CreatedAt)
	return t, err
}

// ListTechnologies returns active technologies ordered by sort order, then name.
func (q *Queries) ListTechnologies(ctx context.Context) ([]model.Technology, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+technologyColumns+` FROM technologies WHERE is_active = 1 ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Technology
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// GetTechnologyByID returns the technology with the given id regardless of
// its active state. Returns sql.ErrNoRows if no such row exists.
func (q *Queries) GetTechnologyByID(ctx context.Context, id int64) (model.Technology, error) {
	return scanTechnology(q.db.QueryRowContext(ctx,
		`SELECT `+technologyColumns+` FROM technologies WHERE id = ?`, id))
}

// CreateTechnologyParams holds the fields for CreateTechnology.
type CreateTechnologyParams struct {
	Name      string
	Category  string
	IconURL   *string
	SortOrder int64
}

// CreateTechnology inserts a new active technology and returns the stored row.
func (q *Queries) CreateTechnology(ctx context.Context, arg CreateTechnologyParams) (model.Technology, error) {
	return scanTechnology(q.db.QueryRowContext(ctx, `
		INSERT INTO technologies (name, category, icon_url, sort_order, is_active, created_at)
		VALUES (?, ?, ?, ?, 1, ?)
		RETURNING `+technologyColumns,
		arg.Name, arg.Category, arg.IconURL, arg.SortOrder, time.Now().UTC()))
}

// UpdateTechnologyParams holds the fields for UpdateTechnology.
type UpdateTechnologyParams struct {
	ID        int64
	Name      string
	Category  string
	IconURL   *string
	SortOrder int64
	IsActive  bool
}

// UpdateTechnology replaces all mutable fields of the technology.
// Returns sql.ErrNoRows when the id does not exist.
func (q *Queries) UpdateTechnology(ctx context.Context, arg UpdateTechnologyParams) (model.Technology, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE technologies
		SET name = ?, category = ?, icon_url = ?, sort_order = ?, is_active = ?
		WHERE id = ?`,
		arg.Name, arg.Category, arg.IconURL, arg.SortOrder, arg.IsActive, arg.ID)
	if err != nil {
		return model.Technology{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Technology{}, err
	} else if n == 0 {
		return model.Technology{}, sql.ErrNoRows
	}
	return q.GetTechnologyByID(ctx, arg.ID)
}

// DeleteTechnology removes the technology with the given id.
// Returns false if no row was deleted.
func (q *Queries) DeleteTechnology(ctx context.Context, id int64) (bool, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM technologies WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
