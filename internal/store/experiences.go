// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

const experienceColumns = `id, year, role, company, description, technologies, sort_order, is_active, created_at, updated_at`

func scanExperience(row interface{ Scan(...any) error }) (model.Experience, error) {
	var e model.Experience
	var techs string
	if err := row.Scan(&e.ID, &e.Year, &e.Role, &e.Company, &e.Description, &techs,
		&e.SortOrder, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return model.Experience{}, err
	}
	list, err := decodeList(techs)
	if err != nil {
		return model.Experience{}, err
	}
	e.Technologies = list
	return e, nil
}

// ListExperiences returns active experiences ordered by sort order.
func (q *Queries) ListExperiences(ctx context.Context) ([]model.Experience, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE is_active = 1 ORDER BY sort_order, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// GetExperienceByID returns the experience with the given id regardless of
// its active state. Returns sql.ErrNoRows if no such row exists.
func (q *Queries) GetExperienceByID(ctx context.Context, id int64) (model.Experience, error) {
	return scanExperience(q.db.QueryRowContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences WHERE id = ?`, id))
}

// CreateExperienceParams holds the fields for CreateExperience.
type CreateExperienceParams struct {
	Year         string
	Role         string
	Company      string
	Description  string
	Technologies []string
	SortOrder    int64
}

// CreateExperience inserts a new active experience and returns the stored row.
func (q *Queries) CreateExperience(ctx context.Context, arg CreateExperienceParams) (model.Experience, error) {
	techs, err := encodeList(arg.Technologies)
	if err != nil {
		return model.Experience{}, err
	}
	now := time.Now().UTC()
	return scanExperience(q.db.QueryRowContext(ctx, `
		INSERT INTO experiences (year, role, company, description, technologies, sort_order, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 1, ?, ?)
		RETURNING `+experienceColumns,
		arg.Year, arg.Role, arg.Company, arg.Description, techs, arg.SortOrder, now, now))
}

// UpdateExperienceParams holds the fields for UpdateExperience.
type UpdateExperienceParams struct {
	ID           int64
	Year         string
	Role         string
	Company      string
	Description  string
	Technologies []string
	SortOrder    int64
	IsActive     bool
}

// UpdateExperience replaces all mutable fields and stamps updated_at.
// Returns sql.ErrNoRows when the id does not exist.
func (q *Queries) UpdateExperience(ctx context.Context, arg UpdateExperienceParams) (model.Experience, error) {
	techs, err := encodeList(arg.Technologies)
	if err != nil {
		return model.Experience{}, err
	}
	res, err := q.db.ExecContext(ctx, `
		UPDATE experiences
		SET year = ?, role = ?, company = ?, description = ?, technologies = ?,
		    sort_order = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		arg.Year, arg.Role, arg.Company, arg.Description, techs,
		arg.SortOrder, arg.IsActive, time.Now().UTC(), arg.ID)
	if err != nil {
		return model.Experience{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Experience{}, err
	} else if n == 0 {
		return model.Experience{}, sql.ErrNoRows
	}
	return q.GetExperienceByID(ctx, arg.ID)
}

// DeleteExperience removes the experience with the given id.
// Returns false if no row was deleted.
func (q *Queries) DeleteExperience(ctx context.Context, id int64) (bool, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
