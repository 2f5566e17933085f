// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

const aiSectionColumns = `id, title, content, section_type, status, technologies, progress_items, sort_order, is_active, created_at, updated_at`

func scanAISection(row interface{ Scan(...any) error }) (model.AISection, error) {
	var s model.AISection
	var techs, progress sql.NullString
	if err := row.Scan(&s.ID, &s.Title, &s.Content, &s.SectionType, &s.Status, &techs,
		&progress, &s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return model.AISection{}, err
	}
	var err error
	if s.Technologies, err = decodeNullList(techs); err != nil {
		return model.AISection{}, err
	}
	if s.ProgressItems, err = decodeNullList(progress); err != nil {
		return model.AISection{}, err
	}
	return s, nil
}

// ListAISections returns active AI sections ordered by sort order.
func (q *Queries) ListAISections(ctx context.Context) ([]model.AISection, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+aiSectionColumns+` FROM ai_sections WHERE is_active = 1 ORDER BY sort_order, title`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.AISection
	for rows.Next() {
		s, err := scanAISection(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// GetAISectionByID returns the AI section with the given id regardless of
// its active state. Returns sql.ErrNoRows if no such row exists.
func (q *Queries) GetAISectionByID(ctx context.Context, id int64) (model.AISection, error) {
	return scanAISection(q.db.QueryRowContext(ctx,
		`SELECT `+aiSectionColumns+` FROM ai_sections WHERE id = ?`, id))
}

// CreateAISectionParams holds the fields for CreateAISection.
type CreateAISectionParams struct {
	Title         string
	Content       string
	SectionType   string
	Status        *string
	Technologies  []string
	ProgressItems []string
	SortOrder     int64
}

// CreateAISection inserts a new active AI section and returns the stored row.
func (q *Queries) CreateAISection(ctx context.Context, arg CreateAISectionParams) (model.AISection, error) {
	techs, err := encodeNullList(arg.Technologies)
	if err != nil {
		return model.AISection{}, err
	}
	progress, err := encodeNullList(arg.ProgressItems)
	if err != nil {
		return model.AISection{}, err
	}
	now := time.Now().UTC()
	return scanAISection(q.db.QueryRowContext(ctx, `
		INSERT INTO ai_sections (title, content, section_type, status, technologies, progress_items, sort_order, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
		RETURNING `+aiSectionColumns,
		arg.Title, arg.Content, arg.SectionType, arg.Status, techs, progress, arg.SortOrder, now, now))
}

// UpdateAISectionParams holds the fields for UpdateAISection.
type UpdateAISectionParams struct {
	ID            int64
	Title         string
	Content       string
	SectionType   string
	Status        *string
	Technologies  []string
	ProgressItems []string
	SortOrder     int64
	IsActive      bool
}

// UpdateAISection replaces all mutable fields and stamps updated_at.
// Returns sql.ErrNoRows when the id does not exist.
func (q *Queries) UpdateAISection(ctx context.Context, arg UpdateAISectionParams) (model.AISection, error) {
	techs, err := encodeNullList(arg.Technologies)
	if err != nil {
		return model.AISection{}, err
	}
	progress, err := encodeNullList(arg.ProgressItems)
	if err != nil {
		return model.AISection{}, err
	}
	res, err := q.db.ExecContext(ctx, `
		UPDATE ai_sections
		SET title = ?, content = ?, section_type = ?, status = ?, technologies = ?,
		    progress_items = ?, sort_order = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Content, arg.SectionType, arg.Status, techs,
		progress, arg.SortOrder, arg.IsActive, time.Now().UTC(), arg.ID)
	if err != nil {
		return model.AISection{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.AISection{}, err
	} else if n == 0 {
		return model.AISection{}, sql.ErrNoRows
	}
	return q.GetAISectionByID(ctx, arg.ID)
}

// DeleteAISection removes the AI section with the given id.
// Returns false if no row was deleted.
func (q *Queries) DeleteAISection(ctx context.Context, id int64) (bool, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM ai_sections WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
