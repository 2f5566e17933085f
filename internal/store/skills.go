// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

const skillColumns = `id, name, category, proficiency_level, icon_url, sort_order, is_active, created_at, updated_at`

func scanSkill(row interface{ Scan(...any) error }) (model.Skill, error) {
	var s model.Skill
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.ProficiencyLevel, &s.IconURL,
		&s.SortOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// ListSkills returns active skills ordered by sort order, then name.
func (q *Queries) ListSkills(ctx context.Context) ([]model.Skill, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE is_active = 1 ORDER BY sort_order, name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// GetSkillByID returns the skill with the given id regardless of its
// active state. Returns sql.ErrNoRows if no such row exists.
func (q *Queries) GetSkillByID(ctx context.Context, id int64) (model.Skill, error) {
	return scanSkill(q.db.QueryRowContext(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE id = ?`, id))
}

// CreateSkillParams holds the fields for CreateSkill.
type CreateSkillParams struct {
	Name             string
	Category         string
	ProficiencyLevel int64
	IconURL          *string
	SortOrder        int64
}

// CreateSkill inserts a new active skill and returns the stored row.
func (q *Queries) CreateSkill(ctx context.Context, arg CreateSkillParams) (model.Skill, error) {
	now := time.Now().UTC()
	return scanSkill(q.db.QueryRowContext(ctx, `
		INSERT INTO skills (name, category, proficiency_level, icon_url, sort_order, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 1, ?, ?)
		RETURNING `+skillColumns,
		arg.Name, arg.Category, arg.ProficiencyLevel, arg.IconURL, arg.SortOrder, now, now))
}

// UpdateSkillParams holds the fields for UpdateSkill.
type UpdateSkillParams struct {
	ID               int64
	Name             string
	Category         string
	ProficiencyLevel int64
	IconURL          *string
	SortOrder        int64
	IsActive         bool
}

// UpdateSkill replaces all mutable fields and stamps updated_at.
// Returns sql.ErrNoRows when the id does not exist.
func (q *Queries) UpdateSkill(ctx context.Context, arg UpdateSkillParams) (model.Skill, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE skills
		SET name = ?, category = ?, proficiency_level = ?, icon_url = ?,
		    sort_order = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		arg.Name, arg.Category, arg.ProficiencyLevel, arg.IconURL,
		arg.SortOrder, arg.IsActive, time.Now().UTC(), arg.ID)
	if err != nil {
		return model.Skill{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Skill{}, err
	} else if n == 0 {
		return model.Skill{}, sql.ErrNoRows
	}
	return q.GetSkillByID(ctx, arg.ID)
}

// DeleteSkill removes the skill with the given id.
// Returns false if no row was deleted.
func (q *Queries) DeleteSkill(ctx context.Context, id int64) (bool, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM skills WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
