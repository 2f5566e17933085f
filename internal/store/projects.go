// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/olegiv/portfolio-go/internal/model"
)

const projectColumns = `id, title, description, image_url, technologies, live_url, github_url, sort_order, is_active, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (model.Project, error) {
	var p model.Project
	var techs string
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &techs, &p.LiveURL,
		&p.GithubURL, &p.SortOrder, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return model.Project{}, err
	}
	list, err := decodeList(techs)
	if err != nil {
		return model.Project{}, err
	}
	p.Technologies = list
	return p, nil
}

// ListProjects returns active projects ordered by sort order.
func (q *Queries) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE is_active = 1 ORDER BY sort_order, title`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// GetProjectByID returns the project with the given id regardless of its
// active state. Returns sql.ErrNoRows if no such row exists.
func (q *Queries) GetProjectByID(ctx context.Context, id int64) (model.Project, error) {
	return scanProject(q.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
}

// CreateProjectParams holds the fields for CreateProject.
type CreateProjectParams struct {
	Title        string
	Description  string
	ImageURL     *string
	Technologies []string
	LiveURL      *string
	GithubURL    *string
	SortOrder    int64
}

// CreateProject inserts a new active project and returns the stored row.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (model.Project, error) {
	techs, err := encodeList(arg.Technologies)
	if err != nil {
		return model.Project{}, err
	}
	now := time.Now().UTC()
	return scanProject(q.db.QueryRowContext(ctx, `
		INSERT INTO projects (title, description, image_url, technologies, live_url, github_url, sort_order, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?, ?)
		RETURNING `+projectColumns,
		arg.Title, arg.Description, arg.ImageURL, techs, arg.LiveURL, arg.GithubURL, arg.SortOrder, now, now))
}

// UpdateProjectParams holds the fields for UpdateProject.
type UpdateProjectParams struct {
	ID           int64
	Title        string
	Description  string
	ImageURL     *string
	Technologies []string
	LiveURL      *string
	GithubURL    *string
	SortOrder    int64
	IsActive     bool
}

// UpdateProject replaces all mutable fields and stamps updated_at.
// Returns sql.ErrNoRows when the id does not exist.
func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) (model.Project, error) {
	techs, err := encodeList(arg.Technologies)
	if err != nil {
		return model.Project{}, err
	}
	res, err := q.db.ExecContext(ctx, `
		UPDATE projects
		SET title = ?, description = ?, image_url = ?, technologies = ?, live_url = ?,
		    github_url = ?, sort_order = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		arg.Title, arg.Description, arg.ImageURL, techs, arg.LiveURL,
		arg.GithubURL, arg.SortOrder, arg.IsActive, time.Now().UTC(), arg.ID)
	if err != nil {
		return model.Project{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return model.Project{}, err
	} else if n == 0 {
		return model.Project{}, sql.ErrNoRows
	}
	return q.GetProjectByID(ctx, arg.ID)
}

// DeleteProject removes the project with the given id.
// Returns false if no row was deleted.
func (q *Queries) DeleteProject(ctx context.Context, id int64) (bool, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
