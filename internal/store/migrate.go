// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// additiveColumn describes a column added after a table's initial release.
// Databases created before the column existed are upgraded in place; the
// column is nullable and existing rows keep NULL.
type additiveColumn struct {
	table  string
	column string
	ddl    string
}

// additiveColumns lists the known post-release schema additions.
var additiveColumns = []additiveColumn{
	{"hero_section", "profile_image_url", "ALTER TABLE hero_section ADD COLUMN profile_image_url TEXT"},
	{"about_section", "profile_image_url", "ALTER TABLE about_section ADD COLUMN profile_image_url TEXT"},
}

// Migrate brings the schema up to date. It runs all pending goose
// migrations, then applies additive column upgrades for databases created
// by releases that predate those columns. Safe to call on every start.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	if err := ensureAdditiveColumns(db); err != nil {
		return fmt.Errorf("applying additive columns: %w", err)
	}

	return nil
}

// ensureAdditiveColumns adds any missing additive columns. Presence is
// determined from the table_info pragma rather than by probing with a
// query, so a transient store error is reported instead of being mistaken
// for a missing column.
func ensureAdditiveColumns(db *sql.DB) error {
	for _, ac := range additiveColumns {
		exists, err := columnExists(db, ac.table, ac.column)
		if err != nil {
			return fmt.Errorf("inspecting %s.%s: %w", ac.table, ac.column, err)
		}
		if exists {
			continue
		}
		if _, err := db.Exec(ac.ddl); err != nil {
			return fmt.Errorf("adding %s.%s: %w", ac.table, ac.column, err)
		}
	}
	return nil
}

// columnExists reports whether the named column is present in the table's
// live schema.
func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return false, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
