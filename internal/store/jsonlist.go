// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// List-of-strings columns are stored as JSON arrays inside TEXT columns.
// Encoding and decoding happen only here, at the store boundary.

// encodeList encodes a required list column. A nil slice encodes as "[]".
func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding list: %w", err)
	}
	return string(b), nil
}

// decodeList decodes a required list column. An empty value decodes to an
// empty slice, never nil.
func decodeList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

// encodeNullList encodes an optional list column. A nil slice maps to SQL NULL.
func encodeNullList(items []string) (sql.NullString, error) {
	if items == nil {
		return sql.NullString{}, nil
	}
	raw, err := encodeList(items)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: raw, Valid: true}, nil
}

// decodeNullList decodes an optional list column. NULL maps back to nil.
func decodeNullList(ns sql.NullString) ([]string, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	return decodeList(ns.String)
}
