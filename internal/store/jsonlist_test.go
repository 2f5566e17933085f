// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"reflect"
	"testing"
)

func TestEncodeListNil(t *testing.T) {
	raw, err := encodeList(nil)
	if err != nil {
		t.Fatalf("encodeList: %v", err)
	}
	if raw != "[]" {
		t.Errorf("expected empty array, got %q", raw)
	}
}

func TestDecodeListEmptyValue(t *testing.T) {
	items, err := decodeList("")
	if err != nil {
		t.Fatalf("decodeList: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected non-nil empty slice, got %v", items)
	}
}

func TestListRoundTrip(t *testing.T) {
	raw, err := encodeList([]string{"Go", "Rust"})
	if err != nil {
		t.Fatalf("encodeList: %v", err)
	}
	items, err := decodeList(raw)
	if err != nil {
		t.Fatalf("decodeList: %v", err)
	}
	if !reflect.DeepEqual(items, []string{"Go", "Rust"}) {
		t.Errorf("round trip mismatch: %v", items)
	}
}

func TestDecodeListMalformed(t *testing.T) {
	if _, err := decodeList("{not json"); err == nil {
		t.Fatal("expected error for malformed value")
	}
}

func TestNullListNilMapsToNull(t *testing.T) {
	ns, err := encodeNullList(nil)
	if err != nil {
		t.Fatalf("encodeNullList: %v", err)
	}
	if ns.Valid {
		t.Errorf("nil slice should encode as NULL, got %q", ns.String)
	}

	items, err := decodeNullList(sql.NullString{})
	if err != nil {
		t.Fatalf("decodeNullList: %v", err)
	}
	if items != nil {
		t.Errorf("NULL should decode to nil, got %v", items)
	}
}

func TestNullListRoundTrip(t *testing.T) {
	ns, err := encodeNullList([]string{"a"})
	if err != nil {
		t.Fatalf("encodeNullList: %v", err)
	}
	items, err := decodeNullList(ns)
	if err != nil {
		t.Fatalf("decodeNullList: %v", err)
	}
	if !reflect.DeepEqual(items, []string{"a"}) {
		t.Errorf("round trip mismatch: %v", items)
	}
}
