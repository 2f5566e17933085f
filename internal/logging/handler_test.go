// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/testutil"
)

func testLogger(t *testing.T) (*slog.Logger, *store.Queries, func()) {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewEventLogHandler(inner, db)), store.New(db), cleanup
}

func TestWarnIsRecorded(t *testing.T) {
	logger, queries, cleanup := testLogger(t)
	defer cleanup()

	logger.Warn("login failed", "email", "jane@example.com")

	events, err := queries.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	event := events[0]
	if event.Level != model.EventLevelWarning {
		t.Errorf("level = %q, want %q", event.Level, model.EventLevelWarning)
	}
	if event.Category != model.EventCategoryAuth {
		t.Errorf("category = %q, want %q", event.Category, model.EventCategoryAuth)
	}
	if event.Message != "login failed" {
		t.Errorf("message = %q", event.Message)
	}
}

func TestErrorIsRecorded(t *testing.T) {
	logger, queries, cleanup := testLogger(t)
	defer cleanup()

	logger.Error("failed to create thumbnail", "filename", "x.png")

	events, err := queries.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Level != model.EventLevelError {
		t.Errorf("level = %q, want %q", events[0].Level, model.EventLevelError)
	}
	if events[0].Category != model.EventCategoryUpload {
		t.Errorf("category = %q, want %q", events[0].Category, model.EventCategoryUpload)
	}
}

func TestInfoIsNotRecorded(t *testing.T) {
	logger, queries, cleanup := testLogger(t)
	defer cleanup()

	logger.Info("user logged in", "user_id", 1)

	events, err := queries.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("got %d events, want 0", len(events))
	}
}

func TestExplicitCategoryAttr(t *testing.T) {
	logger, queries, cleanup := testLogger(t)
	defer cleanup()

	logger.Warn("disk almost full", "category", model.EventCategoryAuth)

	events, err := queries.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Category != model.EventCategoryAuth {
		t.Errorf("category = %q, want %q", events[0].Category, model.EventCategoryAuth)
	}
}

func TestExtractMetadata(t *testing.T) {
	var r slog.Record
	r.AddAttrs(
		slog.String("email", "jane@example.com"),
		slog.String("note", `quote " and newline`+"\n"),
		slog.String("category", "auth"),
	)

	got := extractMetadata(r)
	want := `{"email":"jane@example.com","note":"quote \" and newline\n"}`
	if got != want {
		t.Errorf("extractMetadata = %s, want %s", got, want)
	}
}

func TestEmptyMetadata(t *testing.T) {
	var r slog.Record
	if got := extractMetadata(r); got != "{}" {
		t.Errorf("extractMetadata = %s, want {}", got)
	}
}
