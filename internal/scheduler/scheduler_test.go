// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/testutil"
)

func TestStartStop(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	s := New(db, testutil.TestLogger())
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := len(s.cron.Entries()); got != 2 {
		t.Errorf("registered %d jobs, want 2", got)
	}
	s.Stop()
}

func TestCheckpointAndOptimize(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	s := New(db, testutil.TestLogger())
	if err := s.checkpoint(); err != nil {
		t.Errorf("checkpoint: %v", err)
	}
	if err := s.optimize(); err != nil {
		t.Errorf("optimize: %v", err)
	}
}

func TestPruneEvents(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	queries := store.New(db)

	if err := queries.CreateEvent(ctx, store.CreateEventParams{
		Level:    "info",
		Category: "system",
		Message:  "recent event",
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	// Backdate one entry beyond the retention window.
	stale := time.Now().UTC().Add(-EventRetention - time.Hour)
	if _, err := db.ExecContext(ctx, `
		INSERT INTO events (level, category, message, metadata, created_at)
		VALUES ('info', 'system', 'stale event', '{}', ?)`, stale); err != nil {
		t.Fatalf("inserting stale event: %v", err)
	}

	s := New(db, testutil.TestLogger())
	if err := s.pruneEvents(); err != nil {
		t.Fatalf("pruneEvents: %v", err)
	}

	events, err := queries.ListRecentEvents(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events after pruning, want 1", len(events))
	}
	if events[0].Message != "recent event" {
		t.Errorf("surviving event = %q", events[0].Message)
	}
}
