// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"reflect"
	"testing"
)

func TestAISectionOptionalListsStayAbsent(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	queries := New(db)

	created, err := queries.CreateAISection(ctx, CreateAISectionParams{
		Title:       "LLM Roadmap",
		Content:     "plan",
		SectionType: "Roadmap",
	})
	if err != nil {
		t.Fatalf("CreateAISection: %v", err)
	}

	got, err := queries.GetAISectionByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAISectionByID: %v", err)
	}
	// Optional list fields stored as NULL decode back to nil.
	if got.Technologies != nil {
		t.Errorf("expected nil technologies, got %v", got.Technologies)
	}
	if got.ProgressItems != nil {
		t.Errorf("expected nil progress items, got %v", got.ProgressItems)
	}
}

func TestAISectionListsRoundTrip(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	ctx := context.Background()
	queries := New(db)

	status := "In Progress"
	created, err := queries.CreateAISection(ctx, CreateAISectionParams{
		Title:         "RAG Course",
		Content:       "notes",
		SectionType:   "Course",
		Status:        &status,
		Technologies:  []string{"Python", "Go"},
		ProgressItems: []string{"embeddings", "retrieval"},
		SortOrder:     1,
	})
	if err != nil {
		t.Fatalf("CreateAISection: %v", err)
	}

	got, err := queries.GetAISectionByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetAISectionByID: %v", err)
	}
	if !reflect.DeepEqual(got.Technologies, []string{"Python", "Go"}) {
		t.Errorf("technologies mismatch: %v", got.Technologies)
	}
	if !reflect.DeepEqual(got.ProgressItems, []string{"embeddings", "retrieval"}) {
		t.Errorf("progress items mismatch: %v", got.ProgressItems)
	}
	if got.Status == nil || *got.Status != status {
		t.Errorf("status mismatch: %v", got.Status)
	}
}
