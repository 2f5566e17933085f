// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	// Low cost keeps the test fast; production uses DefaultCost.
	hash, err := HashPassword("changeme!234", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword returned empty hash")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password should differ")
	}
}

func TestHashPasswordCostFallback(t *testing.T) {
	hash, err := HashPassword("changeme!234", 0)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("reading cost: %v", err)
	}
	if cost != DefaultCost {
		t.Errorf("expected fallback to cost %d, got %d", DefaultCost, cost)
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("changeme!234", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !CheckPassword("changeme!234", hash) {
		t.Fatal("correct password was rejected")
	}
	if CheckPassword("wrongpassword", hash) {
		t.Fatal("wrong password was accepted")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	// A corrupted stored hash must fail closed, not panic or error out.
	if CheckPassword("changeme!234", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash was accepted")
	}
	if CheckPassword("changeme!234", "") {
		t.Fatal("empty hash was accepted")
	}
}
