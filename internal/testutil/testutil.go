// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers for the CMS packages.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/auth"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/store"
)

// TestStore creates a temporary SQLite database with migrations applied.
// The database is closed when the test finishes.
func TestStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cms-test.db")
	db, err := store.Open(store.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := store.Migrate(context.Background(), db, store.DialectSQLite); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	return store.NewStore(db, store.DialectSQLite)
}

// CreateUser inserts a user with the given role and password.
func CreateUser(t *testing.T, s *store.Store, email, password, role string) *model.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	now := time.Now().UTC()
	u, err := s.CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Name:         "Test " + role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return u
}

// TokenConfig returns a token configuration suitable for tests.
func TokenConfig() auth.TokenConfig {
	return auth.TokenConfig{
		Secret: []byte("test-secret-key-that-is-at-least-32-bytes"),
		TTL:    time.Hour,
		Issuer: "cms-test",
	}
}
