// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/auth"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

// Default admin credentials
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrator"
)

// DefaultSettings are written on first seed when the keys are absent.
var DefaultSettings = map[string]string{
	"site_name":        "Digital Marketing Agency",
	"site_description": "Growth marketing, SEO and paid media for ambitious brands",
	"contact_email":    "hello@example.com",
}

// SeedConfig controls the initial admin account.
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Seed creates the initial admin user and default settings. It is safe to
// run on every start.
func Seed(ctx context.Context, s *Store, cfg SeedConfig) error {
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = DefaultAdminEmail
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = DefaultAdminPassword
	}
	if cfg.AdminName == "" {
		cfg.AdminName = DefaultAdminName
	}

	if err := seedAdmin(ctx, s.Queries, cfg); err != nil {
		return err
	}
	return seedSettings(ctx, s.Queries)
}

func seedAdmin(ctx context.Context, q *Queries, cfg SeedConfig) error {
	_, err := q.GetUserByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		slog.InfoContext(ctx, "admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	user, err := q.CreateUser(ctx, CreateUserParams{
		Email:        cfg.AdminEmail,
		PasswordHash: passwordHash,
		Role:         model.RoleAdministrator,
		Name:         cfg.AdminName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.InfoContext(ctx, "created default admin user", "id", user.ID, "email", user.Email)
	if cfg.AdminPassword == DefaultAdminPassword {
		slog.WarnContext(ctx, "admin user has the default password, change it after first login")
	}
	return nil
}

func seedSettings(ctx context.Context, q *Queries) error {
	existing, err := q.GetSettings(ctx)
	if err != nil {
		return err
	}

	missing := make(map[string]string)
	for k, v := range DefaultSettings {
		if _, ok := existing[k]; !ok {
			missing[k] = v
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return q.UpsertSettings(ctx, missing, time.Now().UTC())
}
