// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

const userColumns = "id, email, password_hash, role, name, created_at, updated_at"

// CreateUserParams holds the fields of a new user.
type CreateUserParams struct {
	Email        string
	PasswordHash string
	Role         string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a user. The email is stored lower-cased.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (*model.User, error) {
	if !model.IsValidRole(arg.Role) {
		return nil, apperr.InvalidField("role", "role must be administrator, editor or author")
	}
	u := &model.User{
		Email:        strings.ToLower(strings.TrimSpace(arg.Email)),
		PasswordHash: arg.PasswordHash,
		Role:         arg.Role,
		Name:         arg.Name,
		CreatedAt:    arg.CreatedAt,
		UpdatedAt:    arg.UpdatedAt,
	}
	err := q.queryRow(ctx,
		`INSERT INTO users (email, password_hash, role, name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		u.Email, u.PasswordHash, u.Role, u.Name, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.InvalidField("email", "email already exists")
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

// GetUserByID returns the user with id or an apperr NotFound error.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := scanUser(q.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return u, nil
}

// GetUserByEmail looks a user up by email, case-insensitively.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := scanUser(q.queryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = ?`,
		strings.ToLower(strings.TrimSpace(email)),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return u, nil
}

// UpdateUserPassword replaces a user's password hash.
func (q *Queries) UpdateUserPassword(ctx context.Context, id int64, hash string, now time.Time) error {
	res, err := q.exec(ctx, `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`, hash, now, id)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	return requireAffected(res, "user not found")
}

// CountUsers returns the number of users.
func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := q.queryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}
