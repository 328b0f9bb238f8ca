// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the application
// including users, posts, pages, case studies, taxonomy and contact submissions.
package model

import (
	"slices"
	"time"
)

// User roles.
const (
	RoleAdministrator = "administrator"
	RoleEditor        = "editor"
	RoleAuthor        = "author"
)

// AllRoles lists every role a user may hold.
var AllRoles = []string{RoleAdministrator, RoleEditor, RoleAuthor}

// IsValidRole reports whether role is a known role.
func IsValidRole(role string) bool {
	return slices.Contains(AllRoles, role)
}

// User represents a CMS user.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Authenticated returns the credential-free identity of the user.
func (u *User) Authenticated() *AuthenticatedUser {
	return &AuthenticatedUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
		Name:  u.Name,
	}
}

// AuthenticatedUser is the identity resolved from a bearer token.
type AuthenticatedUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// HasRole reports whether the user holds one of roles.
func (u *AuthenticatedUser) HasRole(roles ...string) bool {
	return slices.Contains(roles, u.Role)
}
