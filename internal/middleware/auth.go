// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request context handling.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/auth"
	"github.com/Sumit9819/digital-marketing-cms/internal/logging"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyUser is the context key for the authenticated user.
const ContextKeyUser ContextKey = "user"

// BearerAuth creates middleware that requires a valid bearer token.
// The token is verified on every request and the resolved user is stored in
// the request context. Failures are answered with 401.
func BearerAuth(v *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.RequireAuthenticated(r.Context(), v, r.Header.Get("Authorization"))
			if err != nil {
				WriteAppError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a context carrying user for handlers and logging.
func WithUser(ctx context.Context, user *model.AuthenticatedUser) context.Context {
	ctx = context.WithValue(ctx, ContextKeyUser, user)
	return logging.WithUserID(ctx, user.ID)
}

// GetUser retrieves the authenticated user from the request context.
// Returns nil if no user is authenticated.
func GetUser(r *http.Request) *model.AuthenticatedUser {
	user, ok := r.Context().Value(ContextKeyUser).(*model.AuthenticatedUser)
	if !ok {
		return nil
	}
	return user
}

// GetUserID retrieves the authenticated user's ID from the request context.
// Returns 0 if no user is authenticated.
func GetUserID(r *http.Request) int64 {
	if user := GetUser(r); user != nil {
		return user.ID
	}
	return 0
}

// RequireRoles creates middleware that admits only users holding one of
// roles. It must run after BearerAuth. A missing user is answered with 401,
// a disallowed role with 403.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUser(r)
			if err := auth.RequireRole(user, roles...); err != nil {
				if apperr.KindOf(err) == apperr.KindPermissionDenied {
					slog.WarnContext(r.Context(), "access denied",
						"status", http.StatusForbidden,
						"method", r.Method,
						"path", r.URL.Path,
						"user_role", user.Role,
						"required_roles", roles,
						"remote_addr", r.RemoteAddr,
					)
				}
				WriteAppError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
