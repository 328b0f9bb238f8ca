// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that enriches records with request
// scoped attributes: the chi request ID, the authenticated user and, for
// warnings and errors, a coarse category.
package logging

import (
	"context"
	"log/slog"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Log categories attached to WARN and ERROR records.
const (
	CategoryAuth    = "auth"
	CategoryContent = "content"
	CategoryContact = "contact"
	CategoryConfig  = "config"
	CategorySystem  = "system"
)

type userIDKey struct{}

// WithUserID returns a context carrying the authenticated user's ID for logging.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserID returns the user ID stored by WithUserID.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// ContextHandler is a slog.Handler that wraps another handler and adds
// request_id and user_id attributes taken from the record's context.
type ContextHandler struct {
	inner slog.Handler
	level slog.Level // Minimum level that receives a category (default: WARN)
}

// NewContextHandler creates a new ContextHandler that wraps the given handler.
func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{inner: inner, level: slog.LevelWarn}
}

// Enabled implements slog.Handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if reqID := chimw.GetReqID(ctx); reqID != "" {
			r.AddAttrs(slog.String("request_id", reqID))
		}
		if id, ok := UserID(ctx); ok {
			r.AddAttrs(slog.Int64("user_id", id))
		}
	}

	if r.Level >= h.level && !hasAttr(r, "category") {
		r.AddAttrs(slog.String("category", inferCategory(r.Message)))
	}

	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs), level: h.level}
}

// WithGroup implements slog.Handler.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name), level: h.level}
}

func hasAttr(r slog.Record, key string) bool {
	found := false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			found = true
			return false
		}
		return true
	})
	return found
}

// inferCategory guesses a category from the log message.
func inferCategory(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "auth") || strings.Contains(msg, "login") ||
		strings.Contains(msg, "token") || strings.Contains(msg, "password") ||
		strings.Contains(msg, "access denied"):
		return CategoryAuth
	case strings.Contains(msg, "contact"):
		return CategoryContact
	case strings.Contains(msg, "post") || strings.Contains(msg, "page") ||
		strings.Contains(msg, "case stud") || strings.Contains(msg, "markdown"):
		return CategoryContent
	case strings.Contains(msg, "config") || strings.Contains(msg, "setting") ||
		strings.Contains(msg, "secret"):
		return CategoryConfig
	default:
		return CategorySystem
	}
}
