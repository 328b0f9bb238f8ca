// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

// invalidTokenMessage is the message returned for every failed
// verification so callers cannot tell which check rejected the request.
const invalidTokenMessage = "invalid or expired token"

// UserFinder resolves the user a token was issued to.
type UserFinder interface {
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

// Verifier turns bearer tokens into authenticated users.
type Verifier struct {
	cfg   TokenConfig
	users UserFinder
	now   func() time.Time
}

// NewVerifier creates a Verifier using cfg for signature checks and users
// to confirm the subject still exists.
func NewVerifier(cfg TokenConfig, users UserFinder) *Verifier {
	return &Verifier{
		cfg:   cfg,
		users: users,
		now:   time.Now,
	}
}

// Config returns the token configuration the verifier was built with.
func (v *Verifier) Config() TokenConfig {
	return v.cfg
}

// Verify checks an Authorization header of the form "Bearer <token>".
func (v *Verifier) Verify(ctx context.Context, header string) (*model.AuthenticatedUser, error) {
	token, ok := BearerToken(header)
	if !ok {
		return nil, apperr.Unauthenticated(invalidTokenMessage)
	}
	return v.VerifyToken(ctx, token)
}

// VerifyToken checks a raw token and resolves its subject to a live user.
func (v *Verifier) VerifyToken(ctx context.Context, raw string) (*model.AuthenticatedUser, error) {
	claims, err := ParseToken(v.cfg, raw, v.now())
	if err != nil {
		slog.DebugContext(ctx, "token rejected", "error", err)
		return nil, apperr.Unauthenticated(invalidTokenMessage)
	}

	id, err := claims.UserID()
	if err != nil {
		return nil, apperr.Unauthenticated(invalidTokenMessage)
	}

	user, err := v.users.GetUserByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			slog.ErrorContext(ctx, "token subject lookup failed", "user_id", id, "error", err)
		}
		return nil, apperr.Unauthenticated(invalidTokenMessage)
	}

	return user.Authenticated(), nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
