// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/auth"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/store"
)

const invalidCredentials = "invalid email or password"

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries an issued token and the user it identifies.
type LoginResult struct {
	Token     string                   `json:"token"`
	ExpiresAt time.Time                `json:"expires_at"`
	User      *model.AuthenticatedUser `json:"user"`
}

// AuthService exchanges credentials for bearer tokens.
type AuthService struct {
	store    *store.Store
	verifier *auth.Verifier
	now      func() time.Time
}

// NewAuthService creates an AuthService. Tokens are signed with the
// verifier's configuration.
func NewAuthService(s *store.Store, v *auth.Verifier) *AuthService {
	return &AuthService{
		store:    s,
		verifier: v,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Login checks the credentials and issues a token. Unknown emails and wrong
// passwords produce the same Unauthenticated error.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Unauthenticated(invalidCredentials)
		}
		return nil, err
	}

	ok, err := auth.CheckPassword(in.Password, user.PasswordHash)
	if err != nil {
		slog.WarnContext(ctx, "password verification failed", "user_id", user.ID, "error", err)
		return nil, apperr.Unauthenticated(invalidCredentials)
	}
	if !ok {
		return nil, apperr.Unauthenticated(invalidCredentials)
	}

	if auth.NeedsRehash(user.PasswordHash) {
		s.upgradeHash(ctx, user.ID, in.Password)
	}

	token, expiresAt, err := auth.IssueToken(s.verifier.Config(), user, s.now())
	if err != nil {
		return nil, apperr.Internal("failed to issue token", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Authenticated(),
	}, nil
}

// upgradeHash rewrites a legacy or outdated hash with current parameters.
// Failures are logged and ignored.
func (s *AuthService) upgradeHash(ctx context.Context, userID int64, password string) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		slog.WarnContext(ctx, "rehashing password failed", "user_id", userID, "error", err)
		return
	}
	if err := s.store.UpdateUserPassword(ctx, userID, hash, s.now()); err != nil {
		slog.WarnContext(ctx, "storing rehashed password failed", "user_id", userID, "error", err)
		return
	}
	slog.InfoContext(ctx, "upgraded password hash", "user_id", userID)
}

// VerifyToken resolves a raw token to its user.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*model.AuthenticatedUser, error) {
	return s.verifier.VerifyToken(ctx, strings.TrimSpace(token))
}
