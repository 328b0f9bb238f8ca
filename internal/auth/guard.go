// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

// RequireAuthenticated resolves the caller from an Authorization header.
func RequireAuthenticated(ctx context.Context, v *Verifier, header string) (*model.AuthenticatedUser, error) {
	return v.Verify(ctx, header)
}

// RequireRole fails with a permission error unless user holds one of allowed.
func RequireRole(user *model.AuthenticatedUser, allowed ...string) error {
	if user == nil {
		return apperr.Unauthenticated(invalidTokenMessage)
	}
	if !user.HasRole(allowed...) {
		return apperr.PermissionDenied("insufficient permissions")
	}
	return nil
}
