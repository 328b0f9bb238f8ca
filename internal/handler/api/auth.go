// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/service"
)

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Success   bool                     `json:"success"`
	Token     string                   `json:"token"`
	ExpiresAt time.Time                `json:"expires_at"`
	User      *model.AuthenticatedUser `json:"user"`
}

// VerifyRequest carries a token to check.
type VerifyRequest struct {
	Token string `json:"token"`
}

// VerifyResponse reports whether a token is valid.
type VerifyResponse struct {
	Valid bool                     `json:"valid"`
	User  *model.AuthenticatedUser `json:"user,omitempty"`
}

// warnRemainingAttempts is the point from which failed logins report how
// many attempts are left before the account locks.
const warnRemainingAttempts = 3

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if h.logins != nil {
		if locked, remaining := h.logins.IsAccountLocked(in.Email); locked {
			writeLocked(w, remaining)
			return
		}
	}

	res, err := h.auth.Login(r.Context(), in)
	if err != nil {
		if h.logins != nil && apperr.KindOf(err) == apperr.KindUnauthenticated {
			if locked, d := h.logins.RecordFailedAttempt(in.Email); locked {
				writeLocked(w, d)
				return
			}
			if remaining := h.logins.RemainingAttempts(in.Email); remaining > 0 && remaining <= warnRemainingAttempts {
				e := apperr.As(err)
				middleware.WriteAPIError(w, http.StatusUnauthorized, string(e.Kind), e.Message,
					map[string]string{"remaining_attempts": strconv.Itoa(remaining)})
				return
			}
		}
		writeServiceError(w, r, err)
		return
	}
	if h.logins != nil {
		h.logins.RecordSuccessfulLogin(in.Email)
	}

	WriteJSON(w, http.StatusOK, LoginResponse{
		Success:   true,
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      res.User,
	})
}

// writeLocked answers a login attempt against a locked account.
func writeLocked(w http.ResponseWriter, remaining time.Duration) {
	w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(remaining.Seconds()))))
	middleware.WriteAPIError(w, http.StatusTooManyRequests, "account_locked",
		"Too many failed login attempts. Please try again later.", nil)
}

// Verify handles POST /api/auth/verify. Any failure is reported as
// {"valid": false} with status 200.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var in VerifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		WriteJSON(w, http.StatusOK, VerifyResponse{Valid: false})
		return
	}

	user, err := h.auth.VerifyToken(r.Context(), in.Token)
	if err != nil {
		WriteJSON(w, http.StatusOK, VerifyResponse{Valid: false})
		return
	}
	WriteJSON(w, http.StatusOK, VerifyResponse{Valid: true, User: user})
}

// Me handles GET /api/admin/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, middleware.GetUser(r), nil)
}
