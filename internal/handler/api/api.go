// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides REST API handlers for the CMS.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
	"github.com/Sumit9819/digital-marketing-cms/internal/service"
	"github.com/Sumit9819/digital-marketing-cms/internal/version"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Pinger reports database reachability for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	content *service.ContentService
	auth    *service.AuthService
	db      Pinger
	version version.Info
	logins  *middleware.LoginProtection
	started time.Time
}

// NewHandler creates a new API handler. logins may be nil to disable
// account lockout.
func NewHandler(content *service.ContentService, authSvc *service.AuthService, db Pinger, info version.Info, logins *middleware.LoginProtection) *Handler {
	return &Handler{
		content: content,
		auth:    authSvc,
		db:      db,
		version: info,
		logins:  logins,
		started: time.Now(),
	}
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains pagination metadata.
type Meta struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// Result is the body of update and delete responses.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	middleware.WriteAPIError(w, http.StatusBadRequest, "bad_request", message, details)
}

// writeList writes one page of a listing with its pagination metadata.
func writeList[T any](w http.ResponseWriter, list *service.List[T]) {
	WriteSuccess(w, list.Items, &Meta{Total: list.Total, Limit: list.Limit, Offset: list.Offset})
}

// writeServiceError maps a service error to its HTTP response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	middleware.WriteAppError(w, r, err)
}

// decodeJSON reads a JSON request body into dst. On failure a 400 response
// has been written and false is returned.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			WriteBadRequest(w, "Request body is required", nil)
		case errors.As(err, &maxErr):
			WriteBadRequest(w, "Request body too large", nil)
		default:
			WriteBadRequest(w, "Invalid JSON body", nil)
		}
		return false
	}
	return true
}
