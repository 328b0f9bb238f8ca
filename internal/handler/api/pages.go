// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
	"github.com/Sumit9819/digital-marketing-cms/internal/service"
)

// ListPages handles GET /api/pages.
func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.content.ListPages(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, pages, nil)
}

// GetPage handles GET /api/pages/{slug}.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.content.GetPageBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, page, nil)
}

// GetAdminPage handles GET /api/admin/pages/{id}.
func (h *Handler) GetAdminPage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "page")
	if !ok {
		return
	}

	page, err := h.content.GetPage(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, page, nil)
}

// CreatePage handles POST /api/admin/pages.
func (h *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var in service.CreatePageInput
	if !decodeJSON(w, r, &in) {
		return
	}

	created, err := h.content.CreatePage(r.Context(), middleware.GetUser(r), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteCreated(w, created)
}

// UpdatePage handles PUT /api/admin/pages/{id}.
func (h *Handler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "page")
	if !ok {
		return
	}

	var in service.UpdatePageInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if err := h.content.UpdatePage(r.Context(), id, in); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, Result{Success: true}, nil)
}

// DeletePage handles DELETE /api/admin/pages/{id}.
func (h *Handler) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "page")
	if !ok {
		return
	}

	if err := h.content.DeletePage(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "page deleted", "page_id", id, "deleted_by", middleware.GetUserID(r))
	WriteSuccess(w, Result{Success: true}, nil)
}
