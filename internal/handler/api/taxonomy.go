// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"

	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
	"github.com/Sumit9819/digital-marketing-cms/internal/service"
)

// ListCategories handles GET /api/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.content.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, categories, nil)
}

// CreateCategory handles POST /api/admin/categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in service.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}

	category, err := h.content.CreateCategory(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteCreated(w, category)
}

// UpdateCategory handles PUT /api/admin/categories/{id}.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "category")
	if !ok {
		return
	}

	var in service.UpdateCategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}

	category, err := h.content.UpdateCategory(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, category, nil)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "category")
	if !ok {
		return
	}

	if err := h.content.DeleteCategory(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "category deleted", "category_id", id, "deleted_by", middleware.GetUserID(r))
	WriteSuccess(w, Result{Success: true}, nil)
}

// ListTags handles GET /api/tags.
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.content.ListTags(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, tags, nil)
}

// CreateTag handles POST /api/admin/tags.
func (h *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var in service.TagInput
	if !decodeJSON(w, r, &in) {
		return
	}

	tag, err := h.content.CreateTag(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteCreated(w, tag)
}

// UpdateTag handles PUT /api/admin/tags/{id}.
func (h *Handler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "tag")
	if !ok {
		return
	}

	var in service.TagInput
	if !decodeJSON(w, r, &in) {
		return
	}

	tag, err := h.content.RenameTag(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, tag, nil)
}

// DeleteTag handles DELETE /api/admin/tags/{id}.
func (h *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "tag")
	if !ok {
		return
	}

	if err := h.content.DeleteTag(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "tag deleted", "tag_id", id, "deleted_by", middleware.GetUserID(r))
	WriteSuccess(w, Result{Success: true}, nil)
}
