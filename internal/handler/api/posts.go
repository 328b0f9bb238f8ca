// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
	"github.com/Sumit9819/digital-marketing-cms/internal/service"
)

// ListPosts handles GET /api/posts.
// Query parameters: category, tag (slugs), limit, offset.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	list, err := h.content.ListPosts(r.Context(), service.PostQuery{
		Category: strings.TrimSpace(q.Get("category")),
		Tag:      strings.TrimSpace(q.Get("tag")),
		Page:     page,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeList(w, list)
}

// GetPost handles GET /api/posts/{slug}.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.content.GetPostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, post, nil)
}

// ListAdminPosts handles GET /api/admin/posts.
// Query parameters: status, limit, offset.
func (h *Handler) ListAdminPosts(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	list, err := h.content.ListAdminPosts(r.Context(), service.AdminPostQuery{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Page:   page,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeList(w, list)
}

// GetAdminPost handles GET /api/admin/posts/{id}.
func (h *Handler) GetAdminPost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "post")
	if !ok {
		return
	}

	post, err := h.content.GetPost(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, post, nil)
}

// CreatePost handles POST /api/admin/posts.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in service.CreatePostInput
	if !decodeJSON(w, r, &in) {
		return
	}

	created, err := h.content.CreatePost(r.Context(), middleware.GetUser(r), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteCreated(w, created)
}

// UpdatePost handles PUT /api/admin/posts/{id}.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "post")
	if !ok {
		return
	}

	var in service.UpdatePostInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if err := h.content.UpdatePost(r.Context(), id, in); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, Result{Success: true}, nil)
}

// DeletePost handles DELETE /api/admin/posts/{id}.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "post")
	if !ok {
		return
	}

	if err := h.content.DeletePost(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "post deleted", "post_id", id, "deleted_by", middleware.GetUserID(r))
	WriteSuccess(w, Result{Success: true}, nil)
}
