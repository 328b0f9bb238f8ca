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

// ListCaseStudies handles GET /api/case-studies.
// Query parameters: service_type, limit, offset.
func (h *Handler) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	list, err := h.content.ListCaseStudies(r.Context(), service.CaseStudyQuery{
		ServiceType: strings.TrimSpace(r.URL.Query().Get("service_type")),
		Page:        page,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeList(w, list)
}

// GetCaseStudy handles GET /api/case-studies/{slug}.
func (h *Handler) GetCaseStudy(w http.ResponseWriter, r *http.Request) {
	cs, err := h.content.GetCaseStudyBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, cs, nil)
}

// GetAdminCaseStudy handles GET /api/admin/case-studies/{id}.
func (h *Handler) GetAdminCaseStudy(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "case study")
	if !ok {
		return
	}

	cs, err := h.content.GetCaseStudy(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, cs, nil)
}

// CreateCaseStudy handles POST /api/admin/case-studies.
func (h *Handler) CreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var in service.CreateCaseStudyInput
	if !decodeJSON(w, r, &in) {
		return
	}

	created, err := h.content.CreateCaseStudy(r.Context(), middleware.GetUser(r), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteCreated(w, created)
}

// UpdateCaseStudy handles PUT /api/admin/case-studies/{id}.
func (h *Handler) UpdateCaseStudy(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "case study")
	if !ok {
		return
	}

	var in service.UpdateCaseStudyInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if err := h.content.UpdateCaseStudy(r.Context(), id, in); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, Result{Success: true}, nil)
}

// DeleteCaseStudy handles DELETE /api/admin/case-studies/{id}.
func (h *Handler) DeleteCaseStudy(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "case study")
	if !ok {
		return
	}

	if err := h.content.DeleteCaseStudy(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "case study deleted", "case_study_id", id, "deleted_by", middleware.GetUserID(r))
	WriteSuccess(w, Result{Success: true}, nil)
}
