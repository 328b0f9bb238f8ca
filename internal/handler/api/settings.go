// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
)

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.content.GetSettings(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteSuccess(w, settings, nil)
}

// UpdateSettings handles PUT /api/admin/settings. The body is a flat
// key/value object; listed keys are upserted and the rest are kept.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var values map[string]string
	if !decodeJSON(w, r, &values) {
		return
	}

	settings, err := h.content.UpdateSettings(r.Context(), values)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "settings updated",
		"keys", slices.Sorted(maps.Keys(values)), "updated_by", middleware.GetUserID(r))
	WriteSuccess(w, settings, nil)
}
