// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Sumit9819/digital-marketing-cms/internal/service"
)

// parseID reads the {id} URL parameter. On failure a 400 response has been
// written and false is returned.
func parseID(w http.ResponseWriter, r *http.Request, entity string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteBadRequest(w, "Invalid "+entity+" ID", nil)
		return 0, false
	}
	return id, true
}

// parsePage reads the limit and offset query parameters. Absent values are
// zero so the service applies the resource default.
func parsePage(w http.ResponseWriter, r *http.Request) (service.Page, bool) {
	var p service.Page
	details := map[string]string{}

	q := r.URL.Query()
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details["limit"] = "must be an integer"
		}
		p.Limit = n
	}
	if v := strings.TrimSpace(q.Get("offset")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			details["offset"] = "must be an integer"
		}
		p.Offset = n
	}

	if len(details) > 0 {
		WriteBadRequest(w, "Invalid pagination parameters", details)
		return service.Page{}, false
	}
	return p, true
}
