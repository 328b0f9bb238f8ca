// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
	"github.com/Sumit9819/digital-marketing-cms/internal/service"
)

// contactThanks is returned to visitors after a successful submission.
const contactThanks = "Thank you for your message. We'll get back to you soon!"

// StatusRequest changes a contact submission's status.
type StatusRequest struct {
	Status string `json:"status"`
}

// SubmitContact handles POST /api/contact.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if _, err := h.content.SubmitContact(r.Context(), in); err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, Response{Data: Result{Success: true, Message: contactThanks}})
}

// ListContacts handles GET /api/admin/contacts.
// Query parameters: status, limit, offset.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(w, r)
	if !ok {
		return
	}

	list, err := h.content.ListContacts(r.Context(), service.ContactQuery{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Page:   page,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeList(w, list)
}

// UpdateContactStatus handles PUT /api/admin/contacts/{id}/status.
func (h *Handler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "contact")
	if !ok {
		return
	}

	var in StatusRequest
	if !decodeJSON(w, r, &in) {
		return
	}

	if err := h.content.UpdateContactStatus(r.Context(), id, strings.TrimSpace(in.Status)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	slog.InfoContext(r.Context(), "contact status updated", "contact_id", id, "status", strings.TrimSpace(in.Status), "updated_by", middleware.GetUserID(r))
	WriteSuccess(w, Result{Success: true}, nil)
}
