// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"strings"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/store"
)

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Company string `json:"company" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=50"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactQuery filters the admin contact listing.
type ContactQuery struct {
	Status string
	Page
}

// SubmitContact validates and stores a contact form submission. New
// submissions always start with status new.
func (s *ContentService) SubmitContact(ctx context.Context, in ContactInput) (*model.ContactSubmission, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Company = strings.TrimSpace(in.Company)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	return s.store.CreateContact(ctx, store.CreateContactParams{
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: s.now(),
	})
}

// ListContacts returns contact submissions, newest first.
func (s *ContentService) ListContacts(ctx context.Context, q ContactQuery) (*List[model.ContactSubmission], error) {
	if q.Status != "" && !model.IsValidContactStatus(q.Status) {
		return nil, apperr.InvalidField("status", "status must be new, contacted or closed")
	}
	limit, offset := store.Paginate(q.Limit, q.Offset, store.DefaultContactLimit)
	f := store.ContactFilter{
		Status: q.Status,
		Limit:  limit,
		Offset: offset,
	}
	return listPage(ctx, s.store, limit, offset, func(ctx context.Context, q *store.Queries) ([]model.ContactSubmission, int64, error) {
		return q.ListContacts(ctx, f)
	})
}

// UpdateContactStatus moves a submission to status.
func (s *ContentService) UpdateContactStatus(ctx context.Context, id int64, status string) error {
	if !model.IsValidContactStatus(status) {
		return apperr.InvalidField("status", "status must be new, contacted or closed")
	}
	return s.store.UpdateContactStatus(ctx, id, status)
}
