// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"strings"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/store"
	"github.com/Sumit9819/digital-marketing-cms/internal/util"
)

// CreatePageInput is the payload for creating a page.
type CreatePageInput struct {
	Title           string `json:"title" validate:"required,max=255"`
	Content         string `json:"content"`
	MetaTitle       string `json:"meta_title" validate:"max=255"`
	MetaDescription string `json:"meta_description" validate:"max=500"`
	Status          string `json:"status" validate:"omitempty,oneof=draft published"`
}

// UpdatePageInput is a partial page update.
type UpdatePageInput struct {
	Title           *string `json:"title" validate:"omitempty,max=255"`
	Content         *string `json:"content"`
	MetaTitle       *string `json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string `json:"meta_description" validate:"omitempty,max=500"`
	Status          *string `json:"status" validate:"omitempty,oneof=draft published"`
}

// ListPages returns published pages, newest first.
func (s *ContentService) ListPages(ctx context.Context) ([]model.Page, error) {
	return s.store.ListPublishedPages(ctx)
}

// GetPageBySlug returns a published page with rendered HTML.
func (s *ContentService) GetPageBySlug(ctx context.Context, slug string) (*model.Page, error) {
	if !util.IsValidSlug(slug) {
		return nil, apperr.NotFound("page not found")
	}
	p, err := s.store.GetPublishedPageBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	p.ContentHTML = RenderMarkdown(p.Content)
	return p, nil
}

// GetPage returns a page of any status for editing.
func (s *ContentService) GetPage(ctx context.Context, id int64) (*model.Page, error) {
	return s.store.GetPageByID(ctx, id)
}

// CreatePage validates in and stores a page under a unique slug.
func (s *ContentService) CreatePage(ctx context.Context, author *model.AuthenticatedUser, in CreatePageInput) (*Created, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	status := defaultStatus(in.Status)
	now := s.now()

	var created Created
	err := s.store.InTx(ctx, func(ctx context.Context, q *store.Queries) error {
		slug, err := uniqueSlug(ctx, in.Title, "page", q.PageSlugExists)
		if err != nil {
			return err
		}
		id, err := q.CreatePage(ctx, store.CreatePageParams{
			Title:           in.Title,
			Slug:            slug,
			Content:         in.Content,
			MetaTitle:       strings.TrimSpace(in.MetaTitle),
			MetaDescription: strings.TrimSpace(in.MetaDescription),
			Status:          status,
			PublishedAt:     publishedAt(status, now),
			AuthorID:        author.ID,
			CreatedAt:       now,
		})
		if err != nil {
			return err
		}
		created = Created{ID: id, Slug: slug}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePage applies a partial update to a page.
func (s *ContentService) UpdatePage(ctx context.Context, id int64, in UpdatePageInput) error {
	in.Title = trimPtr(in.Title)
	if blank(in.Title) {
		return apperr.InvalidField("title", "title is required")
	}
	if err := validateStruct(in); err != nil {
		return err
	}
	return s.store.UpdatePage(ctx, id, store.UpdatePageParams{
		Title:           in.Title,
		Content:         in.Content,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		Status:          in.Status,
		UpdatedAt:       s.now(),
	})
}

// DeletePage removes a page.
func (s *ContentService) DeletePage(ctx context.Context, id int64) error {
	return s.store.DeletePage(ctx, id)
}
