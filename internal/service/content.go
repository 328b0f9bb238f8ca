// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service implements the content repository and authentication
// rules on top of the store: validation, slug assignment, publish stamping
// and transactional association updates.
package service

import (
	"context"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/store"
	"github.com/Sumit9819/digital-marketing-cms/internal/util"
)

// ContentService is the read/write surface for all site content.
type ContentService struct {
	store *store.Store
	now   func() time.Time
}

// NewContentService creates a ContentService backed by s.
func NewContentService(s *store.Store) *ContentService {
	return &ContentService{
		store: s,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// List is one page of a listing.
type List[T any] struct {
	Items  []T
	Total  int64
	Limit  int
	Offset int
}

// Page is the pagination requested by a caller. Zero values select the
// resource default.
type Page struct {
	Limit  int
	Offset int
}

// Created identifies a newly created item.
type Created struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
}

// listPage runs a listing's count and row queries in one read snapshot so
// the total matches the returned items.
func listPage[T any](ctx context.Context, s *store.Store, limit, offset int,
	fn func(ctx context.Context, q *store.Queries) ([]T, int64, error)) (*List[T], error) {
	var (
		items []T
		total int64
	)
	err := s.InReadTx(ctx, func(ctx context.Context, q *store.Queries) error {
		var err error
		items, total, err = fn(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &List[T]{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// publishedAt returns the initial published_at for a new item.
func publishedAt(status string, now time.Time) *time.Time {
	if status == model.StatusPublished {
		return &now
	}
	return nil
}

func defaultStatus(status string) string {
	if status == "" {
		return model.StatusDraft
	}
	return status
}

// uniqueSlug derives a free slug for title.
func uniqueSlug(ctx context.Context, title, fallback string, exists util.SlugExistsFunc) (string, error) {
	return util.UniqueSlug(ctx, util.Slugify(title), fallback, exists)
}
