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

// CategoryInput is the payload for creating a category.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateCategoryInput is a partial category update.
type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// TagInput is the payload for creating or renaming a tag.
type TagInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ListCategories returns every category ordered by name.
func (s *ContentService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.store.ListCategories(ctx)
}

// CreateCategory stores a category under a unique slug derived from its name.
func (s *ContentService) CreateCategory(ctx context.Context, in CategoryInput) (*model.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var created *model.Category
	err := s.store.InTx(ctx, func(ctx context.Context, q *store.Queries) error {
		slug, err := uniqueSlug(ctx, in.Name, "category", q.CategorySlugExists)
		if err != nil {
			return err
		}
		created, err = q.CreateCategory(ctx, in.Name, slug, strings.TrimSpace(in.Description), s.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateCategory renames a category or changes its description.
func (s *ContentService) UpdateCategory(ctx context.Context, id int64, in UpdateCategoryInput) (*model.Category, error) {
	in.Name = trimPtr(in.Name)
	if blank(in.Name) {
		return nil, apperr.InvalidField("name", "name is required")
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := s.store.UpdateCategory(ctx, id, in.Name, trimPtr(in.Description)); err != nil {
		return nil, err
	}
	return s.store.GetCategoryByID(ctx, id)
}

// DeleteCategory removes a category; posts lose the association.
func (s *ContentService) DeleteCategory(ctx context.Context, id int64) error {
	return s.store.DeleteCategory(ctx, id)
}

// ListTags returns every tag ordered by name.
func (s *ContentService) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.store.ListTags(ctx)
}

// CreateTag stores a tag under a unique slug derived from its name.
func (s *ContentService) CreateTag(ctx context.Context, in TagInput) (*model.Tag, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var created *model.Tag
	err := s.store.InTx(ctx, func(ctx context.Context, q *store.Queries) error {
		slug, err := uniqueSlug(ctx, in.Name, "tag", q.TagSlugExists)
		if err != nil {
			return err
		}
		created, err = q.CreateTag(ctx, in.Name, slug, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RenameTag changes a tag's display name. Its slug is stable.
func (s *ContentService) RenameTag(ctx context.Context, id int64, in TagInput) (*model.Tag, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := s.store.UpdateTagName(ctx, id, in.Name); err != nil {
		return nil, err
	}
	return s.store.GetTagByID(ctx, id)
}

// DeleteTag removes a tag; posts lose the association.
func (s *ContentService) DeleteTag(ctx context.Context, id int64) error {
	return s.store.DeleteTag(ctx, id)
}
