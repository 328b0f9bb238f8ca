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

// CreatePostInput is the payload for creating a post.
type CreatePostInput struct {
	Title           string  `json:"title" validate:"required,max=255"`
	Content         string  `json:"content"`
	Excerpt         string  `json:"excerpt" validate:"max=500"`
	FeaturedImage   string  `json:"featured_image" validate:"max=1024"`
	MetaTitle       string  `json:"meta_title" validate:"max=255"`
	MetaDescription string  `json:"meta_description" validate:"max=500"`
	Status          string  `json:"status" validate:"omitempty,oneof=draft published"`
	CategoryIDs     []int64 `json:"category_ids"`
	TagIDs          []int64 `json:"tag_ids"`
}

// UpdatePostInput is a partial post update. Nil fields are left unchanged.
// A non-nil CategoryIDs or TagIDs replaces the whole association set, so an
// empty slice clears it.
type UpdatePostInput struct {
	Title           *string  `json:"title" validate:"omitempty,max=255"`
	Content         *string  `json:"content"`
	Excerpt         *string  `json:"excerpt" validate:"omitempty,max=500"`
	FeaturedImage   *string  `json:"featured_image" validate:"omitempty,max=1024"`
	MetaTitle       *string  `json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription *string  `json:"meta_description" validate:"omitempty,max=500"`
	Status          *string  `json:"status" validate:"omitempty,oneof=draft published"`
	CategoryIDs     *[]int64 `json:"category_ids"`
	TagIDs          *[]int64 `json:"tag_ids"`
}

// PostQuery filters the public post listing.
type PostQuery struct {
	Category string
	Tag      string
	Page
}

// AdminPostQuery filters the admin post listing.
type AdminPostQuery struct {
	Status string
	Page
}

// ListPosts returns published posts, newest first.
func (s *ContentService) ListPosts(ctx context.Context, q PostQuery) (*List[model.Post], error) {
	limit, offset := store.Paginate(q.Limit, q.Offset, store.DefaultPostLimit)
	f := store.PostFilter{
		Status:   model.StatusPublished,
		Category: q.Category,
		Tag:      q.Tag,
		Limit:    limit,
		Offset:   offset,
		Recency:  "published_at",
	}
	return listPage(ctx, s.store, limit, offset, func(ctx context.Context, q *store.Queries) ([]model.Post, int64, error) {
		return q.ListPosts(ctx, f)
	})
}

// ListAdminPosts returns posts of every status, most recently created first.
func (s *ContentService) ListAdminPosts(ctx context.Context, q AdminPostQuery) (*List[model.Post], error) {
	if q.Status != "" && !model.IsValidStatus(q.Status) {
		return nil, apperr.InvalidField("status", "status must be draft or published")
	}
	limit, offset := store.Paginate(q.Limit, q.Offset, store.DefaultAdminPostLimit)
	f := store.PostFilter{
		Status: q.Status,
		Limit:  limit,
		Offset: offset,
	}
	return listPage(ctx, s.store, limit, offset, func(ctx context.Context, q *store.Queries) ([]model.Post, int64, error) {
		return q.ListPosts(ctx, f)
	})
}

// GetPostBySlug returns a published post with rendered HTML. Drafts are
// reported as not found.
func (s *ContentService) GetPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	if !util.IsValidSlug(slug) {
		return nil, apperr.NotFound("post not found")
	}
	p, err := s.store.GetPublishedPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	p.ContentHTML = RenderMarkdown(p.Content)
	return p, nil
}

// GetPost returns a post of any status for editing.
func (s *ContentService) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	return s.store.GetPostByID(ctx, id)
}

// CreatePost validates in, assigns a unique slug and stores the post and its
// associations in one transaction.
func (s *ContentService) CreatePost(ctx context.Context, author *model.AuthenticatedUser, in CreatePostInput) (*Created, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	status := defaultStatus(in.Status)
	excerpt := strings.TrimSpace(in.Excerpt)
	if excerpt == "" && in.Content != "" {
		excerpt = Excerpt(in.Content, ExcerptLength)
	}
	now := s.now()

	var created Created
	err := s.store.InTx(ctx, func(ctx context.Context, q *store.Queries) error {
		slug, err := uniqueSlug(ctx, in.Title, "post", q.PostSlugExists)
		if err != nil {
			return err
		}

		id, err := q.CreatePost(ctx, store.CreatePostParams{
			Title:           in.Title,
			Slug:            slug,
			Content:         in.Content,
			Excerpt:         excerpt,
			FeaturedImage:   strings.TrimSpace(in.FeaturedImage),
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
		if err := q.AddPostCategories(ctx, id, in.CategoryIDs); err != nil {
			return err
		}
		if err := q.AddPostTags(ctx, id, in.TagIDs); err != nil {
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

// UpdatePost applies a partial update. The row update and any association
// replacement commit together. The slug never changes.
func (s *ContentService) UpdatePost(ctx context.Context, id int64, in UpdatePostInput) error {
	in.Title = trimPtr(in.Title)
	if blank(in.Title) {
		return apperr.InvalidField("title", "title is required")
	}
	if err := validateStruct(in); err != nil {
		return err
	}

	return s.store.InTx(ctx, func(ctx context.Context, q *store.Queries) error {
		err := q.UpdatePost(ctx, id, store.UpdatePostParams{
			Title:           in.Title,
			Content:         in.Content,
			Excerpt:         in.Excerpt,
			FeaturedImage:   in.FeaturedImage,
			MetaTitle:       in.MetaTitle,
			MetaDescription: in.MetaDescription,
			Status:          in.Status,
			UpdatedAt:       s.now(),
		})
		if err != nil {
			return err
		}
		if in.CategoryIDs != nil {
			if err := q.ReplacePostCategories(ctx, id, *in.CategoryIDs); err != nil {
				return err
			}
		}
		if in.TagIDs != nil {
			if err := q.ReplacePostTags(ctx, id, *in.TagIDs); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeletePost removes a post and its associations.
func (s *ContentService) DeletePost(ctx context.Context, id int64) error {
	return s.store.DeletePost(ctx, id)
}
