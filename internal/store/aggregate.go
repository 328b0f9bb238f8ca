// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

// AttachPostRelations loads the categories and tags of every post in posts
// with one query per relation and attaches them in place. Within a post,
// categories and tags are ordered by name, then id. Posts without
// associations keep empty, non-nil slices.
func (q *Queries) AttachPostRelations(ctx context.Context, posts []model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]any, len(posts))
	index := make(map[int64]int, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		index[posts[i].ID] = i
		if posts[i].Categories == nil {
			posts[i].Categories = []model.Category{}
		}
		if posts[i].Tags == nil {
			posts[i].Tags = []model.Tag{}
		}
	}

	if err := q.attachCategories(ctx, posts, ids, index); err != nil {
		return err
	}
	return q.attachTags(ctx, posts, ids, index)
}

func (q *Queries) attachCategories(ctx context.Context, posts []model.Post, ids []any, index map[int64]int) error {
	rows, err := q.query(ctx,
		`SELECT pc.post_id, c.id, c.name, c.slug, c.description, c.created_at
		 FROM post_categories pc
		 JOIN categories c ON c.id = pc.category_id
		 WHERE pc.post_id IN (`+placeholders(len(ids))+`)
		 ORDER BY c.name ASC, c.id ASC`,
		ids...,
	)
	if err != nil {
		return fmt.Errorf("loading post categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			postID int64
			c      model.Category
		)
		if err := rows.Scan(&postID, &c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return fmt.Errorf("scanning post category: %w", err)
		}
		if i, ok := index[postID]; ok {
			posts[i].Categories = append(posts[i].Categories, c)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating post categories: %w", err)
	}
	return nil
}

func (q *Queries) attachTags(ctx context.Context, posts []model.Post, ids []any, index map[int64]int) error {
	rows, err := q.query(ctx,
		`SELECT pt.post_id, t.id, t.name, t.slug, t.created_at
		 FROM post_tags pt
		 JOIN tags t ON t.id = pt.tag_id
		 WHERE pt.post_id IN (`+placeholders(len(ids))+`)
		 ORDER BY t.name ASC, t.id ASC`,
		ids...,
	)
	if err != nil {
		return fmt.Errorf("loading post tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			postID int64
			t      model.Tag
		)
		if err := rows.Scan(&postID, &t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return fmt.Errorf("scanning post tag: %w", err)
		}
		if i, ok := index[postID]; ok {
			posts[i].Tags = append(posts[i].Tags, t)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating post tags: %w", err)
	}
	return nil
}
