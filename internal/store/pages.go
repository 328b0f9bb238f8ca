// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/util"
)

const pageColumns = "id, title, slug, content, meta_title, meta_description, status, published_at, author_id, created_at, updated_at"

func scanPage(row interface{ Scan(...any) error }) (model.Page, error) {
	var (
		p           model.Page
		publishedAt sql.NullTime
	)
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.MetaTitle, &p.MetaDescription,
		&p.Status, &publishedAt, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}
	p.PublishedAt = util.TimeFromNull(publishedAt)
	return p, nil
}

// ListPublishedPages returns published pages, newest first.
func (q *Queries) ListPublishedPages(ctx context.Context) ([]model.Page, error) {
	rows, err := q.query(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE status = ? ORDER BY created_at DESC, id DESC`,
		model.StatusPublished,
	)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	pages := []model.Page{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// GetPageByID returns a page of any status.
func (q *Queries) GetPageByID(ctx context.Context, id int64) (*model.Page, error) {
	p, err := scanPage(q.queryRow(ctx, `SELECT `+pageColumns+` FROM pages WHERE id = ?`, id))
	if err != nil {
		return nil, notFoundOr(err, "page not found", "getting page")
	}
	return &p, nil
}

// GetPublishedPageBySlug returns a published page. Drafts and missing slugs
// yield the same NotFound error.
func (q *Queries) GetPublishedPageBySlug(ctx context.Context, slug string) (*model.Page, error) {
	p, err := scanPage(q.queryRow(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE slug = ? AND status = ?`,
		slug, model.StatusPublished,
	))
	if err != nil {
		return nil, notFoundOr(err, "page not found", "getting page")
	}
	return &p, nil
}

// CreatePageParams holds the columns of a new page.
type CreatePageParams struct {
	Title           string
	Slug            string
	Content         string
	MetaTitle       string
	MetaDescription string
	Status          string
	PublishedAt     *time.Time
	AuthorID        int64
	CreatedAt       time.Time
}

// CreatePage inserts a page and returns its id.
func (q *Queries) CreatePage(ctx context.Context, arg CreatePageParams) (int64, error) {
	var id int64
	err := q.queryRow(ctx,
		`INSERT INTO pages (title, slug, content, meta_title, meta_description, status, published_at,
		                    author_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		arg.Title, arg.Slug, arg.Content, arg.MetaTitle, arg.MetaDescription, arg.Status,
		util.NullTimeFromPtr(arg.PublishedAt), arg.AuthorID, arg.CreatedAt, arg.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, insertError("page", err)
	}
	return id, nil
}

// UpdatePageParams holds a partial page update. Nil fields are left unchanged.
type UpdatePageParams struct {
	Title           *string
	Content         *string
	MetaTitle       *string
	MetaDescription *string
	Status          *string
	UpdatedAt       time.Time
}

// UpdatePage applies arg to page id.
func (q *Queries) UpdatePage(ctx context.Context, id int64, arg UpdatePageParams) error {
	var s setList
	setIf(&s, "title", arg.Title)
	setIf(&s, "content", arg.Content)
	setIf(&s, "meta_title", arg.MetaTitle)
	setIf(&s, "meta_description", arg.MetaDescription)
	setStatus(&s, arg.Status, arg.UpdatedAt)
	s.set("updated_at", arg.UpdatedAt)

	res, err := q.exec(ctx, `UPDATE pages SET `+s.String()+` WHERE id = ?`, append(s.args, id)...)
	if err != nil {
		return fmt.Errorf("updating page %d: %w", id, err)
	}
	return requireAffected(res, "page not found")
}

// DeletePage removes a page.
func (q *Queries) DeletePage(ctx context.Context, id int64) error {
	res, err := q.exec(ctx, `DELETE FROM pages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting page %d: %w", id, err)
	}
	return requireAffected(res, "page not found")
}

// PageSlugExists reports whether any page uses slug.
func (q *Queries) PageSlugExists(ctx context.Context, slug string) (bool, error) {
	return q.slugExists(ctx, "pages", slug)
}
