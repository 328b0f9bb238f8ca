// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/util"
)

const (
	postFrom    = "posts p JOIN users u ON u.id = p.author_id"
	postColumns = "p.id, p.title, p.slug, p.content, p.excerpt, p.featured_image, p.meta_title, p.meta_description, " +
		"p.status, p.published_at, p.author_id, p.created_at, p.updated_at, u.name, u.email, u.role"
)

// PostFilter selects posts for a listing. Empty fields do not filter.
type PostFilter struct {
	Status   string
	Category string // category slug
	Tag      string // tag slug
	Limit    int
	Offset   int
	// Recency is the descending sort column: published_at for the public
	// listing, created_at for the admin listing.
	Recency string
}

// Clause builds the predicate for f.
func (f PostFilter) Clause() Clause {
	where := And{}
	if f.Status != "" {
		where = append(where, Eq{Column: "p.status", Value: f.Status})
	}
	if f.Category != "" {
		where = append(where, ExistsJoin{
			JoinTable: "post_categories", JoinFK: "category_id", OwnerFK: "post_id", OwnerID: "p.id",
			Target: "categories", TargetKey: "slug", Value: f.Category,
		})
	}
	if f.Tag != "" {
		where = append(where, ExistsJoin{
			JoinTable: "post_tags", JoinFK: "tag_id", OwnerFK: "post_id", OwnerID: "p.id",
			Target: "tags", TargetKey: "slug", Value: f.Tag,
		})
	}
	return where
}

// Query returns the ListQuery for f.
func (f PostFilter) Query() ListQuery {
	recency := "p.created_at"
	if f.Recency == "published_at" {
		recency = "p.published_at"
	}
	return ListQuery{
		Select:   postColumns,
		From:     postFrom,
		Where:    f.Clause(),
		OrderBy:  recency,
		IDColumn: "p.id",
		Limit:    f.Limit,
		Offset:   f.Offset,
	}
}

func scanPost(row interface{ Scan(...any) error }) (model.Post, error) {
	var (
		p           model.Post
		publishedAt sql.NullTime
		author      model.Author
	)
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.FeaturedImage, &p.MetaTitle, &p.MetaDescription,
		&p.Status, &publishedAt, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt, &author.Name, &author.Email, &author.Role)
	if err != nil {
		return p, err
	}
	p.PublishedAt = util.TimeFromNull(publishedAt)
	author.ID = p.AuthorID
	p.Author = &author
	p.Categories = []model.Category{}
	p.Tags = []model.Tag{}
	return p, nil
}

// ListPosts returns one page of posts matching f, with categories, tags and
// author attached, plus the total number of matching posts.
func (q *Queries) ListPosts(ctx context.Context, f PostFilter) ([]model.Post, int64, error) {
	stmts := f.Query().Build(q.dialect)

	var total int64
	if err := q.db.QueryRowContext(ctx, stmts.Count.SQL, stmts.Count.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting posts: %w", err)
	}

	rows, err := q.db.QueryContext(ctx, stmts.Rows.SQL, stmts.Rows.Args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating posts: %w", err)
	}

	if err := q.AttachPostRelations(ctx, posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (q *Queries) getPost(ctx context.Context, where string, arg any) (*model.Post, error) {
	p, err := scanPost(q.queryRow(ctx, `SELECT `+postColumns+` FROM `+postFrom+` WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, fmt.Errorf("getting post: %w", err)
	}
	posts := []model.Post{p}
	if err := q.AttachPostRelations(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

// GetPostByID returns a post of any status.
func (q *Queries) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	return q.getPost(ctx, "p.id = ?", id)
}

// GetPublishedPostBySlug returns a published post. Drafts and missing slugs
// yield the same NotFound error.
func (q *Queries) GetPublishedPostBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return q.getPost(ctx, "p.slug = ? AND p.status = '"+model.StatusPublished+"'", slug)
}

// CreatePostParams holds the columns of a new post.
type CreatePostParams struct {
	Title           string
	Slug            string
	Content         string
	Excerpt         string
	FeaturedImage   string
	MetaTitle       string
	MetaDescription string
	Status          string
	PublishedAt     *time.Time
	AuthorID        int64
	CreatedAt       time.Time
}

// CreatePost inserts a post and returns its id.
func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (int64, error) {
	var id int64
	err := q.queryRow(ctx,
		`INSERT INTO posts (title, slug, content, excerpt, featured_image, meta_title, meta_description,
		                    status, published_at, author_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		arg.Title, arg.Slug, arg.Content, arg.Excerpt, arg.FeaturedImage, arg.MetaTitle, arg.MetaDescription,
		arg.Status, util.NullTimeFromPtr(arg.PublishedAt), arg.AuthorID, arg.CreatedAt, arg.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, insertError("post", err)
	}
	return id, nil
}

// UpdatePostParams holds a partial post update. Nil fields are left unchanged.
type UpdatePostParams struct {
	Title           *string
	Content         *string
	Excerpt         *string
	FeaturedImage   *string
	MetaTitle       *string
	MetaDescription *string
	Status          *string
	UpdatedAt       time.Time
}

// UpdatePost applies arg to post id. Moving to published stamps
// published_at only if it was never set; it is never cleared.
func (q *Queries) UpdatePost(ctx context.Context, id int64, arg UpdatePostParams) error {
	var s setList
	setIf(&s, "title", arg.Title)
	setIf(&s, "content", arg.Content)
	setIf(&s, "excerpt", arg.Excerpt)
	setIf(&s, "featured_image", arg.FeaturedImage)
	setIf(&s, "meta_title", arg.MetaTitle)
	setIf(&s, "meta_description", arg.MetaDescription)
	setStatus(&s, arg.Status, arg.UpdatedAt)
	s.set("updated_at", arg.UpdatedAt)

	res, err := q.exec(ctx, `UPDATE posts SET `+s.String()+` WHERE id = ?`, append(s.args, id)...)
	if err != nil {
		return fmt.Errorf("updating post %d: %w", id, err)
	}
	return requireAffected(res, "post not found")
}

// DeletePost removes a post; its join rows cascade.
func (q *Queries) DeletePost(ctx context.Context, id int64) error {
	res, err := q.exec(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting post %d: %w", id, err)
	}
	return requireAffected(res, "post not found")
}

// PostSlugExists reports whether any post uses slug.
func (q *Queries) PostSlugExists(ctx context.Context, slug string) (bool, error) {
	return q.slugExists(ctx, "posts", slug)
}

func (q *Queries) slugExists(ctx context.Context, table, slug string) (bool, error) {
	var n int64
	if err := q.queryRow(ctx, `SELECT COUNT(*) FROM `+table+` WHERE slug = ?`, slug).Scan(&n); err != nil {
		return false, fmt.Errorf("checking %s slug: %w", table, err)
	}
	return n > 0, nil
}

func setIf(s *setList, column string, v *string) {
	if v != nil {
		s.set(column, *v)
	}
}

func setStatus(s *setList, status *string, now time.Time) {
	if status == nil {
		return
	}
	s.set("status", *status)
	if *status == model.StatusPublished {
		s.expr("published_at = COALESCE(published_at, ?)", now)
	}
}

func insertError(resource string, err error) error {
	if isUniqueViolation(err) {
		return apperr.InvalidField("slug", "slug already exists")
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.Internal("failed to create "+resource, err)
	}
	return fmt.Errorf("creating %s: %w", resource, err)
}
