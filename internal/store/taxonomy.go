// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

// association describes a post join table.
type association struct {
	joinTable string
	fk        string
}

var (
	postCategories = association{joinTable: "post_categories", fk: "category_id"}
	postTags       = association{joinTable: "post_tags", fk: "tag_id"}
)

// AddPostCategories links categoryIDs to a post. Existing pairs are kept.
func (q *Queries) AddPostCategories(ctx context.Context, postID int64, categoryIDs []int64) error {
	return q.addAssociations(ctx, postCategories, postID, categoryIDs)
}

// AddPostTags links tagIDs to a post. Existing pairs are kept.
func (q *Queries) AddPostTags(ctx context.Context, postID int64, tagIDs []int64) error {
	return q.addAssociations(ctx, postTags, postID, tagIDs)
}

// ReplacePostCategories makes categoryIDs the full category set of a post.
// Call it inside a transaction so readers never see the empty intermediate set.
func (q *Queries) ReplacePostCategories(ctx context.Context, postID int64, categoryIDs []int64) error {
	return q.replaceAssociations(ctx, postCategories, postID, categoryIDs)
}

// ReplacePostTags makes tagIDs the full tag set of a post.
func (q *Queries) ReplacePostTags(ctx context.Context, postID int64, tagIDs []int64) error {
	return q.replaceAssociations(ctx, postTags, postID, tagIDs)
}

func (q *Queries) replaceAssociations(ctx context.Context, a association, postID int64, ids []int64) error {
	if _, err := q.exec(ctx, `DELETE FROM `+a.joinTable+` WHERE post_id = ?`, postID); err != nil {
		return fmt.Errorf("clearing %s: %w", a.joinTable, err)
	}
	return q.addAssociations(ctx, a, postID, ids)
}

func (q *Queries) addAssociations(ctx context.Context, a association, postID int64, ids []int64) error {
	for _, id := range ids {
		_, err := q.exec(ctx,
			`INSERT INTO `+a.joinTable+` (post_id, `+a.fk+`) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			postID, id,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return apperr.InvalidField(a.fk, fmt.Sprintf("unknown %s %d", a.fk, id))
			}
			return fmt.Errorf("inserting %s: %w", a.joinTable, err)
		}
	}
	return nil
}

// ListCategories returns all categories ordered by name.
func (q *Queries) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := q.query(ctx, `SELECT id, name, slug, description, created_at FROM categories ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategoryByID returns a category.
func (q *Queries) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	err := q.queryRow(ctx, `SELECT id, name, slug, description, created_at FROM categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err, "category not found", "getting category")
	}
	return &c, nil
}

// CreateCategory inserts a category.
func (q *Queries) CreateCategory(ctx context.Context, name, slug, description string, now time.Time) (*model.Category, error) {
	c := model.Category{Name: name, Slug: slug, Description: description, CreatedAt: now}
	err := q.queryRow(ctx,
		`INSERT INTO categories (name, slug, description, created_at) VALUES (?, ?, ?, ?) RETURNING id`,
		name, slug, description, now,
	).Scan(&c.ID)
	if err != nil {
		return nil, insertError("category", err)
	}
	return &c, nil
}

// UpdateCategory changes the name and/or description of a category.
// The slug is stable.
func (q *Queries) UpdateCategory(ctx context.Context, id int64, name, description *string) error {
	var s setList
	setIf(&s, "name", name)
	setIf(&s, "description", description)
	if len(s.parts) == 0 {
		_, err := q.GetCategoryByID(ctx, id)
		return err
	}
	res, err := q.exec(ctx, `UPDATE categories SET `+s.String()+` WHERE id = ?`, append(s.args, id)...)
	if err != nil {
		return fmt.Errorf("updating category %d: %w", id, err)
	}
	return requireAffected(res, "category not found")
}

// DeleteCategory removes a category and its post links.
func (q *Queries) DeleteCategory(ctx context.Context, id int64) error {
	res, err := q.exec(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting category %d: %w", id, err)
	}
	return requireAffected(res, "category not found")
}

// CategorySlugExists reports whether slug is taken by a category.
func (q *Queries) CategorySlugExists(ctx context.Context, slug string) (bool, error) {
	return q.slugExists(ctx, "categories", slug)
}

// ListTags returns all tags ordered by name.
func (q *Queries) ListTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := q.query(ctx, `SELECT id, name, slug, created_at FROM tags ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := []model.Tag{}
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// GetTagByID returns a tag.
func (q *Queries) GetTagByID(ctx context.Context, id int64) (*model.Tag, error) {
	var t model.Tag
	err := q.queryRow(ctx, `SELECT id, name, slug, created_at FROM tags WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt)
	if err != nil {
		return nil, notFoundOr(err, "tag not found", "getting tag")
	}
	return &t, nil
}

// CreateTag inserts a tag.
func (q *Queries) CreateTag(ctx context.Context, name, slug string, now time.Time) (*model.Tag, error) {
	t := model.Tag{Name: name, Slug: slug, CreatedAt: now}
	err := q.queryRow(ctx,
		`INSERT INTO tags (name, slug, created_at) VALUES (?, ?, ?) RETURNING id`,
		name, slug, now,
	).Scan(&t.ID)
	if err != nil {
		return nil, insertError("tag", err)
	}
	return &t, nil
}

// UpdateTagName renames a tag. The slug is stable.
func (q *Queries) UpdateTagName(ctx context.Context, id int64, name string) error {
	res, err := q.exec(ctx, `UPDATE tags SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("updating tag %d: %w", id, err)
	}
	return requireAffected(res, "tag not found")
}

// DeleteTag removes a tag and its post links.
func (q *Queries) DeleteTag(ctx context.Context, id int64) error {
	res, err := q.exec(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting tag %d: %w", id, err)
	}
	return requireAffected(res, "tag not found")
}

// TagSlugExists reports whether slug is taken by a tag.
func (q *Queries) TagSlugExists(ctx context.Context, slug string) (bool, error) {
	return q.slugExists(ctx, "tags", slug)
}
