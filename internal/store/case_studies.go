// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/util"
)

const (
	caseStudyFrom    = "case_studies cs JOIN users u ON u.id = cs.author_id"
	caseStudyColumns = "cs.id, cs.title, cs.slug, cs.client_name, cs.industry, cs.challenge, cs.solution, cs.results, " +
		"cs.key_metrics, cs.featured_image, cs.service_type, cs.status, cs.published_at, cs.author_id, " +
		"cs.created_at, cs.updated_at, u.name, u.email, u.role"
)

// CaseStudyFilter selects published case studies.
type CaseStudyFilter struct {
	ServiceType string
	Limit       int
	Offset      int
}

// Query returns the ListQuery for f. Only published case studies are listed.
func (f CaseStudyFilter) Query() ListQuery {
	where := And{Eq{Column: "cs.status", Value: model.StatusPublished}}
	if f.ServiceType != "" {
		where = append(where, Eq{Column: "cs.service_type", Value: f.ServiceType})
	}
	return ListQuery{
		Select:   caseStudyColumns,
		From:     caseStudyFrom,
		Where:    where,
		OrderBy:  "cs.published_at",
		IDColumn: "cs.id",
		Limit:    f.Limit,
		Offset:   f.Offset,
	}
}

func scanCaseStudy(row interface{ Scan(...any) error }) (model.CaseStudy, error) {
	var (
		cs          model.CaseStudy
		keyMetrics  string
		publishedAt sql.NullTime
		author      model.Author
	)
	err := row.Scan(&cs.ID, &cs.Title, &cs.Slug, &cs.ClientName, &cs.Industry, &cs.Challenge, &cs.Solution, &cs.Results,
		&keyMetrics, &cs.FeaturedImage, &cs.ServiceType, &cs.Status, &publishedAt, &cs.AuthorID,
		&cs.CreatedAt, &cs.UpdatedAt, &author.Name, &author.Email, &author.Role)
	if err != nil {
		return cs, err
	}
	if keyMetrics != "" {
		cs.KeyMetrics = json.RawMessage(keyMetrics)
	}
	cs.PublishedAt = util.TimeFromNull(publishedAt)
	author.ID = cs.AuthorID
	cs.Author = &author
	return cs, nil
}

// ListCaseStudies returns one page of published case studies and the total.
func (q *Queries) ListCaseStudies(ctx context.Context, f CaseStudyFilter) ([]model.CaseStudy, int64, error) {
	stmts := f.Query().Build(q.dialect)

	var total int64
	if err := q.db.QueryRowContext(ctx, stmts.Count.SQL, stmts.Count.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting case studies: %w", err)
	}

	rows, err := q.db.QueryContext(ctx, stmts.Rows.SQL, stmts.Rows.Args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing case studies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []model.CaseStudy{}
	for rows.Next() {
		cs, err := scanCaseStudy(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning case study: %w", err)
		}
		items = append(items, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating case studies: %w", err)
	}
	return items, total, nil
}

// GetCaseStudyByID returns a case study of any status.
func (q *Queries) GetCaseStudyByID(ctx context.Context, id int64) (*model.CaseStudy, error) {
	cs, err := scanCaseStudy(q.queryRow(ctx, `SELECT `+caseStudyColumns+` FROM `+caseStudyFrom+` WHERE cs.id = ?`, id))
	if err != nil {
		return nil, notFoundOr(err, "case study not found", "getting case study")
	}
	return &cs, nil
}

// GetPublishedCaseStudyBySlug returns a published case study.
func (q *Queries) GetPublishedCaseStudyBySlug(ctx context.Context, slug string) (*model.CaseStudy, error) {
	cs, err := scanCaseStudy(q.queryRow(ctx,
		`SELECT `+caseStudyColumns+` FROM `+caseStudyFrom+` WHERE cs.slug = ? AND cs.status = ?`,
		slug, model.StatusPublished,
	))
	if err != nil {
		return nil, notFoundOr(err, "case study not found", "getting case study")
	}
	return &cs, nil
}

// CaseStudyParams holds the columns of a new case study.
type CaseStudyParams struct {
	Title         string
	Slug          string
	ClientName    string
	Industry      string
	Challenge     string
	Solution      string
	Results       string
	KeyMetrics    string
	FeaturedImage string
	ServiceType   string
	Status        string
	PublishedAt   *time.Time
	AuthorID      int64
	CreatedAt     time.Time
}

// CreateCaseStudy inserts a case study and returns its id.
func (q *Queries) CreateCaseStudy(ctx context.Context, arg CaseStudyParams) (int64, error) {
	var id int64
	err := q.queryRow(ctx,
		`INSERT INTO case_studies (title, slug, client_name, industry, challenge, solution, results, key_metrics,
		                           featured_image, service_type, status, published_at, author_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		arg.Title, arg.Slug, arg.ClientName, arg.Industry, arg.Challenge, arg.Solution, arg.Results, arg.KeyMetrics,
		arg.FeaturedImage, arg.ServiceType, arg.Status, util.NullTimeFromPtr(arg.PublishedAt), arg.AuthorID, arg.CreatedAt, arg.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, insertError("case study", err)
	}
	return id, nil
}

// UpdateCaseStudyParams holds a partial case study update.
type UpdateCaseStudyParams struct {
	Title         *string
	ClientName    *string
	Industry      *string
	Challenge     *string
	Solution      *string
	Results       *string
	KeyMetrics    *string
	FeaturedImage *string
	ServiceType   *string
	Status        *string
	UpdatedAt     time.Time
}

// UpdateCaseStudy applies arg to case study id.
func (q *Queries) UpdateCaseStudy(ctx context.Context, id int64, arg UpdateCaseStudyParams) error {
	var s setList
	setIf(&s, "title", arg.Title)
	setIf(&s, "client_name", arg.ClientName)
	setIf(&s, "industry", arg.Industry)
	setIf(&s, "challenge", arg.Challenge)
	setIf(&s, "solution", arg.Solution)
	setIf(&s, "results", arg.Results)
	setIf(&s, "key_metrics", arg.KeyMetrics)
	setIf(&s, "featured_image", arg.FeaturedImage)
	setIf(&s, "service_type", arg.ServiceType)
	setStatus(&s, arg.Status, arg.UpdatedAt)
	s.set("updated_at", arg.UpdatedAt)

	res, err := q.exec(ctx, `UPDATE case_studies SET `+s.String()+` WHERE id = ?`, append(s.args, id)...)
	if err != nil {
		return fmt.Errorf("updating case study %d: %w", id, err)
	}
	return requireAffected(res, "case study not found")
}

// DeleteCaseStudy removes a case study.
func (q *Queries) DeleteCaseStudy(ctx context.Context, id int64) error {
	res, err := q.exec(ctx, `DELETE FROM case_studies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting case study %d: %w", id, err)
	}
	return requireAffected(res, "case study not found")
}

// CaseStudySlugExists reports whether any case study uses slug.
func (q *Queries) CaseStudySlugExists(ctx context.Context, slug string) (bool, error) {
	return q.slugExists(ctx, "case_studies", slug)
}
