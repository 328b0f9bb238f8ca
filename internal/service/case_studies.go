// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/store"
	"github.com/Sumit9819/digital-marketing-cms/internal/util"
)

// CreateCaseStudyInput is the payload for creating a case study.
type CreateCaseStudyInput struct {
	Title         string          `json:"title" validate:"required,max=255"`
	ClientName    string          `json:"client_name" validate:"required,max=255"`
	Industry      string          `json:"industry" validate:"max=255"`
	Challenge     string          `json:"challenge"`
	Solution      string          `json:"solution"`
	Results       string          `json:"results"`
	KeyMetrics    json.RawMessage `json:"key_metrics"`
	FeaturedImage string          `json:"featured_image" validate:"max=1024"`
	ServiceType   string          `json:"service_type" validate:"max=100"`
	Status        string          `json:"status" validate:"omitempty,oneof=draft published"`
}

// UpdateCaseStudyInput is a partial case study update.
type UpdateCaseStudyInput struct {
	Title         *string          `json:"title" validate:"omitempty,max=255"`
	ClientName    *string          `json:"client_name" validate:"omitempty,max=255"`
	Industry      *string          `json:"industry" validate:"omitempty,max=255"`
	Challenge     *string          `json:"challenge"`
	Solution      *string          `json:"solution"`
	Results       *string          `json:"results"`
	KeyMetrics    *json.RawMessage `json:"key_metrics"`
	FeaturedImage *string          `json:"featured_image" validate:"omitempty,max=1024"`
	ServiceType   *string          `json:"service_type" validate:"omitempty,max=100"`
	Status        *string          `json:"status" validate:"omitempty,oneof=draft published"`
}

// CaseStudyQuery filters the public case study listing.
type CaseStudyQuery struct {
	ServiceType string
	Page
}

// keyMetrics normalizes the key_metrics payload: absent or null is stored
// as empty, anything else must be a JSON object.
func keyMetrics(raw json.RawMessage) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return "", nil
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return "", apperr.InvalidField("key_metrics", "key_metrics must be a JSON object")
	}
	return trimmed, nil
}

// ListCaseStudies returns published case studies, optionally for one service type.
func (s *ContentService) ListCaseStudies(ctx context.Context, q CaseStudyQuery) (*List[model.CaseStudy], error) {
	limit, offset := store.Paginate(q.Limit, q.Offset, store.DefaultCaseStudyLimit)
	f := store.CaseStudyFilter{
		ServiceType: strings.TrimSpace(q.ServiceType),
		Limit:       limit,
		Offset:      offset,
	}
	return listPage(ctx, s.store, limit, offset, func(ctx context.Context, q *store.Queries) ([]model.CaseStudy, int64, error) {
		return q.ListCaseStudies(ctx, f)
	})
}

// GetCaseStudyBySlug returns a published case study.
func (s *ContentService) GetCaseStudyBySlug(ctx context.Context, slug string) (*model.CaseStudy, error) {
	if !util.IsValidSlug(slug) {
		return nil, apperr.NotFound("case study not found")
	}
	return s.store.GetPublishedCaseStudyBySlug(ctx, slug)
}

// GetCaseStudy returns a case study of any status for editing.
func (s *ContentService) GetCaseStudy(ctx context.Context, id int64) (*model.CaseStudy, error) {
	return s.store.GetCaseStudyByID(ctx, id)
}

// CreateCaseStudy validates in and stores a case study under a unique slug.
func (s *ContentService) CreateCaseStudy(ctx context.Context, author *model.AuthenticatedUser, in CreateCaseStudyInput) (*Created, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.ClientName = strings.TrimSpace(in.ClientName)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	metrics, err := keyMetrics(in.KeyMetrics)
	if err != nil {
		return nil, err
	}

	status := defaultStatus(in.Status)
	now := s.now()

	var created Created
	err = s.store.InTx(ctx, func(ctx context.Context, q *store.Queries) error {
		slug, err := uniqueSlug(ctx, in.Title, "case-study", q.CaseStudySlugExists)
		if err != nil {
			return err
		}
		id, err := q.CreateCaseStudy(ctx, store.CaseStudyParams{
			Title:         in.Title,
			Slug:          slug,
			ClientName:    in.ClientName,
			Industry:      strings.TrimSpace(in.Industry),
			Challenge:     in.Challenge,
			Solution:      in.Solution,
			Results:       in.Results,
			KeyMetrics:    metrics,
			FeaturedImage: strings.TrimSpace(in.FeaturedImage),
			ServiceType:   strings.TrimSpace(in.ServiceType),
			Status:        status,
			PublishedAt:   publishedAt(status, now),
			AuthorID:      author.ID,
			CreatedAt:     now,
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

// UpdateCaseStudy applies a partial update to a case study.
func (s *ContentService) UpdateCaseStudy(ctx context.Context, id int64, in UpdateCaseStudyInput) error {
	in.Title = trimPtr(in.Title)
	in.ClientName = trimPtr(in.ClientName)
	if blank(in.Title) {
		return apperr.InvalidField("title", "title is required")
	}
	if blank(in.ClientName) {
		return apperr.InvalidField("client_name", "client_name is required")
	}
	if err := validateStruct(in); err != nil {
		return err
	}

	var metrics *string
	if in.KeyMetrics != nil {
		m, err := keyMetrics(*in.KeyMetrics)
		if err != nil {
			return err
		}
		metrics = &m
	}

	return s.store.UpdateCaseStudy(ctx, id, store.UpdateCaseStudyParams{
		Title:         in.Title,
		ClientName:    in.ClientName,
		Industry:      in.Industry,
		Challenge:     in.Challenge,
		Solution:      in.Solution,
		Results:       in.Results,
		KeyMetrics:    metrics,
		FeaturedImage: in.FeaturedImage,
		ServiceType:   trimPtr(in.ServiceType),
		Status:        in.Status,
		UpdatedAt:     s.now(),
	})
}

// DeleteCaseStudy removes a case study.
func (s *ContentService) DeleteCaseStudy(ctx context.Context, id int64) error {
	return s.store.DeleteCaseStudy(ctx, id)
}
