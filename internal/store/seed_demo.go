// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/apperr"
	"github.com/Sumit9819/digital-marketing-cms/internal/auth"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/util"
)

// Demo mode credentials
const (
	DemoEditorEmail    = "editor@example.com"
	DemoEditorPassword = "demo1234demo"
	DemoEditorName     = "Demo Editor"
)

type demoPost struct {
	title      string
	content    string
	status     string
	categories []string
	tags       []string
}

var (
	demoCategories = []struct{ name, description string }{
		{"SEO", "Search engine optimisation"},
		{"Paid Media", "Search and social advertising"},
		{"Content Marketing", "Editorial strategy and production"},
		{"Analytics", "Measurement and reporting"},
	}
	demoTags = []string{"Strategy", "Case Study", "Tutorial", "Google Ads", "Conversion"}

	demoPosts = []demoPost{
		{
			title:      "Five SEO Quick Wins for 2026",
			content:    "## Start with technical health\n\nFix crawl errors before writing new content.",
			status:     model.StatusPublished,
			categories: []string{"SEO"},
			tags:       []string{"Strategy", "Tutorial"},
		},
		{
			title:      "Structuring Google Ads Accounts",
			content:    "Keep campaigns aligned with **business goals**, not product catalogues.",
			status:     model.StatusPublished,
			categories: []string{"Paid Media", "Analytics"},
			tags:       []string{"Google Ads", "Conversion"},
		},
		{
			title:      "Our Content Calendar Template",
			content:    "A draft walkthrough of the editorial calendar we use with clients.",
			status:     model.StatusDraft,
			categories: []string{"Content Marketing"},
			tags:       []string{"Tutorial"},
		},
	}
)

// SeedDemo creates demo content for showcasing the CMS. It does nothing
// when posts already exist.
func SeedDemo(ctx context.Context, s *Store) error {
	existing, total, err := s.ListPosts(ctx, PostFilter{Limit: 1})
	if err != nil {
		return fmt.Errorf("checking existing posts: %w", err)
	}
	if total > 0 || len(existing) > 0 {
		slog.InfoContext(ctx, "content already exists, skipping demo seed")
		return nil
	}

	slog.InfoContext(ctx, "seeding demo content")
	return s.InTx(ctx, func(ctx context.Context, q *Queries) error {
		now := time.Now().UTC()

		authorID, err := seedDemoEditor(ctx, q, now)
		if err != nil {
			return fmt.Errorf("seeding demo users: %w", err)
		}

		categoryIDs := make(map[string]int64, len(demoCategories))
		for _, c := range demoCategories {
			cat, err := q.CreateCategory(ctx, c.name, util.Slugify(c.name), c.description, now)
			if err != nil {
				return fmt.Errorf("creating category %q: %w", c.name, err)
			}
			categoryIDs[c.name] = cat.ID
		}

		tagIDs := make(map[string]int64, len(demoTags))
		for _, name := range demoTags {
			tag, err := q.CreateTag(ctx, name, util.Slugify(name), now)
			if err != nil {
				return fmt.Errorf("creating tag %q: %w", name, err)
			}
			tagIDs[name] = tag.ID
		}

		for i, p := range demoPosts {
			created := now.Add(time.Duration(i-len(demoPosts)) * time.Hour)
			var publishedAt *time.Time
			if p.status == model.StatusPublished {
				publishedAt = &created
			}
			postID, err := q.CreatePost(ctx, CreatePostParams{
				Title:       p.title,
				Slug:        util.Slugify(p.title),
				Content:     p.content,
				Status:      p.status,
				PublishedAt: publishedAt,
				AuthorID:    authorID,
				CreatedAt:   created,
			})
			if err != nil {
				return fmt.Errorf("creating post %q: %w", p.title, err)
			}
			if err := q.AddPostCategories(ctx, postID, lookupIDs(categoryIDs, p.categories)); err != nil {
				return err
			}
			if err := q.AddPostTags(ctx, postID, lookupIDs(tagIDs, p.tags)); err != nil {
				return err
			}
		}

		if _, err := q.CreatePage(ctx, CreatePageParams{
			Title:       "About Us",
			Slug:        "about-us",
			Content:     "We are a full-funnel digital marketing agency.",
			Status:      model.StatusPublished,
			PublishedAt: &now,
			AuthorID:    authorID,
			CreatedAt:   now,
		}); err != nil {
			return fmt.Errorf("creating demo page: %w", err)
		}

		if _, err := q.CreateCaseStudy(ctx, CaseStudyParams{
			Title:       "Doubling Organic Leads for a SaaS Brand",
			Slug:        "doubling-organic-leads-for-a-saas-brand",
			ClientName:  "Acme Analytics",
			Industry:    "Software",
			Challenge:   "Organic traffic had plateaued for a year.",
			Solution:    "Technical SEO audit followed by a topic cluster programme.",
			Results:     "Organic leads grew 2.1x in six months.",
			KeyMetrics:  `{"organic_leads":"+110%","traffic":"+85%"}`,
			ServiceType: "seo",
			Status:      model.StatusPublished,
			PublishedAt: &now,
			AuthorID:    authorID,
			CreatedAt:   now,
		}); err != nil {
			return fmt.Errorf("creating demo case study: %w", err)
		}

		slog.InfoContext(ctx, "demo content seeded successfully")
		return nil
	})
}

func seedDemoEditor(ctx context.Context, q *Queries, now time.Time) (int64, error) {
	existing, err := q.GetUserByEmail(ctx, DemoEditorEmail)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return 0, err
	}

	hash, err := auth.HashPassword(DemoEditorPassword)
	if err != nil {
		return 0, fmt.Errorf("hashing editor password: %w", err)
	}
	editor, err := q.CreateUser(ctx, CreateUserParams{
		Email:        DemoEditorEmail,
		PasswordHash: hash,
		Role:         model.RoleEditor,
		Name:         DemoEditorName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return 0, fmt.Errorf("creating demo editor: %w", err)
	}
	slog.InfoContext(ctx, "created demo editor", "email", DemoEditorEmail)
	return editor.ID, nil
}

func lookupIDs(ids map[string]int64, names []string) []int64 {
	out := make([]int64, 0, len(names))
	for _, n := range names {
		if id, ok := ids[n]; ok {
			out = append(out, id)
		}
	}
	return out
}
