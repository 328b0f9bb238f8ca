// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"time"
)

// Author is the author snapshot attached to listed content. It is always
// resolved from the live users row at read time.
type Author struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Post represents a blog post together with its derived associations.
type Post struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content,omitempty"`
	ContentHTML     string     `json:"content_html,omitempty"`
	Excerpt         string     `json:"excerpt,omitempty"`
	FeaturedImage   string     `json:"featured_image,omitempty"`
	MetaTitle       string     `json:"meta_title,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	Status          string     `json:"status"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	AuthorID        int64      `json:"author_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Categories []Category `json:"categories"`
	Tags       []Tag      `json:"tags"`
	Author     *Author    `json:"author,omitempty"`
}

// CaseStudy represents a client case study.
type CaseStudy struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Slug          string          `json:"slug"`
	ClientName    string          `json:"client_name"`
	Industry      string          `json:"industry,omitempty"`
	Challenge     string          `json:"challenge,omitempty"`
	Solution      string          `json:"solution,omitempty"`
	Results       string          `json:"results,omitempty"`
	KeyMetrics    json.RawMessage `json:"key_metrics,omitempty"`
	FeaturedImage string          `json:"featured_image,omitempty"`
	ServiceType   string          `json:"service_type,omitempty"`
	Status        string          `json:"status"`
	PublishedAt   *time.Time      `json:"published_at,omitempty"`
	AuthorID      int64           `json:"author_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Author *Author `json:"author,omitempty"`
}

// Category is a post category.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tag is a post tag.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
