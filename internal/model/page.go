// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"
)

// Content statuses shared by posts, pages and case studies.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// IsValidStatus reports whether s is a known content status.
func IsValidStatus(s string) bool {
	return s == StatusDraft || s == StatusPublished
}

// Page represents a static site page.
type Page struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content,omitempty"`
	ContentHTML     string     `json:"content_html,omitempty"`
	MetaTitle       string     `json:"meta_title,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	Status          string     `json:"status"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	AuthorID        int64      `json:"author_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
