// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"html"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ExcerptLength is the rune length of generated excerpts.
const ExcerptLength = 160

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

	// htmlSanitizer allows the safe subset of HTML used in user-generated content.
	htmlSanitizer = bluemonday.UGCPolicy()

	// textPolicy strips all markup.
	textPolicy = bluemonday.StrictPolicy()
)

// RenderMarkdown converts Markdown content to sanitized HTML.
func RenderMarkdown(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		slog.Warn("markdown conversion failed", "error", err)
		return htmlSanitizer.Sanitize(html.EscapeString(src))
	}
	return htmlSanitizer.Sanitize(buf.String())
}

// PlainText returns the text of Markdown content without any markup.
func PlainText(src string) string {
	text := html.UnescapeString(textPolicy.Sanitize(RenderMarkdown(src)))
	return strings.Join(strings.Fields(text), " ")
}

// Excerpt derives a short plain-text summary from Markdown content.
func Excerpt(src string, maxRunes int) string {
	text := PlainText(src)
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:maxRunes])
	if i := strings.LastIndex(cut, " "); i > len(cut)/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "..."
}
