// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions including
// URL slug generation and validation with Unicode normalization support.
package util

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugAttempts bounds the numeric suffixes tried by UniqueSlug.
const MaxSlugAttempts = 100

// nonAlphanumeric matches runs of characters that cannot appear in a slug.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slugify converts a string to a URL-friendly slug.
// It removes accents, transliterates non-Latin scripts, lower-cases the
// result and collapses every run of non-alphanumeric characters into a
// single hyphen. Leading and trailing hyphens are trimmed.
func Slugify(s string) string {
	// Normalize unicode characters (decompose accents)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)

	// Cyrillic, Greek, CJK etc. become ASCII approximations
	result = unidecode.Unidecode(result)

	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// SlugExistsFunc reports whether a slug is already taken.
type SlugExistsFunc func(ctx context.Context, slug string) (bool, error)

// UniqueSlug returns base if it is free, otherwise the first free
// "base-N" for N starting at 2. An empty base is replaced by fallback.
func UniqueSlug(ctx context.Context, base, fallback string, exists SlugExistsFunc) (string, error) {
	if base == "" {
		base = fallback
	}

	candidate := base
	for n := 2; n <= MaxSlugAttempts+1; n++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("checking slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(n)
	}

	return "", fmt.Errorf("no free slug for %q after %d attempts", base, MaxSlugAttempts)
}

// IsValidSlug reports whether s has the shape Slugify produces: lower-case
// alphanumeric words joined by single hyphens.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
