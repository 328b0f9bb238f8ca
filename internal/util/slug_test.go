package util

import (
	"context"
	"errors"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple title",
			input:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "with special characters",
			input:    "Hello, World!",
			expected: "hello-world",
		},
		{
			name:     "with numbers",
			input:    "Page 123",
			expected: "page-123",
		},
		{
			name:     "with accents",
			input:    "Café résumé",
			expected: "cafe-resume",
		},
		{
			name:     "with multiple spaces",
			input:    "Hello   World",
			expected: "hello-world",
		},
		{
			name:     "with hyphens",
			input:    "Hello - World",
			expected: "hello-world",
		},
		{
			name:     "with leading/trailing spaces",
			input:    "  Hello World  ",
			expected: "hello-world",
		},
		{
			name:     "all special characters",
			input:    "!@#$%^&*()",
			expected: "",
		},
		{
			name:     "cyrillic is transliterated",
			input:    "Привет мир",
			expected: "privet-mir",
		},
		{
			name:     "underscores and dots become hyphens",
			input:    "go_lang.tips",
			expected: "go-lang-tips",
		},
		{
			name:     "punctuation run collapses",
			input:    "Hello World!",
			expected: "hello-world",
		},
		{
			name:     "german umlauts",
			input:    "Über München",
			expected: "uber-munchen",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "single word",
			input:    "Hello",
			expected: "hello",
		},
		{
			name:     "mixed case",
			input:    "HeLLo WoRLd",
			expected: "hello-world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"seo-audit", "case-study-2", "2026", "a"}
	for _, slug := range valid {
		if !IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = false, want true", slug)
		}
	}

	invalid := []string{"", "SEO-Audit", "seo audit", "seo_audit", "seo--audit", "-seo", "seo-", "caf\u00e9"}
	for _, slug := range invalid {
		if IsValidSlug(slug) {
			t.Errorf("IsValidSlug(%q) = true, want false", slug)
		}
	}
}

// Every non-empty Slugify result must be accepted by the route-level check.
func TestSlugifyOutputIsValid(t *testing.T) {
	titles := []string{"Hello World", "  Web  Design! ", "Café & Bar", "Привет мир", "100% Growth -- Q3", "A/B Testing"}
	for _, title := range titles {
		slug := Slugify(title)
		if slug == "" {
			t.Fatalf("Slugify(%q) returned empty slug", title)
		}
		if !IsValidSlug(slug) {
			t.Errorf("Slugify(%q) = %q, rejected by IsValidSlug", title, slug)
		}
	}
}

func TestUniqueSlug(t *testing.T) {
	ctx := context.Background()

	taken := map[string]bool{"hello-world": true, "hello-world-2": true}
	exists := func(_ context.Context, slug string) (bool, error) {
		return taken[slug], nil
	}

	tests := []struct {
		name     string
		base     string
		fallback string
		want     string
	}{
		{"free base", "fresh", "post", "fresh"},
		{"taken base gets next suffix", "hello-world", "post", "hello-world-3"},
		{"empty base uses fallback", "", "post", "post"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UniqueSlug(ctx, tt.base, tt.fallback, exists)
			if err != nil {
				t.Fatalf("UniqueSlug: %v", err)
			}
			if got != tt.want {
				t.Errorf("UniqueSlug(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}

func TestUniqueSlugPropagatesError(t *testing.T) {
	boom := errors.New("db down")
	_, err := UniqueSlug(context.Background(), "x", "post", func(context.Context, string) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped db error, got %v", err)
	}
}

func TestUniqueSlugGivesUp(t *testing.T) {
	_, err := UniqueSlug(context.Background(), "x", "post", func(context.Context, string) (bool, error) {
		return true, nil
	})
	if err == nil {
		t.Error("expected error when every candidate is taken")
	}
}
