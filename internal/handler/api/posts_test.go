package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

func TestPostsFlow(t *testing.T) {
	env := newTestEnv(t)
	seo := env.createCategory("SEO")
	tips := env.createTag("Tips")

	created := env.createPost(model.RoleAuthor, map[string]any{
		"title":        "Ranking in 2026!",
		"content":      "# Hello\n\nSome **bold** advice.",
		"category_ids": []int64{seo.ID},
		"tag_ids":      []int64{tips.ID},
	})
	if created.Slug != "ranking-in-2026" {
		t.Fatalf("slug = %q, want ranking-in-2026", created.Slug)
	}

	// Drafts are invisible to the public.
	rec := env.do(http.MethodGet, "/api/posts/"+created.Slug, "", nil)
	expectStatus(t, rec, http.StatusNotFound)
	if got := decode[errorBody](t, rec).Error.Code; got != "not_found" {
		t.Errorf("code = %q, want not_found", got)
	}

	// Admins see drafts by id.
	rec = env.do(http.MethodGet, "/api/admin/posts/"+itoa(created.ID), model.RoleAuthor, nil)
	expectStatus(t, rec, http.StatusOK)
	draft := decode[envelope[model.Post]](t, rec).Data
	if draft.Status != model.StatusDraft || draft.PublishedAt != nil {
		t.Errorf("draft = status %q published_at %v", draft.Status, draft.PublishedAt)
	}

	rec = env.do(http.MethodPut, "/api/admin/posts/"+itoa(created.ID), model.RoleAuthor,
		map[string]any{"status": "published"})
	expectStatus(t, rec, http.StatusOK)
	if !decode[envelope[Result]](t, rec).Data.Success {
		t.Error("update should report success")
	}

	rec = env.do(http.MethodGet, "/api/posts/"+created.Slug, "", nil)
	expectStatus(t, rec, http.StatusOK)
	post := decode[envelope[model.Post]](t, rec).Data
	if post.PublishedAt == nil {
		t.Error("published post should carry published_at")
	}
	if !strings.Contains(post.ContentHTML, "<strong>bold</strong>") {
		t.Errorf("content_html = %q", post.ContentHTML)
	}
	if len(post.Categories) != 1 || post.Categories[0].Slug != "seo" {
		t.Errorf("categories = %+v", post.Categories)
	}
	if len(post.Tags) != 1 || post.Tags[0].Slug != "tips" {
		t.Errorf("tags = %+v", post.Tags)
	}

	rec = env.do(http.MethodDelete, "/api/admin/posts/"+itoa(created.ID), model.RoleAuthor, nil)
	expectStatus(t, rec, http.StatusOK)

	rec = env.do(http.MethodGet, "/api/posts/"+created.Slug, "", nil)
	expectStatus(t, rec, http.StatusNotFound)
	rec = env.do(http.MethodDelete, "/api/admin/posts/"+itoa(created.ID), model.RoleAuthor, nil)
	expectStatus(t, rec, http.StatusNotFound)
}

func TestListPosts_Meta(t *testing.T) {
	env := newTestEnv(t)
	seo := env.createCategory("SEO")

	for i := 0; i < 5; i++ {
		in := map[string]any{"title": "Post", "status": "published"}
		if i%2 == 0 {
			in["category_ids"] = []int64{seo.ID}
		}
		env.createPost(model.RoleEditor, in)
	}
	env.createPost(model.RoleEditor, map[string]any{"title": "Draft"})

	tests := []struct {
		name      string
		path      string
		role      string
		wantItems int
		wantMeta  Meta
	}{
		{"public default", "/api/posts", "", 5, Meta{Total: 5, Limit: 10, Offset: 0}},
		{"public page", "/api/posts?limit=2&offset=4", "", 1, Meta{Total: 5, Limit: 2, Offset: 4}},
		{"category filter", "/api/posts?category=seo&limit=1", "", 1, Meta{Total: 3, Limit: 1, Offset: 0}},
		{"unknown tag", "/api/posts?tag=nope", "", 0, Meta{Total: 0, Limit: 10, Offset: 0}},
		{"admin all", "/api/admin/posts", model.RoleAuthor, 6, Meta{Total: 6, Limit: 10, Offset: 0}},
		{"admin drafts", "/api/admin/posts?status=draft", model.RoleAuthor, 1, Meta{Total: 1, Limit: 10, Offset: 0}},
		{"admin clamped", "/api/admin/posts?limit=1000", model.RoleAuthor, 6, Meta{Total: 6, Limit: 100, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodGet, tt.path, tt.role, nil)
			expectStatus(t, rec, http.StatusOK)

			resp := decode[envelope[[]model.Post]](t, rec)
			if len(resp.Data) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(resp.Data), tt.wantItems)
			}
			if resp.Meta == nil || *resp.Meta != tt.wantMeta {
				t.Errorf("meta = %+v, want %+v", resp.Meta, tt.wantMeta)
			}
		})
	}
}

func TestPosts_BadRequests(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		wantCode int
		wantErr  string
	}{
		{"non-numeric limit", http.MethodGet, "/api/admin/posts?limit=ten", nil, http.StatusBadRequest, "bad_request"},
		{"bad status filter", http.MethodGet, "/api/admin/posts?status=archived", nil, http.StatusUnprocessableEntity, "invalid"},
		{"bad id", http.MethodGet, "/api/admin/posts/abc", nil, http.StatusBadRequest, "bad_request"},
		{"zero id", http.MethodPut, "/api/admin/posts/0", map[string]any{"title": "x"}, http.StatusBadRequest, "bad_request"},
		{"missing body", http.MethodPost, "/api/admin/posts", nil, http.StatusBadRequest, "bad_request"},
		{"invalid json", http.MethodPost, "/api/admin/posts", `{"title":`, http.StatusBadRequest, "bad_request"},
		{"missing title", http.MethodPost, "/api/admin/posts", map[string]any{"content": "x"}, http.StatusUnprocessableEntity, "invalid"},
		{"unknown status", http.MethodPost, "/api/admin/posts", map[string]any{"title": "x", "status": "live"}, http.StatusUnprocessableEntity, "invalid"},
		{"unknown category", http.MethodPost, "/api/admin/posts", map[string]any{"title": "x", "category_ids": []int64{999}}, http.StatusUnprocessableEntity, "invalid"},
		{"update missing post", http.MethodPut, "/api/admin/posts/999", map[string]any{"title": "x"}, http.StatusNotFound, "not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(tt.method, tt.path, model.RoleEditor, tt.body)
			expectStatus(t, rec, tt.wantCode)
			if got := decode[errorBody](t, rec).Error.Code; got != tt.wantErr {
				t.Errorf("code = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestCreatePost_ValidationDetails(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/admin/posts", model.RoleEditor, map[string]any{"title": "   "})
	expectStatus(t, rec, http.StatusUnprocessableEntity)

	body := decode[errorBody](t, rec)
	if _, ok := body.Error.Details["title"]; !ok {
		t.Errorf("details = %v, want a title entry", body.Error.Details)
	}
}
