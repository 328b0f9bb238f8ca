package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	return slog.New(NewContextHandler(inner)), &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decoding log record %q: %v", buf.String(), err)
	}
	return rec
}

func TestContextHandler_AddsUserID(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	ctx := WithUserID(context.Background(), 42)
	logger.InfoContext(ctx, "post created", "post_id", 7)

	rec := decode(t, buf)
	if rec["user_id"] != float64(42) {
		t.Errorf("user_id = %v, want 42", rec["user_id"])
	}
	if rec["post_id"] != float64(7) {
		t.Errorf("post_id = %v, want 7", rec["post_id"])
	}
	if _, ok := rec["category"]; ok {
		t.Error("info records should not get a category")
	}
}

func TestContextHandler_AddsRequestID(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	var ctx context.Context
	h := chimw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "req-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	logger.InfoContext(ctx, "handled")

	rec := decode(t, buf)
	if rec["request_id"] != "req-123" {
		t.Errorf("request_id = %v, want req-123", rec["request_id"])
	}
}

func TestContextHandler_NoContextValues(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	logger.Info("startup")

	rec := decode(t, buf)
	for _, key := range []string{"request_id", "user_id"} {
		if _, ok := rec[key]; ok {
			t.Errorf("unexpected %s attribute", key)
		}
	}
}

func TestContextHandler_Category(t *testing.T) {
	tests := []struct {
		msg  string
		args []any
		want string
	}{
		{"access denied", nil, CategoryAuth},
		{"login failed", nil, CategoryAuth},
		{"contact submission rejected", nil, CategoryContact},
		{"markdown conversion failed", nil, CategoryContent},
		{"CMS_JWT_SECRET has low character diversity", nil, CategoryConfig},
		{"database unreachable", nil, CategorySystem},
		{"anything", []any{"category", "custom"}, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			logger, buf := newTestLogger(slog.LevelInfo)
			logger.Warn(tt.msg, tt.args...)

			rec := decode(t, buf)
			if rec["category"] != tt.want {
				t.Errorf("category = %v, want %q", rec["category"], tt.want)
			}
		})
	}
}

func TestContextHandler_Enabled(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelWarn)

	logger.Info("filtered")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %s", buf.String())
	}

	if !logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("error level should be enabled")
	}
}

func TestContextHandler_WithAttrsAndGroup(t *testing.T) {
	logger, buf := newTestLogger(slog.LevelInfo)

	ctx := WithUserID(context.Background(), 5)
	logger.With("component", "api").WithGroup("req").InfoContext(ctx, "done", "status", 200)

	rec := decode(t, buf)
	if rec["component"] != "api" {
		t.Errorf("component = %v, want api", rec["component"])
	}
	group, ok := rec["req"].(map[string]any)
	if !ok {
		t.Fatalf("req group missing: %v", rec)
	}
	if group["status"] != float64(200) || group["user_id"] != float64(5) {
		t.Errorf("req group = %v", group)
	}
}

func TestUserID(t *testing.T) {
	if _, ok := UserID(context.Background()); ok {
		t.Error("UserID on empty context should report false")
	}
	id, ok := UserID(WithUserID(context.Background(), 9))
	if !ok || id != 9 {
		t.Errorf("UserID = %d, %v; want 9, true", id, ok)
	}
}
