package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	handler := CORS(CORSConfig{AllowedOrigins: []string{"https://example.com"}})(okHandler())

	tests := []struct {
		name       string
		method     string
		origin     string
		preflight  bool
		wantOrigin string
		wantStatus int
	}{
		{"no origin", http.MethodGet, "", false, "", http.StatusOK},
		{"allowed origin", http.MethodGet, "https://example.com", false, "https://example.com", http.StatusOK},
		{"case insensitive", http.MethodGet, "https://EXAMPLE.com", false, "https://EXAMPLE.com", http.StatusOK},
		{"disallowed origin", http.MethodGet, "https://evil.test", false, "", http.StatusOK},
		{"preflight", http.MethodOptions, "https://example.com", true, "https://example.com", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/posts", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if tt.preflight && rec.Header().Get("Access-Control-Max-Age") != "3600" {
				t.Errorf("Access-Control-Max-Age = %q", rec.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}

func TestCORSWildcard(t *testing.T) {
	handler := CORS(CORSConfig{AllowedOrigins: []string{"*"}})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anywhere.test")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anywhere.test" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
