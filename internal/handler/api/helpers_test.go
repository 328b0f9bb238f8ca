package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Sumit9819/digital-marketing-cms/internal/auth"
	"github.com/Sumit9819/digital-marketing-cms/internal/middleware"
	"github.com/Sumit9819/digital-marketing-cms/internal/model"
	"github.com/Sumit9819/digital-marketing-cms/internal/service"
	"github.com/Sumit9819/digital-marketing-cms/internal/store"
	"github.com/Sumit9819/digital-marketing-cms/internal/testutil"
	"github.com/Sumit9819/digital-marketing-cms/internal/version"
)

const testPassword = "correct-horse-battery"

// testEnv is a router backed by a migrated temporary database with one
// user per role.
type testEnv struct {
	t      *testing.T
	store  *store.Store
	router http.Handler
	users  map[string]*model.User
	tokens map[string]string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s := testutil.TestStore(t)
	v := auth.NewVerifier(testutil.TokenConfig(), s)
	logins := middleware.NewLoginProtection(middleware.LoginProtectionConfig{MaxFailedAttempts: 3})
	h := NewHandler(service.NewContentService(s), service.NewAuthService(s, v), s, version.Info{Version: "v-test"}, logins)

	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/health/live", h.Liveness)
	r.Get("/health/ready", h.Readiness)
	r.Mount("/api", h.Routes(v, Limiters{}))

	env := &testEnv{
		t:      t,
		store:  s,
		router: r,
		users:  map[string]*model.User{},
		tokens: map[string]string{},
	}
	for _, role := range model.AllRoles {
		u := testutil.CreateUser(t, s, role+"@example.com", testPassword, role)
		token, _, err := auth.IssueToken(testutil.TokenConfig(), u, time.Now())
		if err != nil {
			t.Fatalf("IssueToken: %v", err)
		}
		env.users[role] = u
		env.tokens[role] = token
	}
	return env
}

// do sends a request through the router with the bearer token of role.
// An empty role sends no token.
func (e *testEnv) do(method, path, role string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	token := ""
	if role != "" {
		token = e.tokens[role]
	}
	return e.doToken(method, path, token, body)
}

// doToken sends a request through the router. body may be nil, a string
// sent verbatim, or a value encoded as JSON.
func (e *testEnv) doToken(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			e.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// itoa formats an id for a URL path.
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// expectStatus fails the test when rec has an unexpected status.
func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, want, rec.Body.String())
	}
}

// decode unmarshals a response body into T.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("unmarshal %q: %v", rec.Body.String(), err)
	}
	return v
}

// envelope is a decoded success response.
type envelope[T any] struct {
	Data T     `json:"data"`
	Meta *Meta `json:"meta"`
}

// errorBody is a decoded error response.
type errorBody struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

// createPost creates a post through the API and returns its id and slug.
func (e *testEnv) createPost(role string, in map[string]any) service.Created {
	e.t.Helper()
	rec := e.do(http.MethodPost, "/api/admin/posts", role, in)
	expectStatus(e.t, rec, http.StatusCreated)
	return decode[envelope[service.Created]](e.t, rec).Data
}

// createCategory creates a category through the API.
func (e *testEnv) createCategory(name string) model.Category {
	e.t.Helper()
	rec := e.do(http.MethodPost, "/api/admin/categories", model.RoleEditor, map[string]any{"name": name})
	expectStatus(e.t, rec, http.StatusCreated)
	return decode[envelope[model.Category]](e.t, rec).Data
}

// createTag creates a tag through the API.
func (e *testEnv) createTag(name string) model.Tag {
	e.t.Helper()
	rec := e.do(http.MethodPost, "/api/admin/tags", model.RoleEditor, map[string]any{"name": name})
	expectStatus(e.t, rec, http.StatusCreated)
	return decode[envelope[model.Tag]](e.t, rec).Data
}

// failingPinger reports the database as unreachable.
type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }
