package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sumit9819/digital-marketing-cms/internal/version"
)

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/health", "", nil)
	expectStatus(t, rec, http.StatusOK)

	status := decode[HealthStatus](t, rec)
	if status.Status != "healthy" || status.Version != "v-test" {
		t.Errorf("status = %+v", status)
	}
	if status.Checks["database"].Status != "healthy" {
		t.Errorf("database check = %+v", status.Checks["database"])
	}

	rec = env.do(http.MethodGet, "/health/live", "", nil)
	expectStatus(t, rec, http.StatusOK)
	rec = env.do(http.MethodGet, "/health/ready", "", nil)
	expectStatus(t, rec, http.StatusOK)
}

func TestHealth_DatabaseDown(t *testing.T) {
	h := NewHandler(nil, nil, failingPinger{}, version.Info{Version: "v-test"}, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	expectStatus(t, rec, http.StatusServiceUnavailable)
	if got := decode[HealthStatus](t, rec).Status; got != "degraded" {
		t.Errorf("status = %q, want degraded", got)
	}

	rec = httptest.NewRecorder()
	h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	expectStatus(t, rec, http.StatusServiceUnavailable)

	rec = httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	expectStatus(t, rec, http.StatusOK)
}
