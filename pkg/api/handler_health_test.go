package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/pkg/config"
)

func TestHealthRoute(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	health := decode[HealthResponse](t, rec)

	assert.Equal(t, healthStatusHealthy, health.Status)
	assert.NotEmpty(t, health.Version)
	require.NotNil(t, health.Database)
	assert.Equal(t, healthStatusHealthy, health.Database.Status)
	require.Contains(t, health.Checks, "database")
	assert.Equal(t, healthStatusHealthy, health.Checks["database"].Status)

	// No scheduler wired in this fixture, so its check is absent rather
	// than failing.
	assert.Nil(t, health.Scheduler)
	assert.NotContains(t, health.Checks, "scheduler")

	t.Run("security headers apply to health too", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/health", nil)
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})
}

func TestMetricsRoute(t *testing.T) {
	f := newTestServer(t)

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "drover_test_ticks_total",
		Help: "Test counter.",
	})
	require.NoError(t, f.registry.Register(counter))
	counter.Inc()

	rec := f.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "drover_test_ticks_total 1")

	t.Run("no gatherer, no route", func(t *testing.T) {
		deps := f.deps
		deps.Gatherer = nil
		srv := NewServer(config.DefaultServerConfig(), deps)

		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
