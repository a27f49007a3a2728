package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/droverhq/drover/pkg/config"
)

func TestRouterDegradesWithoutOptionalDeps(t *testing.T) {
	srv := NewServer(config.DefaultServerConfig(), Deps{})
	router := srv.Router()

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/metrics"},
		{http.MethodPost, "/api/v1/diagnostics/trigger"},
		{http.MethodGet, "/api/v1/diagnostics/runs"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	srv := NewServer(config.DefaultServerConfig(), Deps{})
	assert.NoError(t, srv.Shutdown(context.Background()))
}
