package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/pkg/models"
)

func TestLockRoutes(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(t, http.MethodPost, "/api/v1/locks", models.AcquireLockRequest{
		Name:         "schema-migration",
		OwnerAgentID: "agent-1",
		Metadata:     map[string]any{"ticket_id": "T-1"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	acquired := decode[models.LockResponse](t, rec)
	require.NotNil(t, acquired.ResourceLock)
	assert.Equal(t, "schema-migration", acquired.Name)
	assert.Equal(t, "agent-1", acquired.OwnerAgentID)

	t.Run("held lock conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/locks", models.AcquireLockRequest{
			Name:         "schema-migration",
			OwnerAgentID: "agent-2",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, reasonLockHeld, decode[ErrorResponse](t, rec).Reason)
	})

	t.Run("missing name", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/locks", models.AcquireLockRequest{OwnerAgentID: "agent-1"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "name", decode[ErrorResponse](t, rec).Field)
	})

	rec = f.do(t, http.MethodGet, "/api/v1/locks/schema-migration", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "agent-1", decode[models.LockResponse](t, rec).OwnerAgentID)

	t.Run("release by the wrong owner", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/locks/release", models.ReleaseLockRequest{
			Name:         "schema-migration",
			OwnerAgentID: "agent-2",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, reasonPermissionDenied, decode[ErrorResponse](t, rec).Reason)
	})

	rec = f.do(t, http.MethodPost, "/api/v1/locks/release", models.ReleaseLockRequest{
		Name:         "schema-migration",
		OwnerAgentID: "agent-1",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/locks/schema-migration", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	t.Run("released name can be reacquired", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/locks", models.AcquireLockRequest{
			Name:         "schema-migration",
			OwnerAgentID: "agent-2",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "agent-2", decode[models.LockResponse](t, rec).OwnerAgentID)
	})

	t.Run("release with no active lock", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/locks/release", models.ReleaseLockRequest{
			Name:         "never-held",
			OwnerAgentID: "agent-1",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListLocksRoute(t *testing.T) {
	f := newTestServer(t)

	for _, name := range []string{"ingest-checkpoint", "release-train"} {
		rec := f.do(t, http.MethodPost, "/api/v1/locks", models.AcquireLockRequest{
			Name:         name,
			OwnerAgentID: "agent-1",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	rec := f.do(t, http.MethodPost, "/api/v1/locks/release", models.ReleaseLockRequest{
		Name:         "ingest-checkpoint",
		OwnerAgentID: "agent-1",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/locks?active=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	active := decode[models.LocksResponse](t, rec)
	require.Len(t, active.Locks, 1)
	assert.Equal(t, "release-train", active.Locks[0].Name)

	rec = f.do(t, http.MethodGet, "/api/v1/locks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[models.LocksResponse](t, rec).Locks, 2)
}
