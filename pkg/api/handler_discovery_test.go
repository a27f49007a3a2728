package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/taskdiscovery"
	"github.com/droverhq/drover/pkg/models"
)

func TestDiscoveryRoutes(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	source := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		Description: "Implement the ingestion endpoint",
	})

	rec := f.do(t, http.MethodPost, "/api/v1/discoveries", models.RecordDiscoveryRequest{
		SourceTaskID:  source.ID,
		DiscoveryType: "missing_dependency",
		Description:   "The ingestion path needs a schema registry client",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	recorded := decode[models.DiscoveryResponse](t, rec)
	require.NotNil(t, recorded.TaskDiscovery)
	assert.Equal(t, source.ID, recorded.SourceTaskID)
	assert.Equal(t, taskdiscovery.ResolutionStatusOpen, recorded.ResolutionStatus)

	rec = f.do(t, http.MethodGet, "/api/v1/discoveries/"+recorded.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, recorded.ID, decode[models.DiscoveryResponse](t, rec).ID)

	// Spawn a follow-up task and link it; the discovery moves to
	// in_progress.
	followUp := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		Description: "Add the schema registry client",
	})
	rec = f.do(t, http.MethodPost, "/api/v1/discoveries/"+recorded.ID+"/tasks", AttachDiscoveryTasksRequest{
		TaskIDs: []string{followUp.ID},
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/discoveries/"+recorded.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	attached := decode[models.DiscoveryResponse](t, rec)
	assert.Equal(t, taskdiscovery.ResolutionStatusInProgress, attached.ResolutionStatus)
	assert.Contains(t, attached.SpawnedTaskIds, followUp.ID)

	rec = f.do(t, http.MethodGet, "/api/v1/tasks/"+source.ID+"/discoveries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[models.DiscoveriesResponse](t, rec).Discoveries, 1)

	rec = f.do(t, http.MethodGet, "/api/v1/discoveries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[models.DiscoveriesResponse](t, rec).Discoveries, 1)

	rec = f.do(t, http.MethodPost, "/api/v1/discoveries/"+recorded.ID+"/resolve", ResolveDiscoveryRequest{
		Resolution: "resolved",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/discoveries/"+recorded.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, taskdiscovery.ResolutionStatusResolved, decode[models.DiscoveryResponse](t, rec).ResolutionStatus)

	// Resolved findings drop out of the open backlog.
	rec = f.do(t, http.MethodGet, "/api/v1/discoveries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[models.DiscoveriesResponse](t, rec).Discoveries)
}

func TestDiscoveryRouteValidation(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	source := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		Description: "Audit the error paths",
	})
	rec := f.do(t, http.MethodPost, "/api/v1/discoveries", models.RecordDiscoveryRequest{
		SourceTaskID:  source.ID,
		DiscoveryType: "edge_case",
		Description:   "Timeouts leak goroutines in the poller",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	recorded := decode[models.DiscoveryResponse](t, rec)

	t.Run("unknown source task", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/discoveries", models.RecordDiscoveryRequest{
			SourceTaskID:  "nope",
			DiscoveryType: "edge_case",
			Description:   "Dangling finding",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing description", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/discoveries", models.RecordDiscoveryRequest{
			SourceTaskID:  source.ID,
			DiscoveryType: "edge_case",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "description", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("invalid resolution", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/discoveries/"+recorded.ID+"/resolve", ResolveDiscoveryRequest{
			Resolution: "done",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "resolution", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("unknown discovery", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/discoveries/nope/resolve", ResolveDiscoveryRequest{
			Resolution: "invalid",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("attach without task ids", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/discoveries/"+recorded.ID+"/tasks", AttachDiscoveryTasksRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
