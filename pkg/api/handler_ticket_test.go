package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/pkg/models"
)

func TestTicketCRUDRoutes(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(t, http.MethodPost, "/api/v1/tickets", models.CreateTicketRequest{
		TicketID:    "T-1",
		Title:       "Ship the ingest pipeline",
		Description: "End to end ingest with retries",
		PhaseID:     testPhase,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.TicketResponse](t, rec)
	require.NotNil(t, created.Ticket)
	assert.Equal(t, "T-1", created.ID)
	assert.Equal(t, ticket.StatusOpen, created.Status)
	assert.Equal(t, testPhase, created.PhaseID)

	t.Run("duplicate id conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tickets", models.CreateTicketRequest{
			TicketID: "T-1",
			Title:    "Ship it again",
			PhaseID:  testPhase,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, reasonConflict, decode[ErrorResponse](t, rec).Reason)
	})

	t.Run("missing title", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tickets", models.CreateTicketRequest{PhaseID: testPhase})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "title", decode[ErrorResponse](t, rec).Field)
	})

	rec = f.do(t, http.MethodGet, "/api/v1/tickets/T-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "T-1", decode[models.TicketResponse](t, rec).ID)

	t.Run("get unknown", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tickets/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTicketListAndUpdates(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	f.createTicket(t, "T-2")

	rec := f.do(t, http.MethodPut, "/api/v1/tickets/T-2/status", UpdateTicketStatusRequest{Status: "in_progress"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/tickets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[models.TicketsResponse](t, rec).Tickets, 2)

	rec = f.do(t, http.MethodGet, "/api/v1/tickets?status=in_progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inProgress := decode[models.TicketsResponse](t, rec)
	require.Len(t, inProgress.Tickets, 1)
	assert.Equal(t, "T-2", inProgress.Tickets[0].ID)

	t.Run("invalid status", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/tickets/T-1/status", UpdateTicketStatusRequest{Status: "archived"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "status", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("unknown ticket status update", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/tickets/nope/status", UpdateTicketStatusRequest{Status: "done"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("phase advance", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/tickets/T-1/phase", UpdateTicketPhaseRequest{PhaseID: "PHASE_REVIEW"})
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = f.do(t, http.MethodGet, "/api/v1/tickets/T-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "PHASE_REVIEW", decode[models.TicketResponse](t, rec).PhaseID)
	})

	t.Run("empty phase", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/tickets/T-1/phase", UpdateTicketPhaseRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "phase_id", decode[ErrorResponse](t, rec).Field)
	})
}

func TestCloneReadyRoute(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-bare")

	rec := f.do(t, http.MethodGet, "/api/v1/tickets/T-bare/clone-ready", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[CloneReadyResponse](t, rec)
	assert.False(t, resp.Ready)
	assert.Equal(t, "ticket has no project", resp.Reason)

	seedCloneReadyTicket(t, f.client, "T-full")
	rec = f.do(t, http.MethodGet, "/api/v1/tickets/T-full/clone-ready", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[CloneReadyResponse](t, rec)
	assert.True(t, resp.Ready)
	assert.Empty(t, resp.Reason)

	t.Run("unknown ticket", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tickets/nope/clone-ready", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
