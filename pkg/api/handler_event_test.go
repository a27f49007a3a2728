package api

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/pkg/models"
)

func TestListEventsRoute(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		Description: "Add the billing webhook receiver",
	})
	f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		Description: "Wire retry backoff into the webhook receiver",
	})

	rec := f.do(t, http.MethodGet, "/api/v1/events?channel=ticket:T-1", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	all := decode[models.EventsResponse](t, rec).Events
	require.Len(t, all, 2)
	for _, ev := range all {
		assert.Equal(t, "task.enqueued", ev.EventType)
		assert.Equal(t, "ticket:T-1", ev.Channel)
	}
	assert.Less(t, all[0].ID, all[1].ID, "events are ordered oldest first")

	t.Run("since_id resumes after the cursor", func(t *testing.T) {
		rec := f.do(t, http.MethodGet,
			"/api/v1/events?channel=ticket:T-1&since_id="+strconv.Itoa(all[0].ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		tail := decode[models.EventsResponse](t, rec).Events
		require.Len(t, tail, 1)
		assert.Equal(t, all[1].ID, tail[0].ID)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/events?channel=ticket:T-1&limit=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[models.EventsResponse](t, rec).Events
		require.Len(t, page, 1)
		assert.Equal(t, all[0].ID, page[0].ID)
	})

	t.Run("quiet channel is empty, not an error", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/events?channel=ticket:T-999", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[models.EventsResponse](t, rec).Events)
	})
}

func TestListEventsRouteValidation(t *testing.T) {
	f := newTestServer(t)

	cases := []struct {
		name  string
		query string
		field string
	}{
		{"missing channel", "", "channel"},
		{"since_id not a number", "?channel=kernel&since_id=abc", "since_id"},
		{"since_id negative", "?channel=kernel&since_id=-1", "since_id"},
		{"limit zero", "?channel=kernel&limit=0", "limit"},
		{"limit over cap", "?channel=kernel&limit=501", "limit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.do(t, http.MethodGet, "/api/v1/events"+tc.query, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.field, decode[ErrorResponse](t, rec).Field)
		})
	}
}
