package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
	testdb "github.com/droverhq/drover/test/database"
)

// ────────────────────────────────────────────────────────────
// Cross-replica event delivery
// ────────────────────────────────────────────────────────────

// Two kernel replicas share one database. An event published on replica A
// is committed, carried over NOTIFY, and dispatched on replica B's bus;
// B's listener drops nothing but its own origin.
func TestEvents_CrossReplicaDelivery(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	replicaA := NewTestApp(t, WithSharedDB(shared))
	replicaB := NewTestApp(t, WithSharedDB(shared))

	ticket := replicaA.CreateTicket(t, "TICK-replicas")

	// The ticket.created announcement travels the kernel channel; each
	// replica's channel follower reacts by LISTENing on the new ticket's
	// own channel, A from the local dispatch and B from the NOTIFY.
	replicaB.Recorder.WaitFor(t, events.EventTypeTicketCreated, 1)
	for _, replica := range []*TestApp{replicaA, replicaB} {
		require.Eventually(t, func() bool {
			return replica.Listener.Listening(events.TicketChannel(ticket))
		}, 10*time.Second, 20*time.Millisecond, "replica should LISTEN on the new ticket's channel")
	}

	created := replicaA.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "split the import pipeline into per-source workers",
	})

	// Local dispatch on A is synchronous with the publish.
	local := replicaA.Recorder.ByType(events.EventTypeTaskEnqueued)
	require.Len(t, local, 1)
	assert.Equal(t, created.ID, local[0].EntityID)
	assert.Equal(t, replicaA.Publisher.Origin(), local[0].Origin)

	// B hears it over NOTIFY.
	remote := replicaB.Recorder.WaitFor(t, events.EventTypeTaskEnqueued, 1)
	assert.Equal(t, created.ID, remote[0].EntityID)
	assert.Equal(t, events.EntityTypeTask, remote[0].EntityType)
	assert.Equal(t, replicaA.Publisher.Origin(), remote[0].Origin)
	assert.NotEqual(t, replicaB.Publisher.Origin(), remote[0].Origin)
	assert.False(t, remote[0].Truncated)
	assert.NotZero(t, remote[0].DBEventID)

	// The durable row is queryable from either replica.
	listed := decode[struct {
		Events []struct {
			EventType string `json:"event_type"`
			EntityID  string `json:"entity_id"`
		} `json:"events"`
	}](t, replicaB.getJSON(t, "/api/v1/events?channel=ticket:"+ticket, 200))
	require.NotEmpty(t, listed.Events)
	assert.Equal(t, events.EventTypeTaskEnqueued, listed.Events[0].EventType)
	assert.Equal(t, created.ID, listed.Events[0].EntityID)
}
