package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
	testdb "github.com/droverhq/drover/test/database"
)

// newTestService wires a queue Service against a test database, with a
// local bus for event assertions.
func newTestService(t *testing.T) (*Service, *database.Client, *events.Bus) {
	t.Helper()
	client := testdb.NewTestClient(t)
	bus := events.NewBus(5 * time.Second)
	publisher := events.NewPublisher(client.DB(), bus)
	svc := NewService(client, NewScorer(config.DefaultScoringConfig()), config.DefaultQueueConfig(), publisher)
	return svc, client, bus
}

// createTestTicket inserts a ticket fixture directly through ent.
func createTestTicket(t *testing.T, client *ent.Client, id string) *ent.Ticket {
	t.Helper()
	tkt, err := client.Ticket.Create().
		SetID(id).
		SetTitle("ticket " + id).
		SetPhaseID("PHASE_IMPLEMENTATION").
		Save(context.Background())
	require.NoError(t, err)
	return tkt
}

// enqueueTask is shorthand for Enqueue calls that must succeed.
func enqueueTask(t *testing.T, svc *Service, req models.EnqueueTaskRequest) *ent.Task {
	t.Helper()
	created, err := svc.Enqueue(context.Background(), req, nil)
	require.NoError(t, err)
	return created
}

func ptr[T any](v T) *T {
	return &v
}

// eventRecorder captures bus deliveries for assertions. Bus dispatch is
// synchronous, so captured events are visible as soon as the service call
// returns.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.SystemEvent
}

func (r *eventRecorder) record(_ context.Context, event events.SystemEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *eventRecorder) byType(eventType string) []events.SystemEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.SystemEvent
	for _, e := range r.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
