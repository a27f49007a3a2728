package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
)

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

// createTestTask inserts a task fixture directly through ent.
func createTestTask(t *testing.T, client *ent.Client, ticketID, id string) *ent.Task {
	t.Helper()
	task, err := client.Task.Create().
		SetID(id).
		SetTicketID(ticketID).
		SetPhaseID("PHASE_IMPLEMENTATION").
		SetDescription("task " + id).
		Save(context.Background())
	require.NoError(t, err)
	return task
}

// newTestPublisher wires a publisher and its local bus against the test
// database, so tests can observe synchronous local dispatch.
func newTestPublisher(t *testing.T, client *database.Client) (*events.Publisher, *events.Bus) {
	t.Helper()
	bus := events.NewBus(5 * time.Second)
	return events.NewPublisher(client.DB(), bus), bus
}
