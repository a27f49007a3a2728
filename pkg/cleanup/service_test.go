package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/services"
	testdb "github.com/droverhq/drover/test/database"
)

func setupService(t *testing.T) (*database.Client, *services.EventService, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)
	cfg := &config.RetentionConfig{
		EventTTL:         1 * time.Hour,
		DiagnosticRunTTL: 24 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
	return client, eventService, NewService(cfg, client.Client, eventService)
}

func seedTicket(t *testing.T, client *database.Client, ticketID string) {
	t.Helper()
	_, err := client.Ticket.Create().
		SetID(ticketID).
		SetTitle("ticket " + ticketID).
		SetPhaseID("PHASE_IMPLEMENTATION").
		Save(context.Background())
	require.NoError(t, err)
}

func seedEvent(t *testing.T, client *database.Client, channel string, age time.Duration) {
	t.Helper()
	_, err := client.Event.Create().
		SetEventType("task.enqueued").
		SetEntityType("task").
		SetEntityID(uuid.New().String()).
		SetChannel(channel).
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
}

func TestService_CleansUpOldEvents(t *testing.T) {
	client, eventService, svc := setupService(t)
	ctx := context.Background()

	seedEvent(t, client, "ticket:T-1", 2*time.Hour)
	seedEvent(t, client, "ticket:T-1", 0)

	svc.runAll(ctx)

	events, err := eventService.GetEventsSince(ctx, "ticket:T-1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}

func TestService_CleansUpOldDiagnosticRuns(t *testing.T) {
	client, _, svc := setupService(t)
	ctx := context.Background()
	seedTicket(t, client, "T-1")

	seedRun := func(status diagnosticrun.Status, completedAgo time.Duration) string {
		id := uuid.New().String()
		create := client.DiagnosticRun.Create().
			SetID(id).
			SetWorkflowID("T-1").
			SetStatus(status)
		if completedAgo > 0 {
			create = create.SetCompletedAt(time.Now().Add(-completedAgo))
		}
		_, err := create.Save(ctx)
		require.NoError(t, err)
		return id
	}

	oldCompleted := seedRun(diagnosticrun.StatusCompleted, 48*time.Hour)
	oldFailed := seedRun(diagnosticrun.StatusFailed, 48*time.Hour)
	freshCompleted := seedRun(diagnosticrun.StatusCompleted, 1*time.Hour)
	stillRunning := seedRun(diagnosticrun.StatusRunning, 0)

	svc.runAll(ctx)

	remaining, err := client.DiagnosticRun.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, oldCompleted)
	assert.NotContains(t, remaining, oldFailed)
	assert.Contains(t, remaining, freshCompleted)
	assert.Contains(t, remaining, stillRunning, "rows without a completion timestamp are never aged out")
}

func TestService_StartStop(t *testing.T) {
	_, _, svc := setupService(t)

	svc.Start(context.Background())
	svc.Stop()
}
