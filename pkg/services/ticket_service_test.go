package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/event"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
	testdb "github.com/droverhq/drover/test/database"
)

func TestTicketService_CreateTicket(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client, nil)
	ctx := context.Background()

	t.Run("creates ticket with defaults", func(t *testing.T) {
		tkt, err := svc.CreateTicket(ctx, models.CreateTicketRequest{
			Title:   "Implement auth flow",
			PhaseID: "PHASE_IMPLEMENTATION",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, tkt.ID)
		assert.Equal(t, "open", string(tkt.Status))
		assert.Equal(t, "MEDIUM", string(tkt.Priority))
	})

	t.Run("honors explicit id and priority", func(t *testing.T) {
		priority := "CRITICAL"
		tkt, err := svc.CreateTicket(ctx, models.CreateTicketRequest{
			TicketID: "TICKET-42",
			Title:    "Hotfix",
			PhaseID:  "PHASE_IMPLEMENTATION",
			Priority: &priority,
		})
		require.NoError(t, err)
		assert.Equal(t, "TICKET-42", tkt.ID)
		assert.Equal(t, "CRITICAL", string(tkt.Priority))
	})

	t.Run("rejects missing title", func(t *testing.T) {
		_, err := svc.CreateTicket(ctx, models.CreateTicketRequest{PhaseID: "PHASE_X"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing phase", func(t *testing.T) {
		_, err := svc.CreateTicket(ctx, models.CreateTicketRequest{Title: "x"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects bad priority", func(t *testing.T) {
		priority := "URGENT"
		_, err := svc.CreateTicket(ctx, models.CreateTicketRequest{
			Title: "x", PhaseID: "PHASE_X", Priority: &priority,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		_, err := svc.CreateTicket(ctx, models.CreateTicketRequest{
			TicketID: "TICKET-42", Title: "again", PhaseID: "PHASE_X",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestTicketService_CreateTicketAnnouncedOnKernelChannel(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher, bus := newTestPublisher(t, client)
	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeTicketCreated, "test-recorder", recorder.record)
	svc := NewTicketService(client.Client, publisher)
	ctx := context.Background()

	tkt, err := svc.CreateTicket(ctx, models.CreateTicketRequest{
		TicketID: "T-announced", Title: "schema rework", PhaseID: "PHASE_DESIGN",
	})
	require.NoError(t, err)

	captured := recorder.byType(events.EventTypeTicketCreated)
	require.Len(t, captured, 1)
	assert.Equal(t, tkt.ID, captured[0].EntityID)
	assert.Equal(t, events.EntityTypeTicket, captured[0].EntityType)
	payload, ok := captured[0].Payload.(events.TicketCreatedPayload)
	require.True(t, ok)
	assert.Equal(t, "PHASE_DESIGN", payload.PhaseID)

	// The durable row goes out on the kernel channel, where replicas that
	// do not know the ticket yet are already listening.
	row, err := client.Event.Query().
		Where(event.EventTypeEQ(events.EventTypeTicketCreated)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, events.KernelChannel, row.Channel)
}

func TestTicketService_ListTickets(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client, nil)
	ctx := context.Background()

	for _, spec := range []struct{ id, phase string }{
		{"T-1", "PHASE_DESIGN"},
		{"T-2", "PHASE_IMPLEMENTATION"},
		{"T-3", "PHASE_IMPLEMENTATION"},
	} {
		_, err := svc.CreateTicket(ctx, models.CreateTicketRequest{
			TicketID: spec.id, Title: spec.id, PhaseID: spec.phase,
		})
		require.NoError(t, err)
	}
	require.NoError(t, svc.UpdateTicketStatus(ctx, "T-3", "in_progress"))

	t.Run("filters by phase", func(t *testing.T) {
		tickets, err := svc.ListTickets(ctx, "", "PHASE_IMPLEMENTATION")
		require.NoError(t, err)
		assert.Len(t, tickets, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		tickets, err := svc.ListTickets(ctx, "in_progress", "")
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, "T-3", tickets[0].ID)
	})

	t.Run("no filters returns all", func(t *testing.T) {
		tickets, err := svc.ListTickets(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, tickets, 3)
	})
}

func TestTicketService_UpdateTicketStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client, nil)
	ctx := context.Background()

	_, err := svc.CreateTicket(ctx, models.CreateTicketRequest{
		TicketID: "T-1", Title: "t", PhaseID: "PHASE_X",
	})
	require.NoError(t, err)

	t.Run("updates status", func(t *testing.T) {
		require.NoError(t, svc.UpdateTicketStatus(ctx, "T-1", "done"))
		tkt, err := svc.GetTicket(ctx, "T-1")
		require.NoError(t, err)
		assert.Equal(t, "done", string(tkt.Status))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := svc.UpdateTicketStatus(ctx, "T-1", "archived")
		assert.True(t, IsValidationError(err))
	})

	t.Run("not found", func(t *testing.T) {
		err := svc.UpdateTicketStatus(ctx, "missing", "done")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTicketService_UpdateTicketPhase(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTicketService(client.Client, nil)
	ctx := context.Background()

	_, err := svc.CreateTicket(ctx, models.CreateTicketRequest{
		TicketID: "T-1", Title: "t", PhaseID: "PHASE_DESIGN",
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateTicketPhase(ctx, "T-1", "PHASE_IMPLEMENTATION"))
	tkt, err := svc.GetTicket(ctx, "T-1")
	require.NoError(t, err)
	assert.Equal(t, "PHASE_IMPLEMENTATION", tkt.PhaseID)
}

func TestTicketService_CloneReady(t *testing.T) {
	client := testdb.NewTestClient(t)
	tickets := NewTicketService(client.Client, nil)
	projects := NewProjectService(client.Client)
	ctx := context.Background()

	// Build the chain link by link and observe the reason move with it.
	_, err := tickets.CreateTicket(ctx, models.CreateTicketRequest{
		TicketID: "T-1", Title: "t", PhaseID: "PHASE_X",
	})
	require.NoError(t, err)

	ready, reason, err := tickets.CloneReady(ctx, "T-1")
	require.NoError(t, err)
	assert.False(t, ready)
	assert.Equal(t, "ticket has no project", reason)

	project, err := projects.CreateProject(ctx, models.CreateProjectRequest{Name: "api"})
	require.NoError(t, err)
	_, err = client.Ticket.UpdateOneID("T-1").SetProjectID(project.ID).Save(ctx)
	require.NoError(t, err)

	ready, reason, err = tickets.CloneReady(ctx, "T-1")
	require.NoError(t, err)
	assert.False(t, ready)
	assert.Equal(t, "project has no repo url", reason)

	_, err = client.Project.UpdateOneID(project.ID).SetRepoURL("https://github.com/acme/api").Save(ctx)
	require.NoError(t, err)

	ready, reason, err = tickets.CloneReady(ctx, "T-1")
	require.NoError(t, err)
	assert.False(t, ready)
	assert.Equal(t, "project has no owner", reason)

	user, err := projects.CreateUser(ctx, models.CreateUserRequest{Username: "dev"})
	require.NoError(t, err)
	_, err = client.Project.UpdateOneID(project.ID).SetOwnerID(user.ID).Save(ctx)
	require.NoError(t, err)

	ready, reason, err = tickets.CloneReady(ctx, "T-1")
	require.NoError(t, err)
	assert.False(t, ready)
	assert.Equal(t, "project owner has no github access token", reason)

	_, err = client.User.UpdateOneID(user.ID).SetGithubAccessToken("ghp_test").Save(ctx)
	require.NoError(t, err)

	ready, reason, err = tickets.CloneReady(ctx, "T-1")
	require.NoError(t, err)
	assert.True(t, ready)
	assert.Empty(t, reason)

	t.Run("ticket not found", func(t *testing.T) {
		_, _, err := tickets.CloneReady(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
