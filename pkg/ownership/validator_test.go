package ownership

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	testdb "github.com/droverhq/drover/test/database"
)

func seedTicket(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Ticket.Create().
		SetID(id).
		SetTitle("ticket " + id).
		SetPhaseID("PHASE_IMPLEMENTATION").
		Save(context.Background())
	require.NoError(t, err)
}

func seedTask(t *testing.T, client *ent.Client, ticketID, id string, status task.Status, owned []string) *ent.Task {
	t.Helper()
	builder := client.Task.Create().
		SetID(id).
		SetTicketID(ticketID).
		SetPhaseID("PHASE_IMPLEMENTATION").
		SetDescription("task " + id).
		SetStatus(status)
	if owned != nil {
		builder = builder.SetOwnedFiles(owned)
	}
	created, err := builder.Save(context.Background())
	require.NoError(t, err)
	return created
}

func TestValidator_LenientWarnsOnOverlap(t *testing.T) {
	client := testdb.NewTestClient(t)
	v := NewValidator(client.Client, &config.OwnershipConfig{Mode: config.OwnershipLenient})
	ctx := context.Background()

	seedTicket(t, client.Client, "w-1")
	seedTask(t, client.Client, "w-1", "A", task.StatusPending, []string{"src/auth/**"})
	b := seedTask(t, client.Client, "w-1", "B", task.StatusPending, []string{"src/auth/jwt.py"})

	result, err := v.ValidateTask(ctx, b)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Conflicts)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t,
		"Ownership conflict with task A: pattern 'src/auth/jwt.py' overlaps with 'src/auth/**'",
		result.Warnings[0])
}

func TestValidator_StrictBlocksOnOverlap(t *testing.T) {
	client := testdb.NewTestClient(t)
	v := NewValidator(client.Client, &config.OwnershipConfig{Mode: config.OwnershipStrict})
	ctx := context.Background()

	seedTicket(t, client.Client, "w-1")
	seedTask(t, client.Client, "w-1", "A", task.StatusRunning, []string{"src/auth/**"})
	b := seedTask(t, client.Client, "w-1", "B", task.StatusPending, []string{"src/auth/jwt.py"})

	result, err := v.ValidateTask(ctx, b)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Empty(t, result.Warnings)
	require.Len(t, result.Conflicts, 1)
	assert.Contains(t, result.Conflicts[0], "overlaps with 'src/auth/**'")
}

func TestValidator_IgnoresNonSiblings(t *testing.T) {
	client := testdb.NewTestClient(t)
	v := NewValidator(client.Client, &config.OwnershipConfig{Mode: config.OwnershipStrict})
	ctx := context.Background()

	seedTicket(t, client.Client, "w-1")
	seedTicket(t, client.Client, "w-2")

	// Completed sibling, sibling without claims, and a task on another
	// ticket: none of them conflict.
	seedTask(t, client.Client, "w-1", "done", task.StatusCompleted, []string{"src/auth/**"})
	seedTask(t, client.Client, "w-1", "unclaimed", task.StatusPending, nil)
	seedTask(t, client.Client, "w-2", "other", task.StatusPending, []string{"src/auth/**"})
	b := seedTask(t, client.Client, "w-1", "B", task.StatusPending, []string{"src/auth/jwt.py"})

	result, err := v.ValidateTask(ctx, b)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Conflicts)
}

func TestValidator_NoClaimsAlwaysPass(t *testing.T) {
	client := testdb.NewTestClient(t)
	v := NewValidator(client.Client, &config.OwnershipConfig{Mode: config.OwnershipStrict})
	ctx := context.Background()

	seedTicket(t, client.Client, "w-1")
	seedTask(t, client.Client, "w-1", "A", task.StatusPending, []string{"src/**"})
	b := seedTask(t, client.Client, "w-1", "B", task.StatusPending, nil)

	result, err := v.ValidateTask(ctx, b)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Conflicts)
}
