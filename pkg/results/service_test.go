package results

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/workflowresult"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/masking"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
	testdb "github.com/droverhq/drover/test/database"
)

func seedTicket(t *testing.T, client *ent.Client, id string) *ent.Ticket {
	t.Helper()
	tkt, err := client.Ticket.Create().
		SetID(id).
		SetTitle("ticket " + id).
		SetPhaseID("PHASE_IMPLEMENTATION").
		Save(context.Background())
	require.NoError(t, err)
	return tkt
}

func seedTask(t *testing.T, client *ent.Client, ticketID, id string) *ent.Task {
	t.Helper()
	tsk, err := client.Task.Create().
		SetID(id).
		SetTicketID(ticketID).
		SetPhaseID("PHASE_IMPLEMENTATION").
		SetDescription("task " + id).
		Save(context.Background())
	require.NoError(t, err)
	return tsk
}

func TestService_SubmitAgentResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	seedTicket(t, client.Client, "T-1")
	seedTask(t, client.Client, "T-1", "task-1")

	t.Run("stores the deliverable", func(t *testing.T) {
		summary := "wrapped up the auth flow"
		sha := "4f2c9d1"
		result, err := svc.SubmitAgentResult(ctx, models.SubmitAgentResultRequest{
			TaskID:          "task-1",
			AgentID:         "agent-1",
			MarkdownContent: "# Done\n\nAll tests pass.",
			Summary:         &summary,
			CommitSHA:       &sha,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, "task-1", result.TaskID)
		assert.Equal(t, "agent-1", result.AgentID)
		assert.Equal(t, "# Done\n\nAll tests pass.", result.MarkdownContent)
		require.NotNil(t, result.Summary)
		assert.Equal(t, "wrapped up the auth flow", *result.Summary)
		require.NotNil(t, result.CommitSha)
		assert.Equal(t, "4f2c9d1", *result.CommitSha)
		assert.False(t, result.CreatedAt.IsZero())
	})

	t.Run("keeps one row per submission", func(t *testing.T) {
		second, err := svc.SubmitAgentResult(ctx, models.SubmitAgentResultRequest{
			TaskID:          "task-1",
			AgentID:         "agent-1",
			MarkdownContent: "# Revised\n\nAddressed review feedback.",
		})
		require.NoError(t, err)
		assert.Nil(t, second.Summary)

		rows, err := svc.AgentResultsForTask(ctx, "task-1")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, second.ID, rows[0].ID)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.SubmitAgentResult(ctx, models.SubmitAgentResultRequest{
			TaskID:          "task-missing",
			AgentID:         "agent-1",
			MarkdownContent: "# Done",
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.SubmitAgentResult(ctx, models.SubmitAgentResultRequest{
			AgentID: "agent-1", MarkdownContent: "# Done",
		})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.SubmitAgentResult(ctx, models.SubmitAgentResultRequest{
			TaskID: "task-1", MarkdownContent: "# Done",
		})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.SubmitAgentResult(ctx, models.SubmitAgentResultRequest{
			TaskID: "task-1", AgentID: "agent-1",
			MarkdownContent: strings.Repeat("x", MaxMarkdownBytes+1),
		})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestService_SubmitAgentResult_MasksCredentials(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	svc.SetMasker(masking.NewService(config.DefaultMaskingConfig()))
	ctx := context.Background()

	seedTicket(t, client.Client, "T-1")
	seedTask(t, client.Client, "T-1", "task-1")

	summary := `deployed with password: "FAKE-S3CRET-NOT-REAL"`
	result, err := svc.SubmitAgentResult(ctx, models.SubmitAgentResultRequest{
		TaskID:  "task-1",
		AgentID: "agent-1",
		MarkdownContent: `# Deploy log

AWS_SECRET_ACCESS_KEY=FAKEFAKEFAKEnotREALnotREALfake0000
Rolled out revision 14 to staging.`,
		Summary: &summary,
	})
	require.NoError(t, err)

	assert.NotContains(t, result.MarkdownContent, "FAKEFAKEFAKEnotREALnotREALfake0000",
		"Stored markdown should not carry the credential")
	assert.Contains(t, result.MarkdownContent, masking.MaskedEnvValue)
	assert.Contains(t, result.MarkdownContent, "Rolled out revision 14 to staging.")

	require.NotNil(t, result.Summary)
	assert.NotContains(t, *result.Summary, "FAKE-S3CRET-NOT-REAL")
	assert.Contains(t, *result.Summary, "__MASKED_PASSWORD__")
}

func TestService_SubmitWorkflowResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	seedTicket(t, client.Client, "T-1")

	t.Run("stores the path and starts submitted", func(t *testing.T) {
		submitter := "agent-7"
		result, err := svc.SubmitWorkflowResult(ctx, models.SubmitWorkflowResultRequest{
			TicketID:         "T-1",
			MarkdownFilePath: "  reports/final-summary.md  ",
			SubmittedBy:      &submitter,
		})
		require.NoError(t, err)
		assert.Equal(t, "T-1", result.TicketID)
		assert.Equal(t, "reports/final-summary.md", result.MarkdownFilePath)
		assert.Equal(t, workflowresult.StatusSubmitted, result.Status)
		require.NotNil(t, result.SubmittedBy)
		assert.Equal(t, "agent-7", *result.SubmittedBy)
		assert.Nil(t, result.ValidatedAt)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, err := svc.SubmitWorkflowResult(ctx, models.SubmitWorkflowResultRequest{
			TicketID:         "T-missing",
			MarkdownFilePath: "summary.md",
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("rejects bad paths", func(t *testing.T) {
		_, err := svc.SubmitWorkflowResult(ctx, models.SubmitWorkflowResultRequest{
			TicketID:         "T-1",
			MarkdownFilePath: "../outside.md",
		})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.SubmitWorkflowResult(ctx, models.SubmitWorkflowResultRequest{
			TicketID:         "T-1",
			MarkdownFilePath: "summary.pdf",
		})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestService_WorkflowResultTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	seedTicket(t, client.Client, "T-1")

	submit := func(t *testing.T) *ent.WorkflowResult {
		t.Helper()
		result, err := svc.SubmitWorkflowResult(ctx, models.SubmitWorkflowResultRequest{
			TicketID:         "T-1",
			MarkdownFilePath: "summary.md",
		})
		require.NoError(t, err)
		return result
	}

	t.Run("validate stamps validated_at", func(t *testing.T) {
		submitted := submit(t)

		validated, err := svc.ValidateWorkflowResult(ctx, submitted.ID)
		require.NoError(t, err)
		assert.Equal(t, workflowresult.StatusValidated, validated.Status)
		require.NotNil(t, validated.ValidatedAt)

		again, err := svc.ValidateWorkflowResult(ctx, submitted.ID)
		require.NoError(t, err)
		assert.Equal(t, workflowresult.StatusValidated, again.Status)
		require.NotNil(t, again.ValidatedAt)
		assert.True(t, validated.ValidatedAt.Equal(*again.ValidatedAt))

		_, err = svc.RejectWorkflowResult(ctx, submitted.ID)
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})

	t.Run("reject leaves validated_at unset", func(t *testing.T) {
		submitted := submit(t)

		rejected, err := svc.RejectWorkflowResult(ctx, submitted.ID)
		require.NoError(t, err)
		assert.Equal(t, workflowresult.StatusRejected, rejected.Status)
		assert.Nil(t, rejected.ValidatedAt)

		again, err := svc.RejectWorkflowResult(ctx, submitted.ID)
		require.NoError(t, err)
		assert.Equal(t, workflowresult.StatusRejected, again.Status)

		_, err = svc.ValidateWorkflowResult(ctx, submitted.ID)
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})

	t.Run("unknown result", func(t *testing.T) {
		_, err := svc.ValidateWorkflowResult(ctx, "missing")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := svc.ValidateWorkflowResult(ctx, "")
		assert.True(t, services.IsValidationError(err))
	})
}

func TestService_WorkflowResultsForTicket(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client)
	ctx := context.Background()

	seedTicket(t, client.Client, "T-1")
	seedTicket(t, client.Client, "T-2")

	for _, ticketID := range []string{"T-1", "T-1", "T-2"} {
		_, err := svc.SubmitWorkflowResult(ctx, models.SubmitWorkflowResultRequest{
			TicketID:         ticketID,
			MarkdownFilePath: "summary.md",
		})
		require.NoError(t, err)
	}

	rows, err := svc.WorkflowResultsForTicket(ctx, "T-1")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = svc.WorkflowResultsForTicket(ctx, "T-2")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
