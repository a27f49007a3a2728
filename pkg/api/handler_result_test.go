package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/workflowresult"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/results"
)

func TestAgentResultRoutes(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	created := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		Description: "Implement the export endpoint",
	})

	rec := f.do(t, http.MethodPost, "/api/v1/results/agent", models.SubmitAgentResultRequest{
		TaskID:          created.ID,
		AgentID:         "agent-w1",
		MarkdownContent: "# Export endpoint\n\nStreaming CSV export with cursor pagination.",
		CommitSHA:       ptr("a3f8c2d"),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	submitted := decode[models.AgentResultResponse](t, rec)
	require.NotNil(t, submitted.AgentResult)
	assert.Equal(t, created.ID, submitted.TaskID)
	assert.Equal(t, "agent-w1", submitted.AgentID)

	rec = f.do(t, http.MethodGet, "/api/v1/tasks/"+created.ID+"/results", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[AgentResultsResponse](t, rec).Results, 1)

	t.Run("empty content", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/results/agent", models.SubmitAgentResultRequest{
			TaskID:          created.ID,
			AgentID:         "agent-w1",
			MarkdownContent: "   ",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "markdown_content", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("oversize content", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/results/agent", models.SubmitAgentResultRequest{
			TaskID:          created.ID,
			AgentID:         "agent-w1",
			MarkdownContent: strings.Repeat("a", results.MaxMarkdownBytes+1),
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "markdown_content", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("unknown task", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/results/agent", models.SubmitAgentResultRequest{
			TaskID:          "nope",
			AgentID:         "agent-w1",
			MarkdownContent: "# Orphan",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWorkflowResultRoutes(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")

	// No submitter in the body: the proxy identity headers decide, with
	// api-client as the fallback.
	rec := f.do(t, http.MethodPost, "/api/v1/results/workflow", models.SubmitWorkflowResultRequest{
		TicketID:         "T-1",
		MarkdownFilePath: "results/summary.md",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	first := decode[models.WorkflowResultResponse](t, rec)
	require.NotNil(t, first.WorkflowResult)
	require.NotNil(t, first.SubmittedBy)
	assert.Equal(t, "api-client", *first.SubmittedBy)
	assert.Equal(t, workflowresult.StatusSubmitted, first.Status)

	t.Run("proxy header names the submitter", func(t *testing.T) {
		rec := f.doWithHeaders(t, http.MethodPost, "/api/v1/results/workflow", models.SubmitWorkflowResultRequest{
			TicketID:         "T-1",
			MarkdownFilePath: "results/summary-v2.md",
		}, map[string]string{"X-Forwarded-User": "alice"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decode[models.WorkflowResultResponse](t, rec)
		require.NotNil(t, resp.SubmittedBy)
		assert.Equal(t, "alice", *resp.SubmittedBy)
	})

	t.Run("body submitter beats the header", func(t *testing.T) {
		rec := f.doWithHeaders(t, http.MethodPost, "/api/v1/results/workflow", models.SubmitWorkflowResultRequest{
			TicketID:         "T-1",
			MarkdownFilePath: "results/summary-v3.md",
			SubmittedBy:      ptr("worker-9"),
		}, map[string]string{"X-Forwarded-User": "alice"})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decode[models.WorkflowResultResponse](t, rec)
		require.NotNil(t, resp.SubmittedBy)
		assert.Equal(t, "worker-9", *resp.SubmittedBy)
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/results/workflow", models.SubmitWorkflowResultRequest{
			TicketID:         "T-1",
			MarkdownFilePath: "../../etc/cron.d/backdoor.md",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "markdown_file_path", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("non markdown path is rejected", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/results/workflow", models.SubmitWorkflowResultRequest{
			TicketID:         "T-1",
			MarkdownFilePath: "results/summary.txt",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/results/workflow", models.SubmitWorkflowResultRequest{
			TicketID:         "nope",
			MarkdownFilePath: "results/summary.md",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	rec = f.do(t, http.MethodGet, "/api/v1/tickets/T-1/results", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[WorkflowResultsResponse](t, rec).Results, 3)
}

func TestWorkflowResultDecisionRoutes(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")

	submit := func(path string) string {
		rec := f.do(t, http.MethodPost, "/api/v1/results/workflow", models.SubmitWorkflowResultRequest{
			TicketID:         "T-1",
			MarkdownFilePath: path,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		return decode[models.WorkflowResultResponse](t, rec).ID
	}

	validatedID := submit("results/final.md")
	rec := f.do(t, http.MethodPost, "/api/v1/results/workflow/"+validatedID+"/validate", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	validated := decode[models.WorkflowResultResponse](t, rec)
	assert.Equal(t, workflowresult.StatusValidated, validated.Status)
	assert.NotNil(t, validated.ValidatedAt)

	t.Run("repeating the decision converges", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/results/workflow/"+validatedID+"/validate", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, workflowresult.StatusValidated, decode[models.WorkflowResultResponse](t, rec).Status)
	})

	t.Run("crossing terminal decisions conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/results/workflow/"+validatedID+"/reject", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, reasonIllegalTransition, decode[ErrorResponse](t, rec).Reason)
	})

	t.Run("reject", func(t *testing.T) {
		rejectedID := submit("results/rework.md")
		rec := f.do(t, http.MethodPost, "/api/v1/results/workflow/"+rejectedID+"/reject", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, workflowresult.StatusRejected, decode[models.WorkflowResultResponse](t, rec).Status)
	})

	t.Run("unknown result", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/results/workflow/nope/validate", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
