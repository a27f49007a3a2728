package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/api"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/validation"
)

const testPhase = "PHASE_IMPLEMENTATION"

// allEventTypes is the full taxonomy the recorder captures.
var allEventTypes = []string{
	events.EventTypeTicketCreated,
	events.EventTypeTaskEnqueued,
	events.EventTypeTaskStatusChanged,
	events.EventTypeTaskCompleted,
	events.EventTypeTaskFailed,
	events.EventTypeValidationStarted,
	events.EventTypeValidationReviewSubmitted,
	events.EventTypeValidationPassed,
	events.EventTypeValidationFailed,
	events.EventTypeDiagnosticTriggered,
	events.EventTypeDiagnosticCompleted,
	events.EventTypeDiagnosticFailed,
	events.EventTypeMemoryStored,
	events.EventTypeMemoryPatternLearned,
	events.EventTypeACEWorkflowCompleted,
	events.EventTypeDiscoveryRecorded,
	events.EventTypeDiscoveryBranchCreated,
	events.EventTypeDiscoveryResolved,
	events.EventTypeMonitorAnomalyDetected,
	events.EventTypeAgentValidationFeedback,
	events.EventTypeDuplicateFound,
	events.EventTypeBusHandlerTimeout,
}

// EventRecorder captures every bus delivery. Local dispatch is
// synchronous, so events published by a call are visible when it returns;
// events arriving over NOTIFY need WaitFor.
type EventRecorder struct {
	mu     sync.Mutex
	events []events.SystemEvent
}

// NewEventRecorder subscribes a recorder to the full taxonomy.
func NewEventRecorder(bus *events.Bus) *EventRecorder {
	r := &EventRecorder{}
	for _, eventType := range allEventTypes {
		bus.Subscribe(eventType, "e2e-recorder", r.record)
	}
	return r
}

func (r *EventRecorder) record(_ context.Context, event events.SystemEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// ByType returns captured events of one type, in delivery order.
func (r *EventRecorder) ByType(eventType string) []events.SystemEvent {
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

// ForEntity returns every captured event for one entity id, in delivery
// order. Per-entity delivery is FIFO, so this is the order handlers saw.
func (r *EventRecorder) ForEntity(entityID string) []events.SystemEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.SystemEvent
	for _, e := range r.events {
		if e.EntityID == entityID {
			out = append(out, e)
		}
	}
	return out
}

// TypesForEntity returns just the event-type sequence for an entity.
func (r *EventRecorder) TypesForEntity(entityID string) []string {
	captured := r.ForEntity(entityID)
	out := make([]string, len(captured))
	for i, e := range captured {
		out[i] = e.Type
	}
	return out
}

// WaitFor blocks until at least n events of the given type have been
// captured, failing the test after 10 seconds.
func (r *EventRecorder) WaitFor(t *testing.T, eventType string, n int) []events.SystemEvent {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(r.ByType(eventType)) >= n
	}, 10*time.Second, 20*time.Millisecond, "waiting for %d %s events", n, eventType)
	return r.ByType(eventType)
}

// ────────────────────────────────────────────────────────────
// HTTP helpers
// ────────────────────────────────────────────────────────────

func (app *TestApp) doJSON(t *testing.T, method, path string, body any, wantStatus int) []byte {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode,
		"%s %s: unexpected status, body: %s", method, path, payload)
	return payload
}

func (app *TestApp) postJSON(t *testing.T, path string, body any, wantStatus int) []byte {
	t.Helper()
	return app.doJSON(t, http.MethodPost, path, body, wantStatus)
}

func (app *TestApp) putJSON(t *testing.T, path string, body any, wantStatus int) []byte {
	t.Helper()
	return app.doJSON(t, http.MethodPut, path, body, wantStatus)
}

func (app *TestApp) getJSON(t *testing.T, path string, wantStatus int) []byte {
	t.Helper()
	return app.doJSON(t, http.MethodGet, path, nil, wantStatus)
}

func decode[T any](t *testing.T, payload []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(payload, &out))
	return out
}

// ────────────────────────────────────────────────────────────
// Domain helpers
// ────────────────────────────────────────────────────────────

// CreateTicket creates a ticket over HTTP and returns its id.
func (app *TestApp) CreateTicket(t *testing.T, id string) string {
	t.Helper()
	created := decode[ent.Ticket](t, app.postJSON(t, "/api/v1/tickets", models.CreateTicketRequest{
		TicketID: id,
		Title:    "ticket " + id,
		PhaseID:  testPhase,
	}, http.StatusCreated))
	require.Equal(t, id, created.ID)
	return created.ID
}

// SeedCloneReadyTicket creates a ticket whose project→owner→token chain
// passes the diagnostic engine's clone-readiness safeguard. User and
// project rows have no HTTP surface, so they are seeded directly.
func (app *TestApp) SeedCloneReadyTicket(t *testing.T, id string) string {
	t.Helper()
	ctx := context.Background()
	owner, err := app.DB.User.Create().
		SetID("user-" + id).
		SetUsername("dev-" + id).
		SetGithubAccessToken("ghp_" + id).
		Save(ctx)
	require.NoError(t, err)
	project, err := app.DB.Project.Create().
		SetID("proj-" + id).
		SetName("project " + id).
		SetRepoURL("https://github.com/acme/" + id).
		SetOwnerID(owner.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = app.DB.Ticket.Create().
		SetID(id).
		SetTitle("ticket " + id).
		SetDescription("ship the " + id + " feature").
		SetPhaseID(testPhase).
		SetProjectID(project.ID).
		Save(ctx)
	require.NoError(t, err)
	return id
}

// Enqueue adds a task over HTTP and returns the created row.
func (app *TestApp) Enqueue(t *testing.T, req models.EnqueueTaskRequest) *ent.Task {
	t.Helper()
	resp := decode[api.EnqueueTaskResponse](t, app.postJSON(t, "/api/v1/tasks", req, http.StatusCreated))
	require.NotNil(t, resp.Task)
	return resp.Task
}

// Task fetches a task over HTTP.
func (app *TestApp) Task(t *testing.T, id string) *ent.Task {
	t.Helper()
	fetched := decode[ent.Task](t, app.getJSON(t, "/api/v1/tasks/"+id, http.StatusOK))
	return &fetched
}

// Ready returns the score-ordered ready view for a phase.
func (app *TestApp) Ready(t *testing.T, phase string, limit int) []*ent.Task {
	t.Helper()
	path := fmt.Sprintf("/api/v1/tasks/ready?phase_id=%s&limit=%d", phase, limit)
	return decode[models.TasksResponse](t, app.getJSON(t, path, http.StatusOK)).Tasks
}

// WaitForStatus polls a task over HTTP until it reaches the wanted
// status, failing the test after 10 seconds.
func (app *TestApp) WaitForStatus(t *testing.T, taskID, status string) *ent.Task {
	t.Helper()
	var last *ent.Task
	require.Eventually(t, func() bool {
		last = app.Task(t, taskID)
		return string(last.Status) == status
	}, 10*time.Second, 25*time.Millisecond,
		"task %s never reached %s (last: %v)", taskID, status, last)
	return last
}

// ReportRunning reports the dispatched task running, as its assigned
// worker would, and returns the worker's agent id.
func (app *TestApp) ReportRunning(t *testing.T, taskID string) string {
	t.Helper()
	current := app.Task(t, taskID)
	require.NotNil(t, current.AssignedAgentID, "task %s has no assigned agent", taskID)
	agentID := *current.AssignedAgentID
	app.putJSON(t, "/api/v1/tasks/"+taskID+"/status", models.UpdateTaskStatusRequest{
		Status:  "running",
		AgentID: agentID,
	}, http.StatusOK)
	return agentID
}

// SubmitForReview submits a running task for validation, as its worker
// would, and returns the task as the orchestrator left it.
func (app *TestApp) SubmitForReview(t *testing.T, taskID, agentID, commit string, result map[string]any) *ent.Task {
	t.Helper()
	submitted := decode[ent.Task](t, app.postJSON(t, "/api/v1/tasks/"+taskID+"/submit-review",
		models.SubmitForReviewRequest{
			AgentID:   agentID,
			CommitSHA: commit,
			Result:    result,
		}, http.StatusOK))
	return &submitted
}

// ActiveValidator returns the registry entry for a task under review.
func (app *TestApp) ActiveValidator(t *testing.T, taskID string) validation.ActiveValidator {
	t.Helper()
	resp := decode[api.ActiveValidatorsResponse](t,
		app.getJSON(t, "/api/v1/validators/active", http.StatusOK))
	entry, ok := resp.Validators[taskID]
	require.True(t, ok, "no active validator for task %s (have: %v)", taskID, resp.Validators)
	return entry
}

// Review files the active validator's verdict and returns the persisted
// review row.
func (app *TestApp) Review(t *testing.T, taskID, validatorID string, passed bool, feedback string) *ent.ValidationReview {
	t.Helper()
	review := decode[ent.ValidationReview](t, app.postJSON(t, "/api/v1/tasks/"+taskID+"/review",
		models.ReviewRequest{
			ValidatorAgentID: validatorID,
			Passed:           passed,
			Feedback:         feedback,
		}, http.StatusCreated))
	return &review
}
