package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/diagnostic"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
	"github.com/droverhq/drover/pkg/masking"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/results"
	"github.com/droverhq/drover/pkg/services"
	"github.com/droverhq/drover/pkg/validation"
	testdb "github.com/droverhq/drover/test/database"
)

const testPhase = "PHASE_IMPLEMENTATION"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func validatorID(taskID string, iteration int) string {
	return fmt.Sprintf("val-%s-i%d", taskID, iteration)
}

// fakeValidatorSpawner hands out deterministic validator ids so tests can
// register the matching agent row before filing a review.
type fakeValidatorSpawner struct {
	mu      sync.Mutex
	spawned []string
}

func (f *fakeValidatorSpawner) SpawnValidator(_ context.Context, t *ent.Task) (*queue.SpawnedAgent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spawned = append(f.spawned, t.ID)
	return &queue.SpawnedAgent{
		AgentID:   validatorID(t.ID, t.ValidationIteration),
		SandboxID: "sandbox-" + t.ID,
	}, nil
}

func (f *fakeValidatorSpawner) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.spawned...)
}

// seqEmbedder assigns each distinct normalized text its own axis, so
// identical texts embed identically and different texts are orthogonal.
type seqEmbedder struct {
	mu   sync.Mutex
	axes map[string]int
}

func (f *seqEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.axes == nil {
		f.axes = make(map[string]int)
	}
	key := dedup.Normalize(text)
	axis, ok := f.axes[key]
	if !ok {
		axis = len(f.axes)
		f.axes[key] = axis
	}
	vec := make([]float32, 1536)
	vec[axis] = 1
	return vec, nil
}

func (f *seqEmbedder) BatchEmbed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (f *seqEmbedder) Dimension() int { return 1536 }

// fakeGateway returns a canned analysis for diagnostic runs.
type fakeGateway struct {
	mu       sync.Mutex
	analysis *llm.DiagnosticAnalysis
}

func (f *fakeGateway) StructuredOutput(_ context.Context, _ string, out any, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	target, ok := out.(*llm.DiagnosticAnalysis)
	if !ok {
		return fmt.Errorf("unexpected output type %T", out)
	}
	if f.analysis != nil {
		*target = *f.analysis
	}
	return nil
}

type fixture struct {
	router    *gin.Engine
	deps      Deps
	client    *database.Client
	tasks     *queue.Service
	publisher *events.Publisher
	spawner   *fakeValidatorSpawner
	gateway   *fakeGateway
	registry  *prometheus.Registry
}

// newTestServer wires the full handler tree against a test database,
// with fakes standing in for the validator spawner, the embedding
// service and the LLM gateway.
func newTestServer(t *testing.T) *fixture {
	t.Helper()

	client := testdb.NewTestClient(t)
	bus := events.NewBus(5 * time.Second)
	publisher := events.NewPublisher(client.DB(), bus)

	tasks := queue.NewService(client, queue.NewScorer(config.DefaultScoringConfig()), config.DefaultQueueConfig(), publisher)
	agents := services.NewAgentService(client.Client)
	tickets := services.NewTicketService(client.Client, publisher)
	dedupSvc := dedup.NewService(client, &seqEmbedder{}, config.DefaultDedupConfig(), publisher)
	spawner := &fakeValidatorSpawner{}
	gateway := &fakeGateway{}
	registry := prometheus.NewRegistry()
	masker := masking.NewService(config.DefaultMaskingConfig())
	resultIntake := results.NewService(client.Client)
	resultIntake.SetMasker(masker)

	deps := Deps{
		DB:          client,
		Tasks:       tasks,
		Review:      validation.NewOrchestrator(client, agents, spawner, config.DefaultValidationConfig(), publisher),
		Tickets:     tickets,
		Agents:      agents,
		Locks:       services.NewLockService(client.Client),
		Discoveries: services.NewDiscoveryService(client.Client, publisher),
		Events:      services.NewEventService(client.Client),
		Results:     resultIntake,
		Dedup:       dedupSvc,
		Gatherer:    registry,
	}
	deps.Diagnostics = diagnostic.NewEngine(diagnostic.Deps{
		DB:          client,
		Queue:       tasks,
		Dedup:       dedupSvc,
		Tickets:     tickets,
		Events:      deps.Events,
		Discoveries: deps.Discoveries,
		Gateway:     gateway,
		Publisher:   publisher,
		Masker:      masker,
	}, config.DefaultDiagnosticConfig())

	srv := NewServer(config.DefaultServerConfig(), deps)

	return &fixture{
		router:    srv.Router(),
		deps:      deps,
		client:    client,
		tasks:     tasks,
		publisher: publisher,
		spawner:   spawner,
		gateway:   gateway,
		registry:  registry,
	}
}

// do performs one request against the router.
func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return f.doWithHeaders(t, method, path, body, nil)
}

func (f *fixture) doWithHeaders(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body, failing the test with the raw body
// on mismatch.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// createTicket creates a ticket through the API.
func (f *fixture) createTicket(t *testing.T, ticketID string) {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/tickets", models.CreateTicketRequest{
		TicketID: ticketID,
		Title:    "ticket " + ticketID,
		PhaseID:  testPhase,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

// enqueue creates a task through the API and returns the created row.
func (f *fixture) enqueue(t *testing.T, req models.EnqueueTaskRequest) *ent.Task {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/tasks", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[EnqueueTaskResponse](t, rec)
	require.NotNil(t, resp.Task)
	return resp.Task
}

// claim walks a pending task through the scheduler's claim path so the
// worker-reported transitions become legal.
func (f *fixture) claim(t *testing.T, phaseID, taskID, agentID string) {
	t.Helper()
	ctx := context.Background()
	claimed, err := f.tasks.NextReady(ctx, phaseID)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, taskID, claimed.ID)
	_, err = f.tasks.Finalize(ctx, taskID, agentID, "sandbox-"+agentID)
	require.NoError(t, err)
}

// startRunning reports the assigned task running, as a worker would.
func (f *fixture) startRunning(t *testing.T, taskID, agentID string) {
	t.Helper()
	rec := f.do(t, http.MethodPut, "/api/v1/tasks/"+taskID+"/status", models.UpdateTaskStatusRequest{
		Status:  "running",
		AgentID: agentID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

// registerAgent registers an agent row through the API.
func (f *fixture) registerAgent(t *testing.T, agentID, agentType string) {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/api/v1/agents", models.RegisterAgentRequest{
		AgentID:   agentID,
		AgentType: agentType,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

// seedCloneReadyTicket creates a ticket whose project and owner satisfy
// the clone-readiness chain.
func seedCloneReadyTicket(t *testing.T, client *database.Client, ticketID string) {
	t.Helper()
	ctx := context.Background()
	owner, err := client.User.Create().
		SetID("user-" + ticketID).
		SetUsername("dev-" + ticketID).
		SetGithubAccessToken("ghp_" + ticketID).
		Save(ctx)
	require.NoError(t, err)
	project, err := client.Project.Create().
		SetID("proj-" + ticketID).
		SetName("project " + ticketID).
		SetRepoURL("https://github.com/acme/" + ticketID).
		SetOwnerID(owner.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Ticket.Create().
		SetID(ticketID).
		SetTitle("ticket " + ticketID).
		SetDescription("ship the " + ticketID + " feature").
		SetPhaseID(testPhase).
		SetProjectID(project.ID).
		Save(ctx)
	require.NoError(t, err)
}

func ptr[T any](v T) *T {
	return &v
}
