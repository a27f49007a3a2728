// Package e2e boots the full coordination kernel — Postgres, event bus,
// queue, validation orchestrator, diagnostic engine, ACE pipeline and the
// HTTP API — against stubbed external gateways, and drives it the way
// workers, validators and operators do: over HTTP.
package e2e

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/pkg/ace"
	"github.com/droverhq/drover/pkg/api"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/diagnostic"
	"github.com/droverhq/drover/pkg/embedding"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
	"github.com/droverhq/drover/pkg/masking"
	"github.com/droverhq/drover/pkg/metrics"
	"github.com/droverhq/drover/pkg/ownership"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/results"
	"github.com/droverhq/drover/pkg/sandbox"
	"github.com/droverhq/drover/pkg/services"
	"github.com/droverhq/drover/pkg/validation"
	testdb "github.com/droverhq/drover/test/database"
)

var ginTestModeOnce sync.Once

// TestApp is one kernel replica wired end to end.
type TestApp struct {
	Config    *config.Config
	DB        *database.Client
	Bus       *events.Bus
	Publisher *events.Publisher
	Recorder  *EventRecorder

	// Listener is the NOTIFY receiver; nil unless built WithSharedDB. It
	// follows the kernel channel and each ticket channel as tickets are
	// created, the same way the server does.
	Listener *events.NotifyListener

	Tasks        *queue.Service
	Reaper       *queue.ClaimReaper
	Scheduler    *queue.Scheduler
	Orchestrator *validation.Orchestrator
	Engine       *diagnostic.Engine
	Dedup        *dedup.Service
	Agents       *services.AgentService
	Tickets      *services.TicketService

	Model       *ModelStub
	Embeddings  *EmbedStub
	Provisioner *ProvisionerStub

	// BaseURL is the API server's address, e.g. "http://127.0.0.1:43231".
	BaseURL string

	t *testing.T
}

type appOptions struct {
	tweak  func(*config.Config)
	shared *testdb.SharedTestDB
}

// Option configures the test app.
type Option func(*appOptions)

// WithConfig applies a mutation to the default test configuration before
// anything is wired.
func WithConfig(tweak func(*config.Config)) Option {
	return func(o *appOptions) { o.tweak = tweak }
}

// WithSharedDB attaches the replica to a shared schema instead of a
// private one and starts the NOTIFY listener, so events published by
// other replicas on the same schema reach this replica's bus.
func WithSharedDB(shared *testdb.SharedTestDB) Option {
	return func(o *appOptions) { o.shared = shared }
}

// testConfig returns production defaults tightened for tests: fast polls
// and sweeps, no jitter, and background intervals long enough that
// nothing ticks unless a test starts it on purpose.
func testConfig() *config.Config {
	cfg := &config.Config{
		Scoring:       config.DefaultScoringConfig(),
		Queue:         config.DefaultQueueConfig(),
		Validation:    config.DefaultValidationConfig(),
		Diagnostic:    config.DefaultDiagnosticConfig(),
		Dedup:         config.DefaultDedupConfig(),
		ACE:           config.DefaultACEConfig(),
		Bus:           config.DefaultBusConfig(),
		Ownership:     config.DefaultOwnershipConfig(),
		Monitor:       config.DefaultMonitorConfig(),
		Retention:     config.DefaultRetentionConfig(),
		Masking:       config.DefaultMaskingConfig(),
		Notifications: config.DefaultNotificationsConfig(),
		Gateways:      config.DefaultGatewaysConfig(),
		Server:        config.DefaultServerConfig(),
	}
	cfg.Queue.PollInterval = 25 * time.Millisecond
	cfg.Queue.PollIntervalJitter = 0
	cfg.Queue.ClaimTTL = 1 * time.Second
	cfg.Queue.ReaperInterval = 100 * time.Millisecond
	cfg.Queue.RecomputeInterval = 1 * time.Hour
	cfg.Validation.SweepInterval = 100 * time.Millisecond
	cfg.Diagnostic.ScanInterval = 1 * time.Hour
	return cfg
}

// NewTestApp wires a complete kernel replica. Background loops are not
// started; tests that need dispatch, sweeps or scans call StartScheduler,
// StartOrchestrator or StartEngine.
func NewTestApp(t *testing.T, opts ...Option) *TestApp {
	t.Helper()
	ginTestModeOnce.Do(func() { gin.SetMode(gin.TestMode) })

	var options appOptions
	for _, opt := range opts {
		opt(&options)
	}

	cfg := testConfig()
	if options.tweak != nil {
		options.tweak(cfg)
	}

	var db *database.Client
	if options.shared != nil {
		db = options.shared.NewClient(t)
	} else {
		db = testdb.NewTestClient(t)
	}

	model := NewModelStub()
	t.Cleanup(model.Close)
	embeds := NewEmbedStub()
	t.Cleanup(embeds.Close)
	provisioner := NewProvisionerStub()
	t.Cleanup(provisioner.Close)
	cfg.Gateways.LLM.BaseURL = model.URL()
	cfg.Gateways.Embedding.BaseURL = embeds.URL()
	cfg.Gateways.Sandbox.BaseURL = provisioner.URL()

	ctx := context.Background()

	bus := events.NewBus(cfg.Bus.HandlerTimeout)
	recorder := NewEventRecorder(bus)
	publisher := events.NewPublisher(db.DB(), bus)

	var listener *events.NotifyListener
	if options.shared != nil {
		listener = events.NewNotifyListener(options.shared.ConnString(), bus, publisher.Origin())
		require.NoError(t, listener.Start(ctx))
		t.Cleanup(func() { listener.Stop(context.Background()) })
		require.NoError(t, events.FollowTicketChannels(ctx, listener, bus, nil))
	}

	registry := prometheus.NewRegistry()
	metrics.New(registry).Attach(bus)

	embedder := embedding.NewHTTPEmbedder(cfg.Gateways.Embedding)
	gateway := llm.NewHTTPClient(cfg.Gateways.LLM)
	masker := masking.NewService(cfg.Masking)

	agents := services.NewAgentService(db.Client)
	tickets := services.NewTicketService(db.Client, publisher)
	locks := services.NewLockService(db.Client)
	discoveries := services.NewDiscoveryService(db.Client, publisher)
	eventService := services.NewEventService(db.Client)
	resultIntake := results.NewService(db.Client)
	resultIntake.SetMasker(masker)
	dedupService := dedup.NewService(db, embedder, cfg.Dedup, publisher)

	scorer := queue.NewScorer(cfg.Scoring)
	tasks := queue.NewService(db, scorer, cfg.Queue, publisher)
	spawner := sandbox.NewAgentSpawner(sandbox.NewHTTPGateway(cfg.Gateways.Sandbox), agents)
	reaper := queue.NewClaimReaper(db.Client, cfg.Queue, publisher)
	owner := ownership.NewValidator(db.Client, cfg.Ownership)
	scheduler := queue.NewScheduler(tasks, owner, spawner, reaper, cfg.Queue)

	learning := ace.NewPipeline(db, embedder, gateway, cfg.ACE, publisher)
	orchestrator := validation.NewOrchestrator(db, agents, spawner, cfg.Validation, publisher)
	orchestrator.SetLearningPipeline(learning)

	engine := diagnostic.NewEngine(diagnostic.Deps{
		DB:          db,
		Queue:       tasks,
		Dedup:       dedupService,
		Tickets:     tickets,
		Events:      eventService,
		Discoveries: discoveries,
		Gateway:     gateway,
		Publisher:   publisher,
		Masker:      masker,
	}, cfg.Diagnostic)
	orchestrator.SetDiagnosticTrigger(engine)

	server := api.NewServer(cfg.Server, api.Deps{
		DB:          db,
		Tasks:       tasks,
		Scheduler:   scheduler,
		Review:      orchestrator,
		Tickets:     tickets,
		Agents:      agents,
		Locks:       locks,
		Discoveries: discoveries,
		Events:      eventService,
		Results:     resultIntake,
		Diagnostics: engine,
		Dedup:       dedupService,
		Gatherer:    registry,
	})
	httpServer := httptest.NewServer(server.Router())
	t.Cleanup(httpServer.Close)

	return &TestApp{
		Config:       cfg,
		DB:           db,
		Bus:          bus,
		Publisher:    publisher,
		Recorder:     recorder,
		Listener:     listener,
		Tasks:        tasks,
		Reaper:       reaper,
		Scheduler:    scheduler,
		Orchestrator: orchestrator,
		Engine:       engine,
		Dedup:        dedupService,
		Agents:       agents,
		Tickets:      tickets,
		Model:        model,
		Embeddings:   embeds,
		Provisioner:  provisioner,
		BaseURL:      httpServer.URL,
		t:            t,
	}
}

// StartScheduler runs the per-phase dispatch loops and the claim reaper
// until the test ends.
func (app *TestApp) StartScheduler() {
	app.t.Helper()
	require.NoError(app.t, app.Scheduler.Start(context.Background()))
	app.t.Cleanup(app.Scheduler.Stop)
}

// StartOrchestrator rebuilds the validator registry and runs the timeout
// sweep until the test ends.
func (app *TestApp) StartOrchestrator() {
	app.t.Helper()
	require.NoError(app.t, app.Orchestrator.Start(context.Background()))
	app.t.Cleanup(app.Orchestrator.Stop)
}

// StartEngine runs the periodic stuck-workflow scan until the test ends.
func (app *TestApp) StartEngine() {
	app.t.Helper()
	app.Engine.Start(context.Background())
	app.t.Cleanup(app.Engine.Stop)
}
