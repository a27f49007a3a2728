// Drover coordination kernel server: provides the HTTP API, runs the
// phase scheduler, and hosts the validation, diagnostic, monitor and
// retention loops.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/droverhq/drover/pkg/ace"
	"github.com/droverhq/drover/pkg/api"
	"github.com/droverhq/drover/pkg/cleanup"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/diagnostic"
	"github.com/droverhq/drover/pkg/embedding"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
	"github.com/droverhq/drover/pkg/masking"
	"github.com/droverhq/drover/pkg/metrics"
	"github.com/droverhq/drover/pkg/monitor"
	"github.com/droverhq/drover/pkg/ownership"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/results"
	"github.com/droverhq/drover/pkg/sandbox"
	"github.com/droverhq/drover/pkg/services"
	"github.com/droverhq/drover/pkg/slack"
	"github.com/droverhq/drover/pkg/validation"
	"github.com/droverhq/drover/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting drover",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Event bus: durable publisher plus the NOTIFY listener that feeds
	// remote replicas' events into the local bus.
	bus := events.NewBus(cfg.Bus.HandlerTimeout)
	publisher := events.NewPublisher(dbClient.DB(), bus)
	listener := events.NewNotifyListener(dbConfig.DSN(), bus, publisher.Origin())
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	slog.Info("Event bus initialized", "origin", publisher.Origin())

	// 4. Metrics: event-driven counters plus the scrape-time queue gauge.
	registry := prometheus.NewRegistry()
	metrics.New(registry).Attach(bus)
	registry.MustRegister(metrics.NewQueueDepthCollector(dbClient.Client))

	// 5. External gateways
	embedder := embedding.NewHTTPEmbedder(cfg.Gateways.Embedding)
	gateway := llm.NewHTTPClient(cfg.Gateways.LLM)
	sandboxGateway := sandbox.NewHTTPGateway(cfg.Gateways.Sandbox)

	// 6. Domain services
	masker := masking.NewService(cfg.Masking)
	agents := services.NewAgentService(dbClient.Client)
	tickets := services.NewTicketService(dbClient.Client, publisher)
	locks := services.NewLockService(dbClient.Client)
	discoveries := services.NewDiscoveryService(dbClient.Client, publisher)
	eventService := services.NewEventService(dbClient.Client)
	resultIntake := results.NewService(dbClient.Client)
	resultIntake.SetMasker(masker)
	dedupService := dedup.NewService(dbClient, embedder, cfg.Dedup, publisher)
	slog.Info("Services initialized")

	// Point the NOTIFY listener at the kernel channel and the channel of
	// every ticket that is still active; tickets created later anywhere in
	// the cluster are picked up from ticket.created events.
	var activeTicketIDs []string
	for _, status := range []string{"open", "in_progress"} {
		active, err := tickets.ListTickets(ctx, status, "")
		if err != nil {
			slog.Error("Failed to list active tickets", "status", status, "error", err)
			os.Exit(1)
		}
		for _, tkt := range active {
			activeTicketIDs = append(activeTicketIDs, tkt.ID)
		}
	}
	if err := events.FollowTicketChannels(ctx, listener, bus, activeTicketIDs); err != nil {
		slog.Error("Failed to follow ticket channels", "error", err)
		os.Exit(1)
	}
	slog.Info("Following ticket channels", "active_tickets", len(activeTicketIDs))

	// 7. Queue: scorer, claim service, reaper, liveness sweep and the
	// phase scheduler
	scorer := queue.NewScorer(cfg.Scoring)
	taskService := queue.NewService(dbClient, scorer, cfg.Queue, publisher)
	spawner := sandbox.NewAgentSpawner(sandboxGateway, agents)
	reaper := queue.NewClaimReaper(dbClient.Client, cfg.Queue, publisher)
	owner := ownership.NewValidator(dbClient.Client, cfg.Ownership)
	scheduler := queue.NewScheduler(taskService, owner, spawner, reaper, cfg.Queue)
	liveness := queue.NewLivenessSweeper(dbClient.Client, agents, taskService, cfg.Queue)

	// 8. Review loop: validation orchestrator with the ACE learning
	// pipeline behind passed reviews.
	learning := ace.NewPipeline(dbClient, embedder, gateway, cfg.ACE, publisher)
	orchestrator := validation.NewOrchestrator(dbClient, agents, spawner, cfg.Validation, publisher)
	orchestrator.SetLearningPipeline(learning)

	// 9. Diagnostic engine, wired back into the orchestrator so repeated
	// validation failures and validator timeouts trigger a diagnosis.
	engine := diagnostic.NewEngine(diagnostic.Deps{
		DB:          dbClient,
		Queue:       taskService,
		Dedup:       dedupService,
		Tickets:     tickets,
		Events:      eventService,
		Discoveries: discoveries,
		Gateway:     gateway,
		Publisher:   publisher,
		Masker:      masker,
	}, cfg.Diagnostic)
	orchestrator.SetDiagnosticTrigger(engine)

	// 10. Slack notifier: diagnosis outcomes and monitor anomalies, threaded
	// per ticket. Stays off unless enabled with a channel and token.
	if cfg.Notifications.SlackEnabled {
		notifier := slack.NewNotifier(slack.Config{
			Token:        os.Getenv(cfg.Notifications.SlackTokenEnv),
			Channel:      cfg.Notifications.SlackChannel,
			DashboardURL: cfg.Notifications.DashboardURL,
		})
		if notifier == nil {
			slog.Warn("Slack notifications enabled but credentials missing",
				"token_env", cfg.Notifications.SlackTokenEnv)
		} else {
			notifier.Attach(bus)
			slog.Info("Slack notifier attached", "channel", cfg.Notifications.SlackChannel)
		}
	}

	// 11. Start the background loops
	if err := scheduler.Start(ctx); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	if err := orchestrator.Start(ctx); err != nil {
		slog.Error("Failed to start validation orchestrator", "error", err)
		os.Exit(1)
	}
	engine.Start(ctx)
	liveness.Start(ctx)

	watcher := monitor.NewMonitor(dbClient, cfg.Monitor, publisher)
	watcher.Register("queue_depth", monitor.QueueDepthSource(dbClient))
	watcher.Register("diagnostic_failures", monitor.DiagnosticFailureSource(dbClient))
	watcher.Start(ctx)

	retention := cleanup.NewService(cfg.Retention, dbClient.Client, eventService)
	retention.Start(ctx)

	// 12. HTTP server
	gin.SetMode(gin.ReleaseMode)
	httpServer := api.NewServer(cfg.Server, api.Deps{
		DB:          dbClient,
		Tasks:       taskService,
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

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Drover started successfully",
		"port", cfg.Server.Port,
		"phases", cfg.Queue.Phases)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown: stop claiming new work first, then drain the
	// review, learning and diagnosis loops, then close the HTTP surface.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		scheduler.Stop()
		liveness.Stop()
		orchestrator.Stop()
		learning.Wait()
		engine.Stop()
		watcher.Stop()
		retention.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Background loops stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, stale claims will be reaped on next start")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
