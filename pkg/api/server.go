// Package api is the HTTP surface of the kernel: a gin server exposing the
// queue, review, discovery, lock, result and diagnostic operations, plus
// health and Prometheus scrape endpoints. Handlers stay thin; every rule
// lives in the service layer, and service errors map to HTTP statuses in
// one place.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/diagnostic"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/results"
	"github.com/droverhq/drover/pkg/services"
	"github.com/droverhq/drover/pkg/validation"
)

// Deps bundles the collaborators the HTTP surface exposes. Scheduler,
// Diagnostics, Dedup and Gatherer may be nil; their routes then degrade
// (health skips the scheduler check, enqueue skips the dedup gate, the
// diagnostic and metrics routes are not registered).
type Deps struct {
	DB          *database.Client
	Tasks       *queue.Service
	Scheduler   *queue.Scheduler
	Review      *validation.Orchestrator
	Tickets     *services.TicketService
	Agents      *services.AgentService
	Locks       *services.LockService
	Discoveries *services.DiscoveryService
	Events      *services.EventService
	Results     *results.Service
	Diagnostics *diagnostic.Engine
	Dedup       *dedup.Service
	Gatherer    prometheus.Gatherer
}

// Server is the kernel's HTTP API server.
type Server struct {
	config *config.ServerConfig
	deps   Deps
	logger *slog.Logger
	http   *http.Server
}

// NewServer creates an API server. Routes are built lazily by Router, so
// tests can serve the handler tree without binding a port.
func NewServer(cfg *config.ServerConfig, deps Deps) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		logger: slog.Default(),
	}
}

// Router builds the gin handler tree.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.healthHandler)
	if s.deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/api/v1")

	tasks := v1.Group("/tasks")
	tasks.POST("", s.enqueueTaskHandler)
	tasks.GET("/ready", s.readyTasksHandler)
	tasks.GET("/:id", s.getTaskHandler)
	tasks.PUT("/:id/status", s.updateTaskStatusHandler)
	tasks.POST("/:id/fail", s.failTaskHandler)
	tasks.POST("/:id/submit-review", s.submitForReviewHandler)
	tasks.POST("/:id/review", s.reviewHandler)
	tasks.GET("/:id/results", s.listAgentResultsHandler)
	tasks.GET("/:id/discoveries", s.listTaskDiscoveriesHandler)

	v1.POST("/queue/recompute", s.recomputeScoresHandler)
	v1.GET("/validators/active", s.activeValidatorsHandler)
	v1.POST("/feedback", s.feedbackHandler)

	tickets := v1.Group("/tickets")
	tickets.POST("", s.createTicketHandler)
	tickets.GET("", s.listTicketsHandler)
	tickets.GET("/:id", s.getTicketHandler)
	tickets.PUT("/:id/status", s.updateTicketStatusHandler)
	tickets.PUT("/:id/phase", s.updateTicketPhaseHandler)
	tickets.GET("/:id/clone-ready", s.cloneReadyHandler)
	tickets.GET("/:id/tasks", s.listTicketTasksHandler)
	tickets.GET("/:id/results", s.listWorkflowResultsHandler)

	agents := v1.Group("/agents")
	agents.POST("", s.registerAgentHandler)
	agents.GET("", s.listAgentsHandler)
	agents.GET("/:id", s.getAgentHandler)
	agents.POST("/:id/heartbeat", s.heartbeatHandler)
	agents.PUT("/:id/status", s.updateAgentStatusHandler)
	agents.POST("/:id/locks/release", s.releaseAgentLocksHandler)

	locks := v1.Group("/locks")
	locks.POST("", s.acquireLockHandler)
	locks.POST("/release", s.releaseLockHandler)
	locks.GET("", s.listLocksHandler)
	locks.GET("/:name", s.getLockHandler)

	discoveries := v1.Group("/discoveries")
	discoveries.POST("", s.recordDiscoveryHandler)
	discoveries.GET("", s.listOpenDiscoveriesHandler)
	discoveries.GET("/:id", s.getDiscoveryHandler)
	discoveries.POST("/:id/tasks", s.attachDiscoveryTasksHandler)
	discoveries.POST("/:id/resolve", s.resolveDiscoveryHandler)

	if s.deps.Diagnostics != nil {
		diagnostics := v1.Group("/diagnostics")
		diagnostics.POST("/trigger", s.triggerDiagnosticHandler)
		diagnostics.GET("/runs", s.listDiagnosticRunsHandler)
		diagnostics.GET("/runs/:id", s.getDiagnosticRunHandler)
	}

	resultsGroup := v1.Group("/results")
	resultsGroup.POST("/agent", s.submitAgentResultHandler)
	resultsGroup.POST("/workflow", s.submitWorkflowResultHandler)
	resultsGroup.POST("/workflow/:id/validate", s.validateWorkflowResultHandler)
	resultsGroup.POST("/workflow/:id/reject", s.rejectWorkflowResultHandler)

	v1.GET("/events", s.listEventsHandler)

	return router
}

// Start binds the configured address and serves until Shutdown or a
// listener error. It blocks; run it on its own goroutine.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.config.Host, s.config.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("HTTP server listening", "addr", s.http.Addr)
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
