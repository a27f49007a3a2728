package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// notifyPayloadLimit leaves headroom under PostgreSQL's 8000-byte NOTIFY
// payload cap.
const notifyPayloadLimit = 7900

// Publisher appends events to the durable log and fans them out: the
// events-table INSERT and pg_notify happen in one transaction, then the
// event is dispatched on the local bus. Remote processes receive it
// through their NOTIFY listeners.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go — and routes to the owning ticket's channel (kernel-scoped
// events go to KernelChannel).
type Publisher struct {
	db     *sql.DB
	bus    *Bus
	origin string
}

// NewPublisher creates a Publisher. The db parameter should be the *sql.DB
// from database.Client.DB(). Installs itself as the bus's handler-timeout
// sink.
func NewPublisher(db *sql.DB, bus *Bus) *Publisher {
	p := &Publisher{
		db:     db,
		bus:    bus,
		origin: uuid.NewString(),
	}
	if bus != nil {
		bus.SetTimeoutSink(p.publishHandlerTimeout)
	}
	return p
}

// Origin returns the instance id stamped on this publisher's events. The
// NOTIFY listener uses it to drop notifications that originated locally.
func (p *Publisher) Origin() string {
	return p.origin
}

// --- Ticket lifecycle ---

// PublishTicketCreated publishes a ticket.created event on the kernel
// channel, announcing the ticket's own channel to every replica.
func (p *Publisher) PublishTicketCreated(ctx context.Context, payload TicketCreatedPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeTicketCreated,
		EntityType: EntityTypeTicket,
		EntityID:   payload.TicketID,
		Payload:    payload,
	}, KernelChannel)
}

// --- Task lifecycle ---

// PublishTaskEnqueued publishes a task.enqueued event.
func (p *Publisher) PublishTaskEnqueued(ctx context.Context, payload TaskEnqueuedPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeTaskEnqueued,
		EntityType: EntityTypeTask,
		EntityID:   payload.TaskID,
		Payload:    payload,
	}, TicketChannel(payload.TicketID))
}

// PublishTaskStatusChanged publishes a task.status.changed event.
// Fired on every persisted status transition, claim steps included.
func (p *Publisher) PublishTaskStatusChanged(ctx context.Context, payload TaskStatusChangedPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeTaskStatusChanged,
		EntityType: EntityTypeTask,
		EntityID:   payload.TaskID,
		Payload:    payload,
	}, TicketChannel(payload.TicketID))
}

// PublishTaskCompleted publishes a task.completed event.
func (p *Publisher) PublishTaskCompleted(ctx context.Context, payload TaskCompletedPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeTaskCompleted,
		EntityType: EntityTypeTask,
		EntityID:   payload.TaskID,
		Payload:    payload,
	}, TicketChannel(payload.TicketID))
}

// PublishTaskFailed publishes a task.failed event.
func (p *Publisher) PublishTaskFailed(ctx context.Context, payload TaskFailedPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeTaskFailed,
		EntityType: EntityTypeTask,
		EntityID:   payload.TaskID,
		Payload:    payload,
	}, TicketChannel(payload.TicketID))
}

// --- Validation ---

// PublishValidationStarted publishes a validation_started event.
func (p *Publisher) PublishValidationStarted(ctx context.Context, payload ValidationPayload) error {
	return p.publishValidation(ctx, EventTypeValidationStarted, payload)
}

// PublishValidationReviewSubmitted publishes a validation_review_submitted event.
func (p *Publisher) PublishValidationReviewSubmitted(ctx context.Context, payload ValidationPayload) error {
	return p.publishValidation(ctx, EventTypeValidationReviewSubmitted, payload)
}

// PublishValidationPassed publishes a validation_passed event.
func (p *Publisher) PublishValidationPassed(ctx context.Context, payload ValidationPayload) error {
	return p.publishValidation(ctx, EventTypeValidationPassed, payload)
}

// PublishValidationFailed publishes a validation_failed event.
func (p *Publisher) PublishValidationFailed(ctx context.Context, payload ValidationPayload) error {
	return p.publishValidation(ctx, EventTypeValidationFailed, payload)
}

func (p *Publisher) publishValidation(ctx context.Context, eventType string, payload ValidationPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       eventType,
		EntityType: EntityTypeTask,
		EntityID:   payload.TaskID,
		Payload:    payload,
	}, TicketChannel(payload.TicketID))
}

// --- Diagnostic ---

// PublishDiagnosticTriggered publishes a diagnostic.triggered event.
func (p *Publisher) PublishDiagnosticTriggered(ctx context.Context, payload DiagnosticPayload) error {
	return p.publishDiagnostic(ctx, EventTypeDiagnosticTriggered, payload)
}

// PublishDiagnosticCompleted publishes a diagnostic.completed event.
func (p *Publisher) PublishDiagnosticCompleted(ctx context.Context, payload DiagnosticPayload) error {
	return p.publishDiagnostic(ctx, EventTypeDiagnosticCompleted, payload)
}

// PublishDiagnosticFailed publishes a diagnostic.failed event.
func (p *Publisher) PublishDiagnosticFailed(ctx context.Context, payload DiagnosticPayload) error {
	return p.publishDiagnostic(ctx, EventTypeDiagnosticFailed, payload)
}

func (p *Publisher) publishDiagnostic(ctx context.Context, eventType string, payload DiagnosticPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       eventType,
		EntityType: EntityTypeDiagnosticRun,
		EntityID:   payload.RunID,
		Payload:    payload,
	}, TicketChannel(payload.TicketID))
}

// --- Memory / ACE ---

// PublishMemoryStored publishes a memory.stored event.
func (p *Publisher) PublishMemoryStored(ctx context.Context, payload MemoryStoredPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeMemoryStored,
		EntityType: EntityTypeMemory,
		EntityID:   payload.MemoryID,
		Payload:    payload,
	}, TicketChannel(payload.TicketID))
}

// PublishPatternLearned publishes a memory.pattern.learned event.
func (p *Publisher) PublishPatternLearned(ctx context.Context, payload PatternLearnedPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeMemoryPatternLearned,
		EntityType: EntityTypePattern,
		EntityID:   payload.PatternID,
		Payload:    payload,
	}, KernelChannel)
}

// PublishACEWorkflowCompleted publishes an ace.workflow.completed event.
func (p *Publisher) PublishACEWorkflowCompleted(ctx context.Context, payload ACEWorkflowCompletedPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeACEWorkflowCompleted,
		EntityType: EntityTypeTask,
		EntityID:   payload.TaskID,
		Payload:    payload,
	}, TicketChannel(payload.TicketID))
}

// --- Discovery ---

// PublishDiscoveryRecorded publishes a discovery.recorded event.
func (p *Publisher) PublishDiscoveryRecorded(ctx context.Context, payload DiscoveryPayload) error {
	return p.publishDiscovery(ctx, EventTypeDiscoveryRecorded, payload)
}

// PublishDiscoveryBranchCreated publishes a discovery.branch_created event.
func (p *Publisher) PublishDiscoveryBranchCreated(ctx context.Context, payload DiscoveryPayload) error {
	return p.publishDiscovery(ctx, EventTypeDiscoveryBranchCreated, payload)
}

// PublishDiscoveryResolved publishes a discovery.resolved event.
func (p *Publisher) PublishDiscoveryResolved(ctx context.Context, payload DiscoveryPayload) error {
	return p.publishDiscovery(ctx, EventTypeDiscoveryResolved, payload)
}

func (p *Publisher) publishDiscovery(ctx context.Context, eventType string, payload DiscoveryPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       eventType,
		EntityType: EntityTypeDiscovery,
		EntityID:   payload.DiscoveryID,
		Payload:    payload,
	}, TicketChannel(payload.TicketID))
}

// --- Monitoring / dedup / bus ---

// PublishAnomalyDetected publishes a monitor.anomaly.detected event on the
// kernel channel.
func (p *Publisher) PublishAnomalyDetected(ctx context.Context, payload AnomalyPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeMonitorAnomalyDetected,
		EntityType: EntityTypeAnomaly,
		EntityID:   payload.AnomalyID,
		Payload:    payload,
	}, KernelChannel)
}

// PublishValidationFeedback publishes an agent.validation_feedback event.
func (p *Publisher) PublishValidationFeedback(ctx context.Context, payload ValidationFeedbackPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeAgentValidationFeedback,
		EntityType: EntityTypeAgent,
		EntityID:   payload.AgentID,
		Payload:    payload,
	}, TicketChannel(payload.TicketID))
}

// PublishDuplicateFound publishes a dedup.duplicate_found event on the
// kernel channel.
func (p *Publisher) PublishDuplicateFound(ctx context.Context, payload DuplicateFoundPayload) error {
	return p.publish(ctx, SystemEvent{
		Type:       EventTypeDuplicateFound,
		EntityType: EntityTypeTask,
		EntityID:   payload.MatchID,
		Payload:    payload,
	}, KernelChannel)
}

// publishHandlerTimeout is the bus's timeout sink. Failures are logged,
// not propagated — the triggering dispatch already moved on.
func (p *Publisher) publishHandlerTimeout(ctx context.Context, payload HandlerTimeoutPayload) {
	err := p.publish(ctx, SystemEvent{
		Type:       EventTypeBusHandlerTimeout,
		EntityType: EntityTypeBus,
		EntityID:   payload.Handler,
		Payload:    payload,
	}, KernelChannel)
	if err != nil {
		slog.Warn("Failed to publish handler timeout event",
			"handler", payload.Handler, "error", err)
	}
}

// --- Core ---

// publish persists the event and broadcasts via NOTIFY in a single
// transaction (pg_notify is transactional — held until COMMIT), then
// dispatches on the local bus. Handlers therefore only ever observe
// committed events.
func (p *Publisher) publish(ctx context.Context, event SystemEvent, channel string) error {
	event.Origin = p.origin
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}

	stored, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Durable append (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (event_type, entity_type, entity_id, channel, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		event.Type, event.EntityType, event.EntityID, channel, stored, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}
	event.DBEventID = eventID

	notifyPayload, err := notifyEnvelope(event)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	// 4. Local synchronous dispatch, after commit
	if p.bus != nil {
		p.bus.Dispatch(ctx, event)
	}
	return nil
}

// notifyEnvelope marshals the event for NOTIFY delivery, replacing the
// payload with a routing-only stub when the result would exceed the
// PostgreSQL limit.
func notifyEnvelope(event SystemEvent) (string, error) {
	full, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal NOTIFY payload: %w", err)
	}
	if len(full) <= notifyPayloadLimit {
		return string(full), nil
	}

	stub := event
	stub.Payload = nil
	stub.Truncated = true

	stubBytes, err := json.Marshal(stub)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated NOTIFY payload: %w", err)
	}
	return string(stubBytes), nil
}
