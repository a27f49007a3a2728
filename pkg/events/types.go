// Package events provides the kernel's event bus: synchronous in-process
// dispatch plus durable fan-out via the events table and PostgreSQL
// NOTIFY/LISTEN for cross-process distribution.
//
// ════════════════════════════════════════════════════════════════
// Delivery model
// ════════════════════════════════════════════════════════════════
//
// Every durable publish does three things, in order:
//
//  1. INSERT into the events table and pg_notify on the event's channel,
//     in a single transaction. The NOTIFY fires only on COMMIT, so remote
//     consumers never observe an event that was rolled back. The row id
//     becomes the event's db_event_id.
//  2. Local dispatch on the Bus: every handler subscribed to the event
//     type runs synchronously, in registration order, under the entity's
//     FIFO stripe.
//  3. Remote processes holding a LISTEN connection receive the NOTIFY
//     payload and feed it into their own Bus. The origin field filters
//     out the publisher's own notifications so local events are not
//     dispatched twice.
//
// Ordering is per-entity_id FIFO only: two events for the same task are
// observed by handlers in publish order, but there is no cross-entity
// ordering. Handlers run with a deadline; a handler that outlives it is
// abandoned (its context is cancelled, dispatch moves on) and a
// bus.handler_timeout event is published in its place. Delivery is
// at-least-once end to end, so handlers must be idempotent.
//
// NOTIFY payloads are capped below PostgreSQL's 8000-byte limit. Oversized
// envelopes are replaced by a routing-only stub with truncated=true;
// consumers fetch the full row from the events table by db_event_id.
//
// ════════════════════════════════════════════════════════════════
package events

// Task lifecycle event types.
const (
	EventTypeTaskEnqueued      = "task.enqueued"
	EventTypeTaskStatusChanged = "task.status.changed"
	EventTypeTaskCompleted     = "task.completed"
	EventTypeTaskFailed        = "task.failed"
)

// Ticket lifecycle event types. ticket.created goes out on the kernel
// channel so every replica can LISTEN on the new ticket's channel before
// its first task event fires.
const (
	EventTypeTicketCreated = "ticket.created"
)

// Validation event types.
const (
	EventTypeValidationStarted         = "validation_started"
	EventTypeValidationReviewSubmitted = "validation_review_submitted"
	EventTypeValidationPassed          = "validation_passed"
	EventTypeValidationFailed          = "validation_failed"
)

// Diagnostic event types.
const (
	EventTypeDiagnosticTriggered = "diagnostic.triggered"
	EventTypeDiagnosticCompleted = "diagnostic.completed"
	EventTypeDiagnosticFailed    = "diagnostic.failed"
)

// Memory and ACE pipeline event types.
const (
	EventTypeMemoryStored         = "memory.stored"
	EventTypeMemoryPatternLearned = "memory.pattern.learned"
	EventTypeACEWorkflowCompleted = "ace.workflow.completed"
)

// Discovery event types.
const (
	EventTypeDiscoveryRecorded      = "discovery.recorded"
	EventTypeDiscoveryBranchCreated = "discovery.branch_created"
	EventTypeDiscoveryResolved      = "discovery.resolved"
)

// Monitoring and feedback event types.
const (
	EventTypeMonitorAnomalyDetected  = "monitor.anomaly.detected"
	EventTypeAgentValidationFeedback = "agent.validation_feedback"
)

// Dedup event types.
const (
	EventTypeDuplicateFound = "dedup.duplicate_found"
)

// Bus-internal event types.
const (
	// Published when a handler exceeds its deadline and delivery is abandoned.
	EventTypeBusHandlerTimeout = "bus.handler_timeout"
)

// Entity types (SystemEvent.EntityType).
const (
	EntityTypeTask          = "task"
	EntityTypeTicket        = "ticket"
	EntityTypeMemory        = "memory"
	EntityTypePattern       = "pattern"
	EntityTypeDiscovery     = "discovery"
	EntityTypeDiagnosticRun = "diagnostic_run"
	EntityTypeAgent         = "agent"
	EntityTypeAnomaly       = "anomaly"
	EntityTypeBus           = "bus"
)

// KernelChannel is the channel for kernel-wide events (anomalies, handler
// timeouts). Operational dashboards subscribe to this.
const KernelChannel = "kernel"

// TicketChannel returns the channel name for a specific ticket's events.
// Format: "ticket:{ticket_id}"
func TicketChannel(ticketID string) string {
	return "ticket:" + ticketID
}

// SystemEvent is the envelope every event travels in: persisted to the
// events table, carried in NOTIFY payloads, and handed to bus handlers.
type SystemEvent struct {
	// DBEventID is the events-table row id. Zero until the durable append
	// assigns it; transient events keep it zero.
	DBEventID int64 `json:"db_event_id,omitempty"`

	Type       string `json:"type"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`

	// Origin identifies the publishing process so listeners can drop
	// their own notifications.
	Origin string `json:"origin,omitempty"`

	// Payload is a typed struct from payloads.go on the publishing side
	// and a map[string]any after a NOTIFY round-trip.
	Payload any `json:"payload,omitempty"`

	// Truncated marks a NOTIFY stub whose payload was dropped to fit the
	// 8000-byte limit; the full event lives in the events table row.
	Truncated bool `json:"truncated,omitempty"`

	Timestamp string `json:"timestamp"` // RFC3339Nano
}
