package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketChannel(t *testing.T) {
	tests := []struct {
		name     string
		ticketID string
		want     string
	}{
		{
			name:     "formats ticket channel correctly",
			ticketID: "TICKET-42",
			want:     "ticket:TICKET-42",
		},
		{
			name:     "handles UUID format",
			ticketID: "550e8400-e29b-41d4-a716-446655440000",
			want:     "ticket:550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:     "handles empty string",
			ticketID: "",
			want:     "ticket:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TicketChannel(tt.ticketID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct — handlers key off
	// these strings.
	types := []string{
		EventTypeTaskEnqueued,
		EventTypeTaskStatusChanged,
		EventTypeTaskCompleted,
		EventTypeTaskFailed,
		EventTypeValidationStarted,
		EventTypeValidationReviewSubmitted,
		EventTypeValidationPassed,
		EventTypeValidationFailed,
		EventTypeDiagnosticTriggered,
		EventTypeDiagnosticCompleted,
		EventTypeDiagnosticFailed,
		EventTypeMemoryStored,
		EventTypeMemoryPatternLearned,
		EventTypeACEWorkflowCompleted,
		EventTypeDiscoveryRecorded,
		EventTypeDiscoveryBranchCreated,
		EventTypeDiscoveryResolved,
		EventTypeMonitorAnomalyDetected,
		EventTypeAgentValidationFeedback,
		EventTypeDuplicateFound,
		EventTypeBusHandlerTimeout,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ)
		assert.False(t, seen[typ], "duplicate event type %q", typ)
		seen[typ] = true
	}
}

// The envelope's JSON shape is the NOTIFY wire contract — remote consumers
// decode these exact keys.
func TestSystemEventWireFormat(t *testing.T) {
	data, err := json.Marshal(SystemEvent{
		DBEventID:  7,
		Type:       EventTypeTaskCompleted,
		EntityType: EntityTypeTask,
		EntityID:   "task-1",
		Origin:     "proc-a",
		Payload:    TaskCompletedPayload{TaskID: "task-1", TicketID: "T-1"},
		Timestamp:  "2026-01-02T03:04:05.000000006Z",
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, float64(7), m["db_event_id"])
	assert.Equal(t, EventTypeTaskCompleted, m["type"])
	assert.Equal(t, EntityTypeTask, m["entity_type"])
	assert.Equal(t, "task-1", m["entity_id"])
	assert.Equal(t, "proc-a", m["origin"])
	assert.NotContains(t, m, "truncated", "truncated must be omitted when false")

	payload, ok := m["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "T-1", payload["ticket_id"])

	// Zero DBEventID is omitted so transient consumers don't see a fake id.
	data, err = json.Marshal(SystemEvent{Type: EventTypeTaskFailed, EntityType: EntityTypeTask, EntityID: "t"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "db_event_id")
}
