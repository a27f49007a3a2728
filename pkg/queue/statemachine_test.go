package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/droverhq/drover/ent/task"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    task.Status
		to      task.Status
		allowed bool
	}{
		{"pending to claiming", task.StatusPending, task.StatusClaiming, true},
		{"pending straight to assigned", task.StatusPending, task.StatusAssigned, false},
		{"pending straight to running", task.StatusPending, task.StatusRunning, false},
		{"claiming to assigned", task.StatusClaiming, task.StatusAssigned, true},
		{"claiming released to pending", task.StatusClaiming, task.StatusPending, true},
		{"claiming to running", task.StatusClaiming, task.StatusRunning, false},
		{"assigned to running", task.StatusAssigned, task.StatusRunning, true},
		{"assigned requeued", task.StatusAssigned, task.StatusPending, true},
		{"assigned to failed", task.StatusAssigned, task.StatusFailed, true},
		{"assigned to completed", task.StatusAssigned, task.StatusCompleted, false},
		{"running to under review", task.StatusRunning, task.StatusUnderReview, true},
		{"running to completed", task.StatusRunning, task.StatusCompleted, true},
		{"running requeued", task.StatusRunning, task.StatusPending, true},
		{"running to failed", task.StatusRunning, task.StatusFailed, true},
		{"under review to validation", task.StatusUnderReview, task.StatusValidationInProgress, true},
		{"under review to completed", task.StatusUnderReview, task.StatusCompleted, true},
		{"under review back to running", task.StatusUnderReview, task.StatusRunning, false},
		{"validation passed", task.StatusValidationInProgress, task.StatusCompleted, true},
		{"validation failed review", task.StatusValidationInProgress, task.StatusNeedsWork, true},
		{"validation timed out", task.StatusValidationInProgress, task.StatusFailed, true},
		{"validation requeued", task.StatusValidationInProgress, task.StatusPending, true},
		{"needs work resumed", task.StatusNeedsWork, task.StatusRunning, true},
		{"needs work exhausted", task.StatusNeedsWork, task.StatusFailed, true},
		{"needs work requeued", task.StatusNeedsWork, task.StatusPending, true},
		{"needs work to completed", task.StatusNeedsWork, task.StatusCompleted, false},
		{"completed is terminal", task.StatusCompleted, task.StatusPending, false},
		{"completed cannot fail", task.StatusCompleted, task.StatusFailed, false},
		{"failed is terminal", task.StatusFailed, task.StatusPending, false},
		{"failed cannot complete", task.StatusFailed, task.StatusCompleted, false},
		{"no self transition", task.StatusRunning, task.StatusRunning, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(task.StatusCompleted))
	assert.True(t, IsTerminal(task.StatusFailed))

	for _, status := range ActiveStatuses {
		assert.False(t, IsTerminal(status), "status %s", status)
	}
}

func TestActiveStatuses(t *testing.T) {
	assert.Len(t, ActiveStatuses, 6)
	assert.Contains(t, ActiveStatuses, task.StatusPending)
	assert.Contains(t, ActiveStatuses, task.StatusValidationInProgress)
}
