package queue

import "github.com/droverhq/drover/ent/task"

// transitions is the coordination state machine. The claim path moves
// pending→claiming→assigned; the review path is driven by pkg/validation;
// the pending arcs out of assigned/running are the retry returns.
// completed and failed are terminal.
var transitions = map[task.Status][]task.Status{
	task.StatusPending:  {task.StatusClaiming},
	task.StatusClaiming: {task.StatusAssigned, task.StatusPending},
	task.StatusAssigned: {task.StatusRunning, task.StatusPending, task.StatusFailed},
	task.StatusRunning: {
		task.StatusUnderReview,
		task.StatusCompleted,
		task.StatusPending,
		task.StatusFailed,
	},
	task.StatusUnderReview: {task.StatusValidationInProgress, task.StatusCompleted},
	task.StatusValidationInProgress: {
		task.StatusCompleted,
		task.StatusNeedsWork,
		task.StatusFailed,
		task.StatusPending,
	},
	task.StatusNeedsWork: {task.StatusRunning, task.StatusFailed, task.StatusPending},
	task.StatusCompleted: nil,
	task.StatusFailed:    nil,
}

// CanTransition reports whether from→to is a legal status change.
func CanTransition(from, to task.Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status task.Status) bool {
	return status == task.StatusCompleted || status == task.StatusFailed
}

// ActiveStatuses are the statuses of tasks still moving through the
// pipeline. The diagnostic stuck predicate counts these.
var ActiveStatuses = []task.Status{
	task.StatusPending,
	task.StatusClaiming,
	task.StatusAssigned,
	task.StatusRunning,
	task.StatusUnderReview,
	task.StatusValidationInProgress,
}
