package queue

import (
	"time"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/config"
)

// Component weights of the dynamic score. They sum to 1.0; the SLA boost
// can push the weighted sum past 1.0 before the final clamp.
const (
	weightPriority = 0.45
	weightAge      = 0.20
	weightDeadline = 0.15
	weightBlockers = 0.15
	weightRetry    = 0.05
)

// priorityNorm maps task priority to its normalized component value.
var priorityNorm = map[string]float64{
	"CRITICAL": 1.0,
	"HIGH":     0.75,
	"MEDIUM":   0.5,
	"LOW":      0.25,
}

// Scorer computes dispatch scores. All normalization windows and the
// SLA/starvation guards come from config; the weights are fixed.
type Scorer struct {
	cfg *config.ScoringConfig
}

// NewScorer creates a Scorer with the given parameters.
func NewScorer(cfg *config.ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Compute returns the score in [0, 1] for a task at the given instant.
// dependents is the number of non-terminal tasks whose dependencies list
// includes this task.
func (s *Scorer) Compute(t *ent.Task, dependents int, now time.Time) float64 {
	ageSeconds := now.Sub(t.CreatedAt).Seconds()
	if ageSeconds < 0 {
		ageSeconds = 0
	}

	ageNorm := ageSeconds / s.cfg.AgeCeiling.Seconds()
	if ageNorm > 1.0 {
		ageNorm = 1.0
	}

	var deadlineNorm float64
	var untilDeadline time.Duration
	if t.DeadlineAt != nil {
		untilDeadline = t.DeadlineAt.Sub(now)
		switch {
		case untilDeadline <= 0:
			deadlineNorm = 1.0
		case untilDeadline >= s.cfg.DeadlineHorizon:
			deadlineNorm = 0
		default:
			deadlineNorm = 1.0 - untilDeadline.Seconds()/s.cfg.DeadlineHorizon.Seconds()
		}
	}

	var blockerNorm float64
	if s.cfg.BlockerCeiling > 0 {
		blockerNorm = float64(dependents) / float64(s.cfg.BlockerCeiling)
		if blockerNorm > 1.0 {
			blockerNorm = 1.0
		}
	} else if dependents > 0 {
		blockerNorm = 1.0
	}

	retryPenalty := 1.0
	if t.MaxRetries > 0 {
		retryPenalty = 1.0 - float64(t.RetryCount)/float64(t.MaxRetries)
		if retryPenalty < 0 {
			retryPenalty = 0
		}
	} else if t.RetryCount > 0 {
		retryPenalty = 0
	}

	base := weightPriority*priorityNorm[string(t.Priority)] +
		weightAge*ageNorm +
		weightDeadline*deadlineNorm +
		weightBlockers*blockerNorm +
		weightRetry*retryPenalty

	if t.DeadlineAt != nil && untilDeadline < s.cfg.SLAUrgencyWindow {
		base *= s.cfg.SLABoostMultiplier
	}

	if ageSeconds > s.cfg.StarvationLimit.Seconds() && base < s.cfg.StarvationFloorScore {
		base = s.cfg.StarvationFloorScore
	}

	if base > 1.0 {
		base = 1.0
	}
	return base
}
