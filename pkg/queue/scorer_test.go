package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
)

func scoringTask(priority string, createdAgo time.Duration, now time.Time) *ent.Task {
	return &ent.Task{
		Priority:   task.Priority(priority),
		CreatedAt:  now.Add(-createdAgo),
		MaxRetries: 3,
	}
}

func TestScorer_ComponentWeights(t *testing.T) {
	scorer := NewScorer(config.DefaultScoringConfig())
	now := time.Now()

	t.Run("fresh task scores priority plus retry headroom", func(t *testing.T) {
		low := scoringTask("LOW", 0, now)
		assert.InDelta(t, 0.1625, scorer.Compute(low, 0, now), 1e-9)

		critical := scoringTask("CRITICAL", 0, now)
		assert.InDelta(t, 0.50, scorer.Compute(critical, 0, now), 1e-9)
	})

	t.Run("age saturates at the ceiling", func(t *testing.T) {
		atCeiling := scoringTask("MEDIUM", time.Hour, now)
		pastCeiling := scoringTask("MEDIUM", 90*time.Minute, now)
		// Both contribute the full 0.20 age component.
		assert.InDelta(t, 0.475, scorer.Compute(atCeiling, 0, now), 1e-9)
		assert.InDelta(t, scorer.Compute(atCeiling, 0, now), scorer.Compute(pastCeiling, 0, now), 1e-9)
	})

	t.Run("blockers scale until the ceiling", func(t *testing.T) {
		tk := scoringTask("MEDIUM", 0, now)
		assert.InDelta(t, 0.350, scorer.Compute(tk, 5, now), 1e-9)
		assert.InDelta(t, 0.425, scorer.Compute(tk, 10, now), 1e-9)
		assert.InDelta(t, 0.425, scorer.Compute(tk, 25, now), 1e-9)
	})

	t.Run("retries consumed shrink the penalty component", func(t *testing.T) {
		fresh := scoringTask("MEDIUM", 0, now)
		worn := scoringTask("MEDIUM", 0, now)
		worn.RetryCount = 2
		assert.InDelta(t, 0.275, scorer.Compute(fresh, 0, now), 1e-9)
		assert.InDelta(t, 0.275-0.05*(2.0/3.0), scorer.Compute(worn, 0, now), 1e-9)
	})
}

func TestScorer_DeadlinePressure(t *testing.T) {
	scorer := NewScorer(config.DefaultScoringConfig())
	now := time.Now()

	t.Run("near deadline outranks an equal task without one", func(t *testing.T) {
		a := scoringTask("LOW", 0, now)

		b := scoringTask("LOW", 0, now)
		deadline := now.Add(600 * time.Second)
		b.DeadlineAt = &deadline

		scoreA := scorer.Compute(a, 0, now)
		scoreB := scorer.Compute(b, 0, now)

		assert.InDelta(t, 0.1625, scoreA, 1e-9)
		// (0.25*0.45 + (1-600/7200)*0.15 + 0.05) * 1.25
		assert.InDelta(t, 0.375, scoreB, 1e-9)
		assert.Greater(t, scoreB, scoreA)
	})

	t.Run("deadline beyond the horizon contributes nothing", func(t *testing.T) {
		tk := scoringTask("LOW", 0, now)
		deadline := now.Add(3 * time.Hour)
		tk.DeadlineAt = &deadline
		assert.InDelta(t, 0.1625, scorer.Compute(tk, 0, now), 1e-9)
	})

	t.Run("past deadline saturates and keeps the boost", func(t *testing.T) {
		tk := scoringTask("CRITICAL", 0, now)
		deadline := now.Add(-time.Minute)
		tk.DeadlineAt = &deadline
		// (0.45 + 0.15 + 0.05) * 1.25
		assert.InDelta(t, 0.8125, scorer.Compute(tk, 0, now), 1e-9)
	})
}

func TestScorer_Guards(t *testing.T) {
	scorer := NewScorer(config.DefaultScoringConfig())
	now := time.Now()

	t.Run("starved low scores are floored", func(t *testing.T) {
		tk := scoringTask("LOW", 3*time.Hour, now)
		assert.InDelta(t, 0.6, scorer.Compute(tk, 0, now), 1e-9)
	})

	t.Run("old but not starved keeps its computed score", func(t *testing.T) {
		tk := scoringTask("LOW", time.Hour, now)
		// 0.1125 + 0.20 + 0.05, below the floor but under the limit.
		assert.InDelta(t, 0.3625, scorer.Compute(tk, 0, now), 1e-9)
	})

	t.Run("floor applies after the SLA boost", func(t *testing.T) {
		tk := scoringTask("LOW", 3*time.Hour, now)
		tk.RetryCount = 3
		deadline := now.Add(-time.Minute)
		tk.DeadlineAt = &deadline
		// (0.1125 + 0.20 + 0.15) * 1.25 = 0.578, floored to 0.6.
		assert.InDelta(t, 0.6, scorer.Compute(tk, 0, now), 1e-9)
	})

	t.Run("score never exceeds one", func(t *testing.T) {
		tk := scoringTask("CRITICAL", 2*time.Hour, now)
		deadline := now.Add(100 * time.Second)
		tk.DeadlineAt = &deadline
		assert.Equal(t, 1.0, scorer.Compute(tk, 25, now))
	})

	t.Run("bounds hold across the grid", func(t *testing.T) {
		deadlines := []*time.Time{nil}
		for _, d := range []time.Duration{-time.Hour, 0, 10 * time.Minute, 3 * time.Hour} {
			at := now.Add(d)
			deadlines = append(deadlines, &at)
		}
		for priority := range priorityNorm {
			for _, age := range []time.Duration{0, time.Hour, 3 * time.Hour} {
				for _, deadline := range deadlines {
					for _, dependents := range []int{0, 3, 25} {
						tk := scoringTask(priority, age, now)
						tk.DeadlineAt = deadline
						score := scorer.Compute(tk, dependents, now)
						assert.GreaterOrEqual(t, score, 0.0)
						assert.LessOrEqual(t, score, 1.0)
					}
				}
			}
		}
	})
}
