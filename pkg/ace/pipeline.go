package ace

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/embedding"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
)

// Pipeline chains the ACE phases. The validation orchestrator invokes it
// once per passed review.
type Pipeline struct {
	executor  *Executor
	patterns  *PatternLearner
	reflector *Reflector
	curator   *Curator
	logger    *slog.Logger
}

// NewPipeline builds the pipeline on shared infrastructure. The gateway
// may be nil; classification and pattern extraction then stay on their
// rule-based paths.
func NewPipeline(db *database.Client, embedder embedding.Embedder, gateway llm.Gateway, cfg *config.ACEConfig, publisher *events.Publisher) *Pipeline {
	logger := slog.Default()
	return &Pipeline{
		executor: &Executor{
			db:        db,
			embedder:  embedder,
			gateway:   gateway,
			config:    cfg,
			publisher: publisher,
			logger:    logger,
		},
		patterns: &PatternLearner{
			db:        db,
			gateway:   gateway,
			publisher: publisher,
			logger:    logger,
		},
		reflector: &Reflector{
			db:     db,
			config: cfg,
			logger: logger,
		},
		curator: &Curator{
			db:        db,
			embedder:  embedder,
			config:    cfg,
			publisher: publisher,
			logger:    logger,
		},
		logger: logger,
	}
}

// Run captures a task memory and folds its lessons into the learned
// patterns and the ticket playbook. The stored memory survives any later
// phase failure: pattern learning and reflection degrade with a warning,
// and the curator runs on whatever the reflector produced.
func (p *Pipeline) Run(ctx context.Context, tsk *ent.Task, review *ent.ValidationReview) error {
	memory, err := p.executor.Capture(ctx, tsk, review)
	if err != nil {
		return fmt.Errorf("execute phase failed: %w", err)
	}

	if _, err := p.patterns.Learn(ctx, tsk, memory); err != nil {
		p.logger.Warn("Pattern phase degraded", "task_id", tsk.ID, "error", err)
	}

	reflection, err := p.reflector.Reflect(ctx, tsk, memory)
	if err != nil {
		p.logger.Warn("Reflect phase degraded", "task_id", tsk.ID, "error", err)
	}

	if _, err := p.curator.Curate(ctx, tsk, memory, reflection); err != nil {
		return fmt.Errorf("curate phase failed: %w", err)
	}
	return nil
}

// Wait blocks until background classification work has drained. Shutdown
// and tests use it.
func (p *Pipeline) Wait() {
	p.executor.Wait()
}
