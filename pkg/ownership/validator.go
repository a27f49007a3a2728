package ownership

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
)

// Result is the outcome of validating a task's owned_files against its
// parallel siblings. In lenient mode overlaps land in Warnings and Valid
// stays true; in strict mode they land in Conflicts and Valid is false.
type Result struct {
	Valid     bool     `json:"valid"`
	Warnings  []string `json:"warnings,omitempty"`
	Conflicts []string `json:"conflicts,omitempty"`
}

// Validator checks a task's file-ownership claims before dispatch.
type Validator struct {
	client *ent.Client
	mode   string
	logger *slog.Logger
}

// NewValidator creates a new ownership Validator.
func NewValidator(client *ent.Client, cfg *config.OwnershipConfig) *Validator {
	return &Validator{
		client: client,
		mode:   cfg.Mode,
		logger: slog.Default(),
	}
}

// Strict reports whether overlaps block dispatch.
func (v *Validator) Strict() bool {
	return v.mode == config.OwnershipStrict
}

// ValidateTask compares t's owned_files with every active sibling in the
// same ticket. Tasks without ownership claims always pass.
func (v *Validator) ValidateTask(ctx context.Context, t *ent.Task) (*Result, error) {
	result := &Result{Valid: true}
	if len(t.OwnedFiles) == 0 {
		return result, nil
	}

	siblings, err := v.client.Task.Query().
		Where(
			task.TicketIDEQ(t.TicketID),
			task.IDNEQ(t.ID),
			task.StatusIn(task.StatusPending, task.StatusClaiming, task.StatusAssigned, task.StatusRunning),
			task.OwnedFilesNotNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query sibling tasks: %w", err)
	}

	for _, sibling := range siblings {
		for _, own := range t.OwnedFiles {
			for _, theirs := range sibling.OwnedFiles {
				if !MayOverlap(own, theirs) {
					continue
				}
				msg := fmt.Sprintf("Ownership conflict with task %s: pattern '%s' overlaps with '%s'",
					sibling.ID, own, theirs)
				if v.Strict() {
					result.Conflicts = append(result.Conflicts, msg)
				} else {
					result.Warnings = append(result.Warnings, msg)
				}
			}
		}
	}

	if len(result.Conflicts) > 0 {
		result.Valid = false
	}
	if len(result.Conflicts) > 0 || len(result.Warnings) > 0 {
		v.logger.Warn("Ownership overlap detected",
			"task_id", t.ID,
			"ticket_id", t.TicketID,
			"mode", v.mode,
			"conflicts", len(result.Conflicts),
			"warnings", len(result.Warnings))
	}

	return result, nil
}
