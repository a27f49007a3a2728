package ace

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/playbookchange"
	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/embedding"
	"github.com/droverhq/drover/pkg/events"
)

// Curator decides which insights survive into the ticket playbook and
// keeps an append-only audit of every applied delta.
type Curator struct {
	db        *database.Client
	embedder  embedding.Embedder
	config    *config.ACEConfig
	publisher *events.Publisher
	logger    *slog.Logger
}

// CurationStats counts what one round did to the playbook.
type CurationStats struct {
	Adds  int
	Skips int
}

// Curate applies the reflection's insights as playbook adds. Replayed
// rounds are detected through the PlaybookChange audit and apply nothing.
// Each insight passes a minimum-length gate, a near-duplicate search, and
// an exact-content check before it becomes an entry.
func (c *Curator) Curate(ctx context.Context, tsk *ent.Task, memory *ent.TaskMemory, reflection *Reflection) (*CurationStats, error) {
	stats := &CurationStats{}

	applied, err := c.alreadyApplied(ctx, tsk.TicketID, memory.ID)
	if err != nil {
		return nil, err
	}
	if applied {
		c.logger.Info("Playbook deltas already applied for memory",
			"ticket_id", tsk.TicketID, "memory_id", memory.ID)
		stats.Skips = len(reflection.Insights)
		c.publishCompleted(ctx, tsk, memory, reflection, stats)
		return stats, nil
	}

	createdBy := ""
	if tsk.AssignedAgentID != nil {
		createdBy = *tsk.AssignedAgentID
	}

	for _, insight := range reflection.Insights {
		content := strings.TrimSpace(insight.Content)
		if len(content) < c.config.MinInsightChars {
			stats.Skips++
			continue
		}
		added, err := c.applyInsight(ctx, tsk.TicketID, memory.ID, createdBy, insight, content)
		if err != nil {
			c.logger.Warn("Failed to apply playbook insight",
				"ticket_id", tsk.TicketID, "category", insight.Category, "error", err)
			stats.Skips++
			continue
		}
		if added {
			stats.Adds++
		} else {
			stats.Skips++
		}
	}

	c.publishCompleted(ctx, tsk, memory, reflection, stats)
	return stats, nil
}

func (c *Curator) alreadyApplied(ctx context.Context, ticketID, memoryID string) (bool, error) {
	applied, err := c.db.PlaybookChange.Query().
		Where(
			playbookchange.TicketIDEQ(ticketID),
			playbookchange.RelatedMemoryIDEQ(memoryID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check playbook changes: %w", err)
	}
	return applied, nil
}

// applyInsight returns true when the insight became a new entry. A false
// with nil error means the insight was rejected as a duplicate.
func (c *Curator) applyInsight(ctx context.Context, ticketID, memoryID, createdBy string, insight Insight, content string) (bool, error) {
	emb, err := c.embedder.Embed(ctx, content)
	if err != nil {
		c.logger.Warn("Insight embedding failed, exact-match dedup only",
			"ticket_id", ticketID, "error", err)
		emb = nil
	}
	if emb != nil {
		neighbors, err := database.SearchPlaybookNeighbors(ctx, c.db.DB(), emb, ticketID,
			c.config.NearDuplicateThreshold, 1)
		if err != nil {
			return false, fmt.Errorf("near-duplicate search failed: %w", err)
		}
		if len(neighbors) > 0 {
			return false, nil
		}
	}

	// Delta validation: an add that exact-matches an active entry is
	// always rejected, embedding or not.
	exists, err := c.db.PlaybookEntry.Query().
		Where(
			playbookentry.TicketIDEQ(ticketID),
			playbookentry.IsActiveEQ(true),
			playbookentry.ContentEQ(content),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check existing entries: %w", err)
	}
	if exists {
		return false, nil
	}

	create := c.db.PlaybookEntry.Create().
		SetID(uuid.New().String()).
		SetTicketID(ticketID).
		SetContent(content).
		SetCategory(insight.Category).
		SetSupportingMemoryIds([]string{memoryID})
	if createdBy != "" {
		create = create.SetCreatedBy(createdBy)
	}
	entry, err := create.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to create playbook entry: %w", err)
	}

	if emb != nil {
		if err := database.SetPlaybookEntryEmbedding(ctx, c.db.DB(), entry.ID, emb); err != nil {
			c.logger.Warn("Failed to store playbook entry embedding",
				"entry_id", entry.ID, "error", err)
		}
	}

	change := c.db.PlaybookChange.Create().
		SetID(uuid.New().String()).
		SetTicketID(ticketID).
		SetChangeType(playbookchange.ChangeTypeAdd).
		SetSection(string(insight.Category)).
		SetContent(content).
		SetReasoning(fmt.Sprintf("insight extracted at confidence %.2f", insight.Confidence)).
		SetRelatedMemoryID(memoryID)
	if createdBy != "" {
		change = change.SetCreatedBy(createdBy)
	}
	if err := change.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record playbook change: %w", err)
	}
	return true, nil
}

func (c *Curator) publishCompleted(ctx context.Context, tsk *ent.Task, memory *ent.TaskMemory, reflection *Reflection, stats *CurationStats) {
	if err := c.publisher.PublishACEWorkflowCompleted(ctx, events.ACEWorkflowCompletedPayload{
		TaskID:        tsk.ID,
		TicketID:      tsk.TicketID,
		MemoryID:      memory.ID,
		InsightCount:  len(reflection.Insights),
		ErrorCount:    len(reflection.Errors),
		PlaybookAdds:  stats.Adds,
		PlaybookSkips: stats.Skips,
	}); err != nil {
		c.logger.Warn("Failed to publish ace.workflow.completed",
			"task_id", tsk.ID, "error", err)
	}
}
