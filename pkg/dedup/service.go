// Package dedup prevents duplicate work from entering the queue. Candidates
// pass two phases: an exact match over persisted content hashes, then a
// semantic match over stored embeddings with a per-kind cosine threshold.
// When the embedding gateway or the vector index is unavailable the check
// degrades rather than blocking enqueue.
package dedup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/embedding"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/services"
)

// Kind identifies what a candidate is, which selects its similarity
// threshold.
type Kind string

// Candidate kinds.
const (
	KindSpec                Kind = "spec"
	KindRequirement         Kind = "requirement"
	KindTask                Kind = "task"
	KindAcceptanceCriterion Kind = "acceptance_criterion"
	KindDiagnostic          Kind = "diagnostic"
)

// Dedup verdicts.
const (
	ActionCreate = "create"
	ActionSkip   = "skip"
	ActionMerge  = "merge"
)

// Match methods recorded on results.
const (
	matchMethodHash   = "hash"
	matchMethodVector = "vector"
	matchMethodScan   = "vector_scan"
)

// liveStatuses are the statuses a new candidate can still collide with.
// Terminal rows are history, not duplicates.
var liveStatuses = []string{
	string(task.StatusPending),
	string(task.StatusClaiming),
	string(task.StatusAssigned),
	string(task.StatusRunning),
	string(task.StatusUnderReview),
	string(task.StatusValidationInProgress),
	string(task.StatusNeedsWork),
}

// TaskCandidate is a piece of work to check before it is enqueued.
type TaskCandidate struct {
	// TaskID is the caller-assigned id, when there is one. Batch callers
	// that assign ids get precise merge targets back.
	TaskID      string `json:"task_id,omitempty"`
	TicketID    string `json:"ticket_id"`
	TaskType    string `json:"task_type,omitempty"`
	Description string `json:"description"`
	// Kind defaults to KindTask.
	Kind Kind `json:"kind,omitempty"`
}

// Result is the verdict for one candidate. On create, ContentHash and
// Embedding carry the precomputed artifacts so the caller persists the row
// without recomputing them.
type Result struct {
	Action            string    `json:"action"`
	IsDuplicate       bool      `json:"is_duplicate"`
	HighestSimilarity float64   `json:"highest_similarity"`
	MatchedTaskID     string    `json:"matched_task_id,omitempty"`
	Method            string    `json:"method,omitempty"`
	ContentHash       string    `json:"content_hash"`
	Embedding         []float32 `json:"-"`
}

// Service runs the two-phase dedup pipeline against the tasks table.
type Service struct {
	db        *database.Client
	embedder  embedding.Embedder
	config    *config.DedupConfig
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewService creates a dedup Service.
func NewService(db *database.Client, embedder embedding.Embedder, cfg *config.DedupConfig, publisher *events.Publisher) *Service {
	return &Service{
		db:        db,
		embedder:  embedder,
		config:    cfg,
		publisher: publisher,
		logger:    slog.Default(),
	}
}

// threshold returns the kind's similarity threshold and whether the
// semantic phase applies. Acceptance criteria are short enough that
// embeddings are noise; they match by hash only.
func (s *Service) threshold(kind Kind) (float64, bool) {
	switch kind {
	case KindSpec:
		return s.config.SpecThreshold, true
	case KindRequirement:
		return s.config.RequirementThreshold, true
	case KindDiagnostic:
		return s.config.DiagnosticThreshold, true
	case KindAcceptanceCriterion:
		return 0, false
	default:
		return s.config.TaskThreshold, true
	}
}

// CheckTask runs both phases for a single candidate. The scope is the
// candidate's ticket, narrowed further by task_type when one is set.
func (s *Service) CheckTask(ctx context.Context, candidate TaskCandidate) (*Result, error) {
	if candidate.TicketID == "" {
		return nil, services.NewValidationError("ticket_id", "required")
	}
	if candidate.Description == "" {
		return nil, services.NewValidationError("description", "required")
	}
	kind := candidate.Kind
	if kind == "" {
		kind = KindTask
	}

	result := &Result{
		Action:      ActionCreate,
		ContentHash: ContentHash(candidate.Description),
	}

	matchID, err := s.hashMatch(ctx, candidate, result.ContentHash)
	if err != nil {
		return nil, err
	}
	if matchID != "" {
		result.Action = ActionSkip
		result.IsDuplicate = true
		result.HighestSimilarity = 1.0
		result.MatchedTaskID = matchID
		result.Method = matchMethodHash
		s.publishDuplicate(ctx, candidate, result)
		return result, nil
	}

	threshold, semantic := s.threshold(kind)
	if !semantic {
		return result, nil
	}

	emb, err := s.embedder.Embed(ctx, candidate.Description)
	if err != nil {
		// Hash-only degradation: the candidate loses semantic protection
		// but enqueue is not blocked on the embedding gateway.
		s.logger.Warn("Embedding failed, dedup degrades to hash-only",
			"ticket_id", candidate.TicketID, "error", err)
		return result, nil
	}
	result.Embedding = emb

	best, method, err := s.nearestNeighbor(ctx, candidate, emb)
	if err != nil {
		return nil, err
	}
	if best != nil {
		result.HighestSimilarity = best.Similarity
		if best.Similarity >= threshold {
			result.Action = ActionSkip
			result.IsDuplicate = true
			result.MatchedTaskID = best.ID
			result.Method = method
			s.publishDuplicate(ctx, candidate, result)
		}
	}
	return result, nil
}

// hashMatch returns the id of the oldest live in-scope task with the same
// content hash, or "".
func (s *Service) hashMatch(ctx context.Context, candidate TaskCandidate, hash string) (string, error) {
	query := s.db.Task.Query().
		Where(
			task.TicketIDEQ(candidate.TicketID),
			task.ContentHashEQ(hash),
			task.StatusNotIn(task.StatusCompleted, task.StatusFailed),
		)
	if candidate.TaskType != "" {
		query = query.Where(task.TaskTypeEQ(candidate.TaskType))
	}

	matches, err := query.
		Order(ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
		Limit(1).
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to query content hashes: %w", err)
	}
	if len(matches) == 0 {
		return "", nil
	}
	return matches[0].ID, nil
}

// nearestNeighbor finds the most similar live in-scope task. The vector
// index query is preferred; when it fails the scan walks every in-scope
// embedding in process, which orders identically at O(n) cost.
func (s *Service) nearestNeighbor(ctx context.Context, candidate TaskCandidate, emb []float32) (*database.Neighbor, string, error) {
	scope := database.TaskVectorScope{
		TicketID: candidate.TicketID,
		TaskType: candidate.TaskType,
		Statuses: liveStatuses,
	}

	neighbors, err := database.SearchTaskNeighbors(ctx, s.db.DB(), emb, scope, 0, s.config.TopK)
	if err == nil {
		if len(neighbors) == 0 {
			return nil, "", nil
		}
		return &neighbors[0], matchMethodVector, nil
	}

	s.logger.Warn("Vector index query failed, scanning in process",
		"ticket_id", candidate.TicketID, "error", err)

	rows, scanErr := database.ListTaskEmbeddings(ctx, s.db.DB(), scope)
	if scanErr != nil {
		return nil, "", fmt.Errorf("dedup fallback scan failed: %w", scanErr)
	}
	var best *database.Neighbor
	for _, row := range rows {
		sim := embedding.CosineSimilarity(emb, row.Embedding)
		if best == nil || sim > best.Similarity {
			best = &database.Neighbor{ID: row.TaskID, Similarity: sim}
		}
	}
	return best, matchMethodScan, nil
}

func (s *Service) publishDuplicate(ctx context.Context, candidate TaskCandidate, result *Result) {
	if err := s.publisher.PublishDuplicateFound(ctx, events.DuplicateFoundPayload{
		Scope:       candidate.TicketID,
		CandidateID: candidate.TaskID,
		MatchID:     result.MatchedTaskID,
		Similarity:  result.HighestSimilarity,
		Action:      result.Action,
	}); err != nil {
		s.logger.Warn("Failed to publish dedup.duplicate_found",
			"ticket_id", candidate.TicketID, "error", err)
	}
}
