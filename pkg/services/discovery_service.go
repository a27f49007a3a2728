package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/taskdiscovery"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
)

// DiscoveryService manages the workflow-branching graph: findings recorded
// on tasks and the follow-up tasks spawned from them.
type DiscoveryService struct {
	client    *ent.Client
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewDiscoveryService creates a new DiscoveryService
func NewDiscoveryService(client *ent.Client, publisher *events.Publisher) *DiscoveryService {
	return &DiscoveryService{
		client:    client,
		publisher: publisher,
		logger:    slog.Default(),
	}
}

// Record creates a discovery on a source task and publishes
// discovery.recorded on the ticket channel.
func (s *DiscoveryService) Record(httpCtx context.Context, req models.RecordDiscoveryRequest) (*ent.TaskDiscovery, error) {
	if req.SourceTaskID == "" {
		return nil, NewValidationError("source_task_id", "required")
	}
	if req.DiscoveryType == "" {
		return nil, NewValidationError("discovery_type", "required")
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	sourceTask, err := s.client.Task.Get(ctx, req.SourceTaskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get source task: %w", err)
	}

	discovery, err := s.client.TaskDiscovery.Create().
		SetID(uuid.New().String()).
		SetSourceTaskID(req.SourceTaskID).
		SetDiscoveryType(req.DiscoveryType).
		SetDescription(req.Description).
		SetPriorityBoost(req.PriorityBoost).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record discovery: %w", err)
	}

	if err := s.publisher.PublishDiscoveryRecorded(ctx, events.DiscoveryPayload{
		DiscoveryID:   discovery.ID,
		SourceTaskID:  req.SourceTaskID,
		TicketID:      sourceTask.TicketID,
		DiscoveryType: req.DiscoveryType,
	}); err != nil {
		s.logger.Warn("Failed to publish discovery.recorded", "discovery_id", discovery.ID, "error", err)
	}

	return discovery, nil
}

// AttachSpawnedTasks links follow-up task ids to a discovery, marks it
// in progress, and publishes discovery.branch_created.
func (s *DiscoveryService) AttachSpawnedTasks(ctx context.Context, discoveryID string, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return NewValidationError("task_ids", "required")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	discovery, err := s.client.TaskDiscovery.Get(writeCtx, discoveryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get discovery: %w", err)
	}

	spawned := append(append([]string{}, discovery.SpawnedTaskIds...), taskIDs...)

	err = s.client.TaskDiscovery.UpdateOneID(discoveryID).
		SetSpawnedTaskIds(spawned).
		SetResolutionStatus(taskdiscovery.ResolutionStatusInProgress).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to attach spawned tasks: %w", err)
	}

	sourceTask, err := s.client.Task.Get(writeCtx, discovery.SourceTaskID)
	if err != nil {
		return fmt.Errorf("failed to get source task: %w", err)
	}

	if err := s.publisher.PublishDiscoveryBranchCreated(writeCtx, events.DiscoveryPayload{
		DiscoveryID:    discoveryID,
		SourceTaskID:   discovery.SourceTaskID,
		TicketID:       sourceTask.TicketID,
		DiscoveryType:  discovery.DiscoveryType,
		SpawnedTaskIDs: spawned,
	}); err != nil {
		s.logger.Warn("Failed to publish discovery.branch_created", "discovery_id", discoveryID, "error", err)
	}

	return nil
}

// Resolve closes out a discovery as resolved or invalid and publishes
// discovery.resolved.
func (s *DiscoveryService) Resolve(ctx context.Context, discoveryID, resolution string) error {
	switch resolution {
	case "resolved", "invalid":
	default:
		return NewValidationError("resolution", "invalid: must be resolved or invalid")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	discovery, err := s.client.TaskDiscovery.Get(writeCtx, discoveryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get discovery: %w", err)
	}

	err = s.client.TaskDiscovery.UpdateOneID(discoveryID).
		SetResolutionStatus(taskdiscovery.ResolutionStatus(resolution)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to resolve discovery: %w", err)
	}

	sourceTask, err := s.client.Task.Get(writeCtx, discovery.SourceTaskID)
	if err != nil {
		return fmt.Errorf("failed to get source task: %w", err)
	}

	if err := s.publisher.PublishDiscoveryResolved(writeCtx, events.DiscoveryPayload{
		DiscoveryID:   discoveryID,
		SourceTaskID:  discovery.SourceTaskID,
		TicketID:      sourceTask.TicketID,
		DiscoveryType: discovery.DiscoveryType,
		Resolution:    resolution,
	}); err != nil {
		s.logger.Warn("Failed to publish discovery.resolved", "discovery_id", discoveryID, "error", err)
	}

	return nil
}

// Get retrieves a discovery by ID
func (s *DiscoveryService) Get(ctx context.Context, discoveryID string) (*ent.TaskDiscovery, error) {
	discovery, err := s.client.TaskDiscovery.Get(ctx, discoveryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get discovery: %w", err)
	}

	return discovery, nil
}

// ListBySourceTask retrieves all discoveries recorded on a task
func (s *DiscoveryService) ListBySourceTask(ctx context.Context, taskID string) ([]*ent.TaskDiscovery, error) {
	discoveries, err := s.client.TaskDiscovery.Query().
		Where(taskdiscovery.SourceTaskIDEQ(taskID)).
		Order(ent.Asc(taskdiscovery.FieldDiscoveredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list discoveries: %w", err)
	}

	return discoveries, nil
}

// ListOpen retrieves discoveries that have not been resolved yet
func (s *DiscoveryService) ListOpen(ctx context.Context) ([]*ent.TaskDiscovery, error) {
	discoveries, err := s.client.TaskDiscovery.Query().
		Where(taskdiscovery.ResolutionStatusIn(
			taskdiscovery.ResolutionStatusOpen,
			taskdiscovery.ResolutionStatusInProgress,
		)).
		Order(ent.Asc(taskdiscovery.FieldDiscoveredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open discoveries: %w", err)
	}

	return discoveries, nil
}
