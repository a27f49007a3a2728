package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/resourcelock"
	"github.com/droverhq/drover/pkg/models"
)

// LockService manages named advisory resource locks. At most one unreleased
// lock may exist per name; the database enforces this with a partial unique
// index, so concurrent acquirers race on the insert rather than on a check.
type LockService struct {
	client *ent.Client
}

// NewLockService creates a new LockService
func NewLockService(client *ent.Client) *LockService {
	return &LockService{client: client}
}

// Acquire takes the named lock for an agent. Returns ErrLockHeld when the
// name already has an unreleased holder.
func (s *LockService) Acquire(httpCtx context.Context, req models.AcquireLockRequest) (*ent.ResourceLock, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.OwnerAgentID == "" {
		return nil, NewValidationError("owner_agent_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	builder := s.client.ResourceLock.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetOwnerAgentID(req.OwnerAgentID)

	if len(req.Metadata) > 0 {
		builder.SetMetadata(req.Metadata)
	}

	lock, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrLockHeld
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	return lock, nil
}

// Release frees the named lock. Only the holding agent may release it.
func (s *LockService) Release(ctx context.Context, name, ownerAgentID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	lock, err := s.client.ResourceLock.Query().
		Where(
			resourcelock.NameEQ(name),
			resourcelock.ReleasedAtIsNil(),
		).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to find active lock: %w", err)
	}

	if lock.OwnerAgentID != ownerAgentID {
		return NewPermissionError(ownerAgentID, "release lock '"+name+"'",
			"held by agent '"+lock.OwnerAgentID+"'")
	}

	err = s.client.ResourceLock.UpdateOneID(lock.ID).
		SetReleasedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	return nil
}

// GetActive retrieves the unreleased lock with the given name, if any
func (s *LockService) GetActive(ctx context.Context, name string) (*ent.ResourceLock, error) {
	lock, err := s.client.ResourceLock.Query().
		Where(
			resourcelock.NameEQ(name),
			resourcelock.ReleasedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active lock: %w", err)
	}

	return lock, nil
}

// List retrieves locks, optionally restricted to unreleased ones
func (s *LockService) List(ctx context.Context, activeOnly bool) ([]*ent.ResourceLock, error) {
	query := s.client.ResourceLock.Query()

	if activeOnly {
		query = query.Where(resourcelock.ReleasedAtIsNil())
	}

	locks, err := query.Order(ent.Asc(resourcelock.FieldAcquiredAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locks: %w", err)
	}

	return locks, nil
}

// ReleaseAllForAgent frees every lock held by an agent. Used when an agent
// is torn down so its locks do not outlive it.
func (s *LockService) ReleaseAllForAgent(ctx context.Context, ownerAgentID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := s.client.ResourceLock.Update().
		Where(
			resourcelock.OwnerAgentIDEQ(ownerAgentID),
			resourcelock.ReleasedAtIsNil(),
		).
		SetReleasedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to release agent locks: %w", err)
	}

	return count, nil
}
