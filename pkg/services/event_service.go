package services

import (
	"context"
	"fmt"
	"time"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/event"
)

// EventService provides read and retention access to the durable event log.
// Writes go through the events publisher, which pairs the row insert with
// the pg_notify announcing it.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves events on a channel with id greater than sinceID,
// in insertion order. limit 0 means no limit.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID, limit int) ([]*ent.Event, error) {
	query := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID))

	if limit > 0 {
		query = query.Limit(limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

// LatestEventAt returns when the most recent event on a channel was
// recorded, or nil when the channel has none. The diagnostic stuck
// predicate uses this as the ticket's last-activity timestamp.
func (s *EventService) LatestEventAt(ctx context.Context, channel string) (*time.Time, error) {
	latest, err := s.client.Event.Query().
		Where(event.ChannelEQ(channel)).
		Order(ent.Desc(event.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest event: %w", err)
	}

	at := latest.CreatedAt
	return &at, nil
}

// CleanupEventsOlderThan removes events recorded before cutoff and
// returns how many were deleted.
func (s *EventService) CleanupEventsOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup events: %w", err)
	}

	return count, nil
}
