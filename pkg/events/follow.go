package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// followSubscribeTimeout bounds the LISTEN round-trip for a ticket channel
// picked up from a ticket.created event.
const followSubscribeTimeout = 10 * time.Second

// ChannelSubscriber is the slice of the NOTIFY listener the channel
// follower drives.
type ChannelSubscriber interface {
	Subscribe(ctx context.Context, channel string) error
}

// FollowTicketChannels points the NOTIFY listener at every channel the
// kernel publishes on: the kernel channel immediately, the channels of
// the given existing tickets, and the channel of each ticket created
// afterwards anywhere in the cluster. New tickets are announced by
// ticket.created on the kernel channel, so a replica LISTENs on a
// ticket's channel before its first task event can fire.
func FollowTicketChannels(ctx context.Context, listener ChannelSubscriber, bus *Bus, ticketIDs []string) error {
	if err := listener.Subscribe(ctx, KernelChannel); err != nil {
		return fmt.Errorf("failed to LISTEN on kernel channel: %w", err)
	}
	for _, id := range ticketIDs {
		if err := listener.Subscribe(ctx, TicketChannel(id)); err != nil {
			return fmt.Errorf("failed to LISTEN on ticket channel %q: %w", id, err)
		}
	}

	bus.Subscribe(EventTypeTicketCreated, "ticket-channel-follower", func(_ context.Context, event SystemEvent) error {
		if event.EntityID == "" {
			return nil
		}
		// Subscribe round-trips through the listener's receive loop. When
		// the announcement itself arrived over NOTIFY that loop is the one
		// dispatching this handler, so the LISTEN must not be awaited here.
		go func() {
			subCtx, cancel := context.WithTimeout(context.Background(), followSubscribeTimeout)
			defer cancel()
			if err := listener.Subscribe(subCtx, TicketChannel(event.EntityID)); err != nil {
				slog.Warn("Failed to LISTEN on ticket channel",
					"ticket_id", event.EntityID, "error", err)
			}
		}()
		return nil
	})
	return nil
}
