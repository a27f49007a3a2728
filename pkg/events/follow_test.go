package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriber struct {
	mu       sync.Mutex
	channels []string
	err      error
}

func (f *fakeSubscriber) Subscribe(_ context.Context, channel string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.channels = append(f.channels, channel)
	return nil
}

func (f *fakeSubscriber) subscribed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.channels...)
}

func TestFollowTicketChannels_SubscribesKernelAndExistingTickets(t *testing.T) {
	bus := NewBus(time.Second)
	sub := &fakeSubscriber{}

	err := FollowTicketChannels(context.Background(), sub, bus, []string{"T-1", "T-2"})
	require.NoError(t, err)
	assert.Equal(t, []string{KernelChannel, "ticket:T-1", "ticket:T-2"}, sub.subscribed())
}

func TestFollowTicketChannels_FollowsCreatedTickets(t *testing.T) {
	bus := NewBus(time.Second)
	sub := &fakeSubscriber{}
	require.NoError(t, FollowTicketChannels(context.Background(), sub, bus, nil))

	// A ticket.created announcement, local or from a NOTIFY round-trip,
	// registers a LISTEN for the new ticket's channel. The registration is
	// detached from the dispatch, so poll for it.
	bus.Dispatch(context.Background(), SystemEvent{
		Type:       EventTypeTicketCreated,
		EntityType: EntityTypeTicket,
		EntityID:   "T-new",
		Origin:     "remote-origin",
	})

	assert.Eventually(t, func() bool {
		for _, ch := range sub.subscribed() {
			if ch == "ticket:T-new" {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
}

func TestFollowTicketChannels_KernelSubscribeFailureIsFatal(t *testing.T) {
	bus := NewBus(time.Second)
	sub := &fakeSubscriber{err: errors.New("no connection")}

	err := FollowTicketChannels(context.Background(), sub, bus, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kernel channel")
}
