package events

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DispatchInRegistrationOrder(t *testing.T) {
	bus := NewBus(time.Second)

	var order []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		bus.Subscribe(EventTypeTaskEnqueued, name, func(ctx context.Context, event SystemEvent) error {
			order = append(order, name)
			return nil
		})
	}

	bus.Dispatch(context.Background(), SystemEvent{
		Type:       EventTypeTaskEnqueued,
		EntityType: EntityTypeTask,
		EntityID:   "task-1",
	})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBus_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := NewBus(time.Second)

	var secondRan bool
	bus.Subscribe(EventTypeTaskFailed, "broken", func(ctx context.Context, event SystemEvent) error {
		return errors.New("boom")
	})
	bus.Subscribe(EventTypeTaskFailed, "after", func(ctx context.Context, event SystemEvent) error {
		secondRan = true
		return nil
	})

	bus.Dispatch(context.Background(), SystemEvent{Type: EventTypeTaskFailed, EntityID: "task-1"})
	assert.True(t, secondRan)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(time.Second)

	calls := 0
	sub := bus.Subscribe(EventTypeTaskEnqueued, "once", func(ctx context.Context, event SystemEvent) error {
		calls++
		return nil
	})

	bus.Dispatch(context.Background(), SystemEvent{Type: EventTypeTaskEnqueued, EntityID: "t"})
	bus.Unsubscribe(sub)
	bus.Dispatch(context.Background(), SystemEvent{Type: EventTypeTaskEnqueued, EntityID: "t"})
	// Double unsubscribe is a no-op.
	bus.Unsubscribe(sub)

	assert.Equal(t, 1, calls)
}

func TestBus_SameEntityDeliveriesSerialized(t *testing.T) {
	bus := NewBus(time.Second)

	var active, maxActive int32
	bus.Subscribe(EventTypeTaskStatusChanged, "probe", func(ctx context.Context, event SystemEvent) error {
		cur := atomic.AddInt32(&active, 1)
		for {
			old := atomic.LoadInt32(&maxActive)
			if cur <= old || atomic.CompareAndSwapInt32(&maxActive, old, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&active, -1)
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Dispatch(context.Background(), SystemEvent{
				Type:     EventTypeTaskStatusChanged,
				EntityID: "task-contended",
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive),
		"deliveries for one entity must never overlap")
}

func TestBus_HandlerTimeoutAbandonsDelivery(t *testing.T) {
	bus := NewBus(20 * time.Millisecond)

	var timeouts []HandlerTimeoutPayload
	bus.SetTimeoutSink(func(ctx context.Context, payload HandlerTimeoutPayload) {
		timeouts = append(timeouts, payload)
	})

	release := make(chan struct{})
	defer close(release)
	bus.Subscribe(EventTypeTaskFailed, "slow", func(ctx context.Context, event SystemEvent) error {
		<-release
		return nil
	})
	var fastRan bool
	bus.Subscribe(EventTypeTaskFailed, "fast", func(ctx context.Context, event SystemEvent) error {
		fastRan = true
		return nil
	})

	bus.Dispatch(context.Background(), SystemEvent{
		Type:       EventTypeTaskFailed,
		EntityType: EntityTypeTask,
		EntityID:   "task-9",
	})

	assert.True(t, fastRan, "delivery must continue past an abandoned handler")
	require.Len(t, timeouts, 1)
	assert.Equal(t, "slow", timeouts[0].Handler)
	assert.Equal(t, EventTypeTaskFailed, timeouts[0].EventType)
	assert.Equal(t, "task-9", timeouts[0].EntityID)
	assert.Equal(t, int64(20), timeouts[0].DeadlineMS)
}

func TestBus_NoTimeoutRecursion(t *testing.T) {
	bus := NewBus(10 * time.Millisecond)

	sinkCalls := 0
	bus.SetTimeoutSink(func(ctx context.Context, payload HandlerTimeoutPayload) {
		sinkCalls++
	})

	release := make(chan struct{})
	defer close(release)
	bus.Subscribe(EventTypeBusHandlerTimeout, "alerting", func(ctx context.Context, event SystemEvent) error {
		<-release
		return nil
	})

	bus.Dispatch(context.Background(), SystemEvent{
		Type:       EventTypeBusHandlerTimeout,
		EntityType: EntityTypeBus,
		EntityID:   "alerting",
	})

	assert.Zero(t, sinkCalls, "a timed-out handler-timeout handler must not publish another timeout")
}

func TestBus_ParentCancellationIsNotATimeout(t *testing.T) {
	bus := NewBus(time.Second)

	sinkCalls := 0
	bus.SetTimeoutSink(func(ctx context.Context, payload HandlerTimeoutPayload) {
		sinkCalls++
	})

	ctx, cancel := context.WithCancel(context.Background())
	bus.Subscribe(EventTypeTaskCompleted, "ctx-aware", func(hctx context.Context, event SystemEvent) error {
		cancel()
		<-hctx.Done()
		return hctx.Err()
	})

	bus.Dispatch(ctx, SystemEvent{Type: EventTypeTaskCompleted, EntityID: "task-1"})
	assert.Zero(t, sinkCalls, "shutdown cancellation must not count as a handler timeout")
}

func TestBus_DispatchWithNoHandlers(t *testing.T) {
	bus := NewBus(time.Second)
	// Must not panic or block.
	bus.Dispatch(context.Background(), SystemEvent{Type: "unknown.event", EntityID: "x"})
}
