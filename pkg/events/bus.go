package events

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"
)

// Handler processes one event. The context carries the per-delivery
// deadline. The returned error is logged and otherwise ignored;
// at-least-once consumers own their retries.
type Handler func(ctx context.Context, event SystemEvent) error

// Subscription identifies a registered handler for Unsubscribe.
type Subscription struct {
	eventType string
	id        int64
}

type busHandler struct {
	id   int64
	name string
	fn   Handler
}

// busStripes is the number of entity FIFO stripes. Entities hashing to the
// same stripe serialize against each other; that only costs latency, never
// ordering.
const busStripes = 64

// Bus delivers events to subscribed handlers synchronously, in registration
// order. Dispatches for the same entity_id are serialized through a stripe
// lock, giving per-entity FIFO; there is no cross-entity ordering.
//
// A handler that exceeds the configured deadline is abandoned: its context
// is cancelled, dispatch moves on to the next handler, and a
// bus.handler_timeout event is published through the configured sink.
type Bus struct {
	mu       sync.Mutex
	handlers map[string][]busHandler
	nextID   int64

	stripes [busStripes]sync.Mutex

	handlerTimeout time.Duration

	// timeoutSink durably publishes bus.handler_timeout events. Set by the
	// Publisher at wiring time; nil means log-only.
	sinkMu      sync.RWMutex
	timeoutSink func(ctx context.Context, payload HandlerTimeoutPayload)
}

// NewBus creates a Bus with the given handler deadline.
func NewBus(handlerTimeout time.Duration) *Bus {
	return &Bus{
		handlers:       make(map[string][]busHandler),
		handlerTimeout: handlerTimeout,
	}
}

// SetTimeoutSink installs the publisher callback for bus.handler_timeout
// events. Called once during startup.
func (b *Bus) SetTimeoutSink(fn func(ctx context.Context, payload HandlerTimeoutPayload)) {
	b.sinkMu.Lock()
	defer b.sinkMu.Unlock()
	b.timeoutSink = fn
}

// Subscribe registers a handler for an event type. Handlers for the same
// type run in subscription order. The name is used in logs and timeout
// events.
func (b *Bus) Subscribe(eventType, name string, fn Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], busHandler{
		id:   b.nextID,
		name: name,
		fn:   fn,
	})
	return Subscription{eventType: eventType, id: b.nextID}
}

// Unsubscribe removes a previously registered handler. Safe to call with a
// handle that was already removed.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	hs := b.handlers[sub.eventType]
	for i, h := range hs {
		if h.id == sub.id {
			b.handlers[sub.eventType] = append(hs[:i:i], hs[i+1:]...)
			return
		}
	}
}

// Dispatch delivers an event to every handler subscribed to its type.
// Blocks until each handler returns or times out. Handler-timeout events
// are published after the entity stripe is released, so the sink (a
// storage write) never runs under an in-process lock.
func (b *Bus) Dispatch(ctx context.Context, event SystemEvent) {
	b.mu.Lock()
	hs := make([]busHandler, len(b.handlers[event.Type]))
	copy(hs, b.handlers[event.Type])
	b.mu.Unlock()

	if len(hs) == 0 {
		return
	}

	var timedOut []busHandler

	stripe := b.stripe(event.EntityID)
	stripe.Lock()
	for _, h := range hs {
		if !b.deliver(ctx, h, event) {
			timedOut = append(timedOut, h)
		}
	}
	stripe.Unlock()

	for _, h := range timedOut {
		b.reportTimeout(ctx, h, event)
	}
}

// deliver runs one handler under the deadline. Returns false if the
// handler was abandoned on timeout.
func (b *Bus) deliver(ctx context.Context, h busHandler, event SystemEvent) bool {
	hctx, cancel := context.WithTimeout(ctx, b.handlerTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- h.fn(hctx, event) }()

	select {
	case err := <-done:
		if err != nil {
			slog.Warn("Event handler failed",
				"handler", h.name,
				"event_type", event.Type,
				"entity_id", event.EntityID,
				"error", err)
		}
		return true
	case <-hctx.Done():
		if ctx.Err() != nil {
			// Parent context cancelled: shutdown, not a handler fault.
			return true
		}
		slog.Error("Event handler deadline elapsed, delivery abandoned",
			"handler", h.name,
			"event_type", event.Type,
			"entity_id", event.EntityID,
			"timeout", b.handlerTimeout)
		return false
	}
}

// reportTimeout publishes the bus.handler_timeout event for an abandoned
// handler. Timeouts while handling a handler-timeout event are only logged,
// breaking the recursion.
func (b *Bus) reportTimeout(ctx context.Context, h busHandler, event SystemEvent) {
	if event.Type == EventTypeBusHandlerTimeout {
		return
	}

	b.sinkMu.RLock()
	sink := b.timeoutSink
	b.sinkMu.RUnlock()
	if sink == nil {
		return
	}

	sink(ctx, HandlerTimeoutPayload{
		Handler:    h.name,
		EventType:  event.Type,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		DeadlineMS: b.handlerTimeout.Milliseconds(),
	})
}

func (b *Bus) stripe(entityID string) *sync.Mutex {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(entityID))
	return &b.stripes[hash.Sum32()%busStripes]
}
