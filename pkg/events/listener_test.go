package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyListener_SubscribeBeforeStart(t *testing.T) {
	l := NewNotifyListener("postgres://unused", NewBus(time.Second), "")

	err := l.Subscribe(context.Background(), KernelChannel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not established")
}

func TestNotifyListener_DispatchFiltersOrigin(t *testing.T) {
	bus := NewBus(time.Second)
	var got []SystemEvent
	bus.Subscribe(EventTypeTaskCompleted, "recorder", func(ctx context.Context, event SystemEvent) error {
		got = append(got, event)
		return nil
	})

	l := NewNotifyListener("postgres://unused", bus, "local-origin")

	// Own notification dropped, foreign one dispatched, junk logged and dropped.
	l.dispatch(context.Background(), "ticket:T-1",
		[]byte(`{"type":"task.completed","entity_type":"task","entity_id":"a","origin":"local-origin"}`))
	l.dispatch(context.Background(), "ticket:T-1",
		[]byte(`{"type":"task.completed","entity_type":"task","entity_id":"b","origin":"remote-origin"}`))
	l.dispatch(context.Background(), "ticket:T-1", []byte(`{not json`))

	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].EntityID)
}
