package event

import (
	"context"
	"errors"
	"testing"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInMemoryEventBus_Publish(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	activated := newRecordingHandler(catalog.EventTypeProductActivated)
	everything := newRecordingHandler()
	bus.Subscribe(activated)
	bus.Subscribe(everything)

	first := activatedEvent()
	second := discontinuedEvent()
	require.NoError(t, bus.Publish(context.Background(), first, second))

	assert.Equal(t, []shared.DomainEvent{first}, activated.received())
	assert.Equal(t, []shared.DomainEvent{first, second}, everything.received())
}

func TestInMemoryEventBus_SubscribeExplicitTypes(t *testing.T) {
	bus := NewInMemoryEventBus(nil)
	handler := newRecordingHandler(catalog.EventTypeProductActivated)
	bus.Subscribe(handler, catalog.EventTypeProductDiscontinued)

	require.NoError(t, bus.Publish(context.Background(), activatedEvent(), discontinuedEvent()))

	received := handler.received()
	require.Len(t, received, 1)
	assert.Equal(t, catalog.EventTypeProductDiscontinued, received[0].EventType())
}

func TestInMemoryEventBus_HandlerErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	bus := NewInMemoryEventBus(zap.New(core))

	failing := newRecordingHandler(catalog.EventTypeProductActivated)
	failing.setError(errors.New("broker unavailable"))
	healthy := newRecordingHandler(catalog.EventTypeProductActivated)
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), activatedEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
	assert.Len(t, failing.received(), 1)
	assert.Len(t, healthy.received(), 1)
	assert.Equal(t, 1, logs.FilterMessage("handler failed to process event").Len())
}

func TestInMemoryEventBus_HandlerPanic(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	panicking := newRecordingHandler(catalog.EventTypeProductActivated)
	panicking.panicWith = "boom"
	healthy := newRecordingHandler(catalog.EventTypeProductActivated)
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	err := bus.Publish(context.Background(), activatedEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
	assert.Len(t, healthy.received(), 1)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := newRecordingHandler(catalog.EventTypeProductActivated)
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), activatedEvent()))
	bus.Unsubscribe(handler)
	require.NoError(t, bus.Publish(context.Background(), activatedEvent()))

	assert.Len(t, handler.received(), 1)
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	ctx := context.Background()

	assert.False(t, bus.IsRunning())
	require.NoError(t, bus.Start(ctx))
	assert.True(t, bus.IsRunning())
	require.NoError(t, bus.Stop(ctx))
	assert.False(t, bus.IsRunning())
}
