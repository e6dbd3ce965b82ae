package event

import (
	"testing"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestHandlerRegistry_Register(t *testing.T) {
	t.Run("specific types", func(t *testing.T) {
		registry := NewHandlerRegistry()
		handler := newRecordingHandler()
		registry.Register(handler, catalog.EventTypeProductActivated, catalog.EventTypeProductDeactivated)

		assert.Equal(t, []shared.EventHandler{handler}, registry.GetHandlers(catalog.EventTypeProductActivated))
		assert.Equal(t, []shared.EventHandler{handler}, registry.GetHandlers(catalog.EventTypeProductDeactivated))
		assert.Empty(t, registry.GetHandlers(catalog.EventTypeProductPriceChanged))
	})

	t.Run("repeated type registers once", func(t *testing.T) {
		registry := NewHandlerRegistry()
		handler := newRecordingHandler()
		registry.Register(handler, catalog.EventTypeProductActivated, catalog.EventTypeProductActivated)

		assert.Len(t, registry.GetHandlers(catalog.EventTypeProductActivated), 1)
	})

	t.Run("wildcard runs after typed handlers", func(t *testing.T) {
		registry := NewHandlerRegistry()
		typed := newRecordingHandler()
		wildcard := newRecordingHandler()
		registry.Register(wildcard)
		registry.Register(typed, catalog.EventTypeProductActivated)

		handlers := registry.GetHandlers(catalog.EventTypeProductActivated)
		assert.Equal(t, []shared.EventHandler{typed, wildcard}, handlers)
		assert.Equal(t, []shared.EventHandler{wildcard}, registry.GetHandlers(catalog.EventTypeProductPriceChanged))
	})
}

func TestHandlerRegistry_Unregister(t *testing.T) {
	registry := NewHandlerRegistry()
	first := newRecordingHandler()
	second := newRecordingHandler()
	registry.Register(first, catalog.EventTypeProductActivated)
	registry.Register(second, catalog.EventTypeProductActivated)
	registry.Register(first)

	registry.Unregister(first)

	assert.Equal(t, []shared.EventHandler{second}, registry.GetHandlers(catalog.EventTypeProductActivated))
	assert.Empty(t, registry.GetHandlers(catalog.EventTypeProductDiscontinued))
}

func TestHandlerRegistry_GetAllHandlers(t *testing.T) {
	registry := NewHandlerRegistry()
	shared1 := newRecordingHandler()
	other := newRecordingHandler()
	registry.Register(shared1, catalog.ProductEventTypes...)
	registry.Register(shared1)
	registry.Register(other, catalog.EventTypeProductPriceChanged)

	all := registry.GetAllHandlers()
	assert.Len(t, all, 2)
	assert.Contains(t, all, shared.EventHandler(shared1))
	assert.Contains(t, all, shared.EventHandler(other))
}
