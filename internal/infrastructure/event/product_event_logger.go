package event

import (
	"context"
	"fmt"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ProductEventLogger is the consumer-side handler for product events. It
// records each consumed event in the log.
type ProductEventLogger struct {
	logger *zap.Logger
}

// NewProductEventLogger creates a new ProductEventLogger
func NewProductEventLogger(l *zap.Logger) *ProductEventLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ProductEventLogger{logger: l}
}

// EventTypes returns the product event types
func (h *ProductEventLogger) EventTypes() []string {
	return catalog.ProductEventTypes
}

// Handle logs the event. Unknown types are an error so they stay unacknowledged.
func (h *ProductEventLogger) Handle(ctx context.Context, event shared.DomainEvent) error {
	log := h.logger.With(
		zap.String("event_id", event.EventID().String()),
		zap.String("event_type", event.EventType()),
	)
	log = log.With(logger.TraceFields(ctx)...)

	switch e := event.(type) {
	case *catalog.ProductActivatedEvent:
		log.Info("consuming ProductActivatedEvent")
		log.Info("product activated", zap.String("product_id", e.ProductID.String()))
	case *catalog.ProductDeactivatedEvent:
		log.Info("consuming ProductDeactivatedEvent")
		log.Info("product deactivated", zap.String("product_id", e.ProductID.String()))
	case *catalog.ProductDiscontinuedEvent:
		log.Info("consuming ProductDiscontinuedEvent")
		log.Info("product discontinued", zap.String("product_id", e.ProductID.String()))
	case *catalog.ProductPriceChangedEvent:
		log.Info("consuming ProductPriceChangedEvent")
		log.Info("product price changed",
			zap.String("product_id", e.ProductID.String()),
			zap.String("old_price", e.OldPrice.String()),
			zap.String("new_price", e.NewPrice.String()),
		)
	default:
		return fmt.Errorf("product event logger cannot handle %T", event)
	}
	return nil
}

var _ shared.EventHandler = (*ProductEventLogger)(nil)
