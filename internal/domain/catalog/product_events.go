package catalog

import (
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeProduct = "Product"

// Event type constants
const (
	EventTypeProductActivated    = "ProductActivated"
	EventTypeProductDeactivated  = "ProductDeactivated"
	EventTypeProductDiscontinued = "ProductDiscontinued"
	EventTypeProductPriceChanged = "ProductPriceChanged"
)

// ProductEventTypes lists every event type the Product aggregate raises
var ProductEventTypes = []string{
	EventTypeProductActivated,
	EventTypeProductDeactivated,
	EventTypeProductDiscontinued,
	EventTypeProductPriceChanged,
}

// ProductActivatedEvent is raised when a product becomes ACTIVE
type ProductActivatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
}

// NewProductActivatedEvent creates a new ProductActivatedEvent
func NewProductActivatedEvent(id ProductID) *ProductActivatedEvent {
	return &ProductActivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductActivated, AggregateTypeProduct, id.UUID()),
		ProductID:       id.UUID(),
	}
}

// ProductDeactivatedEvent is raised when a product becomes INACTIVE
type ProductDeactivatedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
}

// NewProductDeactivatedEvent creates a new ProductDeactivatedEvent
func NewProductDeactivatedEvent(id ProductID) *ProductDeactivatedEvent {
	return &ProductDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDeactivated, AggregateTypeProduct, id.UUID()),
		ProductID:       id.UUID(),
	}
}

// ProductDiscontinuedEvent is raised when a product is discontinued
type ProductDiscontinuedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
}

// NewProductDiscontinuedEvent creates a new ProductDiscontinuedEvent
func NewProductDiscontinuedEvent(id ProductID) *ProductDiscontinuedEvent {
	return &ProductDiscontinuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductDiscontinued, AggregateTypeProduct, id.UUID()),
		ProductID:       id.UUID(),
	}
}

// ProductPriceChangedEvent is raised when a product's price is replaced
type ProductPriceChangedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID         `json:"product_id"`
	OldPrice  valueobject.Money `json:"old_price"`
	NewPrice  valueobject.Money `json:"new_price"`
}

// NewProductPriceChangedEvent creates a new ProductPriceChangedEvent
func NewProductPriceChangedEvent(id ProductID, oldPrice, newPrice valueobject.Money) *ProductPriceChangedEvent {
	return &ProductPriceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductPriceChanged, AggregateTypeProduct, id.UUID()),
		ProductID:       id.UUID(),
		OldPrice:        oldPrice,
		NewPrice:        newPrice,
	}
}
