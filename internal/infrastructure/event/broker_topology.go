package event

import (
	"fmt"

	"github.com/catalog/backend/internal/domain/catalog"
)

// DefaultExchange is the broker namespace product events are published under
const DefaultExchange = "product-exchange"

// Routing keys for product events
const (
	RoutingKeyProductActivated    = "product.activated"
	RoutingKeyProductDeactivated  = "product.deactivated"
	RoutingKeyProductDiscontinued = "product.discontinued"
	RoutingKeyProductPriceChanged = "product.price-changed"
)

// Binding ties an event type to its routing key and the queue that consumes it.
// On Redis the queue is a consumer group on the routing key's stream.
type Binding struct {
	EventType  string
	RoutingKey string
	Queue      string
}

// ProductBindings lists the product queues in the order they are declared
var ProductBindings = []Binding{
	{catalog.EventTypeProductActivated, RoutingKeyProductActivated, "product-activated-queue"},
	{catalog.EventTypeProductDeactivated, RoutingKeyProductDeactivated, "product-deactivated-queue"},
	{catalog.EventTypeProductDiscontinued, RoutingKeyProductDiscontinued, "product-discontinued-queue"},
	{catalog.EventTypeProductPriceChanged, RoutingKeyProductPriceChanged, "product-price-changed-queue"},
}

// RoutingKeyFor returns the routing key of a product event type
func RoutingKeyFor(eventType string) (string, error) {
	for _, b := range ProductBindings {
		if b.EventType == eventType {
			return b.RoutingKey, nil
		}
	}
	return "", fmt.Errorf("no routing key for event type %s", eventType)
}

// StreamName is the Redis stream a routing key maps to within exchange
func StreamName(exchange, routingKey string) string {
	return exchange + ":" + routingKey
}
