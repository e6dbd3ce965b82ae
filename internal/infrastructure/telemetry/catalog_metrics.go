package telemetry

import (
	"context"
	"fmt"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys shared by the catalog instruments
var (
	AttrFromStatus = attribute.Key("from_status")
	AttrToStatus   = attribute.Key("to_status")
	AttrCurrency   = attribute.Key("currency")
	AttrEventType  = attribute.Key("event_type")
	AttrStatus     = attribute.Key("status")
)

// CatalogMetrics records product lifecycle and outbox relay counts
type CatalogMetrics struct {
	productsCreated metric.Int64Counter
	statusChanges   metric.Int64Counter
	priceChanges    metric.Int64Counter
	outboxRelayed   metric.Int64Counter
}

// NewCatalogMetrics creates the catalog instruments on meter
func NewCatalogMetrics(meter metric.Meter) (*CatalogMetrics, error) {
	m := &CatalogMetrics{}
	var err error

	if m.productsCreated, err = meter.Int64Counter(
		"catalog.products.created",
		metric.WithDescription("Products created"),
		metric.WithUnit("{product}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create counter catalog.products.created: %w", err)
	}
	if m.statusChanges, err = meter.Int64Counter(
		"catalog.products.status_changes",
		metric.WithDescription("Product status transitions"),
		metric.WithUnit("{transition}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create counter catalog.products.status_changes: %w", err)
	}
	if m.priceChanges, err = meter.Int64Counter(
		"catalog.products.price_changes",
		metric.WithDescription("Product price updates"),
		metric.WithUnit("{change}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create counter catalog.products.price_changes: %w", err)
	}
	if m.outboxRelayed, err = meter.Int64Counter(
		"catalog.outbox.relayed",
		metric.WithDescription("Outbox entries relayed, by resulting status"),
		metric.WithUnit("{entry}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create counter catalog.outbox.relayed: %w", err)
	}
	return m, nil
}

// RecordProductCreated counts one new product
func (m *CatalogMetrics) RecordProductCreated(ctx context.Context) {
	m.productsCreated.Add(ctx, 1)
}

// RecordStatusChange counts one status transition
func (m *CatalogMetrics) RecordStatusChange(ctx context.Context, from, to catalog.ProductStatus) {
	m.statusChanges.Add(ctx, 1, metric.WithAttributes(
		AttrFromStatus.String(from.String()),
		AttrToStatus.String(to.String()),
	))
}

// RecordPriceChange counts one price update
func (m *CatalogMetrics) RecordPriceChange(ctx context.Context, currency string) {
	m.priceChanges.Add(ctx, 1, metric.WithAttributes(AttrCurrency.String(currency)))
}

// RecordRelay counts one outbox relay attempt by its resulting status
func (m *CatalogMetrics) RecordRelay(ctx context.Context, eventType string, status shared.OutboxStatus) {
	m.outboxRelayed.Add(ctx, 1, metric.WithAttributes(
		AttrEventType.String(eventType),
		AttrStatus.String(string(status)),
	))
}
