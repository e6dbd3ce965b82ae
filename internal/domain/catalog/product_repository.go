package catalog

import (
	"context"

	"github.com/catalog/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID returns shared.ErrNotFound when no product has the id
	FindByID(ctx context.Context, id ProductID) (*Product, error)

	// FindBySku finds a product by its encoded SKU
	FindBySku(ctx context.Context, sku Sku) (*Product, error)

	// FindAll returns one page of products matching the filter.
	// Supported Filters keys: "status" (ProductStatus) and "category_id" (CategoryID).
	FindAll(ctx context.Context, filter shared.Filter) ([]*Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsBySku checks whether a SKU is already taken
	ExistsBySku(ctx context.Context, sku Sku) (bool, error)

	// Save creates or updates a product. Updates use the aggregate version for
	// optimistic locking and fail with shared.ErrConcurrencyConflict on mismatch.
	Save(ctx context.Context, product *Product) error

	// SaveWithEvents saves the product and writes events to the outbox in one transaction
	SaveWithEvents(ctx context.Context, product *Product, events ...shared.DomainEvent) error
}
