package catalog

import (
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductID identifies a product. Equality is by value.
type ProductID struct {
	value uuid.UUID
}

// NewProductID generates a random product ID
func NewProductID() ProductID {
	return ProductID{value: uuid.New()}
}

// ProductIDFrom wraps an existing UUID
func ProductIDFrom(id uuid.UUID) (ProductID, error) {
	if id == uuid.Nil {
		return ProductID{}, shared.NewInvalidArgumentError("Product ID cannot be null")
	}
	return ProductID{value: id}, nil
}

// ParseProductID parses the canonical string form of a product ID
func ParseProductID(s string) (ProductID, error) {
	if s == "" {
		return ProductID{}, shared.NewInvalidArgumentError("Product ID cannot be null")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return ProductID{}, shared.NewInvalidArgumentError("Product ID is invalid: " + s)
	}
	return ProductIDFrom(id)
}

func (id ProductID) UUID() uuid.UUID { return id.value }

func (id ProductID) String() string { return id.value.String() }

// IsZero reports whether the ID was never assigned
func (id ProductID) IsZero() bool { return id.value == uuid.Nil }

// CategoryID references a category owned by another bounded context.
// No existence check is performed here.
type CategoryID struct {
	value uuid.UUID
}

// CategoryIDFrom wraps an existing UUID
func CategoryIDFrom(id uuid.UUID) (CategoryID, error) {
	if id == uuid.Nil {
		return CategoryID{}, shared.NewInvalidArgumentError("Category ID is required")
	}
	return CategoryID{value: id}, nil
}

// ParseCategoryID parses the canonical string form of a category ID
func ParseCategoryID(s string) (CategoryID, error) {
	if s == "" {
		return CategoryID{}, shared.NewInvalidArgumentError("Category ID is required")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return CategoryID{}, shared.NewInvalidArgumentError("Category ID is invalid: " + s)
	}
	return CategoryIDFrom(id)
}

func (id CategoryID) UUID() uuid.UUID { return id.value }

func (id CategoryID) String() string { return id.value.String() }

func (id CategoryID) IsZero() bool { return id.value == uuid.Nil }
