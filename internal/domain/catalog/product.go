package catalog

import (
	"strings"
	"time"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
)

// ProductStatus represents the lifecycle status of a product.
//
//	DRAFT -> ACTIVE <-> INACTIVE, any non-terminal status -> DISCONTINUED
//
// OUT_OF_STOCK is reserved: no operation transitions into it yet.
type ProductStatus string

const (
	ProductStatusDraft        ProductStatus = "DRAFT"
	ProductStatusActive       ProductStatus = "ACTIVE"
	ProductStatusInactive     ProductStatus = "INACTIVE"
	ProductStatusDiscontinued ProductStatus = "DISCONTINUED"
	ProductStatusOutOfStock   ProductStatus = "OUT_OF_STOCK"
)

// AllProductStatuses lists every status in declaration order
var AllProductStatuses = []ProductStatus{
	ProductStatusDraft,
	ProductStatusActive,
	ProductStatusInactive,
	ProductStatusDiscontinued,
	ProductStatusOutOfStock,
}

// ParseProductStatus accepts a status name in any letter case
func ParseProductStatus(s string) (ProductStatus, error) {
	status := ProductStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", shared.NewInvalidArgumentError("Status is invalid: " + s)
	}
	return status, nil
}

// IsValid returns true if s is a known status
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusActive, ProductStatusInactive,
		ProductStatusDiscontinued, ProductStatusOutOfStock:
		return true
	}
	return false
}

// IsTerminal returns true for statuses no transition may leave
func (s ProductStatus) IsTerminal() bool {
	return s == ProductStatusDiscontinued
}

func (s ProductStatus) String() string {
	return string(s)
}

// Product is the catalog aggregate root. Identity is the ProductID; all
// attributes are owned by value and change only through the methods below.
// A Product is not safe for concurrent use.
type Product struct {
	shared.BaseAggregateRoot
	id             ProductID
	sku            Sku
	name           string
	description    string
	categoryID     CategoryID
	price          valueobject.Money
	status         ProductStatus
	images         []Image
	specifications []Specification
	createdAt      time.Time
	updatedAt      *time.Time
}

// Activate moves the product to ACTIVE
func (p *Product) Activate() ([]shared.DomainEvent, error) {
	return p.transition(ProductStatusActive, func() shared.DomainEvent {
		return NewProductActivatedEvent(p.id)
	})
}

// Deactivate moves the product to INACTIVE
func (p *Product) Deactivate() ([]shared.DomainEvent, error) {
	return p.transition(ProductStatusInactive, func() shared.DomainEvent {
		return NewProductDeactivatedEvent(p.id)
	})
}

// Discontinue moves the product to the terminal DISCONTINUED status
func (p *Product) Discontinue() ([]shared.DomainEvent, error) {
	return p.transition(ProductStatusDiscontinued, func() shared.DomainEvent {
		return NewProductDiscontinuedEvent(p.id)
	})
}

func (p *Product) transition(target ProductStatus, event func() shared.DomainEvent) ([]shared.DomainEvent, error) {
	if err := ValidateStatus(p.status, target); err != nil {
		return nil, err
	}
	p.status = target
	p.touch()
	return p.raise(event()), nil
}

// UpdatePrice replaces the price. The status is not checked, so a
// discontinued product still accepts price changes.
func (p *Product) UpdatePrice(newPrice valueobject.Money) ([]shared.DomainEvent, error) {
	if err := ValidatePrice(p.price, newPrice); err != nil {
		return nil, err
	}
	oldPrice := p.price
	price, err := p.price.Replace(newPrice)
	if err != nil {
		return nil, err
	}
	p.price = price
	p.touch()
	return p.raise(NewProductPriceChangedEvent(p.id, oldPrice, price)), nil
}

// AddImage appends an image. No event is raised.
func (p *Product) AddImage(image Image) ([]shared.DomainEvent, error) {
	if err := ValidateImage(image, p.images); err != nil {
		return nil, err
	}
	p.images = append(p.images, image)
	p.touch()
	return []shared.DomainEvent{}, nil
}

// AddSpecification appends a specification. No event is raised.
func (p *Product) AddSpecification(spec Specification) ([]shared.DomainEvent, error) {
	if err := ValidateSpecification(spec, p.specifications); err != nil {
		return nil, err
	}
	p.specifications = append(p.specifications, spec)
	p.touch()
	return []shared.DomainEvent{}, nil
}

func (p *Product) touch() {
	now := time.Now()
	p.updatedAt = &now
}

func (p *Product) raise(event shared.DomainEvent) []shared.DomainEvent {
	p.AddDomainEvent(event)
	return []shared.DomainEvent{event}
}

func (p *Product) ID() ProductID {
	return p.id
}

func (p *Product) Sku() Sku {
	return p.sku
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) CategoryID() CategoryID {
	return p.categoryID
}

func (p *Product) Price() valueobject.Money {
	return p.price
}

func (p *Product) Status() ProductStatus {
	return p.status
}

// Images returns a copy of the images in insertion order
func (p *Product) Images() []Image {
	return append([]Image(nil), p.images...)
}

// Specifications returns a copy of the specifications in insertion order
func (p *Product) Specifications() []Specification {
	return append([]Specification(nil), p.specifications...)
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns nil until the first successful mutation
func (p *Product) UpdatedAt() *time.Time {
	return p.updatedAt
}

// Equals compares products by identity only
func (p *Product) Equals(other *Product) bool {
	return other != nil && p.id == other.id
}

// ProductSnapshot carries persisted product state for rehydration
type ProductSnapshot struct {
	ID             ProductID
	Sku            Sku
	Name           string
	Description    string
	CategoryID     CategoryID
	Price          valueobject.Money
	Status         ProductStatus
	Images         []Image
	Specifications []Specification
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	Version        int
}

// RestoreProduct rebuilds a product loaded from storage. Creation rules are
// re-checked so corrupt rows surface as errors; no events are raised.
func RestoreProduct(s ProductSnapshot) (*Product, error) {
	if s.ID.IsZero() {
		return nil, shared.NewInvalidArgumentError("Product ID cannot be null")
	}
	if err := ValidateProductCreation(s.Sku, s.Name, s.Description, s.Price, s.Status, s.CategoryID, s.CreatedAt); err != nil {
		return nil, err
	}
	if !s.Status.IsValid() {
		return nil, shared.NewInvalidArgumentError("Status is invalid: " + string(s.Status))
	}
	return &Product{
		BaseAggregateRoot: shared.RestoreBaseAggregateRoot(s.Version),
		id:                s.ID,
		sku:               s.Sku,
		name:              s.Name,
		description:       s.Description,
		categoryID:        s.CategoryID,
		price:             s.Price,
		status:            s.Status,
		images:            append([]Image(nil), s.Images...),
		specifications:    append([]Specification(nil), s.Specifications...),
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
	}, nil
}
