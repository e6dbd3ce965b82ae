package catalog

import (
	"time"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
)

// ProductParams are the inputs for creating a product.
// ID is generated when nil and Status defaults to DRAFT when empty.
type ProductParams struct {
	ID             *ProductID
	Sku            Sku
	Name           string
	Description    string
	Price          valueobject.Money
	CategoryID     CategoryID
	Status         ProductStatus
	Images         []Image
	Specifications []Specification
}

// NewProduct is the only way to create a Product. Images and specifications
// are checked one at a time with the same rules as AddImage and
// AddSpecification, then the creation invariants are verified. Creation
// itself raises no event.
func NewProduct(params ProductParams) (*Product, error) {
	images := make([]Image, 0, len(params.Images))
	for _, image := range params.Images {
		if err := ValidateImage(image, images); err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	specs := make([]Specification, 0, len(params.Specifications))
	for _, spec := range params.Specifications {
		if err := ValidateSpecification(spec, specs); err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	id := NewProductID()
	if params.ID != nil && !params.ID.IsZero() {
		id = *params.ID
	}
	status := params.Status
	if status == "" {
		status = ProductStatusDraft
	}
	if !status.IsValid() {
		return nil, shared.NewInvalidArgumentError("Status is invalid: " + string(status))
	}
	createdAt := time.Now()

	if err := ValidateProductCreation(params.Sku, params.Name, params.Description, params.Price, status, params.CategoryID, createdAt); err != nil {
		return nil, err
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		id:                id,
		sku:               params.Sku,
		name:              params.Name,
		description:       params.Description,
		categoryID:        params.CategoryID,
		price:             params.Price,
		status:            status,
		images:            images,
		specifications:    specs,
		createdAt:         createdAt,
	}, nil
}
