package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
	"github.com/samber/lo"
)

const (
	MinNameLength        = 3
	MinDescriptionLength = 10
)

// ValidateImage rejects a missing image or one already present in images
func ValidateImage(image Image, images []Image) error {
	if image.IsZero() {
		return shared.NewInvalidArgumentError("Image is required")
	}
	if lo.ContainsBy(images, image.Equals) {
		return shared.NewInvalidStateError("Image already exists in the product")
	}
	return nil
}

// ValidateSpecification rejects a missing specification or a duplicate
func ValidateSpecification(spec Specification, specs []Specification) error {
	if spec.IsZero() {
		return shared.NewInvalidArgumentError("Specification is required")
	}
	if lo.ContainsBy(specs, spec.Equals) {
		return shared.NewInvalidStateError("Specification already exists in the product")
	}
	return nil
}

// ValidateStatus checks a transition from current to target.
// The same-status check runs before the discontinued check.
func ValidateStatus(current, target ProductStatus) error {
	if current == target {
		return shared.NewInvalidStateError("Product is already " + strings.ToLower(string(target)))
	}
	if current == ProductStatusDiscontinued {
		return shared.NewInvalidStateError("Cannot modify a discontinued product")
	}
	return nil
}

// ValidatePrice checks that newPrice is present and keeps the current currency
func ValidatePrice(current, newPrice valueobject.Money) error {
	if newPrice.IsEmpty() {
		return shared.NewInvalidArgumentError("New price is required")
	}
	if !newPrice.SameCurrency(current) {
		return shared.NewInvalidArgumentError("New price must have the same currency as the old price")
	}
	return nil
}

// ValidateProductCreation checks the creation invariants in a fixed order and
// reports the first violation as INVALID_STATE
func ValidateProductCreation(
	sku Sku,
	name, description string,
	price valueobject.Money,
	status ProductStatus,
	categoryID CategoryID,
	createdAt time.Time,
) error {
	switch {
	case sku.IsZero():
		return shared.NewInvalidStateError("SKU is required")
	case isBlankOrShorter(name, MinNameLength):
		return shared.NewInvalidStateError("Name must have at least 3 characters")
	case isBlankOrShorter(description, MinDescriptionLength):
		return shared.NewInvalidStateError("Description must have at least 10 characters")
	case price.IsEmpty():
		return shared.NewInvalidStateError("Price is required")
	case status == "":
		return shared.NewInvalidStateError("Status is required")
	case categoryID.IsZero():
		return shared.NewInvalidStateError("CategoryId is required")
	case createdAt.IsZero():
		return shared.NewInvalidStateError("Created date is required")
	}
	return nil
}

func isBlankOrShorter(s string, minLen int) bool {
	return strings.TrimSpace(s) == "" || utf8.RuneCountInString(s) < minLen
}
