package catalog

import (
	"regexp"

	"github.com/catalog/backend/internal/domain/shared"
)

// SkuLength is the length of an encoded SKU:
// brand(3) + product type(4) + size(2) + color(3) + unique id(3) + location(3)
const SkuLength = 18

// SkuPattern is the grammar every encoded SKU must match
const SkuPattern = `[A-Z]{3}[A-Z]{4}[A-Z]{2}[A-Z]{3}\d{3}\d{3}`

const (
	msgInvalidSku = "Invalid SKU"
	msgNullSku    = "Sku cannot be null"
)

var (
	skuRegexp    = regexp.MustCompile(`^` + SkuPattern + `$`)
	threeLetters = regexp.MustCompile(`^[A-Z]{3}$`)
	fourLetters  = regexp.MustCompile(`^[A-Z]{4}$`)
	twoLetters   = regexp.MustCompile(`^[A-Z]{2}$`)
	threeDigits  = regexp.MustCompile(`^\d{3}$`)
)

// skuField describes one positional segment of the code
type skuField struct {
	name        string
	start, end  int
	pattern     *regexp.Regexp
	formatError string
}

// Segments in encoding order. Missing-part checks run in this order too.
var skuFields = [...]skuField{
	{"Brand", 0, 3, threeLetters, "Brand must be 3 uppercase letters"},
	{"Product type", 3, 7, fourLetters, "Product type must be 4 uppercase letters"},
	{"Size", 7, 9, twoLetters, "Size must be 2 uppercase letters"},
	{"Color", 9, 12, threeLetters, "Color must be 3 uppercase letters"},
	{"Unique ID", 12, 15, threeDigits, "Unique ID must be 3 digits"},
	{"Location", 15, 18, threeDigits, "Location must be 3 digits"},
}

// SkuParts holds the six sub-fields of a SKU before validation
type SkuParts struct {
	Brand       string
	ProductType string
	Size        string
	Color       string
	UniqueID    string
	Location    string
}

func (p SkuParts) values() [6]string {
	return [6]string{p.Brand, p.ProductType, p.Size, p.Color, p.UniqueID, p.Location}
}

// Sku is a structured product code. The zero value means "no SKU".
type Sku struct {
	id    SkuID
	parts SkuParts
}

// NewSku builds a Sku from its parts.
// Every supplied part is format-checked first (INVALID_ARGUMENT naming the field),
// then missing parts are reported in encoding order (INVALID_STATE).
func NewSku(parts SkuParts) (Sku, error) {
	values := parts.values()
	for i, v := range values {
		if v != "" && !skuFields[i].pattern.MatchString(v) {
			return Sku{}, shared.NewInvalidArgumentError(skuFields[i].formatError)
		}
	}
	for i, v := range values {
		if v == "" {
			return Sku{}, shared.NewInvalidStateError(skuFields[i].name + " is required")
		}
	}

	code := parts.Brand + parts.ProductType + parts.Size + parts.Color + parts.UniqueID + parts.Location
	id, err := NewSkuID(code)
	if err != nil {
		return Sku{}, err
	}
	return Sku{id: id, parts: parts}, nil
}

// ParseSku decodes an 18-character code into a Sku
func ParseSku(code string) (Sku, error) {
	if len(code) != SkuLength || !skuRegexp.MatchString(code) {
		return Sku{}, shared.NewInvalidArgumentError(msgInvalidSku)
	}

	var values [6]string
	for i, f := range skuFields {
		values[i] = code[f.start:f.end]
		if !f.pattern.MatchString(values[i]) {
			return Sku{}, shared.NewInvalidArgumentError(msgInvalidSku)
		}
	}

	return NewSku(SkuParts{
		Brand:       values[0],
		ProductType: values[1],
		Size:        values[2],
		Color:       values[3],
		UniqueID:    values[4],
		Location:    values[5],
	})
}

// MustParseSku is ParseSku for literals known to be valid; it panics otherwise
func MustParseSku(code string) Sku {
	sku, err := ParseSku(code)
	if err != nil {
		panic(err)
	}
	return sku
}

// FormatSku encodes a Sku back to its 18-character code
func FormatSku(sku Sku) (string, error) {
	if sku.IsZero() {
		return "", shared.NewInvalidArgumentError(msgNullSku)
	}
	return sku.id.Value(), nil
}

func (s Sku) ID() SkuID {
	return s.id
}

func (s Sku) Brand() string {
	return s.parts.Brand
}

func (s Sku) ProductType() string {
	return s.parts.ProductType
}

func (s Sku) Size() string {
	return s.parts.Size
}

func (s Sku) Color() string {
	return s.parts.Color
}

func (s Sku) UniqueID() string {
	return s.parts.UniqueID
}

func (s Sku) Location() string {
	return s.parts.Location
}

func (s Sku) Parts() SkuParts {
	return s.parts
}

func (s Sku) IsZero() bool {
	return s.id.IsZero()
}

func (s Sku) String() string {
	return s.id.Value()
}

// Equals compares the full code
func (s Sku) Equals(other Sku) bool {
	return s.id == other.id
}

// SkuID is the validated string identity of a Sku
type SkuID struct {
	value string
}

// NewSkuID validates the whole-string shape of a SKU code
func NewSkuID(value string) (SkuID, error) {
	if value == "" {
		return SkuID{}, shared.NewInvalidArgumentError("SKU is required")
	}
	if !skuRegexp.MatchString(value) {
		return SkuID{}, shared.NewInvalidArgumentError("SKU must match pattern: " + SkuPattern)
	}
	return SkuID{value: value}, nil
}

func (id SkuID) Value() string {
	return id.value
}

func (id SkuID) IsZero() bool {
	return id.value == ""
}
