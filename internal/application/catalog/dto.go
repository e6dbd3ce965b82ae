package catalog

import (
	"time"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MoneyDTO is the wire form of a monetary amount. Amount is a pointer so an
// omitted amount is told apart from zero.
type MoneyDTO struct {
	Amount   *decimal.Decimal `json:"amount" validate:"required" swaggertype:"string" example:"49.90"`
	Currency string           `json:"currency" binding:"required,len=3"`
}

// SpecificationDTO is one name/value attribute of a product
type SpecificationDTO struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Sku            string             `json:"sku" binding:"required,sku"`
	Name           string             `json:"name" binding:"required,max=200"`
	Description    string             `json:"description" binding:"required,max=2000"`
	CategoryID     string             `json:"category_id" binding:"required,uuid"`
	Price          MoneyDTO           `json:"price"`
	Images         []string           `json:"images" binding:"omitempty,dive,required"`
	Specifications []SpecificationDTO `json:"specifications" binding:"omitempty,dive"`
}

// UpdatePriceRequest replaces a product's price
type UpdatePriceRequest struct {
	Price MoneyDTO `json:"price"`
}

// AddImageRequest adds an image by URL
type AddImageRequest struct {
	URL string `json:"url" binding:"required"`
}

// AddSpecificationRequest adds one specification
type AddSpecificationRequest struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// ListProductsQuery holds list filters and pagination
type ListProductsQuery struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by" binding:"omitempty,oneof=created_at updated_at name sku price status"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SkuResponse exposes the encoded SKU and its decoded parts
type SkuResponse struct {
	Code        string `json:"code"`
	Brand       string `json:"brand"`
	ProductType string `json:"product_type"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	UniqueID    string `json:"unique_id"`
	Location    string `json:"location"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID             string             `json:"id"`
	Sku            SkuResponse        `json:"sku"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	CategoryID     string             `json:"category_id"`
	Price          MoneyDTO           `json:"price"`
	Status         string             `json:"status"`
	Images         []string           `json:"images"`
	Specifications []SpecificationDTO `json:"specifications"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      *time.Time         `json:"updated_at,omitempty"`
	Version        int                `json:"version"`
}

// ToMoney converts the wire form into a Money value
func (m MoneyDTO) ToMoney() (valueobject.Money, error) {
	currency, err := valueobject.ParseCurrency(m.Currency)
	if err != nil {
		return valueobject.Money{}, err
	}
	if m.Amount == nil {
		return valueobject.Money{}, shared.NewInvalidArgumentError("Amount is required")
	}
	return valueobject.NewMoney(*m.Amount, currency)
}

// ToMoneyDTO converts a Money value into its wire form
func ToMoneyDTO(m valueobject.Money) MoneyDTO {
	amount := m.Amount()
	return MoneyDTO{Amount: &amount, Currency: string(m.Currency())}
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	parts := p.Sku().Parts()
	return ProductResponse{
		ID: p.ID().String(),
		Sku: SkuResponse{
			Code:        p.Sku().String(),
			Brand:       parts.Brand,
			ProductType: parts.ProductType,
			Size:        parts.Size,
			Color:       parts.Color,
			UniqueID:    parts.UniqueID,
			Location:    parts.Location,
		},
		Name:        p.Name(),
		Description: p.Description(),
		CategoryID:  p.CategoryID().String(),
		Price:       ToMoneyDTO(p.Price()),
		Status:      p.Status().String(),
		Images: lo.Map(p.Images(), func(img catalog.Image, _ int) string {
			return img.URL()
		}),
		Specifications: lo.Map(p.Specifications(), func(s catalog.Specification, _ int) SpecificationDTO {
			return SpecificationDTO{Name: s.Name(), Value: s.Value()}
		}),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
		Version:   p.GetVersion(),
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []*catalog.Product) []ProductResponse {
	return lo.Map(products, func(p *catalog.Product, _ int) ProductResponse {
		return ToProductResponse(p)
	})
}
