package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product aggregate
type ProductModel struct {
	ID             uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Sku            string                `gorm:"type:varchar(18);not null;uniqueIndex:idx_products_sku"`
	Name           string                `gorm:"type:varchar(200);not null"`
	Description    string                `gorm:"type:text;not null"`
	CategoryID     uuid.UUID             `gorm:"type:uuid;not null;index:idx_products_category"`
	PriceAmount    decimal.Decimal       `gorm:"type:numeric;not null"`
	PriceCurrency  string                `gorm:"type:varchar(3);not null"`
	Status         catalog.ProductStatus `gorm:"type:varchar(20);not null;index:idx_products_status"`
	Images         string                `gorm:"type:jsonb;not null"`
	Specifications string                `gorm:"type:jsonb;not null"`
	CreatedAt      time.Time             `gorm:"not null;index:idx_products_created_at"`
	UpdatedAt      *time.Time            `gorm:"autoUpdateTime:false"`
	Version        int                   `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

type specificationRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// FromDomain populates the model from a Product aggregate
func (m *ProductModel) FromDomain(p *catalog.Product) error {
	images, err := json.Marshal(lo.Map(p.Images(), func(img catalog.Image, _ int) string {
		return img.URL()
	}))
	if err != nil {
		return fmt.Errorf("encode images: %w", err)
	}
	specs, err := json.Marshal(lo.Map(p.Specifications(), func(s catalog.Specification, _ int) specificationRow {
		return specificationRow{Name: s.Name(), Value: s.Value()}
	}))
	if err != nil {
		return fmt.Errorf("encode specifications: %w", err)
	}

	m.ID = p.ID().UUID()
	m.Sku = p.Sku().String()
	m.Name = p.Name()
	m.Description = p.Description()
	m.CategoryID = p.CategoryID().UUID()
	m.PriceAmount = p.Price().Amount()
	m.PriceCurrency = string(p.Price().Currency())
	m.Status = p.Status()
	m.Images = string(images)
	m.Specifications = string(specs)
	m.CreatedAt = p.CreatedAt()
	m.UpdatedAt = p.UpdatedAt()
	m.Version = p.GetVersion()
	return nil
}

// ProductModelFromDomain creates a model from a Product aggregate
func ProductModelFromDomain(p *catalog.Product) (*ProductModel, error) {
	m := &ProductModel{}
	if err := m.FromDomain(p); err != nil {
		return nil, err
	}
	return m, nil
}

// ToDomain rehydrates the aggregate. Stored values pass through the same
// value-object constructors as new input, so a corrupt row is an error.
func (m *ProductModel) ToDomain() (*catalog.Product, error) {
	id, err := catalog.ProductIDFrom(m.ID)
	if err != nil {
		return nil, err
	}
	sku, err := catalog.ParseSku(m.Sku)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", m.ID, err)
	}
	categoryID, err := catalog.CategoryIDFrom(m.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", m.ID, err)
	}
	price, err := valueobject.NewMoney(m.PriceAmount, valueobject.Currency(m.PriceCurrency))
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", m.ID, err)
	}

	var urls []string
	if m.Images != "" {
		if err := json.Unmarshal([]byte(m.Images), &urls); err != nil {
			return nil, fmt.Errorf("decode images of product %s: %w", m.ID, err)
		}
	}
	images := make([]catalog.Image, 0, len(urls))
	for _, u := range urls {
		img, err := catalog.NewImage(u)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", m.ID, err)
		}
		images = append(images, img)
	}

	var rows []specificationRow
	if m.Specifications != "" {
		if err := json.Unmarshal([]byte(m.Specifications), &rows); err != nil {
			return nil, fmt.Errorf("decode specifications of product %s: %w", m.ID, err)
		}
	}
	specs := make([]catalog.Specification, 0, len(rows))
	for _, row := range rows {
		spec, err := catalog.NewSpecification(row.Name, row.Value)
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", m.ID, err)
		}
		specs = append(specs, spec)
	}

	return catalog.RestoreProduct(catalog.ProductSnapshot{
		ID:             id,
		Sku:            sku,
		Name:           m.Name,
		Description:    m.Description,
		CategoryID:     categoryID,
		Price:          price,
		Status:         m.Status,
		Images:         images,
		Specifications: specs,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		Version:        m.Version,
	})
}
