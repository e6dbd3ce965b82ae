package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db          *gorm.DB
	outboxSaver shared.OutboxEventSaver
}

// NewGormProductRepository creates a new GormProductRepository. outboxSaver
// may be nil when events are never saved through this repository.
func NewGormProductRepository(db *gorm.DB, outboxSaver shared.OutboxEventSaver) *GormProductRepository {
	return &GormProductRepository{db: db, outboxSaver: outboxSaver}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id catalog.ProductID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Where("id = ?", id.UUID()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindBySku finds a product by its encoded SKU
func (r *GormProductRepository) FindBySku(ctx context.Context, sku catalog.Sku) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Where("sku = ?", sku.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll returns one page of products matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*catalog.Product, error) {
	query, err := r.applyFilter(r.db.WithContext(ctx).Model(&models.ProductModel{}), filter)
	if err != nil {
		return nil, err
	}

	orderBy := ValidateSortField(filter.OrderBy, ProductSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir).Order("id " + orderDir)
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	var rows []models.ProductModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	products := make([]*catalog.Product, 0, len(rows))
	for i := range rows {
		p, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// Count counts products matching the filter, ignoring pagination
func (r *GormProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	query, err := r.applyFilter(r.db.WithContext(ctx).Model(&models.ProductModel{}), filter)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsBySku checks whether a SKU is already taken
func (r *GormProductRepository) ExistsBySku(ctx context.Context, sku catalog.Sku) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("sku = ?", sku.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.SaveWithEvents(ctx, product)
}

// SaveWithEvents saves the product and its events to the outbox in one
// transaction. Updates require the stored version to equal the aggregate's;
// the aggregate version is bumped only after the transaction commits.
func (r *GormProductRepository) SaveWithEvents(ctx context.Context, product *catalog.Product, events ...shared.DomainEvent) error {
	if len(events) > 0 && r.outboxSaver == nil {
		return fmt.Errorf("product repository has no outbox saver for %d events", len(events))
	}

	model, err := models.ProductModelFromDomain(product)
	if err != nil {
		return err
	}

	var updated bool
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current struct{ Version int }
		res := tx.Model(&models.ProductModel{}).
			Select("version").
			Where("id = ?", model.ID).
			Limit(1).
			Scan(&current)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			if err := tx.Create(model).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return shared.NewDomainError(shared.CodeAlreadyExists, "Product with this SKU already exists")
				}
				return err
			}
		} else {
			if err := updateWithVersion(tx, model, current.Version); err != nil {
				return err
			}
			updated = true
		}

		if len(events) == 0 {
			return nil
		}
		if err := r.outboxSaver.SaveEvents(ctx, tx, events...); err != nil {
			return fmt.Errorf("failed to save events to outbox: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if updated {
		product.IncrementVersion()
	}
	return nil
}

func updateWithVersion(tx *gorm.DB, model *models.ProductModel, storedVersion int) error {
	if storedVersion != model.Version {
		return shared.ErrConcurrencyConflict
	}

	result := tx.Model(&models.ProductModel{}).
		Where("id = ? AND version = ?", model.ID, storedVersion).
		Updates(map[string]any{
			"name":           model.Name,
			"description":    model.Description,
			"category_id":    model.CategoryID,
			"price_amount":   model.PriceAmount,
			"price_currency": model.PriceCurrency,
			"status":         model.Status,
			"images":         model.Images,
			"specifications": model.Specifications,
			"updated_at":     model.UpdatedAt,
			"version":        storedVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) (*gorm.DB, error) {
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR sku LIKE ?", pattern, "%"+strings.ToUpper(search)+"%")
	}

	if raw, ok := filter.Filters["status"]; ok {
		status, err := statusFilterValue(raw)
		if err != nil {
			return nil, err
		}
		query = query.Where("status = ?", status)
	}

	if raw, ok := filter.Filters["category_id"]; ok {
		categoryID, err := categoryFilterValue(raw)
		if err != nil {
			return nil, err
		}
		query = query.Where("category_id = ?", categoryID.UUID())
	}

	return query, nil
}

func statusFilterValue(raw any) (catalog.ProductStatus, error) {
	switch v := raw.(type) {
	case catalog.ProductStatus:
		if !v.IsValid() {
			return "", shared.NewInvalidArgumentError("Status is invalid: " + string(v))
		}
		return v, nil
	case string:
		return catalog.ParseProductStatus(v)
	default:
		return "", shared.NewInvalidArgumentError(fmt.Sprintf("Status filter has unsupported type %T", raw))
	}
}

func categoryFilterValue(raw any) (catalog.CategoryID, error) {
	switch v := raw.(type) {
	case catalog.CategoryID:
		return v, nil
	case string:
		return catalog.ParseCategoryID(v)
	default:
		return catalog.CategoryID{}, shared.NewInvalidArgumentError(fmt.Sprintf("Category filter has unsupported type %T", raw))
	}
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)
