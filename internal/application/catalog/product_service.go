package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ImageStorage stores uploaded product images and returns their public URL
type ImageStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

// ProductMetrics receives product lifecycle counts
type ProductMetrics interface {
	RecordProductCreated(ctx context.Context)
	RecordStatusChange(ctx context.Context, from, to catalog.ProductStatus)
	RecordPriceChange(ctx context.Context, currency string)
}

// AllowedImageTypes are the content types UploadImage accepts
var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

const uploadCleanupTimeout = 5 * time.Second

// ProductService handles product use cases. Each mutating call loads the
// aggregate, applies one operation and saves it together with the events that
// operation raised. The aggregate's event buffer is cleared only after the save succeeds.
type ProductService struct {
	productRepo catalog.ProductRepository
	storage     ImageStorage
	metrics     ProductMetrics
	logger      *zap.Logger
}

// ProductServiceOption configures a ProductService
type ProductServiceOption func(*ProductService)

// WithImageStorage enables UploadImage
func WithImageStorage(storage ImageStorage) ProductServiceOption {
	return func(s *ProductService) {
		s.storage = storage
	}
}

// WithProductMetrics records lifecycle counts
func WithProductMetrics(metrics ProductMetrics) ProductServiceOption {
	return func(s *ProductService) {
		s.metrics = metrics
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) ProductServiceOption {
	return func(s *ProductService) {
		s.logger = logger
	}
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, opts ...ProductServiceOption) *ProductService {
	s := &ProductService{
		productRepo: productRepo,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create creates a new product in DRAFT status
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	sku, err := catalog.ParseSku(req.Sku)
	if err != nil {
		return nil, err
	}
	categoryID, err := catalog.ParseCategoryID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	price, err := req.Price.ToMoney()
	if err != nil {
		return nil, err
	}

	images := make([]catalog.Image, 0, len(req.Images))
	for _, raw := range req.Images {
		img, err := catalog.NewImage(raw)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	specs := make([]catalog.Specification, 0, len(req.Specifications))
	for _, dto := range req.Specifications {
		spec, err := catalog.NewSpecification(dto.Name, dto.Value)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	exists, err := s.productRepo.ExistsBySku(ctx, sku)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeAlreadyExists, "Product with this SKU already exists")
	}

	product, err := catalog.NewProduct(catalog.ProductParams{
		Sku:            sku,
		Name:           req.Name,
		Description:    req.Description,
		Price:          price,
		CategoryID:     categoryID,
		Images:         images,
		Specifications: specs,
	})
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordProductCreated(ctx)
	}
	s.logger.Info("product created",
		zap.String("product_id", product.ID().String()),
		zap.String("sku", sku.String()),
	)

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID returns one product
func (s *ProductService) GetByID(ctx context.Context, id string) (*ProductResponse, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List returns one page of products and the total matching the filters
func (s *ProductService) List(ctx context.Context, query ListProductsQuery) ([]ProductResponse, int64, error) {
	filter := shared.DefaultFilter()
	if query.Page > 0 {
		filter.Page = query.Page
	}
	if query.PageSize > 0 {
		filter.PageSize = query.PageSize
	}
	if query.OrderBy != "" {
		filter.OrderBy = query.OrderBy
	}
	if query.OrderDir != "" {
		filter.OrderDir = query.OrderDir
	}
	filter.Search = strings.TrimSpace(query.Search)

	if query.Status != "" {
		status, err := catalog.ParseProductStatus(query.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.Filters["status"] = status
	}
	if query.CategoryID != "" {
		categoryID, err := catalog.ParseCategoryID(query.CategoryID)
		if err != nil {
			return nil, 0, err
		}
		filter.Filters["category_id"] = categoryID
	}

	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return ToProductResponses(products), total, nil
}

// Activate moves a product to ACTIVE
func (s *ProductService) Activate(ctx context.Context, id string) (*ProductResponse, error) {
	return s.changeStatus(ctx, id, (*catalog.Product).Activate)
}

// Deactivate moves a product to INACTIVE
func (s *ProductService) Deactivate(ctx context.Context, id string) (*ProductResponse, error) {
	return s.changeStatus(ctx, id, (*catalog.Product).Deactivate)
}

// Discontinue moves a product to DISCONTINUED
func (s *ProductService) Discontinue(ctx context.Context, id string) (*ProductResponse, error) {
	return s.changeStatus(ctx, id, (*catalog.Product).Discontinue)
}

// UpdatePrice replaces a product's price
func (s *ProductService) UpdatePrice(ctx context.Context, id string, req UpdatePriceRequest) (*ProductResponse, error) {
	price, err := req.Price.ToMoney()
	if err != nil {
		return nil, err
	}
	response, err := s.mutate(ctx, id, func(p *catalog.Product) ([]shared.DomainEvent, error) {
		return p.UpdatePrice(price)
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordPriceChange(ctx, string(price.Currency()))
	}
	return response, nil
}

// AddImage appends an image URL to a product
func (s *ProductService) AddImage(ctx context.Context, id string, req AddImageRequest) (*ProductResponse, error) {
	img, err := catalog.NewImage(req.URL)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(p *catalog.Product) ([]shared.DomainEvent, error) {
		return p.AddImage(img)
	})
}

// AddSpecification appends a specification to a product
func (s *ProductService) AddSpecification(ctx context.Context, id string, req AddSpecificationRequest) (*ProductResponse, error) {
	spec, err := catalog.NewSpecification(req.Name, req.Value)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, id, func(p *catalog.Product) ([]shared.DomainEvent, error) {
		return p.AddSpecification(spec)
	})
}

// UploadImageInput is a file to store as a product image
type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadImage stores the file and adds its URL to the product. The product
// must exist before anything is uploaded.
func (s *ProductService) UploadImage(ctx context.Context, id string, in UploadImageInput) (*ProductResponse, error) {
	if s.storage == nil {
		return nil, shared.NewInvalidStateError("Image upload is not configured")
	}
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(in.ContentType, ";")[0]))
	if !lo.Contains(AllowedImageTypes, contentType) {
		return nil, shared.NewInvalidArgumentError(fmt.Sprintf("Image content type %q is not supported", in.ContentType))
	}
	if in.Size <= 0 {
		return nil, shared.NewInvalidArgumentError("Image file is empty")
	}

	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%s/%s%s", product.ID(), uuid.NewString(), strings.ToLower(path.Ext(in.Filename)))
	url, err := s.storage.Upload(ctx, key, contentType, in.Body, in.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	if err := s.attachUploaded(ctx, product, url); err != nil {
		s.discardUpload(ctx, key, err)
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

func (s *ProductService) attachUploaded(ctx context.Context, product *catalog.Product, url string) error {
	img, err := catalog.NewImage(url)
	if err != nil {
		return err
	}
	if _, err := product.AddImage(img); err != nil {
		return err
	}
	return s.save(ctx, product)
}

// discardUpload removes an object whose product update did not commit. The
// request context may already be done, so the delete gets its own deadline.
func (s *ProductService) discardUpload(ctx context.Context, key string, cause error) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uploadCleanupTimeout)
	defer cancel()
	if err := s.storage.Delete(cleanupCtx, key); err != nil {
		s.logger.Warn("failed to remove orphaned image upload",
			zap.String("key", key),
			zap.NamedError("cause", cause),
			zap.Error(err),
		)
	}
}

func (s *ProductService) changeStatus(
	ctx context.Context,
	id string,
	transition func(*catalog.Product) ([]shared.DomainEvent, error),
) (*ProductResponse, error) {
	var from, to catalog.ProductStatus
	response, err := s.mutate(ctx, id, func(p *catalog.Product) ([]shared.DomainEvent, error) {
		from = p.Status()
		events, err := transition(p)
		to = p.Status()
		return events, err
	})
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordStatusChange(ctx, from, to)
	}
	s.logger.Info("product status changed",
		zap.String("product_id", id),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	)
	return response, nil
}

// mutate runs one aggregate operation and persists the result
func (s *ProductService) mutate(
	ctx context.Context,
	id string,
	op func(*catalog.Product) ([]shared.DomainEvent, error),
) (*ProductResponse, error) {
	product, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := op(product); err != nil {
		return nil, err
	}
	if err := s.save(ctx, product); err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// save writes the product with every buffered event, then clears the buffer
func (s *ProductService) save(ctx context.Context, product *catalog.Product) error {
	if err := s.productRepo.SaveWithEvents(ctx, product, product.GetDomainEvents()...); err != nil {
		return err
	}
	product.ClearDomainEvents()
	return nil
}

func (s *ProductService) load(ctx context.Context, id string) (*catalog.Product, error) {
	productID, err := catalog.ParseProductID(id)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound, fmt.Sprintf("Product with ID %s was not found", id))
		}
		return nil, err
	}
	return product, nil
}
