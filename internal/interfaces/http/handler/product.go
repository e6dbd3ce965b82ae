package handler

import (
	"net/http"

	catalogapp "github.com/catalog/backend/internal/application/catalog"
	"github.com/catalog/backend/internal/interfaces/http/dto"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// DefaultMaxUploadSize bounds multipart image uploads when no limit is configured
const DefaultMaxUploadSize int64 = 10 << 20

// ProductHandler handles product-related API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	maxUploadSize  int64
}

// NewProductHandler creates a new ProductHandler. A non-positive
// maxUploadSize falls back to DefaultMaxUploadSize.
func NewProductHandler(productService *catalogapp.ProductService, maxUploadSize int64) *ProductHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &ProductHandler{
		productService: productService,
		maxUploadSize:  maxUploadSize,
	}
}

// Create godoc
// @Summary      Create a new product
// @Description  Create a DRAFT product from a SKU, price and category
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateProductRequest true "Product creation request"
// @Success      201 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// GetByID godoc
// @Summary      Get product by ID
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// List godoc
// @Summary      List products
// @Description  Page through products filtered by search text, status and category
// @Tags         products
// @Produce      json
// @Param        search      query string false "Matches name or SKU"
// @Param        status      query string false "Product status" Enums(DRAFT, ACTIVE, INACTIVE, DISCONTINUED, OUT_OF_STOCK)
// @Param        category_id query string false "Category ID" format(uuid)
// @Param        page        query int    false "Page number" default(1)
// @Param        page_size   query int    false "Page size" default(20) maximum(100)
// @Param        order_by    query string false "Sort field" default(created_at)
// @Param        order_dir   query string false "asc or desc" default(desc)
// @Success      200 {object} dto.Response{data=[]catalogapp.ProductResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query catalogapp.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	if query.Page == 0 {
		query.Page = 1
	}
	if query.PageSize == 0 {
		query.PageSize = 20
	}

	products, total, err := h.productService.List(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, query.Page, query.PageSize)
}

// Activate godoc
// @Summary      Activate a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products/{id}/activate [post]
func (h *ProductHandler) Activate(c *gin.Context) {
	h.respond(c)(h.productService.Activate(c.Request.Context(), c.Param("id")))
}

// Deactivate godoc
// @Summary      Deactivate a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products/{id}/deactivate [post]
func (h *ProductHandler) Deactivate(c *gin.Context) {
	h.respond(c)(h.productService.Deactivate(c.Request.Context(), c.Param("id")))
}

// Discontinue godoc
// @Summary      Discontinue a product
// @Description  DISCONTINUED is terminal
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products/{id}/discontinue [post]
func (h *ProductHandler) Discontinue(c *gin.Context) {
	h.respond(c)(h.productService.Discontinue(c.Request.Context(), c.Param("id")))
}

// UpdatePrice godoc
// @Summary      Change a product's price
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body catalogapp.UpdatePriceRequest true "New price"
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products/{id}/price [put]
func (h *ProductHandler) UpdatePrice(c *gin.Context) {
	var req catalogapp.UpdatePriceRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respond(c)(h.productService.UpdatePrice(c.Request.Context(), c.Param("id"), req))
}

// AddImage godoc
// @Summary      Add an image URL to a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body catalogapp.AddImageRequest true "Image URL"
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products/{id}/images [post]
func (h *ProductHandler) AddImage(c *gin.Context) {
	var req catalogapp.AddImageRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respond(c)(h.productService.AddImage(c.Request.Context(), c.Param("id"), req))
}

// UploadImage godoc
// @Summary      Upload an image file for a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path     string true "Product ID" format(uuid)
// @Param        file formData file   true "JPEG, PNG, GIF or WebP image"
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      413 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products/{id}/images/upload [post]
func (h *ProductHandler) UploadImage(c *gin.Context) {
	if c.Request.ContentLength > h.maxUploadSize {
		h.tooLarge(c)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	header, err := c.FormFile("file")
	if err != nil {
		if isMaxBytesError(err) {
			h.tooLarge(c)
			return
		}
		h.BadRequest(c, "Multipart field \"file\" is required")
		return
	}
	if header.Size > h.maxUploadSize {
		h.tooLarge(c)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.BadRequest(c, "Uploaded file could not be read")
		return
	}
	defer file.Close()

	h.respond(c)(h.productService.UploadImage(c.Request.Context(), c.Param("id"), catalogapp.UploadImageInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}))
}

// AddSpecification godoc
// @Summary      Add a specification to a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body catalogapp.AddSpecificationRequest true "Specification"
// @Success      200 {object} dto.Response{data=catalogapp.ProductResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/products/{id}/specifications [post]
func (h *ProductHandler) AddSpecification(c *gin.Context) {
	var req catalogapp.AddSpecificationRequest
	if !bindJSON(c, &req) {
		return
	}
	h.respond(c)(h.productService.AddSpecification(c.Request.Context(), c.Param("id"), req))
}

// respond writes the product or the mapped error
func (h *ProductHandler) respond(c *gin.Context) func(*catalogapp.ProductResponse, error) {
	return func(product *catalogapp.ProductResponse, err error) {
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, product)
	}
}

func (h *ProductHandler) tooLarge(c *gin.Context) {
	h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Image exceeds maximum upload size")
}
