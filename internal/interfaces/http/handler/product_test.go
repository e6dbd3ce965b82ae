package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"

	catalogapp "github.com/catalog/backend/internal/application/catalog"
	"github.com/catalog/backend/internal/domain/catalog"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/storage"
	"github.com/catalog/backend/internal/interfaces/http/dto"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.SetupValidator(); err != nil {
		panic(err)
	}
}

// memoryRepo keeps products in a map keyed by ID
type memoryRepo struct {
	mu       sync.Mutex
	products map[catalog.ProductID]*catalog.Product
	saveErr  error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{products: make(map[catalog.ProductID]*catalog.Product)}
}

func (r *memoryRepo) FindByID(_ context.Context, id catalog.ProductID) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		return p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepo) FindBySku(_ context.Context, sku catalog.Sku) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Sku().Equals(sku) {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *memoryRepo) FindAll(_ context.Context, _ shared.Filter) ([]*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*catalog.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepo) Count(_ context.Context, _ shared.Filter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.products)), nil
}

func (r *memoryRepo) ExistsBySku(ctx context.Context, sku catalog.Sku) (bool, error) {
	_, err := r.FindBySku(ctx, sku)
	return err == nil, nil
}

func (r *memoryRepo) Save(ctx context.Context, p *catalog.Product) error {
	return r.SaveWithEvents(ctx, p)
}

func (r *memoryRepo) SaveWithEvents(_ context.Context, p *catalog.Product, _ ...shared.DomainEvent) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID()] = p
	return nil
}

type testAPI struct {
	engine  *gin.Engine
	repo    *memoryRepo
	storage *storage.MemoryImageStorage
}

func newTestAPI(t *testing.T, maxUploadSize int64) *testAPI {
	t.Helper()
	repo := newMemoryRepo()
	images := storage.NewMemoryImageStorage("https://cdn.example.com")
	service := catalogapp.NewProductService(repo, catalogapp.WithImageStorage(images))
	h := NewProductHandler(service, maxUploadSize)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	products := engine.Group("/products")
	products.POST("", h.Create)
	products.GET("", h.List)
	products.GET("/:id", h.GetByID)
	products.POST("/:id/activate", h.Activate)
	products.POST("/:id/deactivate", h.Deactivate)
	products.POST("/:id/discontinue", h.Discontinue)
	products.PUT("/:id/price", h.UpdatePrice)
	products.POST("/:id/images", h.AddImage)
	products.POST("/:id/images/upload", h.UploadImage)
	products.POST("/:id/specifications", h.AddSpecification)

	return &testAPI{engine: engine, repo: repo, storage: images}
}

type productEnvelope struct {
	Success bool                       `json:"success"`
	Data    catalogapp.ProductResponse `json:"data"`
	Error   *dto.ErrorInfo             `json:"error"`
	Meta    *dto.Meta                  `json:"meta"`
}

func (a *testAPI) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, productEnvelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var env productEnvelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func createBody() map[string]any {
	return map[string]any{
		"sku":         "NIKSHRTLGBLU001351",
		"name":        "Nike T-Shirt",
		"description": "Breathable cotton training shirt",
		"category_id": "6f1c1d52-5a3a-4a4b-9d8e-1f0f1d4e2a10",
		"price":       map[string]any{"amount": "49.90", "currency": "BRL"},
		"images":      []string{"https://cdn.example.com/shirt.png"},
		"specifications": []map[string]string{
			{"name": "Material", "value": "Cotton"},
		},
	}
}

func (a *testAPI) create(t *testing.T) catalogapp.ProductResponse {
	t.Helper()
	w, env := a.do(t, http.MethodPost, "/products", createBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return env.Data
}

func TestProductHandler_Create(t *testing.T) {
	t.Run("creates a draft product", func(t *testing.T) {
		api := newTestAPI(t, 0)
		w, env := api.do(t, http.MethodPost, "/products", createBody())

		require.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "DRAFT", env.Data.Status)
		assert.Equal(t, "NIKSHRTLGBLU001351", env.Data.Sku.Code)
		assert.Equal(t, "SHRT", env.Data.Sku.ProductType)
	})

	t.Run("duplicate sku is a conflict", func(t *testing.T) {
		api := newTestAPI(t, 0)
		api.create(t)

		w, env := api.do(t, http.MethodPost, "/products", createBody())
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, shared.CodeAlreadyExists, env.Error.Code)
	})

	t.Run("malformed sku fails validation", func(t *testing.T) {
		api := newTestAPI(t, 0)
		body := createBody()
		body["sku"] = "NIKE"

		w, env := api.do(t, http.MethodPost, "/products", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, env.Error.Code)
		require.NotEmpty(t, env.Error.Details)
		assert.Equal(t, "sku", env.Error.Details[0].Field)
		assert.NotEmpty(t, env.Error.RequestID)
	})

	t.Run("short description breaks a creation rule", func(t *testing.T) {
		api := newTestAPI(t, 0)
		body := createBody()
		body["description"] = "Too short"

		w, env := api.do(t, http.MethodPost, "/products", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, shared.CodeInvalidState, env.Error.Code)
	})

	t.Run("price without an amount is rejected", func(t *testing.T) {
		api := newTestAPI(t, 0)
		body := createBody()
		body["price"] = map[string]any{"currency": "USD"}

		w, env := api.do(t, http.MethodPost, "/products", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, shared.CodeInvalidArgument, env.Error.Code)
		assert.Equal(t, "Amount is required", env.Error.Message)
		assert.Empty(t, api.repo.products)
	})

	t.Run("infrastructure errors are hidden", func(t *testing.T) {
		api := newTestAPI(t, 0)
		api.repo.saveErr = errors.New("connection reset by peer")

		w, env := api.do(t, http.MethodPost, "/products", createBody())
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, env.Error.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestProductHandler_GetAndList(t *testing.T) {
	api := newTestAPI(t, 0)
	created := api.create(t)

	w, env := api.do(t, http.MethodGet, "/products/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ID, env.Data.ID)

	w, env = api.do(t, http.MethodGet, "/products/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, shared.CodeInvalidArgument, env.Error.Code)

	w, env = api.do(t, http.MethodGet, "/products/6f1c1d52-5a3a-4a4b-9d8e-1f0f1d4e2a10", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, shared.CodeNotFound, env.Error.Code)

	w, env = api.do(t, http.MethodGet, "/products?page_size=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(1), env.Meta.Total)
	assert.Equal(t, 5, env.Meta.PageSize)
	assert.Equal(t, 1, env.Meta.TotalPages)

	w, env = api.do(t, http.MethodGet, "/products?page_size=500", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, env.Error.Code)

	w, env = api.do(t, http.MethodGet, "/products?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, shared.CodeInvalidArgument, env.Error.Code)
}

func TestProductHandler_StatusTransitions(t *testing.T) {
	api := newTestAPI(t, 0)
	id := api.create(t).ID

	w, env := api.do(t, http.MethodPost, "/products/"+id+"/activate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ACTIVE", env.Data.Status)

	w, env = api.do(t, http.MethodPost, "/products/"+id+"/activate", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, shared.CodeInvalidState, env.Error.Code)

	w, env = api.do(t, http.MethodPost, "/products/"+id+"/deactivate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "INACTIVE", env.Data.Status)

	w, env = api.do(t, http.MethodPost, "/products/"+id+"/discontinue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DISCONTINUED", env.Data.Status)

	w, _ = api.do(t, http.MethodPost, "/products/"+id+"/activate", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestProductHandler_UpdatePrice(t *testing.T) {
	api := newTestAPI(t, 0)
	id := api.create(t).ID

	w, env := api.do(t, http.MethodPut, "/products/"+id+"/price", map[string]any{
		"price": map[string]any{"amount": "59.90", "currency": "BRL"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "59.9", env.Data.Price.Amount.String())

	w, env = api.do(t, http.MethodPut, "/products/"+id+"/price", map[string]any{
		"price": map[string]any{"amount": "10", "currency": "USD"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, shared.CodeInvalidArgument, env.Error.Code)

	w, env = api.do(t, http.MethodPut, "/products/"+id+"/price", map[string]any{
		"price": map[string]any{"amount": "10"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, env.Error.Code)

	w, env = api.do(t, http.MethodPut, "/products/"+id+"/price", map[string]any{
		"price": map[string]any{"currency": "BRL"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, shared.CodeInvalidArgument, env.Error.Code)
	assert.Equal(t, "Amount is required", env.Error.Message)

	w, env = api.do(t, http.MethodGet, "/products/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "59.9", env.Data.Price.Amount.String())
}

func TestProductHandler_ImagesAndSpecifications(t *testing.T) {
	api := newTestAPI(t, 0)
	id := api.create(t).ID

	w, env := api.do(t, http.MethodPost, "/products/"+id+"/images", map[string]string{
		"url": "https://cdn.example.com/shirt-back.png",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.Data.Images, 2)

	w, env = api.do(t, http.MethodPost, "/products/"+id+"/specifications", map[string]string{
		"name": "Fit", "value": "Regular",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.Data.Specifications, 2)

	w, _ = api.do(t, http.MethodPost, "/products/"+id+"/specifications", map[string]string{"name": "Fit"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func uploadRequest(t *testing.T, path, contentType string, payload []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="Front.PNG"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestProductHandler_UploadImage(t *testing.T) {
	t.Run("stores the file and links it", func(t *testing.T) {
		api := newTestAPI(t, 0)
		id := api.create(t).ID

		w := httptest.NewRecorder()
		api.engine.ServeHTTP(w, uploadRequest(t, "/products/"+id+"/images/upload", "image/png", []byte("png-bytes")))

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var env productEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Len(t, env.Data.Images, 2)
		assert.Contains(t, env.Data.Images[1], "https://cdn.example.com/products/"+id+"/")
		assert.Contains(t, env.Data.Images[1], ".png")
		assert.Equal(t, 1, api.storage.Len())
	})

	t.Run("rejects unsupported types", func(t *testing.T) {
		api := newTestAPI(t, 0)
		id := api.create(t).ID

		w := httptest.NewRecorder()
		api.engine.ServeHTTP(w, uploadRequest(t, "/products/"+id+"/images/upload", "application/pdf", []byte("%PDF")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, api.storage.Len())
	})

	t.Run("rejects oversized uploads", func(t *testing.T) {
		api := newTestAPI(t, 64)
		id := api.create(t).ID

		w := httptest.NewRecorder()
		api.engine.ServeHTTP(w, uploadRequest(t, "/products/"+id+"/images/upload", "image/png", bytes.Repeat([]byte("x"), 256)))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeRequestTooLarge)
	})

	t.Run("failed save leaves no stored object", func(t *testing.T) {
		api := newTestAPI(t, 0)
		id := api.create(t).ID
		api.repo.saveErr = errors.New("db down")

		w := httptest.NewRecorder()
		api.engine.ServeHTTP(w, uploadRequest(t, "/products/"+id+"/images/upload", "image/png", []byte("png-bytes")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Zero(t, api.storage.Len())
	})

	t.Run("requires the file field", func(t *testing.T) {
		api := newTestAPI(t, 0)
		id := api.create(t).ID

		w, env := api.do(t, http.MethodPost, "/products/"+id+"/images/upload", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeBadRequest, env.Error.Code)
	})
}
