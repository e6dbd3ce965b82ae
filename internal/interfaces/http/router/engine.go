package router

import (
	"github.com/catalog/backend/internal/infrastructure/logger"
	"github.com/catalog/backend/internal/interfaces/http/handler"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// EngineConfig holds what NewEngine needs to build the middleware chain
type EngineConfig struct {
	ServiceName    string
	TracingEnabled bool
	TracerProvider trace.TracerProvider
	Meter          metric.Meter
	CORS           middleware.CORSConfig
	TrustedProxies []string
}

// NewEngine registers the catalog validations and builds a gin engine with
// the middleware chain in order: request ID, recovery, tracing, metrics,
// access log, security headers and CORS.
func NewEngine(cfg EngineConfig, log *zap.Logger) (*gin.Engine, error) {
	if err := middleware.SetupValidator(); err != nil {
		return nil, err
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName:    cfg.ServiceName,
		Enabled:        cfg.TracingEnabled,
		TracerProvider: cfg.TracerProvider,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.HTTPMetrics(cfg.Meter))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	return engine, nil
}

// RegisterHealthRoutes mounts /health and /ready outside the versioned API
func RegisterHealthRoutes(engine *gin.Engine, h *handler.HealthHandler) {
	engine.GET("/health", h.Health)
	engine.GET("/ready", h.Ready)
}

// swaggerCSP lets the bundled UI run its inline bootstrap script
const swaggerCSP = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:"

// RegisterSwaggerRoutes serves the OpenAPI UI under /swagger. The docs
// package must be imported by the binary for doc.json to resolve.
func RegisterSwaggerRoutes(engine *gin.Engine, enabled bool, allowedIPs []string) {
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(enabled, allowedIPs),
		func(c *gin.Context) {
			c.Header("Content-Security-Policy", swaggerCSP)
			c.Next()
		},
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)
}

// CatalogRoutes returns the /catalog group. JSON endpoints are capped at
// maxBodySize; the upload endpoint enforces its own limit.
func CatalogRoutes(h *handler.ProductHandler, maxBodySize int64) *DomainGroup {
	bodyLimit := middleware.BodyLimit(maxBodySize)

	catalog := NewDomainGroup("catalog", "/catalog")
	catalog.Group("products", "/products").
		POST("", bodyLimit, h.Create).
		GET("", h.List).
		GET("/:id", h.GetByID).
		POST("/:id/activate", h.Activate).
		POST("/:id/deactivate", h.Deactivate).
		POST("/:id/discontinue", h.Discontinue).
		PUT("/:id/price", bodyLimit, h.UpdatePrice).
		POST("/:id/images", bodyLimit, h.AddImage).
		POST("/:id/images/upload", h.UploadImage).
		POST("/:id/specifications", bodyLimit, h.AddSpecification)
	return catalog
}

// OutboxRoutes mounts the dead-letter endpoints under /admin/outbox,
// reachable only from allowedIPs when that list is set
func OutboxRoutes(h *handler.OutboxHandler, allowedIPs []string) *DomainGroup {
	admin := NewDomainGroup("admin", "/admin").Use(middleware.IPAllowlist(allowedIPs))
	admin.Group("outbox", "/outbox").
		GET("/stats", h.Stats).
		GET("/dead", h.ListDead).
		POST("/dead/retry", h.RetryAllDead).
		GET("/:id", h.GetEntry).
		POST("/:id/retry", h.RetryDead)
	return admin
}
