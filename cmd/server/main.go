package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/catalog/backend/internal/application/catalog"
	eventapp "github.com/catalog/backend/internal/application/event"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/cache"
	"github.com/catalog/backend/internal/infrastructure/config"
	"github.com/catalog/backend/internal/infrastructure/event"
	"github.com/catalog/backend/internal/infrastructure/logger"
	"github.com/catalog/backend/internal/infrastructure/persistence"
	"github.com/catalog/backend/internal/infrastructure/storage"
	"github.com/catalog/backend/internal/infrastructure/telemetry"
	"github.com/catalog/backend/internal/interfaces/http/handler"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
	"github.com/catalog/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/catalog/backend/docs"
)

//	@title			Catalog API
//	@version		1.0
//	@description	Product catalog service: SKUs, prices, images and the product lifecycle.

//	@host		localhost:8080
//	@BasePath	/api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry comes first so every later component logs through the bridge
	providers, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down telemetry", zap.Error(err))
		}
	}()
	log = providers.Logs.Bridge(log, cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level))

	log.Info("Starting catalog service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh),
		logger.WithSQL(cfg.Telemetry.DBLogFullSQL),
	)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	var redisClient *redis.Client
	if cfg.Event.BrokerEnabled || cfg.Event.IdempotencyBackend == cache.BackendRedis {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis", zap.Error(err))
			}
		}()
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
	}

	// Events: product changes land in the outbox inside the product
	// transaction; the processor relays them to the bus.
	serializer := event.NewCatalogEventSerializer()
	outboxPublisher := event.NewOutboxPublisher(serializer, cfg.Event.MaxRetries)
	outboxRepo := event.NewGormOutboxRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB, outboxPublisher)

	var idempotencyClient redis.UniversalClient
	if redisClient != nil {
		idempotencyClient = redisClient
	}
	idempotencyStore, err := cache.NewIdempotencyStore(cfg.Event, idempotencyClient, log)
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}
	defer func() {
		_ = idempotencyStore.Close()
	}()
	idempotencyConfig := shared.DefaultIdempotencyConfig()
	if cfg.Event.IdempotencyTTL > 0 {
		idempotencyConfig.TTL = cfg.Event.IdempotencyTTL
	}
	productEvents := event.NewIdempotentHandler(
		event.NewProductEventLogger(log),
		idempotencyStore,
		log,
		event.WithIdempotencyConfig(idempotencyConfig),
	)

	eventBus := event.NewInMemoryEventBus(log)
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	consumerDone := make(chan struct{})
	if cfg.Event.BrokerEnabled {
		publisher := event.NewRedisStreamPublisher(redisClient, event.RedisStreamPublisherConfig{
			Exchange:     cfg.Event.BrokerExchange,
			MaxLen:       cfg.Event.BrokerMaxLen,
			RetryTimeout: cfg.Event.BrokerRetryTimeout,
		}, log)
		forwarder := event.NewBrokerForwarder(publisher, serializer, log)
		eventBus.Subscribe(forwarder)

		consumerBus := event.NewInMemoryEventBus(log)
		consumerBus.Subscribe(productEvents)
		consumer := event.NewRedisStreamConsumer(redisClient, consumerBus, serializer, event.ProductBindings,
			event.RedisStreamConsumerConfig{
				Exchange: cfg.Event.BrokerExchange,
				Consumer: cfg.App.Name,
			}, log)
		go func() {
			defer close(consumerDone)
			if err := consumer.Run(consumerCtx); err != nil {
				log.Error("Stream consumer stopped", zap.Error(err))
			}
		}()
		log.Info("Broker forwarding enabled", zap.Strings("event_types", forwarder.EventTypes()))
	} else {
		eventBus.Subscribe(productEvents)
		close(consumerDone)
	}

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	var outboxProcessor *event.OutboxProcessor
	if cfg.Event.ProcessorEnabled {
		outboxProcessor = event.NewOutboxProcessor(outboxRepo, eventBus, serializer, event.OutboxProcessorConfigFrom(cfg.Event), log)
		outboxProcessor.SetMetrics(providers.Metrics)
		if err := outboxProcessor.Start(ctx); err != nil {
			log.Fatal("Failed to start outbox processor", zap.Error(err))
		}
	}

	// Image storage: S3-compatible bucket when configured, memory otherwise
	var images catalogapp.ImageStorage
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ImageStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to create image storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			log.Fatal("Failed to prepare image bucket", zap.Error(err))
		}
		images = s3Storage
	} else {
		log.Warn("Object storage disabled, uploaded images are kept in memory")
		images = storage.NewMemoryImageStorage("")
	}

	productService := catalogapp.NewProductService(productRepo,
		catalogapp.WithImageStorage(images),
		catalogapp.WithProductMetrics(providers.Metrics),
		catalogapp.WithLogger(log),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine, err := router.NewEngine(router.EngineConfig{
		ServiceName:    cfg.Telemetry.ServiceName,
		TracingEnabled: cfg.Telemetry.Enabled,
		Meter:          providers.Meter.Meter("http.server"),
		CORS:           cors,
		TrustedProxies: cfg.HTTP.TrustedProxies,
	}, log)
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	checks := []handler.ReadinessCheck{{Name: "database", Check: db.Ping}}
	if redisClient != nil {
		checks = append(checks, handler.ReadinessCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
	}
	router.RegisterHealthRoutes(engine, handler.NewHealthHandler(telemetry.ServiceVersion, checks...))

	productHandler := handler.NewProductHandler(productService, cfg.HTTP.MaxUploadSize)
	outboxHandler := handler.NewOutboxHandler(eventapp.NewOutboxService(outboxRepo, log))
	router.NewRouter(engine).
		Register(router.CatalogRoutes(productHandler, cfg.HTTP.MaxBodySize)).
		Register(router.OutboxRoutes(outboxHandler, cfg.HTTP.AdminAllowedIPs)).
		Setup()
	router.RegisterSwaggerRoutes(engine, cfg.Swagger.Enabled, cfg.Swagger.AllowedIPs)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down server...")
	case err := <-serverErr:
		log.Error("Server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if outboxProcessor != nil {
		if err := outboxProcessor.Stop(shutdownCtx); err != nil {
			log.Error("Error stopping outbox processor", zap.Error(err))
		}
	}
	stopConsumer()
	<-consumerDone

	log.Info("Server exited gracefully")
}
