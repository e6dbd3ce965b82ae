package cache

import (
	"fmt"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Idempotency backends accepted in event.idempotency_backend
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// NewIdempotencyStore picks the store named by cfg.IdempotencyBackend.
// The redis backend needs a connected client.
func NewIdempotencyStore(cfg config.EventConfig, client redis.UniversalClient, logger *zap.Logger) (shared.IdempotencyStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.IdempotencyBackend {
	case BackendRedis:
		if client == nil {
			return nil, fmt.Errorf("idempotency backend %q requires a redis client", BackendRedis)
		}
		logger.Info("using Redis idempotency store")
		return NewRedisIdempotencyStore(client, ""), nil
	case BackendMemory, "":
		logger.Warn("using in-memory idempotency store; duplicates are only detected within this process")
		return NewInMemoryIdempotencyStore(), nil
	default:
		return nil, fmt.Errorf("unknown idempotency backend %q", cfg.IdempotencyBackend)
	}
}
