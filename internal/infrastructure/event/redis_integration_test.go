//go:build integration

package event

import (
	"context"
	"testing"
	"time"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start Redis container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: host + ":" + port.Port()})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestRedisBroker_RoundTrip(t *testing.T) {
	client := newRedis(t)
	ctx := context.Background()
	serializer := NewCatalogEventSerializer()

	publisher := NewRedisStreamPublisher(client, RedisStreamPublisherConfig{Exchange: "test-exchange"}, zap.NewNop())
	forwarder := NewBrokerForwarder(publisher, serializer, zap.NewNop())

	handler := newRecordingHandler(forwarder.EventTypes()...)
	idempotent := NewIdempotentHandler(handler, cache.NewRedisIdempotencyStore(client, ""), zap.NewNop())
	consumerBus := NewInMemoryEventBus(zap.NewNop())
	consumerBus.Subscribe(idempotent)

	consumer := NewRedisStreamConsumer(client, consumerBus, serializer, ProductBindings,
		RedisStreamConsumerConfig{Exchange: "test-exchange", Block: 100 * time.Millisecond}, zap.NewNop())
	require.NoError(t, consumer.Declare(ctx))

	activated := activatedEvent()
	require.NoError(t, forwarder.Handle(ctx, activated))
	// the same event published twice reaches the handler once
	require.NoError(t, forwarder.Handle(ctx, activated))

	acked, err := consumer.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, acked)

	received := handler.received()
	require.Len(t, received, 1)
	assert.Equal(t, activated.EventID(), received[0].EventID())
	assert.Equal(t, int64(1), idempotent.Metrics().Duplicate.Load())
}

func TestRedisIdempotencyStore(t *testing.T) {
	client := newRedis(t)
	ctx := context.Background()

	var store shared.IdempotencyStore = cache.NewRedisIdempotencyStore(client, "test:")

	first, err := store.MarkProcessed(ctx, "evt-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := store.MarkProcessed(ctx, "evt-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, again)

	processed, err := store.IsProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, processed)

	ttl, err := client.TTL(ctx, "test:evt-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
