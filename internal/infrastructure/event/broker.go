package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Stream message field names
const (
	fieldEventID    = "event_id"
	fieldEventType  = "event_type"
	fieldRoutingKey = "routing_key"
	fieldPayload    = "payload"
)

// StreamAdder is the subset of the Redis client used to publish
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// BrokerMessage is one serialized event on its way to the broker
type BrokerMessage struct {
	EventID    string
	EventType  string
	RoutingKey string
	Payload    []byte
}

// RedisStreamPublisherConfig configures RedisStreamPublisher
type RedisStreamPublisherConfig struct {
	Exchange string
	// MaxLen caps each stream approximately; zero keeps every message
	MaxLen int64
	// RetryTimeout bounds the retries of a single publish
	RetryTimeout time.Duration
}

// RedisStreamPublisher appends messages to one Redis stream per routing key
type RedisStreamPublisher struct {
	client StreamAdder
	config RedisStreamPublisherConfig
	logger *zap.Logger
}

// NewRedisStreamPublisher creates a publisher on client
func NewRedisStreamPublisher(client StreamAdder, cfg RedisStreamPublisherConfig, logger *zap.Logger) *RedisStreamPublisher {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	if cfg.RetryTimeout <= 0 {
		cfg.RetryTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStreamPublisher{client: client, config: cfg, logger: logger}
}

// Publish adds msg to its routing key's stream, retrying with exponential
// backoff until RetryTimeout. A canceled context stops the retries.
func (p *RedisStreamPublisher) Publish(ctx context.Context, msg BrokerMessage) (string, error) {
	args := &redis.XAddArgs{
		Stream: StreamName(p.config.Exchange, msg.RoutingKey),
		Values: map[string]any{
			fieldEventID:    msg.EventID,
			fieldEventType:  msg.EventType,
			fieldRoutingKey: msg.RoutingKey,
			fieldPayload:    string(msg.Payload),
		},
	}
	if p.config.MaxLen > 0 {
		args.MaxLen = p.config.MaxLen
		args.Approx = true
	}

	attempt := 0
	operation := func() (string, error) {
		attempt++
		id, err := p.client.XAdd(ctx, args).Result()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return "", backoff.Permanent(err)
			}
			p.logger.Warn("broker publish attempt failed",
				zap.String("stream", args.Stream),
				zap.String("event_id", msg.EventID),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return "", err
		}
		return id, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 100 * time.Millisecond
	id, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxElapsedTime(p.config.RetryTimeout),
	)
	if err != nil {
		return "", fmt.Errorf("failed to publish %s to %s: %w", msg.EventType, args.Stream, err)
	}
	return id, nil
}

// BrokerForwarder is an event bus handler that forwards product events to the broker
type BrokerForwarder struct {
	publisher  *RedisStreamPublisher
	serializer *EventSerializer
	logger     *zap.Logger
}

// NewBrokerForwarder creates a forwarder that publishes through publisher
func NewBrokerForwarder(publisher *RedisStreamPublisher, serializer *EventSerializer, logger *zap.Logger) *BrokerForwarder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrokerForwarder{publisher: publisher, serializer: serializer, logger: logger}
}

// EventTypes returns every event type that has a routing key
func (f *BrokerForwarder) EventTypes() []string {
	types := make([]string, len(ProductBindings))
	for i, b := range ProductBindings {
		types[i] = b.EventType
	}
	return types
}

// Handle serializes event and publishes it under its routing key
func (f *BrokerForwarder) Handle(ctx context.Context, event shared.DomainEvent) error {
	routingKey, err := RoutingKeyFor(event.EventType())
	if err != nil {
		return err
	}
	payload, err := f.serializer.Serialize(event)
	if err != nil {
		return err
	}

	id, err := f.publisher.Publish(ctx, BrokerMessage{
		EventID:    event.EventID().String(),
		EventType:  event.EventType(),
		RoutingKey: routingKey,
		Payload:    payload,
	})
	if err != nil {
		return err
	}

	f.logger.Debug("event forwarded to broker",
		zap.String("event_id", event.EventID().String()),
		zap.String("routing_key", routingKey),
		zap.String("message_id", id),
	)
	return nil
}

var _ shared.EventHandler = (*BrokerForwarder)(nil)
