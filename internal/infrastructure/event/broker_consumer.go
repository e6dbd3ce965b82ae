package event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// StreamGroupReader is the subset of the Redis client used to consume
type StreamGroupReader interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
}

// RedisStreamConsumerConfig configures RedisStreamConsumer
type RedisStreamConsumerConfig struct {
	Exchange string
	Consumer string
	Count    int64
	Block    time.Duration
}

// RedisStreamConsumer reads product streams through one consumer group per
// queue and dispatches each message to the handlers on its event bus.
// Acknowledged messages leave the group; failed ones stay pending and are
// read again on the next poll.
type RedisStreamConsumer struct {
	client     StreamGroupReader
	bus        *InMemoryEventBus
	serializer *EventSerializer
	bindings   []Binding
	config     RedisStreamConsumerConfig
	logger     *zap.Logger
}

// NewRedisStreamConsumer creates a consumer for bindings
func NewRedisStreamConsumer(
	client StreamGroupReader,
	bus *InMemoryEventBus,
	serializer *EventSerializer,
	bindings []Binding,
	cfg RedisStreamConsumerConfig,
	logger *zap.Logger,
) *RedisStreamConsumer {
	if cfg.Exchange == "" {
		cfg.Exchange = DefaultExchange
	}
	if cfg.Consumer == "" {
		cfg.Consumer = "catalog-consumer"
	}
	if cfg.Count <= 0 {
		cfg.Count = 10
	}
	if cfg.Block <= 0 {
		cfg.Block = 2 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStreamConsumer{
		client:     client,
		bus:        bus,
		serializer: serializer,
		bindings:   bindings,
		config:     cfg,
		logger:     logger,
	}
}

// Declare creates the stream and consumer group of every binding
func (c *RedisStreamConsumer) Declare(ctx context.Context) error {
	for _, b := range c.bindings {
		stream := StreamName(c.config.Exchange, b.RoutingKey)
		err := c.client.XGroupCreateMkStream(ctx, stream, b.Queue, "0").Err()
		if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
			return fmt.Errorf("failed to declare queue %s on %s: %w", b.Queue, stream, err)
		}
	}
	return nil
}

// Run declares the queues and polls until ctx is canceled
func (c *RedisStreamConsumer) Run(ctx context.Context) error {
	if err := c.Declare(ctx); err != nil {
		return err
	}
	c.logger.Info("stream consumer started",
		zap.String("exchange", c.config.Exchange),
		zap.String("consumer", c.config.Consumer),
		zap.Int("queues", len(c.bindings)),
	)

	for {
		if ctx.Err() != nil {
			return nil
		}
		if _, err := c.Poll(ctx); err != nil && ctx.Err() == nil {
			c.logger.Error("stream poll failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
		}
	}
}

// Poll reads each queue once, redelivering this consumer's pending messages
// before new ones, and returns how many messages were acknowledged.
func (c *RedisStreamConsumer) Poll(ctx context.Context) (int, error) {
	acked := 0
	var errs []error
	for _, b := range c.bindings {
		n, err := c.pollQueue(ctx, b)
		acked += n
		if err != nil {
			errs = append(errs, err)
		}
	}
	return acked, errors.Join(errs...)
}

func (c *RedisStreamConsumer) pollQueue(ctx context.Context, b Binding) (int, error) {
	stream := StreamName(c.config.Exchange, b.RoutingKey)

	acked := 0
	for _, start := range []string{"0", ">"} {
		args := &redis.XReadGroupArgs{
			Group:    b.Queue,
			Consumer: c.config.Consumer,
			Streams:  []string{stream, start},
			Count:    c.config.Count,
			Block:    -1,
		}
		if start == ">" {
			args.Block = c.config.Block
		}

		streams, err := c.client.XReadGroup(ctx, args).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return acked, fmt.Errorf("failed to read %s: %w", b.Queue, err)
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				if !c.handle(ctx, b, msg) {
					continue
				}
				if err := c.client.XAck(ctx, stream, b.Queue, msg.ID).Err(); err != nil {
					return acked, fmt.Errorf("failed to ack %s on %s: %w", msg.ID, b.Queue, err)
				}
				acked++
			}
		}
	}
	return acked, nil
}

func (c *RedisStreamConsumer) handle(ctx context.Context, b Binding, msg redis.XMessage) bool {
	eventType, _ := msg.Values[fieldEventType].(string)
	payload, _ := msg.Values[fieldPayload].(string)
	fields := []zap.Field{
		zap.String("queue", b.Queue),
		zap.String("message_id", msg.ID),
		zap.String("event_type", eventType),
	}

	event, err := c.serializer.Deserialize(eventType, []byte(payload))
	if err != nil {
		c.logger.Error("dropping undecodable message", append(fields, zap.Error(err))...)
		return true
	}

	if err := c.bus.Publish(ctx, event); err != nil {
		c.logger.Warn("message handling failed, leaving it pending", append(fields, zap.Error(err))...)
		return false
	}
	return true
}
