package event

import (
	"context"
	"sync"
	"time"

	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// OutboxProcessorConfig controls polling and cleanup of the outbox
type OutboxProcessorConfig struct {
	BatchSize        int
	PollInterval     time.Duration
	CleanupEnabled   bool
	CleanupRetention time.Duration
	CleanupInterval  time.Duration
}

// DefaultOutboxProcessorConfig returns the defaults used when nothing is configured
func DefaultOutboxProcessorConfig() OutboxProcessorConfig {
	return OutboxProcessorConfig{
		BatchSize:        100,
		PollInterval:     5 * time.Second,
		CleanupEnabled:   true,
		CleanupRetention: 7 * 24 * time.Hour,
		CleanupInterval:  time.Hour,
	}
}

// OutboxProcessorConfigFrom maps the event config section onto processor settings
func OutboxProcessorConfigFrom(cfg config.EventConfig) OutboxProcessorConfig {
	c := DefaultOutboxProcessorConfig()
	if cfg.BatchSize > 0 {
		c.BatchSize = cfg.BatchSize
	}
	if cfg.PollInterval > 0 {
		c.PollInterval = cfg.PollInterval
	}
	c.CleanupEnabled = cfg.CleanupEnabled
	if cfg.CleanupRetention > 0 {
		c.CleanupRetention = cfg.CleanupRetention
	}
	return c
}

// RelayMetrics receives one call per outbox entry the processor finishes with
type RelayMetrics interface {
	RecordRelay(ctx context.Context, eventType string, status shared.OutboxStatus)
}

// OutboxProcessor polls the outbox and publishes each claimed entry to the event bus.
// Publishing failures are retried with the entry's backoff until it goes dead.
type OutboxProcessor struct {
	repo       shared.OutboxRepository
	eventBus   shared.EventPublisher
	serializer *EventSerializer
	config     OutboxProcessorConfig
	logger     *zap.Logger
	metrics    RelayMetrics

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOutboxProcessor creates a new outbox processor
func NewOutboxProcessor(
	repo shared.OutboxRepository,
	eventBus shared.EventPublisher,
	serializer *EventSerializer,
	config OutboxProcessorConfig,
	logger *zap.Logger,
) *OutboxProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OutboxProcessor{
		repo:       repo,
		eventBus:   eventBus,
		serializer: serializer,
		config:     config,
		logger:     logger,
	}
}

// SetMetrics attaches a relay metrics sink
func (p *OutboxProcessor) SetMetrics(m RelayMetrics) {
	p.metrics = m
}

// Start launches the poll loop and, when enabled, the cleanup loop
func (p *OutboxProcessor) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.processLoop(ctx)

	if p.config.CleanupEnabled {
		p.wg.Add(1)
		go p.cleanupLoop(ctx)
	}

	p.logger.Info("outbox processor started",
		zap.Int("batch_size", p.config.BatchSize),
		zap.Duration("poll_interval", p.config.PollInterval),
	)
	return nil
}

// Stop cancels the loops and waits for them until ctx expires
func (p *OutboxProcessor) Stop(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("outbox processor stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *OutboxProcessor) processLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := p.ProcessBatch(ctx); err != nil && ctx.Err() == nil {
				p.logger.Error("outbox batch failed", zap.Error(err))
			}
		}
	}
}

// ProcessBatch relays one batch of pending entries followed by the retryable
// ones that are due. It returns how many entries were delivered.
func (p *OutboxProcessor) ProcessBatch(ctx context.Context) (int, error) {
	pending, err := p.repo.FindPending(ctx, p.config.BatchSize)
	if err != nil {
		return 0, err
	}
	sent, err := p.processEntries(ctx, pending)
	if err != nil {
		return sent, err
	}

	retryable, err := p.repo.FindRetryable(ctx, time.Now(), p.config.BatchSize)
	if err != nil {
		return sent, err
	}
	retried, err := p.processEntries(ctx, retryable)
	return sent + retried, err
}

func (p *OutboxProcessor) processEntries(ctx context.Context, entries []*shared.OutboxEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	ids := lo.Map(entries, func(e *shared.OutboxEntry, _ int) uuid.UUID { return e.ID })
	claimed, err := p.repo.MarkProcessing(ctx, ids)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, entry := range claimed {
		if p.processEntry(ctx, entry) {
			sent++
		}
	}
	return sent, nil
}

func (p *OutboxProcessor) processEntry(ctx context.Context, entry *shared.OutboxEntry) bool {
	fields := []zap.Field{
		zap.String("event_id", entry.EventID.String()),
		zap.String("event_type", entry.EventType),
		zap.String("aggregate_id", entry.AggregateID.String()),
	}

	event, err := p.serializer.Deserialize(entry.EventType, entry.Payload)
	if err == nil {
		err = p.eventBus.Publish(ctx, event)
	}
	if err != nil {
		p.fail(ctx, entry, err, fields)
		return false
	}

	entry.MarkSent()
	if err := p.repo.Update(ctx, entry); err != nil {
		p.logger.Error("failed to mark outbox entry as sent", append(fields, zap.Error(err))...)
		return false
	}
	p.record(ctx, entry)
	p.logger.Debug("outbox entry relayed", fields...)
	return true
}

func (p *OutboxProcessor) fail(ctx context.Context, entry *shared.OutboxEntry, cause error, fields []zap.Field) {
	entry.MarkFailed(cause.Error())
	p.logger.Error("failed to relay outbox entry", append(fields,
		zap.Int("retry_count", entry.RetryCount),
		zap.Error(cause),
	)...)
	if entry.IsDead() {
		p.logger.Warn("outbox entry moved to dead letter", append(fields,
			zap.String("aggregate_type", entry.AggregateType),
			zap.Int("retry_count", entry.RetryCount),
			zap.String("last_error", entry.LastError),
		)...)
	}
	if err := p.repo.Update(ctx, entry); err != nil {
		p.logger.Error("failed to update outbox entry", append(fields, zap.Error(err))...)
		return
	}
	p.record(ctx, entry)
}

func (p *OutboxProcessor) record(ctx context.Context, entry *shared.OutboxEntry) {
	if p.metrics != nil {
		p.metrics.RecordRelay(ctx, entry.EventType, entry.Status)
	}
}

func (p *OutboxProcessor) cleanupLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Cleanup(ctx)
		}
	}
}

// Cleanup deletes sent entries older than the retention window
func (p *OutboxProcessor) Cleanup(ctx context.Context) int64 {
	cutoff := time.Now().Add(-p.config.CleanupRetention)
	deleted, err := p.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		p.logger.Error("failed to clean up outbox entries", zap.Error(err))
		return 0
	}
	if deleted > 0 {
		p.logger.Info("cleaned up outbox entries",
			zap.Int64("deleted", deleted),
			zap.Time("cutoff", cutoff),
		)
	}
	return deleted
}
