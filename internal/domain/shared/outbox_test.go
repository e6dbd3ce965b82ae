package shared

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEvent struct {
	BaseDomainEvent
}

func TestNewOutboxEntry(t *testing.T) {
	aggID := uuid.New()
	event := &stubEvent{BaseDomainEvent: NewBaseDomainEvent("ProductActivated", "Product", aggID)}

	entry := NewOutboxEntry(event, []byte(`{}`))

	assert.Equal(t, event.EventID(), entry.EventID)
	assert.Equal(t, "ProductActivated", entry.EventType)
	assert.Equal(t, aggID, entry.AggregateID)
	assert.Equal(t, "Product", entry.AggregateType)
	assert.Equal(t, OutboxStatusPending, entry.Status)
	assert.Equal(t, DefaultMaxRetries, entry.MaxRetries)
	assert.Zero(t, entry.RetryCount)
}

func TestOutboxEntry_MarkProcessing(t *testing.T) {
	t.Run("claims pending and failed entries", func(t *testing.T) {
		for _, status := range []OutboxStatus{OutboxStatusPending, OutboxStatusFailed} {
			entry := &OutboxEntry{Status: status}
			require.NoError(t, entry.MarkProcessing())
			assert.Equal(t, OutboxStatusProcessing, entry.Status)
		}
	})

	t.Run("rejects sent entries", func(t *testing.T) {
		entry := &OutboxEntry{Status: OutboxStatusSent}
		assert.Error(t, entry.MarkProcessing())
	})
}

func TestOutboxEntry_ResetForRetry(t *testing.T) {
	t.Run("resets dead letter entry for retry", func(t *testing.T) {
		entry := &OutboxEntry{
			ID:         uuid.New(),
			Status:     OutboxStatusDead,
			RetryCount: 5,
			MaxRetries: 5,
			LastError:  "some error",
			UpdatedAt:  time.Now().Add(-time.Minute),
		}

		require.NoError(t, entry.ResetForRetry())
		assert.Equal(t, OutboxStatusPending, entry.Status)
		assert.Equal(t, 0, entry.RetryCount)
		assert.Empty(t, entry.LastError)
		assert.Nil(t, entry.NextRetryAt)
	})

	t.Run("fails for non-dead entry", func(t *testing.T) {
		for _, status := range []OutboxStatus{OutboxStatusPending, OutboxStatusProcessing, OutboxStatusSent, OutboxStatusFailed} {
			entry := &OutboxEntry{Status: status}
			err := entry.ResetForRetry()
			assert.ErrorContains(t, err, "can only retry dead letter entries")
		}
	})
}

func TestOutboxEntry_MarkFailed(t *testing.T) {
	t.Run("moves to dead after max retries", func(t *testing.T) {
		entry := &OutboxEntry{Status: OutboxStatusProcessing, RetryCount: 4, MaxRetries: 5}

		entry.MarkFailed("final error")

		assert.True(t, entry.IsDead())
		assert.Equal(t, 5, entry.RetryCount)
		assert.Equal(t, "final error", entry.LastError)
		assert.False(t, entry.CanRetry())
	})

	t.Run("schedules exponential backoff", func(t *testing.T) {
		entry := &OutboxEntry{Status: OutboxStatusProcessing, MaxRetries: 5}

		entry.MarkFailed("error 1")
		require.NotNil(t, entry.NextRetryAt)
		first := time.Until(*entry.NextRetryAt)
		assert.True(t, first > 0 && first <= 2*time.Second)
		assert.True(t, entry.CanRetry())

		entry.MarkFailed("error 2")
		second := time.Until(*entry.NextRetryAt)
		assert.True(t, second > time.Second && second <= 3*time.Second)
	})
}
