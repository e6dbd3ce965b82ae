package event

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupOutboxDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := persistence.Open(sqlite.Open(":memory:"), nil)
	require.NoError(t, err)

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate())
	t.Cleanup(func() { _ = database.Close() })
	return database.DB
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB, DriverName: "postgres"}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func newEntry(t *testing.T) *shared.OutboxEntry {
	t.Helper()
	event := activatedEvent()
	payload, err := NewCatalogEventSerializer().Serialize(event)
	require.NoError(t, err)
	return shared.NewOutboxEntry(event, payload)
}

func TestGormOutboxRepository_SaveAndFind(t *testing.T) {
	db := setupOutboxDB(t)
	repo := NewGormOutboxRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx))

	older := newEntry(t)
	older.CreatedAt = time.Now().Add(-time.Minute)
	newer := newEntry(t)
	require.NoError(t, repo.Save(ctx, newer, older))

	pending, err := repo.FindPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, older.ID, pending[0].ID)
	assert.Equal(t, newer.ID, pending[1].ID)
	assert.JSONEq(t, string(older.Payload), string(pending[0].Payload))

	found, err := repo.FindByID(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, newer.EventID, found.EventID)
	assert.Equal(t, shared.OutboxStatusPending, found.Status)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormOutboxRepository_MarkProcessing(t *testing.T) {
	db := setupOutboxDB(t)
	repo := NewGormOutboxRepository(db)
	ctx := context.Background()

	entry := newEntry(t)
	require.NoError(t, repo.Save(ctx, entry))

	claimed, err := repo.MarkProcessing(ctx, []uuid.UUID{entry.ID})
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, shared.OutboxStatusProcessing, claimed[0].Status)

	again, err := repo.MarkProcessing(ctx, []uuid.UUID{entry.ID})
	require.NoError(t, err)
	assert.Empty(t, again)

	none, err := repo.MarkProcessing(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestGormOutboxRepository_MarkProcessing_SkipsLockedRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewGormOutboxRepository(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "outbox_events" WHERE .* FOR UPDATE SKIP LOCKED`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "event_id", "event_type", "aggregate_id", "aggregate_type", "payload",
			"status", "retry_count", "max_retries", "created_at", "updated_at",
		}).AddRow(id.String(), uuid.NewString(), "ProductActivated", uuid.NewString(), "Product", []byte(`{}`),
			"PENDING", 0, 5, now, now))
	mock.ExpectExec(`UPDATE "outbox_events" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	claimed, err := repo.MarkProcessing(context.Background(), []uuid.UUID{id})

	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, shared.OutboxStatusProcessing, claimed[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOutboxRepository_RetryableAndDead(t *testing.T) {
	db := setupOutboxDB(t)
	repo := NewGormOutboxRepository(db)
	ctx := context.Background()

	due := newEntry(t)
	due.MarkFailed("broker down")
	past := time.Now().Add(-time.Minute)
	due.NextRetryAt = &past

	later := newEntry(t)
	later.MarkFailed("broker down")

	dead := newEntry(t)
	dead.MaxRetries = 1
	dead.MarkFailed("broker down")
	require.True(t, dead.IsDead())

	require.NoError(t, repo.Save(ctx, due, later, dead))

	retryable, err := repo.FindRetryable(ctx, time.Now(), 10)
	require.NoError(t, err)
	require.Len(t, retryable, 1)
	assert.Equal(t, due.ID, retryable[0].ID)

	deadEntries, total, err := repo.FindDead(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, deadEntries, 1)
	assert.Equal(t, "broker down", deadEntries[0].LastError)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[shared.OutboxStatusFailed])
	assert.Equal(t, int64(1), counts[shared.OutboxStatusDead])
}

func TestGormOutboxRepository_UpdateAndDelete(t *testing.T) {
	db := setupOutboxDB(t)
	repo := NewGormOutboxRepository(db)
	ctx := context.Background()

	old := newEntry(t)
	fresh := newEntry(t)
	require.NoError(t, repo.Save(ctx, old, fresh))

	old.MarkSent()
	processed := time.Now().Add(-48 * time.Hour)
	old.ProcessedAt = &processed
	require.NoError(t, repo.Update(ctx, old))
	fresh.MarkSent()
	require.NoError(t, repo.Update(ctx, fresh))

	stored, err := repo.FindByID(ctx, old.ID)
	require.NoError(t, err)
	assert.Equal(t, shared.OutboxStatusSent, stored.Status)

	deleted, err := repo.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindByID(ctx, fresh.ID)
	assert.NoError(t, err)
}
