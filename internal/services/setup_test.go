package services

import (
	"Hoard/database"
	"Hoard/internal/config"
	"Hoard/internal/dto"
	"Hoard/internal/metrics"
	"Hoard/internal/models"
	"Hoard/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type testEnv struct {
	db            *gorm.DB
	repos         *repository.Repositories
	configuration *config.Configuration
	clock         *fakeClock
	metrics       *metrics.Metrics
	records       RecordService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	repos := repository.NewRepositories(db)
	configuration := config.Default()
	clock := &fakeClock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	m := metrics.NewMetrics()
	return &testEnv{
		db:            db,
		repos:         repos,
		configuration: configuration,
		clock:         clock,
		metrics:       m,
		records:       NewRecordService(repos, configuration, NewDiscardLogService(), m, clock.Now),
	}
}

func (e *testEnv) section(t *testing.T, name string) *models.Record {
	t.Helper()
	section, err := e.records.Create(context.Background(), dto.RecordDraftDTO{Kind: models.KindSection, Name: name})
	require.NoError(t, err)
	return section
}

func (e *testEnv) item(t *testing.T, draft dto.RecordDraftDTO) *models.Record {
	t.Helper()
	draft.Kind = models.KindItem
	item, err := e.records.Create(context.Background(), draft)
	require.NoError(t, err)
	return item
}

func (e *testEnv) eventTypes(t *testing.T, itemID string) []models.EventType {
	t.Helper()
	events, err := e.records.Events(context.Background(), dto.EventFilterDTO{ItemID: itemID})
	require.NoError(t, err)
	types := make([]models.EventType, 0, len(events))
	for _, event := range events {
		types = append(types, event.Type)
	}
	return types
}

func ptr[T any](v T) *T {
	return &v
}
