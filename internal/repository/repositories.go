package repository

import (
	"context"
	"gorm.io/gorm"
)

// Repositories groups the repositories that share one gorm handle, either the
// database or a transaction.
type Repositories struct {
	Records   RecordRepository
	Events    EventRepository
	Locations LocationHistoryRepository
	Counters  CounterRepository
	Settings  SettingRepository

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Records:   NewRecordRepository(db),
		Events:    NewEventRepository(db),
		Locations: NewLocationHistoryRepository(db),
		Counters:  NewCounterRepository(db),
		Settings:  NewSettingRepository(db),
		db:        db,
	}
}

// Transaction runs fn against repositories bound to a single transaction.
// Nothing fn writes is visible unless it returns nil.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
