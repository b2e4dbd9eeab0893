package repository

import (
	"Hoard/internal/models"
	"context"
	"gorm.io/gorm"
)

// EventQuery narrows an event listing. Zero values are not applied.
type EventQuery struct {
	ItemID string
	Types  []models.EventType
	Limit  int
}

type EventRepository interface {
	Append(ctx context.Context, event *models.Event) error
	List(ctx context.Context, query EventQuery) ([]models.Event, error)
	Count(ctx context.Context) (int64, error)
	Trim(ctx context.Context, keep int) (int64, error)
	DeleteAll(ctx context.Context) error
}

type EventRepositoryImpl struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) Append(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// List returns events newest first.
func (r *EventRepositoryImpl) List(ctx context.Context, query EventQuery) ([]models.Event, error) {
	var events []models.Event
	tx := r.db.WithContext(ctx).Order("seq DESC")
	if query.ItemID != "" {
		tx = tx.Where("item_id = ?", query.ItemID)
	}
	if len(query.Types) > 0 {
		tx = tx.Where("type IN ?", query.Types)
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}
	err := tx.Find(&events).Error
	return events, err
}

func (r *EventRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&count).Error
	return count, err
}

func (r *EventRepositoryImpl) Trim(ctx context.Context, keep int) (int64, error) {
	return trimBySeq(ctx, r.db, &models.Event{}, keep)
}

func (r *EventRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Event{}).Error
}
