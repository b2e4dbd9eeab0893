package repository

import (
	"Hoard/internal/models"
	"context"
	"gorm.io/gorm"
)

type LocationHistoryRepository interface {
	Append(ctx context.Context, entry *models.LocationHistory) error
	FindByItem(ctx context.Context, itemID string) ([]models.LocationHistory, error)
	FindAll(ctx context.Context) ([]models.LocationHistory, error)
	Trim(ctx context.Context, keep int) (int64, error)
	DeleteAll(ctx context.Context) error
}

type LocationHistoryRepositoryImpl struct {
	db *gorm.DB
}

func NewLocationHistoryRepository(db *gorm.DB) LocationHistoryRepository {
	return &LocationHistoryRepositoryImpl{db: db}
}

func (r *LocationHistoryRepositoryImpl) Append(ctx context.Context, entry *models.LocationHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *LocationHistoryRepositoryImpl) FindByItem(ctx context.Context, itemID string) ([]models.LocationHistory, error) {
	var entries []models.LocationHistory
	err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Order("seq DESC").Find(&entries).Error
	return entries, err
}

func (r *LocationHistoryRepositoryImpl) FindAll(ctx context.Context) ([]models.LocationHistory, error) {
	var entries []models.LocationHistory
	err := r.db.WithContext(ctx).Order("seq DESC").Find(&entries).Error
	return entries, err
}

func (r *LocationHistoryRepositoryImpl) Trim(ctx context.Context, keep int) (int64, error) {
	return trimBySeq(ctx, r.db, &models.LocationHistory{}, keep)
}

func (r *LocationHistoryRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.LocationHistory{}).Error
}
