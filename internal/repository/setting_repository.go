package repository

import (
	"Hoard/internal/models"
	"context"
	"errors"
	"gorm.io/gorm"
)

type SettingRepository interface {
	Get(ctx context.Context, key string) (*models.Setting, error)
	Put(ctx context.Context, setting *models.Setting) error
}

type SettingRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &SettingRepositoryImpl{db: db}
}

func (r *SettingRepositoryImpl) Get(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).Where(&models.Setting{Key: key}).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepositoryImpl) Put(ctx context.Context, setting *models.Setting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}
