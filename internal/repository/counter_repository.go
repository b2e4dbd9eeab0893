package repository

import (
	"Hoard/internal/models"
	"context"
	"errors"
	"gorm.io/gorm"
)

type CounterRepository interface {
	// Next increments the named counter and returns the new value. Callers
	// run it inside the transaction that consumes the value.
	Next(ctx context.Context, name string) (int64, error)
	Current(ctx context.Context, name string) (int64, error)
}

type CounterRepositoryImpl struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) CounterRepository {
	return &CounterRepositoryImpl{db: db}
}

func (r *CounterRepositoryImpl) Next(ctx context.Context, name string) (int64, error) {
	counter := models.Counter{Name: name}
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&counter).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	counter.Value++
	if err := r.db.WithContext(ctx).Save(&counter).Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}

func (r *CounterRepositoryImpl) Current(ctx context.Context, name string) (int64, error) {
	var counter models.Counter
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return counter.Value, nil
}
