package repository

import (
	"context"
	"errors"
	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// FindByID returns nil without an error when no row matches.
func (r *GenericRepositoryImpl[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *GenericRepositoryImpl[T]) Delete(ctx context.Context, id string) error {
	var entity T
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity).Error
}

// trimBySeq keeps the newest keep rows of model ordered by seq and deletes
// the rest.
func trimBySeq(ctx context.Context, db *gorm.DB, model any, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	newest := db.WithContext(ctx).Model(model).Select("seq").Order("seq DESC").Limit(keep)
	result := db.WithContext(ctx).Where("seq NOT IN (?)", newest).Delete(model)
	return result.RowsAffected, result.Error
}
