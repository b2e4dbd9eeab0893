package repository

import (
	"Hoard/internal/models"
	"context"
	"gorm.io/gorm"
)

type RecordRepository interface {
	GenericRepository[models.Record]
	FindBySection(ctx context.Context, sectionID string) ([]models.Record, error)
	FindOnLoan(ctx context.Context) ([]models.Record, error)
	FindChildren(ctx context.Context, parentID string) ([]models.Record, error)
	DeleteAll(ctx context.Context) error
}

type RecordRepositoryImpl[T models.Record] struct {
	GenericRepository[models.Record]
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &RecordRepositoryImpl[models.Record]{
		GenericRepository: NewGenericRepository[models.Record](db),
		db:                db,
	}
}

// FindAll returns records in serial order so every read of the collection
// sees the same input order. Sections share serial zero and come first in
// creation order.
func (r *RecordRepositoryImpl[T]) FindAll(ctx context.Context) ([]models.Record, error) {
	var records []models.Record
	err := r.db.WithContext(ctx).Order("serial_number ASC, created_at ASC, id ASC").Find(&records).Error
	return records, err
}

func (r *RecordRepositoryImpl[T]) FindBySection(ctx context.Context, sectionID string) ([]models.Record, error) {
	var records []models.Record
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("serial_number ASC").
		Find(&records).Error
	return records, err
}

func (r *RecordRepositoryImpl[T]) FindOnLoan(ctx context.Context) ([]models.Record, error) {
	var records []models.Record
	err := r.db.WithContext(ctx).
		Where("is_on_loan = ?", true).
		Order("loaned_at ASC, serial_number ASC").
		Find(&records).Error
	return records, err
}

func (r *RecordRepositoryImpl[T]) FindChildren(ctx context.Context, parentID string) ([]models.Record, error) {
	var records []models.Record
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("serial_number ASC").
		Find(&records).Error
	return records, err
}

func (r *RecordRepositoryImpl[T]) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Record{}).Error
}
