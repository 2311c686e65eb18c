package repository

import (
	"context"
	"errors"

	"github.com/hardwarepoint/inventory/internal/supplier/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, supplier *domain.Supplier) error {
	return db.WithContext(ctx).Create(supplier).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Supplier, error) {
	var s domain.Supplier
	err := db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := db.WithContext(ctx).Order("name ASC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, supplier *domain.Supplier) error {
	return db.WithContext(ctx).Save(supplier).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Supplier{}, "id = ?", id).Error
}

func (r *repo) ClearPurchaseReferences(ctx context.Context, db *gorm.DB, supplierID int64) error {
	return db.WithContext(ctx).
		Table("purchases").
		Where("supplier_id = ?", supplierID).
		Update("supplier_id", nil).Error
}
