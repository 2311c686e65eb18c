package repository

import (
	"context"
	"errors"

	"github.com/hardwarepoint/inventory/internal/ledger/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CreatePurchase(ctx context.Context, db *gorm.DB, purchase *domain.Purchase) error {
	return db.WithContext(ctx).Create(purchase).Error
}

func (r *repo) FindPurchaseByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Purchase, error) {
	var purchase domain.Purchase
	err := db.WithContext(ctx).Preload("Items").First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *repo) ListPurchases(ctx context.Context, db *gorm.DB, filter domain.ListPurchasesFilter) ([]domain.Purchase, error) {
	var purchases []domain.Purchase
	stmt := db.WithContext(ctx).Model(&domain.Purchase{})

	if filter.SupplierID != 0 {
		stmt = stmt.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.StartDate != nil {
		stmt = stmt.Where("purchase_date >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		stmt = stmt.Where("purchase_date <= ?", filter.EndDate.UTC())
	}
	if filter.Offset > 0 {
		stmt = stmt.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	if err := stmt.Order("purchase_date desc, id desc").Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *repo) DeletePurchaseLines(ctx context.Context, db *gorm.DB, purchaseID int64) error {
	return db.WithContext(ctx).Delete(&domain.PurchaseItem{}, "purchase_id = ?", purchaseID).Error
}

func (r *repo) DeletePurchase(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Purchase{}, "id = ?", id).Error
}

func (r *repo) CreateSale(ctx context.Context, db *gorm.DB, sale *domain.Sale) error {
	return db.WithContext(ctx).Create(sale).Error
}

func (r *repo) FindSaleByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Sale, error) {
	var sale domain.Sale
	err := db.WithContext(ctx).Preload("Items").First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *repo) ListSales(ctx context.Context, db *gorm.DB, filter domain.ListSalesFilter) ([]domain.Sale, error) {
	var sales []domain.Sale
	stmt := db.WithContext(ctx).Model(&domain.Sale{})

	if filter.StartDate != nil {
		stmt = stmt.Where("sale_date >= ?", filter.StartDate.UTC())
	}
	if filter.EndDate != nil {
		stmt = stmt.Where("sale_date <= ?", filter.EndDate.UTC())
	}
	if filter.Offset > 0 {
		stmt = stmt.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	if err := stmt.Order("sale_date desc, id desc").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *repo) DeleteSaleLines(ctx context.Context, db *gorm.DB, saleID int64) error {
	return db.WithContext(ctx).Delete(&domain.SaleItem{}, "sale_id = ?", saleID).Error
}

func (r *repo) DeleteSale(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Sale{}, "id = ?", id).Error
}
