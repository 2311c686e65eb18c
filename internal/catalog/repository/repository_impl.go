package repository

import (
	"context"
	"errors"

	"github.com/hardwarepoint/inventory/internal/catalog/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CreateCategory(ctx context.Context, db *gorm.DB, category *domain.Category) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *repo) FindCategoryByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Category, error) {
	var c domain.Category
	err := db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) ListCategories(ctx context.Context, db *gorm.DB) ([]domain.Category, error) {
	var items []domain.Category
	if err := db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateCategory(ctx context.Context, db *gorm.DB, category *domain.Category) error {
	return db.WithContext(ctx).Save(category).Error
}

func (r *repo) DeleteCategory(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Category{}, "id = ?", id).Error
}

func (r *repo) CreateQuality(ctx context.Context, db *gorm.DB, quality *domain.Quality) error {
	return db.WithContext(ctx).Create(quality).Error
}

func (r *repo) FindQualityByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Quality, error) {
	var q domain.Quality
	err := db.WithContext(ctx).First(&q, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *repo) ListQualities(ctx context.Context, db *gorm.DB, categoryID int64) ([]domain.Quality, error) {
	var items []domain.Quality
	stmt := db.WithContext(ctx).Model(&domain.Quality{})
	if categoryID != 0 {
		stmt = stmt.Where("category_id = ?", categoryID)
	}
	if err := stmt.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteQuality(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Quality{}, "id = ?", id).Error
}

func (r *repo) CreateSize(ctx context.Context, db *gorm.DB, size *domain.Size) error {
	return db.WithContext(ctx).Create(size).Error
}

func (r *repo) FindSizeByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Size, error) {
	var s domain.Size
	err := db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repo) ListSizes(ctx context.Context, db *gorm.DB, categoryID int64) ([]domain.Size, error) {
	var items []domain.Size
	stmt := db.WithContext(ctx).Model(&domain.Size{})
	if categoryID != 0 {
		stmt = stmt.Where("category_id = ?", categoryID)
	}
	if err := stmt.Order("sort_order ASC, size_value ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteSize(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Size{}, "id = ?", id).Error
}

func (r *repo) CreateItem(ctx context.Context, db *gorm.DB, item *domain.Item) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *repo) FindItemByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Item, error) {
	var item domain.Item
	err := db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) FindItemByIDForUpdate(ctx context.Context, db *gorm.DB, id int64) (*domain.Item, error) {
	query := db.WithContext(ctx)
	// sqlite serializes writers with a database level lock and rejects
	// FOR UPDATE syntax outright.
	if db.Dialector.Name() != "sqlite" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var item domain.Item
	err := query.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) FindItemByCombination(ctx context.Context, db *gorm.DB, categoryID, qualityID, sizeID int64) (*domain.Item, error) {
	var item domain.Item
	err := db.WithContext(ctx).
		Where("category_id = ? AND quality_id = ? AND size_id = ?", categoryID, qualityID, sizeID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repo) ListItems(ctx context.Context, db *gorm.DB, filter domain.ListItemsFilter) ([]domain.Item, error) {
	var items []domain.Item
	stmt := db.WithContext(ctx).Model(&domain.Item{})

	if filter.CategoryID != 0 {
		stmt = stmt.Where("category_id = ?", filter.CategoryID)
	}
	if filter.QualityID != 0 {
		stmt = stmt.Where("quality_id = ?", filter.QualityID)
	}
	if filter.SizeID != 0 {
		stmt = stmt.Where("size_id = ?", filter.SizeID)
	}
	if filter.LowStockOnly {
		stmt = stmt.Where("stock_quantity <= low_stock_threshold")
	}
	if filter.Offset > 0 {
		stmt = stmt.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		stmt = stmt.Limit(filter.Limit)
	}

	if err := stmt.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListLowStockItems(ctx context.Context, db *gorm.DB) ([]domain.Item, error) {
	var items []domain.Item
	err := db.WithContext(ctx).
		Where("stock_quantity <= low_stock_threshold").
		Order("stock_quantity ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListItemsByCategory(ctx context.Context, db *gorm.DB, categoryID int64) ([]domain.Item, error) {
	var items []domain.Item
	err := db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateItem(ctx context.Context, db *gorm.DB, item *domain.Item) error {
	return db.WithContext(ctx).Save(item).Error
}

func (r *repo) UpdateItemStock(ctx context.Context, db *gorm.DB, id int64, quantity float64) error {
	return db.WithContext(ctx).
		Model(&domain.Item{}).
		Where("id = ?", id).
		Update("stock_quantity", quantity).Error
}

func (r *repo) DeleteItem(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&domain.Item{}, "id = ?", id).Error
}

func (r *repo) DeleteItemsByCategory(ctx context.Context, db *gorm.DB, categoryID int64) error {
	return db.WithContext(ctx).Delete(&domain.Item{}, "category_id = ?", categoryID).Error
}

func (r *repo) CountTransactionLines(ctx context.Context, db *gorm.DB, itemID int64) (int64, error) {
	var purchaseLines int64
	if err := db.WithContext(ctx).
		Table("purchase_items").
		Where("item_id = ?", itemID).
		Count(&purchaseLines).Error; err != nil {
		return 0, err
	}

	var saleLines int64
	if err := db.WithContext(ctx).
		Table("sale_items").
		Where("item_id = ?", itemID).
		Count(&saleLines).Error; err != nil {
		return 0, err
	}

	return purchaseLines + saleLines, nil
}
