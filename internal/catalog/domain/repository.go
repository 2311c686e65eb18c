package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository is transaction-agnostic: every call receives the database
// handle it must run on, so service-level units of work can span multiple
// repository calls.
type Repository interface {
	CreateCategory(ctx context.Context, db *gorm.DB, category *Category) error
	FindCategoryByID(ctx context.Context, db *gorm.DB, id int64) (*Category, error)
	ListCategories(ctx context.Context, db *gorm.DB) ([]Category, error)
	UpdateCategory(ctx context.Context, db *gorm.DB, category *Category) error
	DeleteCategory(ctx context.Context, db *gorm.DB, id int64) error

	CreateQuality(ctx context.Context, db *gorm.DB, quality *Quality) error
	FindQualityByID(ctx context.Context, db *gorm.DB, id int64) (*Quality, error)
	ListQualities(ctx context.Context, db *gorm.DB, categoryID int64) ([]Quality, error)
	DeleteQuality(ctx context.Context, db *gorm.DB, id int64) error

	CreateSize(ctx context.Context, db *gorm.DB, size *Size) error
	FindSizeByID(ctx context.Context, db *gorm.DB, id int64) (*Size, error)
	ListSizes(ctx context.Context, db *gorm.DB, categoryID int64) ([]Size, error)
	DeleteSize(ctx context.Context, db *gorm.DB, id int64) error

	CreateItem(ctx context.Context, db *gorm.DB, item *Item) error
	FindItemByID(ctx context.Context, db *gorm.DB, id int64) (*Item, error)
	// FindItemByIDForUpdate locks the item row (SELECT ... FOR UPDATE) so
	// concurrent stock mutations on the same item serialize.
	FindItemByIDForUpdate(ctx context.Context, db *gorm.DB, id int64) (*Item, error)
	FindItemByCombination(ctx context.Context, db *gorm.DB, categoryID, qualityID, sizeID int64) (*Item, error)
	ListItems(ctx context.Context, db *gorm.DB, filter ListItemsFilter) ([]Item, error)
	ListLowStockItems(ctx context.Context, db *gorm.DB) ([]Item, error)
	ListItemsByCategory(ctx context.Context, db *gorm.DB, categoryID int64) ([]Item, error)
	UpdateItem(ctx context.Context, db *gorm.DB, item *Item) error
	UpdateItemStock(ctx context.Context, db *gorm.DB, id int64, quantity float64) error
	DeleteItem(ctx context.Context, db *gorm.DB, id int64) error
	DeleteItemsByCategory(ctx context.Context, db *gorm.DB, categoryID int64) error
	CountTransactionLines(ctx context.Context, db *gorm.DB, itemID int64) (int64, error)
}
