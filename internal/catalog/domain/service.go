package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type CreateCategoryRequest struct {
	Name        string
	Description *string
}

type CreateQualityRequest struct {
	CategoryID  int64
	Name        string
	Description *string
}

type CreateSizeRequest struct {
	CategoryID  int64
	SizeValue   string
	SizeDisplay string
	SortOrder   int
}

type CreateItemRequest struct {
	CategoryID        int64
	QualityID         int64
	SizeID            int64
	SKU               *string
	Unit              string
	SellingPrice      float64
	GSTPercentage     float64
	StockQuantity     float64
	LowStockThreshold float64
}

// BulkCreateItemsRequest creates every quality x size combination that does
// not exist yet for the category, with a generated SKU.
type BulkCreateItemsRequest struct {
	CategoryID       int64
	QualityIDs       []int64
	SizeIDs          []int64
	Unit             string
	DefaultPrice     float64
	DefaultGST       float64
	DefaultThreshold float64
}

type ListItemsFilter struct {
	CategoryID   int64
	QualityID    int64
	SizeID       int64
	LowStockOnly bool
	Offset       int
	Limit        int
}

// ItemsTable is the quality x size grid for one category, used by the
// inventory matrix view.
type ItemsTable struct {
	CategoryID int64                    `json:"category_id"`
	Qualities  []Quality                `json:"qualities"`
	Sizes      []Size                   `json:"sizes"`
	Items      map[string]ItemTableCell `json:"items"`
}

type ItemTableCell struct {
	ID                int64   `json:"id"`
	SKU               *string `json:"sku,omitempty"`
	StockQuantity     float64 `json:"stock_quantity"`
	SellingPrice      float64 `json:"selling_price"`
	Unit              string  `json:"unit"`
	GSTPercentage     float64 `json:"gst_percentage"`
	LowStockThreshold float64 `json:"low_stock_threshold"`
	IsLowStock        bool    `json:"is_low_stock"`
}

// StockChange reports the before/after quantities of a guarded stock mutation.
type StockChange struct {
	ItemID   int64
	SKU      string
	OldStock float64
	NewStock float64
}

type Service interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (Category, error)
	UpdateCategory(ctx context.Context, id int64, req CreateCategoryRequest) (Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateQuality(ctx context.Context, req CreateQualityRequest) (Quality, error)
	ListQualities(ctx context.Context, categoryID int64) ([]Quality, error)
	GetQuality(ctx context.Context, id int64) (Quality, error)
	DeleteQuality(ctx context.Context, id int64) error

	CreateSize(ctx context.Context, req CreateSizeRequest) (Size, error)
	ListSizes(ctx context.Context, categoryID int64) ([]Size, error)
	GetSize(ctx context.Context, id int64) (Size, error)
	DeleteSize(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, req CreateItemRequest) (Item, error)
	BulkCreateItems(ctx context.Context, req BulkCreateItemsRequest) ([]Item, error)
	ListItems(ctx context.Context, filter ListItemsFilter) ([]Item, error)
	ListLowStockItems(ctx context.Context) ([]Item, error)
	GetItem(ctx context.Context, id int64) (Item, error)
	GetItemsTable(ctx context.Context, categoryID int64) (ItemsTable, error)
	UpdateItem(ctx context.Context, id int64, patch ItemPatch) (Item, error)
	SetStock(ctx context.Context, id int64, quantity float64) (Item, error)
	DeleteItem(ctx context.Context, id int64) error

	// AdjustStock applies a signed delta to the item's stock inside the
	// caller's transaction, locking the row first. It is the single
	// enforcement point of the no-negative-stock invariant for ledger
	// driven changes.
	AdjustStock(ctx context.Context, tx *gorm.DB, itemID int64, delta float64) (StockChange, error)
}

var (
	ErrNotFound          = errors.New("not_found")
	ErrItemNotFound      = errors.New("item_not_found")
	ErrInsufficientStock = errors.New("insufficient_stock")
	ErrNegativeStock     = errors.New("negative_stock")
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidCategory   = errors.New("invalid_category")
	ErrInvalidQuality    = errors.New("invalid_quality")
	ErrInvalidSize       = errors.New("invalid_size")
	ErrInvalidPrice      = errors.New("invalid_price")
	ErrInvalidGST        = errors.New("invalid_gst")
	ErrInvalidThreshold  = errors.New("invalid_threshold")
	ErrDuplicateSKU      = errors.New("duplicate_sku")
	ErrDuplicateName     = errors.New("duplicate_name")
	ErrDuplicateItem     = errors.New("duplicate_item")
	ErrItemInUse         = errors.New("item_in_use")
)
