package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type PurchaseLine struct {
	ItemID        int64   `json:"item_id"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
}

type CreatePurchaseRequest struct {
	SupplierID    *int64
	InvoiceNumber *string
	PurchaseDate  *time.Time
	Notes         *string
	Lines         []PurchaseLine
}

type SaleLine struct {
	ItemID        int64   `json:"item_id"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	GSTPercentage float64 `json:"gst_percentage"`
}

type CreateSaleRequest struct {
	SaleDate *time.Time
	Discount float64
	Lines    []SaleLine
}

type ListPurchasesFilter struct {
	SupplierID int64
	StartDate  *time.Time
	EndDate    *time.Time
	Offset     int
	Limit      int
}

type ListSalesFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Offset    int
	Limit     int
}

type Service interface {
	// CreatePurchase records incoming stock: header, lines and the stock
	// increments commit as one transaction.
	CreatePurchase(ctx context.Context, req CreatePurchaseRequest) (Purchase, error)
	GetPurchase(ctx context.Context, id int64) (Purchase, error)
	ListPurchases(ctx context.Context, filter ListPurchasesFilter) ([]Purchase, error)
	// DeletePurchase reverses the purchase's stock effect. If any deduction
	// would drive an item below zero the whole deletion fails.
	DeletePurchase(ctx context.Context, id int64) error

	// CreateSale deducts stock for every line or fails without touching
	// anything.
	CreateSale(ctx context.Context, req CreateSaleRequest) (Sale, error)
	GetSale(ctx context.Context, id int64) (Sale, error)
	ListSales(ctx context.Context, filter ListSalesFilter) ([]Sale, error)
	// DeleteSale restores the sold quantities and removes the sale.
	DeleteSale(ctx context.Context, id int64) error
}

type Repository interface {
	CreatePurchase(ctx context.Context, db *gorm.DB, purchase *Purchase) error
	FindPurchaseByID(ctx context.Context, db *gorm.DB, id int64) (*Purchase, error)
	ListPurchases(ctx context.Context, db *gorm.DB, filter ListPurchasesFilter) ([]Purchase, error)
	DeletePurchaseLines(ctx context.Context, db *gorm.DB, purchaseID int64) error
	DeletePurchase(ctx context.Context, db *gorm.DB, id int64) error

	CreateSale(ctx context.Context, db *gorm.DB, sale *Sale) error
	FindSaleByID(ctx context.Context, db *gorm.DB, id int64) (*Sale, error)
	ListSales(ctx context.Context, db *gorm.DB, filter ListSalesFilter) ([]Sale, error)
	DeleteSaleLines(ctx context.Context, db *gorm.DB, saleID int64) error
	DeleteSale(ctx context.Context, db *gorm.DB, id int64) error
}

var (
	ErrPurchaseNotFound    = errors.New("purchase_not_found")
	ErrSaleNotFound        = errors.New("sale_not_found")
	ErrNoLines             = errors.New("no_lines")
	ErrInvalidQuantity     = errors.New("invalid_quantity")
	ErrInvalidPrice        = errors.New("invalid_price")
	ErrInvalidGST          = errors.New("invalid_gst")
	ErrInvalidDiscount     = errors.New("invalid_discount")
	ErrInvalidSupplier     = errors.New("invalid_supplier")
	ErrWouldUnderflowStock = errors.New("would_underflow_stock")
)

// UnderflowError explains why a purchase deletion was refused: reversing
// the purchase would take the named item's stock below zero.
type UnderflowError struct {
	ItemID    int64
	SKU       string
	Available float64
	Requested float64
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("cannot delete purchase: would result in negative stock for item %s (available %g, to deduct %g)",
		e.SKU, e.Available, e.Requested)
}

func (e *UnderflowError) Unwrap() error { return ErrWouldUnderflowStock }
