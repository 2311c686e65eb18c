package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type UpsertSupplierRequest struct {
	Name          string
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
}

type Service interface {
	Create(ctx context.Context, req UpsertSupplierRequest) (Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
	Get(ctx context.Context, id int64) (Supplier, error)
	Update(ctx context.Context, id int64, req UpsertSupplierRequest) (Supplier, error)
	// Delete removes the supplier. Purchases keep their rows; their
	// supplier reference is cleared in the same transaction.
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, supplier *Supplier) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Supplier, error)
	List(ctx context.Context, db *gorm.DB) ([]Supplier, error)
	Update(ctx context.Context, db *gorm.DB, supplier *Supplier) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	ClearPurchaseReferences(ctx context.Context, db *gorm.DB, supplierID int64) error
}

var (
	ErrNotFound    = errors.New("supplier_not_found")
	ErrInvalidName = errors.New("invalid_name")
)
