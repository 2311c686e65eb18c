// Package domain contains persistence models for the item catalog.
package domain

import (
	"time"
)

// Category is the top level of the Category > Quality > Size hierarchy.
type Category struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Category) TableName() string { return "categories" }

type Quality struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  int64     `gorm:"not null;index" json:"category_id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Quality) TableName() string { return "qualities" }

// Size carries both the raw value ("8") and the display form ("8mm (5/16\")").
type Size struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  int64     `gorm:"not null;index" json:"category_id"`
	SizeValue   string    `gorm:"type:text;not null" json:"size_value"`
	SizeDisplay string    `gorm:"type:text;not null" json:"size_display"`
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Size) TableName() string { return "sizes" }

// Item is one sellable combination of category, quality and size.
// StockQuantity is the authoritative stock level; it never goes below zero
// and is only mutated through the catalog service.
type Item struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID        int64     `gorm:"not null;index" json:"category_id"`
	QualityID         int64     `gorm:"not null;index" json:"quality_id"`
	SizeID            int64     `gorm:"not null;index" json:"size_id"`
	SKU               *string   `gorm:"type:text;uniqueIndex" json:"sku,omitempty"`
	Unit              string    `gorm:"type:text;not null;default:'pcs'" json:"unit"`
	SellingPrice      float64   `gorm:"not null;default:0" json:"selling_price"`
	GSTPercentage     float64   `gorm:"not null;default:0" json:"gst_percentage"`
	StockQuantity     float64   `gorm:"not null;default:0;index" json:"stock_quantity"`
	LowStockThreshold float64   `gorm:"not null;default:10" json:"low_stock_threshold"`
	CreatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Item) TableName() string { return "items" }

// SKULabel returns the SKU or a stable fallback for error messages.
func (i Item) SKULabel() string {
	if i.SKU != nil && *i.SKU != "" {
		return *i.SKU
	}
	return "item"
}

// IsLowStock reports whether the item sits at or below its threshold.
func (i Item) IsLowStock() bool {
	return i.StockQuantity <= i.LowStockThreshold
}
