// Package domain contains the purchase and sale ledger. Ledger rows are the
// system of record for every stock movement; deleting a ledger entry always
// reverses its stock effect.
package domain

import (
	"time"
)

type Purchase struct {
	ID            int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	SupplierID    *int64         `gorm:"index" json:"supplier_id,omitempty"`
	InvoiceNumber *string        `gorm:"type:text" json:"invoice_number,omitempty"`
	PurchaseDate  time.Time      `gorm:"not null;index" json:"purchase_date"`
	TotalAmount   float64        `gorm:"not null;default:0" json:"total_amount"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Items         []PurchaseItem `gorm:"foreignKey:PurchaseID" json:"items,omitempty"`
}

func (Purchase) TableName() string { return "purchases" }

type PurchaseItem struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PurchaseID    int64     `gorm:"not null;index" json:"purchase_id"`
	ItemID        int64     `gorm:"not null;index" json:"item_id"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	PurchasePrice float64   `gorm:"not null" json:"purchase_price"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (PurchaseItem) TableName() string { return "purchase_items" }

// Sale stores its aggregates denormalized for fast listing. Invoice
// assembly never trusts them; it recomputes from the lines.
type Sale struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleDate    time.Time  `gorm:"not null;index" json:"sale_date"`
	Subtotal    float64    `gorm:"not null;default:0" json:"subtotal"`
	GSTAmount   float64    `gorm:"column:gst_amount;not null;default:0" json:"gst_amount"`
	Discount    float64    `gorm:"not null;default:0" json:"discount"`
	TotalAmount float64    `gorm:"not null;default:0" json:"total_amount"`
	CreatedAt   time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Items       []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

func (Sale) TableName() string { return "sales" }

// SaleItem.LineTotal is tax inclusive: quantity*unit_price plus that line's
// GST portion.
type SaleItem struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleID        int64     `gorm:"not null;index" json:"sale_id"`
	ItemID        int64     `gorm:"not null;index" json:"item_id"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	UnitPrice     float64   `gorm:"not null" json:"unit_price"`
	GSTPercentage float64   `gorm:"not null" json:"gst_percentage"`
	LineTotal     float64   `gorm:"not null" json:"line_total"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SaleItem) TableName() string { return "sale_items" }
