// Package domain holds the shop profile printed on invoices. The table has
// exactly one row; reads create it with defaults when missing.
package domain

import (
	"time"
)

type Settings struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopName    string    `gorm:"type:text;not null;default:'Hardware Point'" json:"shop_name"`
	ShopAddress *string   `gorm:"type:text" json:"shop_address,omitempty"`
	ShopPhone   *string   `gorm:"type:text" json:"shop_phone,omitempty"`
	ShopEmail   *string   `gorm:"type:text" json:"shop_email,omitempty"`
	ShopGSTIN   *string   `gorm:"column:shop_gstin;type:text" json:"shop_gstin,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Settings) TableName() string { return "settings" }

func strptr(s string) *string { return &s }

// DefaultSettings is stored on first read when the table is empty.
func DefaultSettings() Settings {
	return Settings{
		ShopName:    "Hardware Point",
		ShopAddress: strptr("Shop Address Line 1\nCity, State - PIN Code"),
		ShopPhone:   strptr("+91 XXXXXXXXXX"),
		ShopEmail:   strptr("info@hardwarepoint.com"),
		ShopGSTIN:   strptr("22AAAAA0000A1Z5"),
	}
}
