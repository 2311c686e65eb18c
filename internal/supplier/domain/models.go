// Package domain contains the supplier directory used by the purchase flow.
package domain

import (
	"time"
)

type Supplier struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:text;not null" json:"name"`
	ContactPerson *string   `gorm:"type:text" json:"contact_person,omitempty"`
	Phone         *string   `gorm:"type:text" json:"phone,omitempty"`
	Email         *string   `gorm:"type:text" json:"email,omitempty"`
	Address       *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Supplier) TableName() string { return "suppliers" }
