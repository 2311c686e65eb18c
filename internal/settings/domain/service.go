package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type UpdateSettingsRequest struct {
	ShopName    string
	ShopAddress *string
	ShopPhone   *string
	ShopEmail   *string
	ShopGSTIN   *string
}

type Service interface {
	// Get returns the shop profile, creating the default row if none exists.
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (Settings, error)
}

type Repository interface {
	First(ctx context.Context, db *gorm.DB) (*Settings, error)
	Create(ctx context.Context, db *gorm.DB, settings *Settings) error
	Update(ctx context.Context, db *gorm.DB, settings *Settings) error
}

var ErrInvalidShopName = errors.New("invalid_shop_name")
