package repository

import (
	"context"
	"errors"

	"github.com/hardwarepoint/inventory/internal/settings/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) First(ctx context.Context, db *gorm.DB) (*domain.Settings, error) {
	var s domain.Settings
	err := db.WithContext(ctx).Order("id ASC").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, settings *domain.Settings) error {
	return db.WithContext(ctx).Create(settings).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, settings *domain.Settings) error {
	return db.WithContext(ctx).Save(settings).Error
}
