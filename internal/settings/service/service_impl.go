package service

import (
	"context"
	"strings"

	auditdomain "github.com/hardwarepoint/inventory/internal/audit/domain"
	"github.com/hardwarepoint/inventory/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Repo  domain.Repository
	Audit auditdomain.Service
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	audit auditdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("settings.service"),
		repo:  p.Repo,
		audit: p.Audit,
	}
}

func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	var result domain.Settings
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.First(ctx, tx)
		if err != nil {
			return err
		}
		if existing != nil {
			result = *existing
			return nil
		}

		defaults := domain.DefaultSettings()
		if err := s.repo.Create(ctx, tx, &defaults); err != nil {
			return err
		}
		result = defaults
		return s.audit.Record(ctx, tx, defaults.TableName(), defaults.ID,
			auditdomain.OperationInsert, nil, snapshot(defaults))
	})
	if err != nil {
		return domain.Settings{}, err
	}
	return result, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateSettingsRequest) (domain.Settings, error) {
	name := strings.TrimSpace(req.ShopName)
	if name == "" {
		return domain.Settings{}, domain.ErrInvalidShopName
	}

	var result domain.Settings
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		settings, err := s.repo.First(ctx, tx)
		if err != nil {
			return err
		}
		if settings == nil {
			defaults := domain.DefaultSettings()
			if err := s.repo.Create(ctx, tx, &defaults); err != nil {
				return err
			}
			settings = &defaults
		}

		old := snapshot(*settings)
		settings.ShopName = name
		settings.ShopAddress = req.ShopAddress
		settings.ShopPhone = req.ShopPhone
		settings.ShopEmail = req.ShopEmail
		settings.ShopGSTIN = req.ShopGSTIN

		if err := s.repo.Update(ctx, tx, settings); err != nil {
			return err
		}

		result = *settings
		return s.audit.Record(ctx, tx, settings.TableName(), settings.ID,
			auditdomain.OperationUpdate, old, snapshot(*settings))
	})
	if err != nil {
		return domain.Settings{}, err
	}

	s.log.Info("settings updated", zap.String("shop_name", result.ShopName))
	return result, nil
}

func snapshot(s domain.Settings) map[string]any {
	snap := map[string]any{
		"id":        s.ID,
		"shop_name": s.ShopName,
	}
	if s.ShopAddress != nil {
		snap["shop_address"] = *s.ShopAddress
	}
	if s.ShopPhone != nil {
		snap["shop_phone"] = *s.ShopPhone
	}
	if s.ShopEmail != nil {
		snap["shop_email"] = *s.ShopEmail
	}
	if s.ShopGSTIN != nil {
		snap["shop_gstin"] = *s.ShopGSTIN
	}
	return snap
}
