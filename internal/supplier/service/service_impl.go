package service

import (
	"context"
	"strings"

	auditdomain "github.com/hardwarepoint/inventory/internal/audit/domain"
	"github.com/hardwarepoint/inventory/internal/supplier/domain"
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
		log:   p.Log.Named("supplier.service"),
		repo:  p.Repo,
		audit: p.Audit,
	}
}

func (s *Service) Create(ctx context.Context, req domain.UpsertSupplierRequest) (domain.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Supplier{}, domain.ErrInvalidName
	}

	supplier := domain.Supplier{
		Name:          name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &supplier); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, supplier.TableName(), supplier.ID,
			auditdomain.OperationInsert, nil, snapshot(supplier))
	})
	if err != nil {
		return domain.Supplier{}, err
	}

	s.log.Info("supplier created", zap.Int64("supplier_id", supplier.ID), zap.String("name", supplier.Name))
	return supplier, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Supplier{}, err
	}
	if supplier == nil {
		return domain.Supplier{}, domain.ErrNotFound
	}
	return *supplier, nil
}

func (s *Service) Update(ctx context.Context, id int64, req domain.UpsertSupplierRequest) (domain.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Supplier{}, domain.ErrInvalidName
	}

	var updated domain.Supplier
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		supplier, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrNotFound
		}

		old := snapshot(*supplier)
		supplier.Name = name
		supplier.ContactPerson = req.ContactPerson
		supplier.Phone = req.Phone
		supplier.Email = req.Email
		supplier.Address = req.Address

		if err := s.repo.Update(ctx, tx, supplier); err != nil {
			return err
		}

		updated = *supplier
		return s.audit.Record(ctx, tx, supplier.TableName(), supplier.ID,
			auditdomain.OperationUpdate, old, snapshot(*supplier))
	})
	if err != nil {
		return domain.Supplier{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		supplier, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrNotFound
		}

		// Purchases outlive their supplier; only the reference is cleared.
		if err := s.repo.ClearPurchaseReferences(ctx, tx, id); err != nil {
			return err
		}

		if err := s.repo.Delete(ctx, tx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, supplier.TableName(), supplier.ID,
			auditdomain.OperationDelete, snapshot(*supplier), nil)
	})
}

func snapshot(s domain.Supplier) map[string]any {
	snap := map[string]any{
		"id":   s.ID,
		"name": s.Name,
	}
	if s.ContactPerson != nil {
		snap["contact_person"] = *s.ContactPerson
	}
	if s.Phone != nil {
		snap["phone"] = *s.Phone
	}
	if s.Email != nil {
		snap["email"] = *s.Email
	}
	if s.Address != nil {
		snap["address"] = *s.Address
	}
	return snap
}
