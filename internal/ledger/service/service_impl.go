package service

import (
	"context"
	"errors"

	auditdomain "github.com/hardwarepoint/inventory/internal/audit/domain"
	catalogdomain "github.com/hardwarepoint/inventory/internal/catalog/domain"
	"github.com/hardwarepoint/inventory/internal/clock"
	"github.com/hardwarepoint/inventory/internal/finance"
	"github.com/hardwarepoint/inventory/internal/ledger/domain"
	supplierdomain "github.com/hardwarepoint/inventory/internal/supplier/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Clock     clock.Clock
	Repo      domain.Repository
	Catalog   catalogdomain.Service
	Suppliers supplierdomain.Service
	Audit     auditdomain.Service
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	clock     clock.Clock
	repo      domain.Repository
	catalog   catalogdomain.Service
	suppliers supplierdomain.Service
	audit     auditdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("ledger.service"),
		clock:     p.Clock,
		repo:      p.Repo,
		catalog:   p.Catalog,
		suppliers: p.Suppliers,
		audit:     p.Audit,
	}
}

func (s *Service) CreatePurchase(ctx context.Context, req domain.CreatePurchaseRequest) (domain.Purchase, error) {
	if len(req.Lines) == 0 {
		return domain.Purchase{}, domain.ErrNoLines
	}

	var total float64
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return domain.Purchase{}, domain.ErrInvalidQuantity
		}
		if line.PurchasePrice < 0 {
			return domain.Purchase{}, domain.ErrInvalidPrice
		}
		total += line.Quantity * line.PurchasePrice
	}

	if req.SupplierID != nil {
		if _, err := s.suppliers.Get(ctx, *req.SupplierID); err != nil {
			if errors.Is(err, supplierdomain.ErrNotFound) {
				return domain.Purchase{}, domain.ErrInvalidSupplier
			}
			return domain.Purchase{}, err
		}
	}

	purchaseDate := s.clock.Now()
	if req.PurchaseDate != nil {
		purchaseDate = req.PurchaseDate.UTC()
	}

	purchase := domain.Purchase{
		SupplierID:    req.SupplierID,
		InvoiceNumber: req.InvoiceNumber,
		PurchaseDate:  purchaseDate,
		TotalAmount:   total,
		Notes:         req.Notes,
	}
	for _, line := range req.Lines {
		purchase.Items = append(purchase.Items, domain.PurchaseItem{
			ItemID:        line.ItemID,
			Quantity:      line.Quantity,
			PurchasePrice: line.PurchasePrice,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreatePurchase(ctx, tx, &purchase); err != nil {
			return err
		}
		for _, line := range req.Lines {
			if _, err := s.catalog.AdjustStock(ctx, tx, line.ItemID, line.Quantity); err != nil {
				return err
			}
		}
		return s.audit.Record(ctx, tx, purchase.TableName(), purchase.ID,
			auditdomain.OperationInsert, nil, map[string]any{
				"total_amount": purchase.TotalAmount,
				"items_count":  len(req.Lines),
			})
	})
	if err != nil {
		return domain.Purchase{}, err
	}

	transactionsTotal.WithLabelValues("purchase", "create").Inc()
	s.log.Info("purchase created",
		zap.Int64("purchase_id", purchase.ID),
		zap.Float64("total_amount", purchase.TotalAmount),
		zap.Int("lines", len(req.Lines)),
	)
	return purchase, nil
}

func (s *Service) GetPurchase(ctx context.Context, id int64) (domain.Purchase, error) {
	purchase, err := s.repo.FindPurchaseByID(ctx, s.db, id)
	if err != nil {
		return domain.Purchase{}, err
	}
	if purchase == nil {
		return domain.Purchase{}, domain.ErrPurchaseNotFound
	}
	return *purchase, nil
}

func (s *Service) ListPurchases(ctx context.Context, filter domain.ListPurchasesFilter) ([]domain.Purchase, error) {
	return s.repo.ListPurchases(ctx, s.db, filter)
}

func (s *Service) DeletePurchase(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		purchase, err := s.repo.FindPurchaseByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrPurchaseNotFound
		}

		for _, line := range purchase.Items {
			if _, err := s.catalog.AdjustStock(ctx, tx, line.ItemID, -line.Quantity); err != nil {
				var stockErr *catalogdomain.StockError
				if errors.As(err, &stockErr) {
					return &domain.UnderflowError{
						ItemID:    stockErr.ItemID,
						SKU:       stockErr.SKU,
						Available: stockErr.Available,
						Requested: stockErr.Requested,
					}
				}
				return err
			}
		}

		if err := s.repo.DeletePurchaseLines(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.DeletePurchase(ctx, tx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, purchase.TableName(), purchase.ID,
			auditdomain.OperationDelete, map[string]any{
				"total_amount": purchase.TotalAmount,
			}, nil)
	})
	if err != nil {
		if errors.Is(err, domain.ErrWouldUnderflowStock) {
			stockRejectionsTotal.WithLabelValues("purchase_delete").Inc()
		}
		return err
	}

	transactionsTotal.WithLabelValues("purchase", "delete").Inc()
	s.log.Info("purchase deleted", zap.Int64("purchase_id", id))
	return nil
}

func (s *Service) CreateSale(ctx context.Context, req domain.CreateSaleRequest) (domain.Sale, error) {
	if len(req.Lines) == 0 {
		return domain.Sale{}, domain.ErrNoLines
	}
	if req.Discount < 0 {
		return domain.Sale{}, domain.ErrInvalidDiscount
	}

	financeLines := make([]finance.Line, 0, len(req.Lines))
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return domain.Sale{}, domain.ErrInvalidQuantity
		}
		if line.UnitPrice < 0 {
			return domain.Sale{}, domain.ErrInvalidPrice
		}
		if line.GSTPercentage < 0 || line.GSTPercentage > 100 {
			return domain.Sale{}, domain.ErrInvalidGST
		}
		financeLines = append(financeLines, finance.Line{
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			GSTPercentage: line.GSTPercentage,
		})
	}

	totals := finance.SaleTotals(financeLines, req.Discount)

	saleDate := s.clock.Now()
	if req.SaleDate != nil {
		saleDate = req.SaleDate.UTC()
	}

	sale := domain.Sale{
		SaleDate:    saleDate,
		Subtotal:    totals.Subtotal,
		GSTAmount:   totals.GSTAmount,
		Discount:    totals.Discount,
		TotalAmount: totals.TotalAmount,
	}
	for _, line := range req.Lines {
		sale.Items = append(sale.Items, domain.SaleItem{
			ItemID:        line.ItemID,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			GSTPercentage: line.GSTPercentage,
			LineTotal:     finance.LineTotal(line.Quantity, line.UnitPrice, line.GSTPercentage),
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreateSale(ctx, tx, &sale); err != nil {
			return err
		}
		for _, line := range req.Lines {
			if _, err := s.catalog.AdjustStock(ctx, tx, line.ItemID, -line.Quantity); err != nil {
				return err
			}
		}
		return s.audit.Record(ctx, tx, sale.TableName(), sale.ID,
			auditdomain.OperationInsert, nil, map[string]any{
				"total_amount": sale.TotalAmount,
				"items_count":  len(req.Lines),
			})
	})
	if err != nil {
		if errors.Is(err, catalogdomain.ErrInsufficientStock) {
			stockRejectionsTotal.WithLabelValues("sale_create").Inc()
		}
		return domain.Sale{}, err
	}

	transactionsTotal.WithLabelValues("sale", "create").Inc()
	s.log.Info("sale created",
		zap.Int64("sale_id", sale.ID),
		zap.Float64("total_amount", sale.TotalAmount),
		zap.Int("lines", len(req.Lines)),
	)
	return sale, nil
}

func (s *Service) GetSale(ctx context.Context, id int64) (domain.Sale, error) {
	sale, err := s.repo.FindSaleByID(ctx, s.db, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if sale == nil {
		return domain.Sale{}, domain.ErrSaleNotFound
	}
	return *sale, nil
}

func (s *Service) ListSales(ctx context.Context, filter domain.ListSalesFilter) ([]domain.Sale, error) {
	return s.repo.ListSales(ctx, s.db, filter)
}

func (s *Service) DeleteSale(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sale, err := s.repo.FindSaleByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrSaleNotFound
		}

		for _, line := range sale.Items {
			if _, err := s.catalog.AdjustStock(ctx, tx, line.ItemID, line.Quantity); err != nil {
				return err
			}
		}

		if err := s.repo.DeleteSaleLines(ctx, tx, id); err != nil {
			return err
		}
		if err := s.repo.DeleteSale(ctx, tx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, sale.TableName(), sale.ID,
			auditdomain.OperationDelete, map[string]any{
				"total_amount": sale.TotalAmount,
			}, nil)
	})
	if err != nil {
		return err
	}

	transactionsTotal.WithLabelValues("sale", "delete").Inc()
	s.log.Info("sale deleted", zap.Int64("sale_id", id))
	return nil
}
