package service

import (
	"context"
	"fmt"
	"strings"

	auditdomain "github.com/hardwarepoint/inventory/internal/audit/domain"
	"github.com/hardwarepoint/inventory/internal/catalog/domain"
	"github.com/hardwarepoint/inventory/internal/config"
	"github.com/hardwarepoint/inventory/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Repo   domain.Repository
	Audit  auditdomain.Service
	Holder *config.InventoryConfigHolder
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	repo   domain.Repository
	audit  auditdomain.Service
	holder *config.InventoryConfigHolder
}

func New(p Params) domain.Service {
	return &Service{
		db:     p.DB,
		log:    p.Log.Named("catalog.service"),
		repo:   p.Repo,
		audit:  p.Audit,
		holder: p.Holder,
	}
}

func (s *Service) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Category{}, domain.ErrInvalidName
	}

	category := domain.Category{
		Name:        name,
		Description: req.Description,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreateCategory(ctx, tx, &category); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrDuplicateName
			}
			return err
		}
		return s.audit.Record(ctx, tx, category.TableName(), category.ID,
			auditdomain.OperationInsert, nil, categorySnapshot(category))
	})
	if err != nil {
		return domain.Category{}, err
	}

	s.log.Info("category created", zap.Int64("category_id", category.ID), zap.String("name", category.Name))
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx, s.db)
}

func (s *Service) GetCategory(ctx context.Context, id int64) (domain.Category, error) {
	category, err := s.repo.FindCategoryByID(ctx, s.db, id)
	if err != nil {
		return domain.Category{}, err
	}
	if category == nil {
		return domain.Category{}, domain.ErrNotFound
	}
	return *category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req domain.CreateCategoryRequest) (domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Category{}, domain.ErrInvalidName
	}

	var updated domain.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := s.repo.FindCategoryByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}

		old := categorySnapshot(*category)
		category.Name = name
		category.Description = req.Description

		if err := s.repo.UpdateCategory(ctx, tx, category); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrDuplicateName
			}
			return err
		}

		updated = *category
		return s.audit.Record(ctx, tx, category.TableName(), category.ID,
			auditdomain.OperationUpdate, old, categorySnapshot(*category))
	})
	if err != nil {
		return domain.Category{}, err
	}
	return updated, nil
}

// DeleteCategory removes the category with all of its qualities, sizes and
// items in one transaction. It refuses to run while any of the category's
// items is referenced by a purchase or sale line.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := s.repo.FindCategoryByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrNotFound
		}

		items, err := s.repo.ListItemsByCategory(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, item := range items {
			lines, err := s.repo.CountTransactionLines(ctx, tx, item.ID)
			if err != nil {
				return err
			}
			if lines > 0 {
				return domain.ErrItemInUse
			}
		}

		for _, item := range items {
			if err := s.repo.DeleteItem(ctx, tx, item.ID); err != nil {
				return err
			}
			if err := s.audit.Record(ctx, tx, item.TableName(), item.ID,
				auditdomain.OperationDelete, itemSnapshot(item), nil); err != nil {
				return err
			}
		}

		qualities, err := s.repo.ListQualities(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, quality := range qualities {
			if err := s.repo.DeleteQuality(ctx, tx, quality.ID); err != nil {
				return err
			}
			if err := s.audit.Record(ctx, tx, quality.TableName(), quality.ID,
				auditdomain.OperationDelete, qualitySnapshot(quality), nil); err != nil {
				return err
			}
		}

		sizes, err := s.repo.ListSizes(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, size := range sizes {
			if err := s.repo.DeleteSize(ctx, tx, size.ID); err != nil {
				return err
			}
			if err := s.audit.Record(ctx, tx, size.TableName(), size.ID,
				auditdomain.OperationDelete, sizeSnapshot(size), nil); err != nil {
				return err
			}
		}

		if err := s.repo.DeleteCategory(ctx, tx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, category.TableName(), category.ID,
			auditdomain.OperationDelete, categorySnapshot(*category), nil)
	})
}

func (s *Service) CreateQuality(ctx context.Context, req domain.CreateQualityRequest) (domain.Quality, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Quality{}, domain.ErrInvalidName
	}

	quality := domain.Quality{
		CategoryID:  req.CategoryID,
		Name:        name,
		Description: req.Description,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := s.repo.FindCategoryByID(ctx, tx, req.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrInvalidCategory
		}
		if err := s.repo.CreateQuality(ctx, tx, &quality); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, quality.TableName(), quality.ID,
			auditdomain.OperationInsert, nil, qualitySnapshot(quality))
	})
	if err != nil {
		return domain.Quality{}, err
	}
	return quality, nil
}

func (s *Service) ListQualities(ctx context.Context, categoryID int64) ([]domain.Quality, error) {
	return s.repo.ListQualities(ctx, s.db, categoryID)
}

func (s *Service) GetQuality(ctx context.Context, id int64) (domain.Quality, error) {
	quality, err := s.repo.FindQualityByID(ctx, s.db, id)
	if err != nil {
		return domain.Quality{}, err
	}
	if quality == nil {
		return domain.Quality{}, domain.ErrNotFound
	}
	return *quality, nil
}

// DeleteQuality cascades onto the quality's items, with the same
// referenced-by-transactions guard as DeleteCategory.
func (s *Service) DeleteQuality(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quality, err := s.repo.FindQualityByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if quality == nil {
			return domain.ErrNotFound
		}

		items, err := s.repo.ListItems(ctx, tx, domain.ListItemsFilter{QualityID: id})
		if err != nil {
			return err
		}
		for _, item := range items {
			lines, err := s.repo.CountTransactionLines(ctx, tx, item.ID)
			if err != nil {
				return err
			}
			if lines > 0 {
				return domain.ErrItemInUse
			}
		}

		for _, item := range items {
			if err := s.repo.DeleteItem(ctx, tx, item.ID); err != nil {
				return err
			}
			if err := s.audit.Record(ctx, tx, item.TableName(), item.ID,
				auditdomain.OperationDelete, itemSnapshot(item), nil); err != nil {
				return err
			}
		}

		if err := s.repo.DeleteQuality(ctx, tx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, quality.TableName(), quality.ID,
			auditdomain.OperationDelete, qualitySnapshot(*quality), nil)
	})
}

func (s *Service) CreateSize(ctx context.Context, req domain.CreateSizeRequest) (domain.Size, error) {
	value := strings.TrimSpace(req.SizeValue)
	if value == "" {
		return domain.Size{}, domain.ErrInvalidName
	}
	display := strings.TrimSpace(req.SizeDisplay)
	if display == "" {
		display = value
	}

	size := domain.Size{
		CategoryID:  req.CategoryID,
		SizeValue:   value,
		SizeDisplay: display,
		SortOrder:   req.SortOrder,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := s.repo.FindCategoryByID(ctx, tx, req.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrInvalidCategory
		}
		if err := s.repo.CreateSize(ctx, tx, &size); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, size.TableName(), size.ID,
			auditdomain.OperationInsert, nil, sizeSnapshot(size))
	})
	if err != nil {
		return domain.Size{}, err
	}
	return size, nil
}

func (s *Service) ListSizes(ctx context.Context, categoryID int64) ([]domain.Size, error) {
	return s.repo.ListSizes(ctx, s.db, categoryID)
}

func (s *Service) GetSize(ctx context.Context, id int64) (domain.Size, error) {
	size, err := s.repo.FindSizeByID(ctx, s.db, id)
	if err != nil {
		return domain.Size{}, err
	}
	if size == nil {
		return domain.Size{}, domain.ErrNotFound
	}
	return *size, nil
}

func (s *Service) DeleteSize(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		size, err := s.repo.FindSizeByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if size == nil {
			return domain.ErrNotFound
		}

		items, err := s.repo.ListItems(ctx, tx, domain.ListItemsFilter{SizeID: id})
		if err != nil {
			return err
		}
		for _, item := range items {
			lines, err := s.repo.CountTransactionLines(ctx, tx, item.ID)
			if err != nil {
				return err
			}
			if lines > 0 {
				return domain.ErrItemInUse
			}
		}

		for _, item := range items {
			if err := s.repo.DeleteItem(ctx, tx, item.ID); err != nil {
				return err
			}
			if err := s.audit.Record(ctx, tx, item.TableName(), item.ID,
				auditdomain.OperationDelete, itemSnapshot(item), nil); err != nil {
				return err
			}
		}

		if err := s.repo.DeleteSize(ctx, tx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, size.TableName(), size.ID,
			auditdomain.OperationDelete, sizeSnapshot(*size), nil)
	})
}

func (s *Service) CreateItem(ctx context.Context, req domain.CreateItemRequest) (domain.Item, error) {
	if req.SellingPrice < 0 {
		return domain.Item{}, domain.ErrInvalidPrice
	}
	if req.GSTPercentage < 0 || req.GSTPercentage > 100 {
		return domain.Item{}, domain.ErrInvalidGST
	}
	if req.StockQuantity < 0 {
		return domain.Item{}, domain.ErrNegativeStock
	}
	if req.LowStockThreshold < 0 {
		return domain.Item{}, domain.ErrInvalidThreshold
	}

	defaults := s.holder.Get()
	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = defaults.DefaultUnit
	}
	threshold := req.LowStockThreshold
	if threshold == 0 {
		threshold = defaults.LowStockThreshold
	}

	item := domain.Item{
		CategoryID:        req.CategoryID,
		QualityID:         req.QualityID,
		SizeID:            req.SizeID,
		SKU:               normalizeSKU(req.SKU),
		Unit:              unit,
		SellingPrice:      req.SellingPrice,
		GSTPercentage:     req.GSTPercentage,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: threshold,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.validateItemRefs(ctx, tx, req.CategoryID, req.QualityID, req.SizeID); err != nil {
			return err
		}

		existing, err := s.repo.FindItemByCombination(ctx, tx, req.CategoryID, req.QualityID, req.SizeID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateItem
		}

		if err := s.repo.CreateItem(ctx, tx, &item); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrDuplicateSKU
			}
			return err
		}
		return s.audit.Record(ctx, tx, item.TableName(), item.ID,
			auditdomain.OperationInsert, nil, itemSnapshot(item))
	})
	if err != nil {
		return domain.Item{}, err
	}

	s.log.Info("item created",
		zap.Int64("item_id", item.ID),
		zap.String("sku", item.SKULabel()),
	)
	return item, nil
}

// BulkCreateItems fills in every quality x size combination that does not
// exist yet for the category. Existing combinations are skipped, not
// overwritten.
func (s *Service) BulkCreateItems(ctx context.Context, req domain.BulkCreateItemsRequest) ([]domain.Item, error) {
	if req.DefaultPrice < 0 {
		return nil, domain.ErrInvalidPrice
	}
	if req.DefaultGST < 0 || req.DefaultGST > 100 {
		return nil, domain.ErrInvalidGST
	}
	if req.DefaultThreshold < 0 {
		return nil, domain.ErrInvalidThreshold
	}

	defaults := s.holder.Get()
	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		unit = defaults.DefaultUnit
	}
	threshold := req.DefaultThreshold
	if threshold == 0 {
		threshold = defaults.LowStockThreshold
	}

	var created []domain.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := s.repo.FindCategoryByID(ctx, tx, req.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return domain.ErrInvalidCategory
		}

		for _, qualityID := range req.QualityIDs {
			quality, err := s.repo.FindQualityByID(ctx, tx, qualityID)
			if err != nil {
				return err
			}
			if quality == nil || quality.CategoryID != req.CategoryID {
				return domain.ErrInvalidQuality
			}

			for _, sizeID := range req.SizeIDs {
				size, err := s.repo.FindSizeByID(ctx, tx, sizeID)
				if err != nil {
					return err
				}
				if size == nil || size.CategoryID != req.CategoryID {
					return domain.ErrInvalidSize
				}

				existing, err := s.repo.FindItemByCombination(ctx, tx, req.CategoryID, qualityID, sizeID)
				if err != nil {
					return err
				}
				if existing != nil {
					continue
				}

				sku := generateSKU(category.Name, quality.Name, size.SizeValue)
				item := domain.Item{
					CategoryID:        req.CategoryID,
					QualityID:         qualityID,
					SizeID:            sizeID,
					SKU:               &sku,
					Unit:              unit,
					SellingPrice:      req.DefaultPrice,
					GSTPercentage:     req.DefaultGST,
					LowStockThreshold: threshold,
				}
				if err := s.repo.CreateItem(ctx, tx, &item); err != nil {
					if db.IsDuplicateKeyErr(err) {
						return domain.ErrDuplicateSKU
					}
					return err
				}
				if err := s.audit.Record(ctx, tx, item.TableName(), item.ID,
					auditdomain.OperationInsert, nil, itemSnapshot(item)); err != nil {
					return err
				}
				created = append(created, item)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("bulk items created",
		zap.Int64("category_id", req.CategoryID),
		zap.Int("count", len(created)),
	)
	return created, nil
}

func (s *Service) ListItems(ctx context.Context, filter domain.ListItemsFilter) ([]domain.Item, error) {
	return s.repo.ListItems(ctx, s.db, filter)
}

func (s *Service) ListLowStockItems(ctx context.Context) ([]domain.Item, error) {
	return s.repo.ListLowStockItems(ctx, s.db)
}

func (s *Service) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	item, err := s.repo.FindItemByID(ctx, s.db, id)
	if err != nil {
		return domain.Item{}, err
	}
	if item == nil {
		return domain.Item{}, domain.ErrItemNotFound
	}
	return *item, nil
}

// GetItemsTable assembles the quality x size grid for a category. Cells are
// keyed "<qualityID>-<sizeID>"; missing combinations have no cell.
func (s *Service) GetItemsTable(ctx context.Context, categoryID int64) (domain.ItemsTable, error) {
	category, err := s.repo.FindCategoryByID(ctx, s.db, categoryID)
	if err != nil {
		return domain.ItemsTable{}, err
	}
	if category == nil {
		return domain.ItemsTable{}, domain.ErrNotFound
	}

	qualities, err := s.repo.ListQualities(ctx, s.db, categoryID)
	if err != nil {
		return domain.ItemsTable{}, err
	}
	sizes, err := s.repo.ListSizes(ctx, s.db, categoryID)
	if err != nil {
		return domain.ItemsTable{}, err
	}
	items, err := s.repo.ListItemsByCategory(ctx, s.db, categoryID)
	if err != nil {
		return domain.ItemsTable{}, err
	}

	cells := make(map[string]domain.ItemTableCell, len(items))
	for _, item := range items {
		key := fmt.Sprintf("%d-%d", item.QualityID, item.SizeID)
		cells[key] = domain.ItemTableCell{
			ID:                item.ID,
			SKU:               item.SKU,
			StockQuantity:     item.StockQuantity,
			SellingPrice:      item.SellingPrice,
			Unit:              item.Unit,
			GSTPercentage:     item.GSTPercentage,
			LowStockThreshold: item.LowStockThreshold,
			IsLowStock:        item.IsLowStock(),
		}
	}

	return domain.ItemsTable{
		CategoryID: categoryID,
		Qualities:  qualities,
		Sizes:      sizes,
		Items:      cells,
	}, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int64, patch domain.ItemPatch) (domain.Item, error) {
	if patch.IsZero() {
		return s.GetItem(ctx, id)
	}

	var updated domain.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.FindItemByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}

		old, changed, err := patch.Apply(item)
		if err != nil {
			return err
		}

		if err := s.repo.UpdateItem(ctx, tx, item); err != nil {
			if db.IsDuplicateKeyErr(err) {
				return domain.ErrDuplicateSKU
			}
			return err
		}

		updated = *item
		return s.audit.Record(ctx, tx, item.TableName(), item.ID,
			auditdomain.OperationUpdate, old, changed)
	})
	if err != nil {
		return domain.Item{}, err
	}
	return updated, nil
}

// SetStock overwrites the stock level to an absolute quantity, outside of
// any purchase or sale. Used for stock takes and corrections.
func (s *Service) SetStock(ctx context.Context, id int64, quantity float64) (domain.Item, error) {
	if quantity < 0 {
		return domain.Item{}, domain.ErrNegativeStock
	}

	var updated domain.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.FindItemByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}

		old := item.StockQuantity
		if err := s.repo.UpdateItemStock(ctx, tx, id, quantity); err != nil {
			return err
		}

		item.StockQuantity = quantity
		updated = *item
		return s.audit.Record(ctx, tx, item.TableName(), item.ID,
			auditdomain.OperationUpdate,
			map[string]any{"stock_quantity": old},
			map[string]any{"stock_quantity": quantity},
		)
	})
	if err != nil {
		return domain.Item{}, err
	}

	s.log.Info("stock set",
		zap.Int64("item_id", id),
		zap.Float64("stock_quantity", quantity),
	)
	return updated, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := s.repo.FindItemByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}

		lines, err := s.repo.CountTransactionLines(ctx, tx, id)
		if err != nil {
			return err
		}
		if lines > 0 {
			return domain.ErrItemInUse
		}

		if err := s.repo.DeleteItem(ctx, tx, id); err != nil {
			return err
		}
		return s.audit.Record(ctx, tx, item.TableName(), item.ID,
			auditdomain.OperationDelete, itemSnapshot(*item), nil)
	})
}

// AdjustStock is the single mutation path for ledger driven stock changes.
// It locks the item row, rejects any delta that would take the stock below
// zero, and audits the change on the caller's transaction.
func (s *Service) AdjustStock(ctx context.Context, tx *gorm.DB, itemID int64, delta float64) (domain.StockChange, error) {
	if tx == nil {
		tx = s.db
	}

	item, err := s.repo.FindItemByIDForUpdate(ctx, tx, itemID)
	if err != nil {
		return domain.StockChange{}, err
	}
	if item == nil {
		return domain.StockChange{}, domain.ErrItemNotFound
	}

	candidate := item.StockQuantity + delta
	if candidate < 0 {
		return domain.StockChange{}, &domain.StockError{
			ItemID:    itemID,
			SKU:       item.SKULabel(),
			Available: item.StockQuantity,
			Requested: -delta,
		}
	}

	if err := s.repo.UpdateItemStock(ctx, tx, itemID, candidate); err != nil {
		return domain.StockChange{}, err
	}

	if err := s.audit.Record(ctx, tx, item.TableName(), item.ID,
		auditdomain.OperationUpdate,
		map[string]any{"stock_quantity": item.StockQuantity},
		map[string]any{"stock_quantity": candidate},
	); err != nil {
		return domain.StockChange{}, err
	}

	return domain.StockChange{
		ItemID:   itemID,
		SKU:      item.SKULabel(),
		OldStock: item.StockQuantity,
		NewStock: candidate,
	}, nil
}

func (s *Service) validateItemRefs(ctx context.Context, tx *gorm.DB, categoryID, qualityID, sizeID int64) error {
	category, err := s.repo.FindCategoryByID(ctx, tx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrInvalidCategory
	}

	quality, err := s.repo.FindQualityByID(ctx, tx, qualityID)
	if err != nil {
		return err
	}
	if quality == nil || quality.CategoryID != categoryID {
		return domain.ErrInvalidQuality
	}

	size, err := s.repo.FindSizeByID(ctx, tx, sizeID)
	if err != nil {
		return err
	}
	if size == nil || size.CategoryID != categoryID {
		return domain.ErrInvalidSize
	}
	return nil
}

func normalizeSKU(sku *string) *string {
	if sku == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*sku)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func generateSKU(category, quality, sizeValue string) string {
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s",
		abbrev(category), abbrev(quality), strings.ReplaceAll(sizeValue, " ", "")))
}

func abbrev(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if len(s) > 3 {
		return s[:3]
	}
	return s
}

func categorySnapshot(c domain.Category) map[string]any {
	snap := map[string]any{
		"id":   c.ID,
		"name": c.Name,
	}
	if c.Description != nil {
		snap["description"] = *c.Description
	}
	return snap
}

func qualitySnapshot(q domain.Quality) map[string]any {
	snap := map[string]any{
		"id":          q.ID,
		"category_id": q.CategoryID,
		"name":        q.Name,
	}
	if q.Description != nil {
		snap["description"] = *q.Description
	}
	return snap
}

func sizeSnapshot(s domain.Size) map[string]any {
	return map[string]any{
		"id":           s.ID,
		"category_id":  s.CategoryID,
		"size_value":   s.SizeValue,
		"size_display": s.SizeDisplay,
		"sort_order":   s.SortOrder,
	}
}

func itemSnapshot(i domain.Item) map[string]any {
	snap := map[string]any{
		"id":                  i.ID,
		"category_id":         i.CategoryID,
		"quality_id":          i.QualityID,
		"size_id":             i.SizeID,
		"unit":                i.Unit,
		"selling_price":       i.SellingPrice,
		"gst_percentage":      i.GSTPercentage,
		"stock_quantity":      i.StockQuantity,
		"low_stock_threshold": i.LowStockThreshold,
	}
	if i.SKU != nil {
		snap["sku"] = *i.SKU
	}
	return snap
}
