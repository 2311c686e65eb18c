package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	auditdomain "github.com/hardwarepoint/inventory/internal/audit/domain"
	auditrepository "github.com/hardwarepoint/inventory/internal/audit/repository"
	auditservice "github.com/hardwarepoint/inventory/internal/audit/service"
	catalogdomain "github.com/hardwarepoint/inventory/internal/catalog/domain"
	catalogrepository "github.com/hardwarepoint/inventory/internal/catalog/repository"
	catalogservice "github.com/hardwarepoint/inventory/internal/catalog/service"
	"github.com/hardwarepoint/inventory/internal/clock"
	"github.com/hardwarepoint/inventory/internal/config"
	"github.com/hardwarepoint/inventory/internal/ledger/domain"
	"github.com/hardwarepoint/inventory/internal/ledger/repository"
	supplierdomain "github.com/hardwarepoint/inventory/internal/supplier/domain"
	supplierrepository "github.com/hardwarepoint/inventory/internal/supplier/repository"
	supplierservice "github.com/hardwarepoint/inventory/internal/supplier/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	ledger   domain.Service
	catalog  catalogdomain.Service
	supplier supplierdomain.Service
	clock    *clock.FakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&catalogdomain.Category{},
		&catalogdomain.Quality{},
		&catalogdomain.Size{},
		&catalogdomain.Item{},
		&supplierdomain.Supplier{},
		&domain.Purchase{},
		&domain.PurchaseItem{},
		&domain.Sale{},
		&domain.SaleItem{},
		&auditdomain.AuditLog{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	fake := clock.NewFakeClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))

	audit := auditservice.NewService(auditservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: fake,
		Repo:  auditrepository.Provide(),
	})
	catalog := catalogservice.New(catalogservice.Params{
		DB:     db,
		Log:    zap.NewNop(),
		Repo:   catalogrepository.Provide(),
		Audit:  audit,
		Holder: config.StaticInventoryConfigHolder(config.DefaultInventoryConfig()),
	})
	supplier := supplierservice.New(supplierservice.Params{
		DB:    db,
		Log:   zap.NewNop(),
		Repo:  supplierrepository.Provide(),
		Audit: audit,
	})
	ledger := New(Params{
		DB:        db,
		Log:       zap.NewNop(),
		Clock:     fake,
		Repo:      repository.Provide(),
		Catalog:   catalog,
		Suppliers: supplier,
		Audit:     audit,
	})

	return &fixture{db: db, ledger: ledger, catalog: catalog, supplier: supplier, clock: fake}
}

func (f *fixture) seedItem(t *testing.T, sku string, stock float64) catalogdomain.Item {
	t.Helper()
	ctx := context.Background()

	category, err := f.catalog.CreateCategory(ctx, catalogdomain.CreateCategoryRequest{Name: "Cat " + sku})
	require.NoError(t, err)
	quality, err := f.catalog.CreateQuality(ctx, catalogdomain.CreateQualityRequest{CategoryID: category.ID, Name: "MS"})
	require.NoError(t, err)
	size, err := f.catalog.CreateSize(ctx, catalogdomain.CreateSizeRequest{CategoryID: category.ID, SizeValue: "8"})
	require.NoError(t, err)

	item, err := f.catalog.CreateItem(ctx, catalogdomain.CreateItemRequest{
		CategoryID:    category.ID,
		QualityID:     quality.ID,
		SizeID:        size.ID,
		SKU:           &sku,
		SellingPrice:  100,
		GSTPercentage: 18,
		StockQuantity: stock,
	})
	require.NoError(t, err)
	return item
}

func (f *fixture) stockOf(t *testing.T, itemID int64) float64 {
	t.Helper()
	item, err := f.catalog.GetItem(context.Background(), itemID)
	require.NoError(t, err)
	return item.StockQuantity
}

func TestCreatePurchase_IncrementsStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.seedItem(t, "P-1", 10)
	sup, err := f.supplier.Create(ctx, supplierdomain.UpsertSupplierRequest{Name: "Sharma Hardware"})
	require.NoError(t, err)

	purchase, err := f.ledger.CreatePurchase(ctx, domain.CreatePurchaseRequest{
		SupplierID: &sup.ID,
		Lines: []domain.PurchaseLine{
			{ItemID: item.ID, Quantity: 25, PurchasePrice: 80},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, purchase.TotalAmount)
	assert.True(t, purchase.PurchaseDate.Equal(f.clock.Now()))
	assert.Equal(t, 35.0, f.stockOf(t, item.ID))

	// Header INSERT plus one stock UPDATE per line.
	var count int64
	require.NoError(t, f.db.Model(&auditdomain.AuditLog{}).
		Where("table_name = ? AND record_id = ?", "purchases", purchase.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreatePurchase_UnknownSupplier(t *testing.T) {
	f := newFixture(t)

	item := f.seedItem(t, "P-2", 10)
	badSupplier := int64(999)

	_, err := f.ledger.CreatePurchase(context.Background(), domain.CreatePurchaseRequest{
		SupplierID: &badSupplier,
		Lines:      []domain.PurchaseLine{{ItemID: item.ID, Quantity: 1, PurchasePrice: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSupplier)
	assert.Equal(t, 10.0, f.stockOf(t, item.ID))
}

func TestCreatePurchase_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := f.seedItem(t, "P-3", 10)

	_, err := f.ledger.CreatePurchase(ctx, domain.CreatePurchaseRequest{})
	assert.ErrorIs(t, err, domain.ErrNoLines)

	_, err = f.ledger.CreatePurchase(ctx, domain.CreatePurchaseRequest{
		Lines: []domain.PurchaseLine{{ItemID: item.ID, Quantity: 0, PurchasePrice: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.ledger.CreatePurchase(ctx, domain.CreatePurchaseRequest{
		Lines: []domain.PurchaseLine{{ItemID: item.ID, Quantity: 1, PurchasePrice: -1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestCreateSale_DeductsStockAndStoresTotals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.seedItem(t, "S-1", 50)

	sale, err := f.ledger.CreateSale(ctx, domain.CreateSaleRequest{
		Discount: 50,
		Lines: []domain.SaleLine{
			{ItemID: item.ID, Quantity: 10, UnitPrice: 100, GSTPercentage: 18},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, sale.Subtotal)
	assert.InDelta(t, 180.0, sale.GSTAmount, 1e-9)
	assert.Equal(t, 50.0, sale.Discount)
	assert.InDelta(t, 1130.0, sale.TotalAmount, 1e-9)
	require.Len(t, sale.Items, 1)
	assert.InDelta(t, 1180.0, sale.Items[0].LineTotal, 1e-9)

	assert.Equal(t, 40.0, f.stockOf(t, item.ID))
}

func TestCreateSale_InsufficientStockRollsBackEverything(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok := f.seedItem(t, "S-2A", 50)
	scarce := f.seedItem(t, "S-2B", 3)

	_, err := f.ledger.CreateSale(ctx, domain.CreateSaleRequest{
		Lines: []domain.SaleLine{
			{ItemID: ok.ID, Quantity: 10, UnitPrice: 100, GSTPercentage: 18},
			{ItemID: scarce.ID, Quantity: 5, UnitPrice: 100, GSTPercentage: 18},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, catalogdomain.ErrInsufficientStock)

	var stockErr *catalogdomain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, scarce.ID, stockErr.ItemID)
	assert.Equal(t, 3.0, stockErr.Available)
	assert.Equal(t, 5.0, stockErr.Requested)

	// First line's deduction rolled back with the sale.
	assert.Equal(t, 50.0, f.stockOf(t, ok.ID))
	assert.Equal(t, 3.0, f.stockOf(t, scarce.ID))

	var sales int64
	require.NoError(t, f.db.Model(&domain.Sale{}).Count(&sales).Error)
	assert.Zero(t, sales)

	var lines int64
	require.NoError(t, f.db.Model(&domain.SaleItem{}).Count(&lines).Error)
	assert.Zero(t, lines)

	var audits int64
	require.NoError(t, f.db.Model(&auditdomain.AuditLog{}).
		Where("table_name = ?", "sales").Count(&audits).Error)
	assert.Zero(t, audits)
}

func TestDeleteSale_RestoresStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.seedItem(t, "S-3", 20)

	sale, err := f.ledger.CreateSale(ctx, domain.CreateSaleRequest{
		Lines: []domain.SaleLine{{ItemID: item.ID, Quantity: 8, UnitPrice: 100, GSTPercentage: 18}},
	})
	require.NoError(t, err)
	require.Equal(t, 12.0, f.stockOf(t, item.ID))

	require.NoError(t, f.ledger.DeleteSale(ctx, sale.ID))
	assert.Equal(t, 20.0, f.stockOf(t, item.ID))

	_, err = f.ledger.GetSale(ctx, sale.ID)
	assert.ErrorIs(t, err, domain.ErrSaleNotFound)

	var lines int64
	require.NoError(t, f.db.Model(&domain.SaleItem{}).Where("sale_id = ?", sale.ID).Count(&lines).Error)
	assert.Zero(t, lines)
}

func TestDeletePurchase_RefusedWhenStockAlreadySold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.seedItem(t, "S-4", 0)

	purchase, err := f.ledger.CreatePurchase(ctx, domain.CreatePurchaseRequest{
		Lines: []domain.PurchaseLine{{ItemID: item.ID, Quantity: 10, PurchasePrice: 50}},
	})
	require.NoError(t, err)

	// Sell most of what the purchase brought in.
	_, err = f.ledger.CreateSale(ctx, domain.CreateSaleRequest{
		Lines: []domain.SaleLine{{ItemID: item.ID, Quantity: 7, UnitPrice: 100, GSTPercentage: 18}},
	})
	require.NoError(t, err)
	require.Equal(t, 3.0, f.stockOf(t, item.ID))

	err = f.ledger.DeletePurchase(ctx, purchase.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWouldUnderflowStock)

	var underflow *domain.UnderflowError
	require.ErrorAs(t, err, &underflow)
	assert.Equal(t, item.ID, underflow.ItemID)
	assert.Equal(t, 3.0, underflow.Available)
	assert.Equal(t, 10.0, underflow.Requested)

	// Purchase survives the refused deletion.
	_, err = f.ledger.GetPurchase(ctx, purchase.ID)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, f.stockOf(t, item.ID))
}

func TestDeletePurchase_ReversesStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.seedItem(t, "S-5", 5)

	purchase, err := f.ledger.CreatePurchase(ctx, domain.CreatePurchaseRequest{
		Lines: []domain.PurchaseLine{{ItemID: item.ID, Quantity: 10, PurchasePrice: 50}},
	})
	require.NoError(t, err)
	require.Equal(t, 15.0, f.stockOf(t, item.ID))

	require.NoError(t, f.ledger.DeletePurchase(ctx, purchase.ID))
	assert.Equal(t, 5.0, f.stockOf(t, item.ID))

	_, err = f.ledger.GetPurchase(ctx, purchase.ID)
	assert.ErrorIs(t, err, domain.ErrPurchaseNotFound)
}

func TestPurchaseSaleRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.seedItem(t, "S-6", 0)

	purchase, err := f.ledger.CreatePurchase(ctx, domain.CreatePurchaseRequest{
		Lines: []domain.PurchaseLine{{ItemID: item.ID, Quantity: 100, PurchasePrice: 40}},
	})
	require.NoError(t, err)

	sale, err := f.ledger.CreateSale(ctx, domain.CreateSaleRequest{
		Lines: []domain.SaleLine{{ItemID: item.ID, Quantity: 60, UnitPrice: 70, GSTPercentage: 12}},
	})
	require.NoError(t, err)
	require.Equal(t, 40.0, f.stockOf(t, item.ID))

	require.NoError(t, f.ledger.DeleteSale(ctx, sale.ID))
	require.NoError(t, f.ledger.DeletePurchase(ctx, purchase.ID))

	assert.Equal(t, 0.0, f.stockOf(t, item.ID))
}

func TestCreateSale_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := f.seedItem(t, "S-7", 10)

	_, err := f.ledger.CreateSale(ctx, domain.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrNoLines)

	_, err = f.ledger.CreateSale(ctx, domain.CreateSaleRequest{
		Discount: -1,
		Lines:    []domain.SaleLine{{ItemID: item.ID, Quantity: 1, UnitPrice: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDiscount)

	_, err = f.ledger.CreateSale(ctx, domain.CreateSaleRequest{
		Lines: []domain.SaleLine{{ItemID: item.ID, Quantity: 1, UnitPrice: 10, GSTPercentage: 120}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidGST)
}

func TestListPurchases_DateFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	item := f.seedItem(t, "S-8", 0)

	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := f.ledger.CreatePurchase(ctx, domain.CreatePurchaseRequest{
		PurchaseDate: &jan,
		Lines:        []domain.PurchaseLine{{ItemID: item.ID, Quantity: 1, PurchasePrice: 10}},
	})
	require.NoError(t, err)
	_, err = f.ledger.CreatePurchase(ctx, domain.CreatePurchaseRequest{
		PurchaseDate: &jun,
		Lines:        []domain.PurchaseLine{{ItemID: item.ID, Quantity: 1, PurchasePrice: 10}},
	})
	require.NoError(t, err)

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	got, err := f.ledger.ListPurchases(ctx, domain.ListPurchasesFilter{StartDate: &from})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].PurchaseDate.Equal(jun))

	all, err := f.ledger.ListPurchases(ctx, domain.ListPurchasesFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	// Newest first.
	assert.True(t, all[0].PurchaseDate.Equal(jun))
}
