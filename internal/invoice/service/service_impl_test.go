package service

import (
	"context"
	"fmt"
	"io"
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
	invoicedomain "github.com/hardwarepoint/inventory/internal/invoice/domain"
	ledgerdomain "github.com/hardwarepoint/inventory/internal/ledger/domain"
	ledgerrepository "github.com/hardwarepoint/inventory/internal/ledger/repository"
	ledgerservice "github.com/hardwarepoint/inventory/internal/ledger/service"
	"github.com/hardwarepoint/inventory/internal/providers/pdf"
	settingsdomain "github.com/hardwarepoint/inventory/internal/settings/domain"
	settingsrepository "github.com/hardwarepoint/inventory/internal/settings/repository"
	settingsservice "github.com/hardwarepoint/inventory/internal/settings/service"
	supplierdomain "github.com/hardwarepoint/inventory/internal/supplier/domain"
	supplierrepository "github.com/hardwarepoint/inventory/internal/supplier/repository"
	supplierservice "github.com/hardwarepoint/inventory/internal/supplier/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	invoice invoicedomain.Service
	ledger  ledgerdomain.Service
	catalog catalogdomain.Service
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
		&ledgerdomain.Purchase{},
		&ledgerdomain.PurchaseItem{},
		&ledgerdomain.Sale{},
		&ledgerdomain.SaleItem{},
		&settingsdomain.Settings{},
		&auditdomain.AuditLog{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	fake := clock.NewFakeClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	log := zap.NewNop()

	audit := auditservice.NewService(auditservice.Params{
		DB: db, Log: log, GenID: node, Clock: fake, Repo: auditrepository.Provide(),
	})
	catalog := catalogservice.New(catalogservice.Params{
		DB: db, Log: log, Repo: catalogrepository.Provide(), Audit: audit,
		Holder: config.StaticInventoryConfigHolder(config.DefaultInventoryConfig()),
	})
	suppliers := supplierservice.New(supplierservice.Params{
		DB: db, Log: log, Repo: supplierrepository.Provide(), Audit: audit,
	})
	ledger := ledgerservice.New(ledgerservice.Params{
		DB: db, Log: log, Clock: fake, Repo: ledgerrepository.Provide(),
		Catalog: catalog, Suppliers: suppliers, Audit: audit,
	})
	settings := settingsservice.New(settingsservice.Params{
		DB: db, Log: log, Repo: settingsrepository.Provide(), Audit: audit,
	})
	invoice := New(Params{
		Log: log, Sales: ledger, Catalog: catalog, Settings: settings, PDF: pdf.New(),
	})

	return &fixture{db: db, invoice: invoice, ledger: ledger, catalog: catalog}
}

func (f *fixture) seedSale(t *testing.T) (ledgerdomain.Sale, catalogdomain.Item) {
	t.Helper()
	ctx := context.Background()

	category, err := f.catalog.CreateCategory(ctx, catalogdomain.CreateCategoryRequest{Name: "Nut-Bolts"})
	require.NoError(t, err)
	quality, err := f.catalog.CreateQuality(ctx, catalogdomain.CreateQualityRequest{CategoryID: category.ID, Name: "MS"})
	require.NoError(t, err)
	size, err := f.catalog.CreateSize(ctx, catalogdomain.CreateSizeRequest{CategoryID: category.ID, SizeValue: "8", SizeDisplay: `8mm (5/16")`})
	require.NoError(t, err)

	sku := "NB-MS-8"
	item, err := f.catalog.CreateItem(ctx, catalogdomain.CreateItemRequest{
		CategoryID:    category.ID,
		QualityID:     quality.ID,
		SizeID:        size.ID,
		SKU:           &sku,
		Unit:          "kg",
		SellingPrice:  100,
		GSTPercentage: 18,
		StockQuantity: 100,
	})
	require.NoError(t, err)

	saleDate := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	sale, err := f.ledger.CreateSale(ctx, ledgerdomain.CreateSaleRequest{
		SaleDate: &saleDate,
		Discount: 50,
		Lines: []ledgerdomain.SaleLine{
			{ItemID: item.ID, Quantity: 10, UnitPrice: 100, GSTPercentage: 18},
		},
	})
	require.NoError(t, err)
	return sale, item
}

func TestBuild_AssemblesInvoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sale, _ := f.seedSale(t)

	invoice, err := f.invoice.Build(ctx, sale.ID)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("INV-2024-%04d", sale.ID), invoice.InvoiceNumber)
	assert.Equal(t, "10-Jun-2024", invoice.InvoiceDate)
	assert.Equal(t, "Hardware Point", invoice.Shop.Name)

	require.Len(t, invoice.Items, 1)
	line := invoice.Items[0]
	assert.Equal(t, `Nut-Bolts > MS > 8mm (5/16")`, line.Description)
	assert.Equal(t, "kg", line.Unit)
	assert.InDelta(t, 1000.0, line.Amount, 1e-9)
	assert.InDelta(t, 180.0, line.GSTAmount, 1e-9)

	assert.Equal(t, 1000.0, invoice.Subtotal)
	assert.Equal(t, 180.0, invoice.TotalGST)
	assert.Equal(t, 50.0, invoice.Discount)
	assert.Equal(t, 1130.0, invoice.GrandTotal)
	assert.Equal(t, map[string]float64{"18%": 180}, invoice.GSTBreakdown)
}

func TestBuild_RecomputesFromLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sale, _ := f.seedSale(t)

	// Corrupt the stored header aggregates; assembly must not trust them.
	require.NoError(t, f.db.Model(&ledgerdomain.Sale{}).Where("id = ?", sale.ID).
		Updates(map[string]any{"subtotal": 1, "gst_amount": 2, "total_amount": 3}).Error)

	invoice, err := f.invoice.Build(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, invoice.Subtotal)
	assert.Equal(t, 180.0, invoice.TotalGST)
	assert.Equal(t, 1130.0, invoice.GrandTotal)
}

func TestBuild_SkipsDeletedItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sale, item := f.seedSale(t)

	// Remove the catalog row out from under the sale line.
	require.NoError(t, f.db.Delete(&catalogdomain.Item{}, item.ID).Error)

	invoice, err := f.invoice.Build(ctx, sale.ID)
	require.NoError(t, err)
	assert.Empty(t, invoice.Items)
	assert.Equal(t, 0.0, invoice.Subtotal)
}

func TestBuild_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.invoice.Build(ctx, 9999)
	assert.ErrorIs(t, err, invoicedomain.ErrNotFound)

	// A sale whose lines were stripped renders no invoice.
	sale, _ := f.seedSale(t)
	require.NoError(t, f.db.Where("sale_id = ?", sale.ID).Delete(&ledgerdomain.SaleItem{}).Error)

	_, err = f.invoice.Build(ctx, sale.ID)
	assert.ErrorIs(t, err, invoicedomain.ErrNoItems)
}

func TestRenderPDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sale, _ := f.seedSale(t)

	reader, err := f.invoice.RenderPDF(ctx, sale.ID)
	require.NoError(t, err)

	raw, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}
