package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	catalogdomain "github.com/hardwarepoint/inventory/internal/catalog/domain"
	"github.com/hardwarepoint/inventory/internal/finance"
	invoicedomain "github.com/hardwarepoint/inventory/internal/invoice/domain"
	ledgerdomain "github.com/hardwarepoint/inventory/internal/ledger/domain"
	"github.com/hardwarepoint/inventory/internal/providers/pdf"
	settingsdomain "github.com/hardwarepoint/inventory/internal/settings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Sales    ledgerdomain.Service
	Catalog  catalogdomain.Service
	Settings settingsdomain.Service
	PDF      pdf.Provider
}

type Service struct {
	log      *zap.Logger
	sales    ledgerdomain.Service
	catalog  catalogdomain.Service
	settings settingsdomain.Service
	pdf      pdf.Provider
}

func New(p Params) invoicedomain.Service {
	return &Service{
		log:      p.Log.Named("invoice.service"),
		sales:    p.Sales,
		catalog:  p.Catalog,
		settings: p.Settings,
		pdf:      p.PDF,
	}
}

func (s *Service) Build(ctx context.Context, saleID int64) (invoicedomain.Invoice, error) {
	shop, err := s.settings.Get(ctx)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	sale, err := s.sales.GetSale(ctx, saleID)
	if err != nil {
		if errors.Is(err, ledgerdomain.ErrSaleNotFound) {
			return invoicedomain.Invoice{}, invoicedomain.ErrNotFound
		}
		return invoicedomain.Invoice{}, err
	}
	if len(sale.Items) == 0 {
		return invoicedomain.Invoice{}, invoicedomain.ErrNoItems
	}

	var (
		lines        []invoicedomain.Line
		financeLines []finance.Line
	)
	for _, saleItem := range sale.Items {
		item, err := s.catalog.GetItem(ctx, saleItem.ItemID)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrItemNotFound) {
				// Item deleted after the sale; skip its line.
				continue
			}
			return invoicedomain.Invoice{}, err
		}

		description, err := s.describe(ctx, item)
		if err != nil {
			return invoicedomain.Invoice{}, err
		}

		base, gst := finance.LineTax(saleItem.Quantity, saleItem.UnitPrice, saleItem.GSTPercentage)
		lines = append(lines, invoicedomain.Line{
			Description:   description,
			Quantity:      saleItem.Quantity,
			Unit:          item.Unit,
			UnitPrice:     saleItem.UnitPrice,
			GSTPercentage: saleItem.GSTPercentage,
			Amount:        base,
			GSTAmount:     gst,
		})
		financeLines = append(financeLines, finance.Line{
			Quantity:      saleItem.Quantity,
			UnitPrice:     saleItem.UnitPrice,
			GSTPercentage: saleItem.GSTPercentage,
		})
	}

	totals := finance.SaleTotals(financeLines, sale.Discount)
	breakdown := finance.GSTBreakdown(financeLines)
	for rate, amount := range breakdown {
		breakdown[rate] = finance.Round2(amount)
	}

	return invoicedomain.Invoice{
		InvoiceNumber: finance.InvoiceNumber(sale.SaleDate, sale.ID),
		InvoiceDate:   finance.FormatInvoiceDate(sale.SaleDate),
		SaleID:        sale.ID,
		Shop: invoicedomain.ShopInfo{
			Name:    shop.ShopName,
			Address: deref(shop.ShopAddress),
			Phone:   deref(shop.ShopPhone),
			Email:   deref(shop.ShopEmail),
			GSTIN:   deref(shop.ShopGSTIN),
		},
		Items:        lines,
		Subtotal:     finance.Round2(totals.Subtotal),
		GSTBreakdown: breakdown,
		TotalGST:     finance.Round2(totals.GSTAmount),
		Discount:     finance.Round2(sale.Discount),
		GrandTotal:   finance.Round2(totals.TotalAmount),
	}, nil
}

func (s *Service) RenderPDF(ctx context.Context, saleID int64) (io.Reader, error) {
	invoice, err := s.Build(ctx, saleID)
	if err != nil {
		return nil, err
	}

	reader, err := s.pdf.RenderInvoice(ctx, invoice)
	if err != nil {
		return nil, err
	}

	s.log.Info("invoice pdf rendered",
		zap.Int64("sale_id", saleID),
		zap.String("invoice_number", invoice.InvoiceNumber),
	)
	return reader, nil
}

func (s *Service) describe(ctx context.Context, item catalogdomain.Item) (string, error) {
	category, err := s.catalog.GetCategory(ctx, item.CategoryID)
	if err != nil {
		return "", err
	}
	quality, err := s.catalog.GetQuality(ctx, item.QualityID)
	if err != nil {
		return "", err
	}
	size, err := s.catalog.GetSize(ctx, item.SizeID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s > %s > %s", category.Name, quality.Name, size.SizeDisplay), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
