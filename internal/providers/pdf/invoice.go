package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	invoicedomain "github.com/hardwarepoint/inventory/internal/invoice/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) RenderInvoice(ctx context.Context, invoice invoicedomain.Invoice) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, invoice.Shop.Name, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(22,
		col.New(12).Add(
			text.New(invoice.Shop.Address, props.Text{Size: 9, Align: align.Center}),
			text.New(invoice.Shop.Phone+"  "+invoice.Shop.Email, props.Text{Size: 9, Top: 10, Align: align.Center}),
			text.New("GSTIN: "+invoice.Shop.GSTIN, props.Text{Size: 9, Top: 14, Align: align.Center}),
		),
	)

	m.AddRow(10,
		text.NewCol(12, "TAX INVOICE", props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(14,
		col.New(6).Add(
			text.New("Invoice number: "+invoice.InvoiceNumber, props.Text{Size: 9}),
			text.New("Invoice date: "+invoice.InvoiceDate, props.Text{Size: 9, Top: 5}),
		),
		col.New(6),
	)

	m.AddRow(10,
		text.NewCol(5, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "GST", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range invoice.Items {
		m.AddRow(8,
			text.NewCol(5, item.Description, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%g %s", item.Quantity, item.Unit), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(item.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, fmt.Sprintf("%g%%", item.GSTPercentage), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(item.Amount), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, money(invoice.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)

	for _, rate := range sortedRates(invoice.GSTBreakdown) {
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, "GST @ "+rate, props.Text{Size: 9}),
			text.NewCol(2, money(invoice.GSTBreakdown[rate]), props.Text{Size: 9, Align: align.Right}),
		)
	}

	if invoice.Discount != 0 {
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, "Discount", props.Text{Size: 9}),
			text.NewCol(2, "-"+money(invoice.Discount), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Grand total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, money(invoice.GrandTotal), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

func money(v float64) string {
	return fmt.Sprintf("Rs %.2f", v)
}

func sortedRates(breakdown map[string]float64) []string {
	rates := make([]string, 0, len(breakdown))
	for rate := range breakdown {
		rates = append(rates, rate)
	}
	sort.Slice(rates, func(i, j int) bool {
		a, _ := strconv.ParseFloat(strings.TrimSuffix(rates[i], "%"), 64)
		b, _ := strconv.ParseFloat(strings.TrimSuffix(rates[j], "%"), 64)
		return a < b
	})
	return rates
}
