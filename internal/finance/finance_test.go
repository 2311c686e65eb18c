package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLineTax(t *testing.T) {
	base, gst := LineTax(10, 100, 18)
	assert.Equal(t, 1000.0, base)
	assert.InDelta(t, 180.0, gst, 1e-9)
}

func TestLineTotalIsTaxInclusive(t *testing.T) {
	assert.InDelta(t, 1180.0, LineTotal(10, 100, 18), 1e-9)
	assert.Equal(t, 500.0, LineTotal(5, 100, 0))
}

func TestSaleTotals(t *testing.T) {
	lines := []Line{
		{Quantity: 10, UnitPrice: 100, GSTPercentage: 18},
		{Quantity: 2, UnitPrice: 250, GSTPercentage: 12},
	}

	totals := SaleTotals(lines, 50)

	assert.InDelta(t, 1500.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 240.0, totals.GSTAmount, 1e-9)
	assert.Equal(t, 50.0, totals.Discount)
	assert.InDelta(t, 1690.0, totals.TotalAmount, 1e-9)
}

func TestSaleTotalsDiscountAppliedOnceAfterTax(t *testing.T) {
	lines := []Line{
		{Quantity: 1, UnitPrice: 100, GSTPercentage: 18},
		{Quantity: 1, UnitPrice: 100, GSTPercentage: 18},
	}

	totals := SaleTotals(lines, 36)

	// Discount does not shrink the taxable base.
	assert.InDelta(t, 200.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 36.0, totals.GSTAmount, 1e-9)
	assert.InDelta(t, 200.0, totals.TotalAmount, 1e-9)
}

func TestSaleTotalsEmpty(t *testing.T) {
	totals := SaleTotals(nil, 0)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.GSTAmount)
	assert.Zero(t, totals.TotalAmount)
}

func TestGSTBreakdownGroupsByRate(t *testing.T) {
	lines := []Line{
		{Quantity: 10, UnitPrice: 100, GSTPercentage: 18},
		{Quantity: 1, UnitPrice: 500, GSTPercentage: 18},
		{Quantity: 4, UnitPrice: 50, GSTPercentage: 12},
		{Quantity: 1, UnitPrice: 80, GSTPercentage: 0},
	}

	breakdown := GSTBreakdown(lines)

	assert.Len(t, breakdown, 3)
	assert.InDelta(t, 270.0, breakdown["18%"], 1e-9)
	assert.InDelta(t, 24.0, breakdown["12%"], 1e-9)
	assert.InDelta(t, 0.0, breakdown["0%"], 1e-9)
}

func TestRateKey(t *testing.T) {
	assert.Equal(t, "18%", RateKey(18))
	assert.Equal(t, "12.5%", RateKey(12.5))
	assert.Equal(t, "0%", RateKey(0))
}

func TestInvoiceNumber(t *testing.T) {
	saleDate := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-2025-0007", InvoiceNumber(saleDate, 7))
	assert.Equal(t, "INV-2025-12345", InvoiceNumber(saleDate, 12345))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.56, Round2(1.556))
	assert.Equal(t, 1.55, Round2(1.554))
	assert.Equal(t, -1.56, Round2(-1.556))
	assert.Equal(t, 100.0, Round2(100))
}
