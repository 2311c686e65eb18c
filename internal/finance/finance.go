// Package finance holds the money math shared by the sale flow and invoice
// assembly. All functions are pure; values stay unrounded until they cross
// a presentation boundary.
package finance

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Line is the minimal shape of a sale line the calculator needs.
type Line struct {
	Quantity      float64
	UnitPrice     float64
	GSTPercentage float64
}

// Totals aggregates a sale. Subtotal and GSTAmount are pre-discount;
// TotalAmount = Subtotal + GSTAmount - Discount.
type Totals struct {
	Subtotal    float64
	GSTAmount   float64
	Discount    float64
	TotalAmount float64
}

// LineTax returns the tax-exclusive base and the GST portion of one line.
func LineTax(quantity, unitPrice, gstPercentage float64) (base, gst float64) {
	base = quantity * unitPrice
	gst = base * (gstPercentage / 100)
	return base, gst
}

// LineTotal is the tax-inclusive amount stored on a sale line.
func LineTotal(quantity, unitPrice, gstPercentage float64) float64 {
	base, gst := LineTax(quantity, unitPrice, gstPercentage)
	return base + gst
}

// SaleTotals folds the lines into sale-level aggregates. The discount is
// applied once, after tax, never per line.
func SaleTotals(lines []Line, discount float64) Totals {
	var subtotal, gst float64
	for _, line := range lines {
		base, tax := LineTax(line.Quantity, line.UnitPrice, line.GSTPercentage)
		subtotal += base
		gst += tax
	}
	return Totals{
		Subtotal:    subtotal,
		GSTAmount:   gst,
		Discount:    discount,
		TotalAmount: subtotal + gst - discount,
	}
}

// GSTBreakdown groups tax amounts by rate, keyed "18%", "12.5%" and so on.
func GSTBreakdown(lines []Line) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, line := range lines {
		_, tax := LineTax(line.Quantity, line.UnitPrice, line.GSTPercentage)
		breakdown[RateKey(line.GSTPercentage)] += tax
	}
	return breakdown
}

// RateKey renders a GST rate without trailing zeros: 18 -> "18%",
// 12.5 -> "12.5%".
func RateKey(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}

// InvoiceNumber derives the presentation-only invoice number from the sale
// date's year and the sale id: INV-2025-0007.
func InvoiceNumber(saleDate time.Time, saleID int64) string {
	return fmt.Sprintf("INV-%s-%04d", saleDate.Format("2006"), saleID)
}

// FormatInvoiceDate renders the date shown on a printed invoice.
func FormatInvoiceDate(t time.Time) string {
	return t.Format("02-Jan-2006")
}

// Round2 rounds to two decimals, half away from zero. Presentation only.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
