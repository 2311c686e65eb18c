// Package domain defines the invoice view of a sale. An invoice is derived
// on demand from the raw sale lines; nothing here is persisted.
package domain

type ShopInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	GSTIN   string `json:"gstin,omitempty"`
}

type Line struct {
	Description   string  `json:"description"`
	Quantity      float64 `json:"quantity"`
	Unit          string  `json:"unit"`
	UnitPrice     float64 `json:"unit_price"`
	GSTPercentage float64 `json:"gst_percentage"`
	Amount        float64 `json:"amount"`
	GSTAmount     float64 `json:"gst_amount"`
}

// Invoice totals are recomputed from the lines at assembly time; the sale
// header's stored aggregates are never trusted here.
type Invoice struct {
	InvoiceNumber string             `json:"invoice_number"`
	InvoiceDate   string             `json:"invoice_date"`
	SaleID        int64              `json:"sale_id"`
	Shop          ShopInfo           `json:"shop"`
	Items         []Line             `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	GSTBreakdown  map[string]float64 `json:"gst_breakdown"`
	TotalGST      float64            `json:"total_gst"`
	Discount      float64            `json:"discount"`
	GrandTotal    float64            `json:"grand_total"`
}
