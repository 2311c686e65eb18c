package domain

// ItemPatch enumerates the optional fields of a partial item update. Only
// non-nil fields are applied. Apply validates each present field, mutates
// the item, and returns the old/new snapshots that accompany the audit
// entry for the update.
type ItemPatch struct {
	SKU               *string  `json:"sku"`
	Unit              *string  `json:"unit"`
	SellingPrice      *float64 `json:"selling_price"`
	GSTPercentage     *float64 `json:"gst_percentage"`
	StockQuantity     *float64 `json:"stock_quantity"`
	LowStockThreshold *float64 `json:"low_stock_threshold"`
}

func (p ItemPatch) IsZero() bool {
	return p.SKU == nil &&
		p.Unit == nil &&
		p.SellingPrice == nil &&
		p.GSTPercentage == nil &&
		p.StockQuantity == nil &&
		p.LowStockThreshold == nil
}

func (p ItemPatch) Apply(item *Item) (old map[string]any, updated map[string]any, err error) {
	old = map[string]any{}
	updated = map[string]any{}

	if p.SKU != nil {
		old["sku"] = item.SKU
		item.SKU = p.SKU
		updated["sku"] = item.SKU
	}
	if p.Unit != nil {
		old["unit"] = item.Unit
		item.Unit = *p.Unit
		updated["unit"] = item.Unit
	}
	if p.SellingPrice != nil {
		if *p.SellingPrice < 0 {
			return nil, nil, ErrInvalidPrice
		}
		old["selling_price"] = item.SellingPrice
		item.SellingPrice = *p.SellingPrice
		updated["selling_price"] = item.SellingPrice
	}
	if p.GSTPercentage != nil {
		if *p.GSTPercentage < 0 || *p.GSTPercentage > 100 {
			return nil, nil, ErrInvalidGST
		}
		old["gst_percentage"] = item.GSTPercentage
		item.GSTPercentage = *p.GSTPercentage
		updated["gst_percentage"] = item.GSTPercentage
	}
	if p.StockQuantity != nil {
		if *p.StockQuantity < 0 {
			return nil, nil, ErrNegativeStock
		}
		old["stock_quantity"] = item.StockQuantity
		item.StockQuantity = *p.StockQuantity
		updated["stock_quantity"] = item.StockQuantity
	}
	if p.LowStockThreshold != nil {
		if *p.LowStockThreshold < 0 {
			return nil, nil, ErrInvalidThreshold
		}
		old["low_stock_threshold"] = item.LowStockThreshold
		item.LowStockThreshold = *p.LowStockThreshold
		updated["low_stock_threshold"] = item.LowStockThreshold
	}

	return old, updated, nil
}
