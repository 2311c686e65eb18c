package domain

import (
	"fmt"
)

// StockError carries the context of a rejected stock deduction: which item,
// how much was on hand, how much the caller wanted. It unwraps to
// ErrInsufficientStock so callers can match with errors.Is.
type StockError struct {
	ItemID    int64
	SKU       string
	Available float64
	Requested float64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: available %g, requested %g",
		e.SKU, e.Available, e.Requested)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }
