package domain

import (
	"context"
	"errors"
	"io"
)

type Service interface {
	// Build assembles the invoice for a sale from its raw lines.
	Build(ctx context.Context, saleID int64) (Invoice, error)
	// RenderPDF builds the invoice and renders it as a PDF document.
	RenderPDF(ctx context.Context, saleID int64) (io.Reader, error)
}

var (
	ErrNotFound = errors.New("invoice_not_found")
	ErrNoItems  = errors.New("invoice_no_items")
)
