// Package pdf renders printable documents with maroto.
package pdf

import (
	"context"
	"io"

	invoicedomain "github.com/hardwarepoint/inventory/internal/invoice/domain"
)

type Provider interface {
	RenderInvoice(ctx context.Context, invoice invoicedomain.Invoice) (io.Reader, error)
}
