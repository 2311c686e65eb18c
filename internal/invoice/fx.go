package invoice

import (
	"github.com/hardwarepoint/inventory/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(service.New),
)
