package supplier

import (
	"github.com/hardwarepoint/inventory/internal/supplier/repository"
	"github.com/hardwarepoint/inventory/internal/supplier/service"
	"go.uber.org/fx"
)

var Module = fx.Module("supplier.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
