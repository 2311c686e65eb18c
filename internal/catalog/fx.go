package catalog

import (
	"github.com/hardwarepoint/inventory/internal/catalog/repository"
	"github.com/hardwarepoint/inventory/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
