package settings

import (
	"github.com/hardwarepoint/inventory/internal/settings/repository"
	"github.com/hardwarepoint/inventory/internal/settings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
