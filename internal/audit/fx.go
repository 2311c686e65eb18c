package audit

import (
	"github.com/hardwarepoint/inventory/internal/audit/repository"
	"github.com/hardwarepoint/inventory/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
