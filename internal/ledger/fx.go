package ledger

import (
	"github.com/hardwarepoint/inventory/internal/ledger/repository"
	"github.com/hardwarepoint/inventory/internal/ledger/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ledger.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
