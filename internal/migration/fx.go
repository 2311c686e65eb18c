package migration

import (
	auditdomain "github.com/hardwarepoint/inventory/internal/audit/domain"
	catalogdomain "github.com/hardwarepoint/inventory/internal/catalog/domain"
	"github.com/hardwarepoint/inventory/internal/config"
	ledgerdomain "github.com/hardwarepoint/inventory/internal/ledger/domain"
	"github.com/hardwarepoint/inventory/internal/seed"
	settingsdomain "github.com/hardwarepoint/inventory/internal/settings/domain"
	supplierdomain "github.com/hardwarepoint/inventory/internal/supplier/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql run schema from the models directly.
			if err := conn.AutoMigrate(
				&catalogdomain.Category{},
				&catalogdomain.Quality{},
				&catalogdomain.Size{},
				&catalogdomain.Item{},
				&supplierdomain.Supplier{},
				&ledgerdomain.Purchase{},
				&ledgerdomain.PurchaseItem{},
				&ledgerdomain.Sale{},
				&ledgerdomain.SaleItem{},
				&auditdomain.AuditLog{},
				&settingsdomain.Settings{},
			); err != nil {
				return err
			}
		}

		if err := seed.EnsureDefaultSettings(conn); err != nil {
			return err
		}
		if cfg.SeedDemoData {
			return seed.EnsureDemoCatalog(conn)
		}
		return nil
	}),
)
