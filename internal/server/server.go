package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hardwarepoint/inventory/internal/audit"
	auditdomain "github.com/hardwarepoint/inventory/internal/audit/domain"
	"github.com/hardwarepoint/inventory/internal/catalog"
	catalogdomain "github.com/hardwarepoint/inventory/internal/catalog/domain"
	"github.com/hardwarepoint/inventory/internal/config"
	"github.com/hardwarepoint/inventory/internal/invoice"
	invoicedomain "github.com/hardwarepoint/inventory/internal/invoice/domain"
	"github.com/hardwarepoint/inventory/internal/ledger"
	ledgerdomain "github.com/hardwarepoint/inventory/internal/ledger/domain"
	"github.com/hardwarepoint/inventory/internal/providers"
	"github.com/hardwarepoint/inventory/internal/settings"
	settingsdomain "github.com/hardwarepoint/inventory/internal/settings/domain"
	"github.com/hardwarepoint/inventory/internal/supplier"
	supplierdomain "github.com/hardwarepoint/inventory/internal/supplier/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	audit.Module,
	catalog.Module,
	supplier.Module,
	ledger.Module,
	settings.Module,
	providers.Module,
	invoice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(corsMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger) *gin.Engine {
	return NewEngine(log)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	catalogSvc  catalogdomain.Service
	supplierSvc supplierdomain.Service
	ledgerSvc   ledgerdomain.Service
	invoiceSvc  invoicedomain.Service
	settingsSvc settingsdomain.Service
	auditSvc    auditdomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	CatalogSvc  catalogdomain.Service
	SupplierSvc supplierdomain.Service
	LedgerSvc   ledgerdomain.Service
	InvoiceSvc  invoicedomain.Service
	SettingsSvc settingsdomain.Service
	AuditSvc    auditdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		catalogSvc:  p.CatalogSvc,
		supplierSvc: p.SupplierSvc,
		ledgerSvc:   p.LedgerSvc,
		invoiceSvc:  p.InvoiceSvc,
		settingsSvc: p.SettingsSvc,
		auditSvc:    p.AuditSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")
	{
		categories := api.Group("/categories")
		{
			categories.GET("", s.ListCategories)
			categories.POST("", s.CreateCategory)
			categories.GET("/:id", s.GetCategory)
			categories.PUT("/:id", s.UpdateCategory)
			categories.DELETE("/:id", s.DeleteCategory)
			categories.GET("/:id/table", s.GetItemsTable)
		}

		qualities := api.Group("/qualities")
		{
			qualities.GET("", s.ListQualities)
			qualities.POST("", s.CreateQuality)
			qualities.DELETE("/:id", s.DeleteQuality)
		}

		sizes := api.Group("/sizes")
		{
			sizes.GET("", s.ListSizes)
			sizes.POST("", s.CreateSize)
			sizes.DELETE("/:id", s.DeleteSize)
		}

		items := api.Group("/items")
		{
			items.GET("", s.ListItems)
			items.POST("", s.CreateItem)
			items.POST("/bulk", s.BulkCreateItems)
			items.GET("/low-stock", s.ListLowStockItems)
			items.GET("/:id", s.GetItem)
			items.PATCH("/:id", s.UpdateItem)
			items.PATCH("/:id/stock", s.SetStock)
			items.DELETE("/:id", s.DeleteItem)
		}

		suppliers := api.Group("/suppliers")
		{
			suppliers.GET("", s.ListSuppliers)
			suppliers.POST("", s.CreateSupplier)
			suppliers.GET("/:id", s.GetSupplier)
			suppliers.PUT("/:id", s.UpdateSupplier)
			suppliers.DELETE("/:id", s.DeleteSupplier)
		}

		purchases := api.Group("/purchases")
		{
			purchases.GET("", s.ListPurchases)
			purchases.POST("", s.CreatePurchase)
			purchases.GET("/:id", s.GetPurchase)
			purchases.DELETE("/:id", s.DeletePurchase)
		}

		sales := api.Group("/sales")
		{
			sales.GET("", s.ListSales)
			sales.POST("", s.CreateSale)
			sales.GET("/:id", s.GetSale)
			sales.DELETE("/:id", s.DeleteSale)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("/:saleID", s.GetInvoice)
			invoices.GET("/:saleID/pdf", s.DownloadInvoicePDF)
		}

		auditLogs := api.Group("/audit-logs")
		{
			auditLogs.GET("", s.ListAuditLogs)
		}

		settingsGroup := api.Group("/settings")
		{
			settingsGroup.GET("", s.GetSettings)
			settingsGroup.PUT("", s.UpdateSettings)
		}
	}
}
