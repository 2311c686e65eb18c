package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/hardwarepoint/inventory/internal/clock"
	"github.com/hardwarepoint/inventory/internal/config"
	"github.com/hardwarepoint/inventory/internal/logger"
	"github.com/hardwarepoint/inventory/internal/migration"
	"github.com/hardwarepoint/inventory/internal/server"
	"github.com/hardwarepoint/inventory/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
