package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/config"
	"globetrotter/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitSQLite(cfg)
}
