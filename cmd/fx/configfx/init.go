package configfx

import (
	"go.uber.org/fx"

	"globetrotter/internal/config"
	"globetrotter/pkg/utils"
)

var Module = fx.Provide(
	provideConfig, provideJWTManager)

func provideConfig() *config.Config {
	return config.Load()
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
}
