package stopfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(
	provideStopRepo, provideStopService, provideStopController)

func provideStopRepo(db *gorm.DB) repositories.StopRepository {
	return repositories.NewStopRepository(db)
}

func provideStopService(stopRepo repositories.StopRepository) services.StopServiceInterface {
	return services.NewStopService(stopRepo)
}

func provideStopController(stopService services.StopServiceInterface) *controllers.StopController {
	return controllers.NewStopController(stopService)
}
