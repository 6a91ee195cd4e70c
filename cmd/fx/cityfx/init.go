package cityfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(
	provideCityRepo, provideCityService, provideCityController)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}

func provideCityService(cityRepo repositories.CityRepository) services.CityServiceInterface {
	return services.NewCityService(cityRepo)
}

func provideCityController(cityService services.CityServiceInterface) *controllers.CityController {
	return controllers.NewCityController(cityService)
}
