package activityfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo, provideActivityService, provideActivityController)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(activityRepo repositories.ActivityRepository) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo)
}

func provideActivityController(activityService services.ActivityServiceInterface) *controllers.ActivityController {
	return controllers.NewActivityController(activityService)
}
