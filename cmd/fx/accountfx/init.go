package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService, provideAuthController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, jwtManager *utils.JWTManager) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, jwtManager)
}

func provideAuthController(accountService services.AccountServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(accountService)
}
