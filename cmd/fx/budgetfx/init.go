package budgetfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(
	provideBudgetRepo, provideBudgetService, provideBudgetController)

func provideBudgetRepo(db *gorm.DB) repositories.BudgetRepository {
	return repositories.NewBudgetRepository(db)
}

func provideBudgetService(budgetRepo repositories.BudgetRepository) services.BudgetServiceInterface {
	return services.NewBudgetService(budgetRepo)
}

func provideBudgetController(budgetService services.BudgetServiceInterface) *controllers.BudgetController {
	return controllers.NewBudgetController(budgetService)
}
