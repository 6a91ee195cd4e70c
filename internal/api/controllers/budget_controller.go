package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{
		budgetService: budgetService,
	}
}

// GetTripBudget godoc
// @Summary Get a trip's budget breakdown
// @Description Activity-cost sum plus per-stop accommodation, transport and meal estimates, computed fresh per request
// @Tags Budget
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} response_models.BudgetResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/trips/{id}/budget [get]
func (b *BudgetController) GetTripBudget(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	budget, err := b.budgetService.GetTripBudget(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, budget)
}
