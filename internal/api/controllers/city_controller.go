package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
}

func NewCityController(cityService services.CityServiceInterface) *CityController {
	return &CityController{
		cityService: cityService,
	}
}

// SearchCities godoc
// @Summary Search the city catalog
// @Description Substring search over name and country, optional exact country filter, most popular first, 50 rows max
// @Tags Cities
// @Produce json
// @Param search query string false "Substring of name or country"
// @Param country query string false "Exact country"
// @Success 200 {array} db_models.City
// @Router /api/cities [get]
func (ct *CityController) SearchCities(c *gin.Context) {
	term := c.Query("search")
	country := c.Query("country")

	cities, err := ct.cityService.SearchCities(c.Request.Context(), term, country)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}
