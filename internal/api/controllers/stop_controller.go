package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type StopController struct {
	stopService services.StopServiceInterface
}

func NewStopController(stopService services.StopServiceInterface) *StopController {
	return &StopController{
		stopService: stopService,
	}
}

// ListStops godoc
// @Summary List a trip's stops
// @Description Fetch the trip's stops in itinerary order
// @Tags Stops
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {array} db_models.Stop
// @Security BearerAuth
// @Router /api/trips/{id}/stops [get]
func (s *StopController) ListStops(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	stops, err := s.stopService.ListStops(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stops)
}

// AddStop godoc
// @Summary Add a stop to a trip
// @Tags Stops
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.AddStopRequest true "Stop payload"
// @Success 200 {object} db_models.Stop
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/trips/{id}/stops [post]
func (s *StopController) AddStop(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	var req request_models.AddStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	stop, err := s.stopService.AddStop(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stop)
}

// DeleteStop removes the stop and its activities.
func (s *StopController) DeleteStop(c *gin.Context) {
	userID := c.GetString("user_id")
	stopID := c.Param("id")

	if err := s.stopService.DeleteStop(c.Request.Context(), userID, stopID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Stop deleted")
}
