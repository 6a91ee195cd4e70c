package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// ListActivities godoc
// @Summary List a stop's activities
// @Description Fetch the stop's activities ordered by activity date
// @Tags Activities
// @Produce json
// @Param id path string true "Stop ID"
// @Success 200 {array} db_models.Activity
// @Security BearerAuth
// @Router /api/stops/{id}/activities [get]
func (a *ActivityController) ListActivities(c *gin.Context) {
	userID := c.GetString("user_id")
	stopID := c.Param("id")

	activities, err := a.activityService.ListActivities(c.Request.Context(), userID, stopID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// AddActivity godoc
// @Summary Add an activity to a stop
// @Tags Activities
// @Accept json
// @Produce json
// @Param id path string true "Stop ID"
// @Param request body request_models.AddActivityRequest true "Activity payload"
// @Success 200 {object} db_models.Activity
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/stops/{id}/activities [post]
func (a *ActivityController) AddActivity(c *gin.Context) {
	userID := c.GetString("user_id")
	stopID := c.Param("id")

	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := a.activityService.AddActivity(c.Request.Context(), userID, stopID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

func (a *ActivityController) DeleteActivity(c *gin.Context) {
	userID := c.GetString("user_id")
	activityID := c.Param("id")

	if err := a.activityService.DeleteActivity(c.Request.Context(), userID, activityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Activity deleted")
}
