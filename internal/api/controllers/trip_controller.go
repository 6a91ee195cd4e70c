package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// ListTrips godoc
// @Summary List the caller's trips
// @Description Fetch all trips owned by the authenticated user, newest first
// @Tags Trips
// @Produce json
// @Success 200 {array} db_models.Trip
// @Security BearerAuth
// @Router /api/trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	userID := c.GetString("user_id")

	trips, err := t.tripService.ListTrips(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trips)
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 200 {object} db_models.Trip
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	userID := c.GetString("user_id")

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "All fields required")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

// GetTrip godoc
// @Summary Get one trip by id
// @Tags Trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} db_models.Trip
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/trips/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	trip, err := t.tripService.GetTrip(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trip)
}

// UpdateTrip replaces all mutable trip fields.
func (t *TripController) UpdateTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := t.tripService.UpdateTrip(c.Request.Context(), userID, tripID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Trip updated")
}

// DeleteTrip removes the trip and, transitively, its stops and activities.
func (t *TripController) DeleteTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	if err := t.tripService.DeleteTrip(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Trip deleted")
}
