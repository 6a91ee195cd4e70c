package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// HandleServiceError translates service-layer sentinel errors into the
// HTTP status and {"error": ...} body the API exposes.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingFields):
		RespondError(c, http.StatusBadRequest, "All fields required")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrStopNotFound):
		RespondError(c, http.StatusNotFound, "Stop not found")
	case errors.Is(err, ErrActivityNotFound):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Server error")
	}
}
