package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type AuthController struct {
	accountService services.AccountServiceInterface
}

func NewAuthController(accountService services.AccountServiceInterface) *AuthController {
	return &AuthController{
		accountService: accountService,
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Create a user account and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 200 {object} response_models.AuthResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/signup [post]
func (a *AuthController) Signup(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "All fields required")
		return
	}

	result, err := a.accountService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Login godoc
// @Summary Log in
// @Description Authenticate a user and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.AuthResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	result, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me returns the authenticated user's profile. The password hash is never
// part of any response.
func (a *AuthController) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := a.accountService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
