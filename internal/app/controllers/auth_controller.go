package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medm/attendance/internal/app/models/dto"
	"github.com/medm/attendance/internal/app/services"
	"github.com/medm/attendance/internal/middleware"
	"github.com/medm/attendance/internal/pkg/logger"
)

// AuthController handles authentication operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login authenticates a user and issues an access token
// @Summary Log in
// @Description Verifies the credentials and issues a bearer access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token issued successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	token, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      token,
		Timestamp: time.Now(),
	})
}

// Register creates a new account
// @Summary Register
// @Description Creates a new account with the default user role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "Account created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email or index number already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("userID", user.ID).Msg("New account registered")

	ctx.Header("Location", "/api/v1/users/"+strconv.FormatInt(user.ID, 10))
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewUserResponse(user),
		Timestamp: time.Now(),
	})
}
