package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medm/attendance/internal/app/models/dto"
	"github.com/medm/attendance/internal/app/services"
	"github.com/medm/attendance/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetAllUsers retrieves all users
// @Summary Get all users
// @Description Retrieves a list of all users with their roles
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Users retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewUserResponseList(users),
		Timestamp: time.Now(),
	})
}

// CreateUser handles administrative user creation
// @Summary Create a new user
// @Description Creates a new user account with the default user role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse} "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 409 {object} dto.ErrorResponse "Email or index number already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.userService.RegisterUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", "/api/v1/users/"+strconv.FormatInt(user.ID, 10))
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewUserResponse(user),
		Timestamp: time.Now(),
	})
}

// GetUserByID retrieves a user by ID
// @Summary Get user by ID
// @Description Retrieves a specific user with their roles
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewUserResponse(user),
		Timestamp: time.Now(),
	})
}

// UpdateUser overwrites a user's profile fields
// @Summary Update a user profile
// @Description Overwrites a user's profile fields. The password and roles are untouched.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Profile information"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 409 {object} dto.ErrorResponse "Email or index number already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.userService.UpdateUserProfile(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewUserResponse(user),
		Timestamp: time.Now(),
	})
}

// UpdatePassword changes a user's password
// @Summary Update a user's password
// @Description Stores a new password for the user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdatePasswordRequest true "New password"
// @Success 204 "Password updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/password [put]
func (c *UserController) UpdatePassword(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	var req dto.UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.userService.UpdateUserPassword(ctx, id, req.Password); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteUser deletes a user account
// @Summary Delete a user
// @Description Deletes a user account along with its role grants and lecture sign-ups
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "User deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetUserLectures retrieves the lectures a user is signed up to
// @Summary List a user's lectures
// @Description Retrieves the lectures the user is signed up to
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.LectureResponse} "Lectures retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{id}/lectures [get]
func (c *UserController) GetUserLectures(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	lectures, err := c.userService.GetUserLectures(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewLectureResponseList(lectures),
		Timestamp: time.Now(),
	})
}
