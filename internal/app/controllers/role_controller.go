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

// RoleController handles role-related operations
type RoleController struct {
	roleService services.RoleService
}

// NewRoleController creates a new RoleController
func NewRoleController(roleService services.RoleService) *RoleController {
	return &RoleController{
		roleService: roleService,
	}
}

// GetAllRoles retrieves all roles
// @Summary Get all roles
// @Description Retrieves a list of all roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.RoleResponse} "Roles retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles [get]
func (c *RoleController) GetAllRoles(ctx *gin.Context) {
	roles, err := c.roleService.GetAllRoles(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewRoleResponseList(roles),
		Timestamp: time.Now(),
	})
}

// CreateRole handles role creation
// @Summary Create a new role
// @Description Creates a new role with a unique name
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoleRequest true "Role information"
// @Success 201 {object} dto.APIResponse{data=dto.RoleResponse} "Role created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 409 {object} dto.ErrorResponse "Role already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles [post]
func (c *RoleController) CreateRole(ctx *gin.Context) {
	var req dto.CreateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	role, err := c.roleService.CreateRole(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", "/api/v1/roles/"+strconv.FormatInt(role.ID, 10))
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewRoleResponse(role),
		Timestamp: time.Now(),
	})
}

// GetRoleByID retrieves a role by ID
// @Summary Get role by ID
// @Description Retrieves a specific role by its ID
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} dto.APIResponse{data=dto.RoleResponse} "Role retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid role ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles/{id} [get]
func (c *RoleController) GetRoleByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	role, err := c.roleService.GetRoleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewRoleResponse(role),
		Timestamp: time.Now(),
	})
}

// UpdateRole renames a role
// @Summary Update a role
// @Description Renames an existing role. The administrator role cannot be renamed.
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param request body dto.UpdateRoleRequest true "New role name"
// @Success 204 "Role updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrator role is immutable"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Failure 409 {object} dto.ErrorResponse "Role name already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles/{id} [put]
func (c *RoleController) UpdateRole(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	var req dto.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.roleService.UpdateRole(ctx, id, req.Name); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteRole deletes a role
// @Summary Delete a role
// @Description Deletes a role. The administrator role cannot be deleted.
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 204 "Role deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid role ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrator role is immutable"
// @Failure 404 {object} dto.ErrorResponse "Role not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles/{id} [delete]
func (c *RoleController) DeleteRole(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	if err := c.roleService.DeleteRole(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
