package dto

import "github.com/medm/attendance/internal/app/models"

// CreateRoleRequest is the payload for creating a role
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,min=3,max=60" example:"ROLE_MODERATOR"`
}

// UpdateRoleRequest is the payload for renaming a role
type UpdateRoleRequest struct {
	Name string `json:"name" binding:"required,min=3,max=60" example:"ROLE_MODERATOR"`
}

// RoleResponse is the outward projection of a role
type RoleResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"ROLE_USER"`
}

// NewRoleResponse maps a role entity to its response view
func NewRoleResponse(role *models.Role) *RoleResponse {
	return &RoleResponse{
		ID:   role.ID,
		Name: role.Name,
	}
}

// NewRoleResponseList maps a slice of role entities to response views
func NewRoleResponseList(roles []*models.Role) []*RoleResponse {
	result := make([]*RoleResponse, 0, len(roles))
	for _, role := range roles {
		result = append(result, NewRoleResponse(role))
	}
	return result
}
