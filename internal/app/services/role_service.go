package services

import (
	"context"
	"fmt"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/app/repositories"
	"github.com/medm/attendance/internal/pkg/apperrors"
)

// RoleService defines the interface for role operations
type RoleService interface {
	GetAllRoles(ctx context.Context) ([]*models.Role, error)
	CreateRole(ctx context.Context, name string) (*models.Role, error)
	GetRoleByID(ctx context.Context, id int64) (*models.Role, error)
	UpdateRole(ctx context.Context, id int64, newName string) error
	DeleteRole(ctx context.Context, id int64) error
}

// roleServiceImpl implements RoleService
type roleServiceImpl struct {
	roleRepo repositories.IRoleRepository
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo repositories.IRoleRepository) RoleService {
	return &roleServiceImpl{
		roleRepo: roleRepo,
	}
}

// GetAllRoles retrieves all roles
func (s *roleServiceImpl) GetAllRoles(ctx context.Context) ([]*models.Role, error) {
	roles, err := s.roleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roles: %w", err)
	}
	return roles, nil
}

// CreateRole creates a new role with a unique name
func (s *roleServiceImpl) CreateRole(ctx context.Context, name string) (*models.Role, error) {
	exists, err := s.roleRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error checking role name: %w", err)
	}
	if exists {
		return nil, apperrors.ErrRoleAlreadyExists
	}

	role := &models.Role{Name: name}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// GetRoleByID retrieves a role by ID
func (s *roleServiceImpl) GetRoleByID(ctx context.Context, id int64) (*models.Role, error) {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}
	if role == nil {
		return nil, apperrors.ErrRoleNotFound
	}
	return role, nil
}

// UpdateRole renames an existing role. The stored role's own name is
// excluded from the uniqueness probe, so a no-op rename succeeds. The
// administrator role may never be renamed, regardless of the requested
// new name.
func (s *roleServiceImpl) UpdateRole(ctx context.Context, id int64, newName string) error {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving role: %w", err)
	}
	if role == nil {
		return apperrors.ErrRoleNotFound
	}

	exists, err := s.roleRepo.ExistsByNameExcluding(ctx, newName, id)
	if err != nil {
		return fmt.Errorf("error checking role name: %w", err)
	}
	if exists {
		return apperrors.ErrRoleAlreadyExists
	}

	if role.IsAdmin() {
		return apperrors.ErrAdminRoleImmutable
	}

	return s.roleRepo.UpdateName(ctx, id, newName)
}

// DeleteRole deletes a role. The administrator role cannot be deleted;
// removing it would lock the privilege system out entirely.
func (s *roleServiceImpl) DeleteRole(ctx context.Context, id int64) error {
	role, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving role: %w", err)
	}
	if role == nil {
		return apperrors.ErrRoleNotFound
	}

	if role.IsAdmin() {
		return apperrors.ErrAdminRoleImmutable
	}

	return s.roleRepo.Delete(ctx, id)
}
