package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/pkg/apperrors"
	"github.com/medm/attendance/internal/pkg/dberrors"
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
	}
}

// GetAll retrieves all roles
func (r *RoleRepository) GetAll(ctx context.Context) ([]*models.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

// GetByID retrieves a role by ID. Returns nil when no role has that id.
func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		WHERE id = $1
	`

	var role models.Role
	err := r.db.QueryRow(ctx, query, id).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving role: %w", err)
	}

	return &role, nil
}

// GetByName retrieves a role by its unique name. Returns nil when absent.
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	query := `
		SELECT id, name
		FROM roles
		WHERE name = $1
	`

	var role models.Role
	err := r.db.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving role by name: %w", err)
	}

	return &role, nil
}

// ExistsByName checks if a role exists with the given name
func (r *RoleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM roles WHERE name = $1)`,
		name).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking role existence: %w", err)
	}

	return exists, nil
}

// ExistsByNameExcluding checks if a role other than excludeID already
// uses the given name. Used on rename so a no-op rename does not
// conflict with itself.
func (r *RoleRepository) ExistsByNameExcluding(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM roles WHERE name = $1 AND id <> $2)`,
		name, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking role uniqueness: %w", err)
	}

	return exists, nil
}

// Create creates a new role and assigns its id
func (r *RoleRepository) Create(ctx context.Context, role *models.Role) error {
	query := `
		INSERT INTO roles (name)
		VALUES ($1)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, role.Name).Scan(&role.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoleAlreadyExists
		}
		return fmt.Errorf("error creating role: %w", err)
	}

	return nil
}

// UpdateName renames a role in place
func (r *RoleRepository) UpdateName(ctx context.Context, id int64, name string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE roles SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoleAlreadyExists
		}
		return fmt.Errorf("error updating role: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoleNotFound
	}

	return nil
}

// Delete deletes a role by ID
func (r *RoleRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting role: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoleNotFound
	}

	return nil
}

// GetRolesByUserID retrieves the roles granted to a user
func (r *RoleRepository) GetRolesByUserID(ctx context.Context, userID int64) ([]models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}
