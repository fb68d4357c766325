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

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, first_name, last_name, email, password, year_of_study, field_of_study, index_number`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
		&user.YearOfStudy,
		&user.FieldOfStudy,
		&user.IndexNumber,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// GetByID retrieves a user by ID. Returns nil when no user has that id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email. Returns nil when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return user, nil
}

// ExistsByEmailOrIndexNumber checks if a user already holds the given
// email or index number
func (r *UserRepository) ExistsByEmailOrIndexNumber(ctx context.Context, email, indexNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR index_number = $2)`,
		email, indexNumber).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}

	return exists, nil
}

// ExistsByEmailOrIndexNumberExcluding checks if a user other than
// excludeID already holds the given email or index number
func (r *UserRepository) ExistsByEmailOrIndexNumberExcluding(ctx context.Context, email, indexNumber string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE (email = $1 OR index_number = $2) AND id <> $3)`,
		email, indexNumber, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking user uniqueness: %w", err)
	}

	return exists, nil
}

// Create inserts a new user and grants the roles carried on user.Roles
// in the same transaction, so a user never exists without its roles.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO users (first_name, last_name, email, password, year_of_study, field_of_study, index_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err = tx.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Password,
		user.YearOfStudy, user.FieldOfStudy, user.IndexNumber,
	).Scan(&user.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	for _, role := range user.Roles {
		_, err = tx.Exec(ctx, `
			INSERT INTO user_roles (user_id, role_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			user.ID, role.ID)
		if err != nil {
			return fmt.Errorf("error granting role: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateProfile overwrites a user's profile fields. The password column
// is untouched.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, year_of_study = $4, field_of_study = $5, index_number = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		user.FirstName, user.LastName, user.Email,
		user.YearOfStudy, user.FieldOfStudy, user.IndexNumber, user.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword stores a new password hash for the user
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET password = $1 WHERE id = $2`, hashedPassword, id)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete deletes a user by ID. Join-table rows go with it via ON DELETE
// CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
