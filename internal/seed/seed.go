package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/app/repositories"
	"github.com/medm/attendance/internal/pkg/apperrors"
	"github.com/medm/attendance/internal/pkg/auth"
)

// Default administrator credentials. The password must be changed after
// the first login on any non-development deployment.
const (
	defaultAdminEmail       = "admin@attendance.local"
	defaultAdminPassword    = "ChangeMe!123"
	defaultAdminIndexNumber = "000000"
)

// CreateDefaultData makes sure the built-in roles and the default
// administrator account exist. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	roleRepo := repositories.NewRoleRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default roles and administrator account...")
	var finalErr error

	adminRole, err := ensureRole(ctx, roleRepo, models.RoleAdmin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating administrator role")
		finalErr = errors.Join(finalErr, err)
	}

	if _, err := ensureRole(ctx, roleRepo, models.RoleUser); err != nil {
		lgr.Error().Err(err).Msg("Error creating user role")
		finalErr = errors.Join(finalErr, err)
	}

	if adminRole != nil {
		if err := ensureAdminUser(ctx, userRepo, adminRole); err != nil {
			lgr.Error().Err(err).Msg("Error creating default administrator account")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

func ensureRole(ctx context.Context, roleRepo *repositories.RoleRepository, name models.RoleName) (*models.Role, error) {
	role, err := roleRepo.GetByName(ctx, string(name))
	if err != nil {
		return nil, err
	}
	if role != nil {
		return role, nil
	}

	role = &models.Role{Name: string(name)}
	if err := roleRepo.Create(ctx, role); err != nil {
		// Another instance may have created it in the meantime
		if errors.Is(err, apperrors.ErrRoleAlreadyExists) {
			return roleRepo.GetByName(ctx, string(name))
		}
		return nil, err
	}

	return role, nil
}

func ensureAdminUser(ctx context.Context, userRepo *repositories.UserRepository, adminRole *models.Role) error {
	existing, err := userRepo.GetByEmail(ctx, defaultAdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		FirstName:    "System",
		LastName:     "Administrator",
		Email:        defaultAdminEmail,
		Password:     hashedPassword,
		YearOfStudy:  "0",
		FieldOfStudy: "Administration",
		IndexNumber:  defaultAdminIndexNumber,
		Roles:        []models.Role{*adminRole},
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	return nil
}
