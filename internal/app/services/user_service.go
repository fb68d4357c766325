package services

import (
	"context"
	"fmt"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/app/models/dto"
	"github.com/medm/attendance/internal/app/repositories"
	"github.com/medm/attendance/internal/pkg/apperrors"
	"github.com/medm/attendance/internal/pkg/auth"
)

// UserService defines the interface for user operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUserProfile(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	UpdateUserPassword(ctx context.Context, id int64, newPassword string) error
	DeleteUser(ctx context.Context, id int64) error
	GetUserLectures(ctx context.Context, userID int64) ([]*models.Lecture, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo    repositories.IUserRepository
	roleRepo    repositories.IRoleRepository
	lectureRepo repositories.ILectureRepository
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repositories.IUserRepository,
	roleRepo repositories.IRoleRepository,
	lectureRepo repositories.ILectureRepository,
) UserService {
	return &userServiceImpl{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		lectureRepo: lectureRepo,
	}
}

// GetAllUsers retrieves all users with their roles
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}

	for _, user := range users {
		roles, err := s.roleRepo.GetRolesByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving user roles: %w", err)
		}
		user.Roles = roles
	}

	return users, nil
}

// RegisterUser creates a new account holding the default user role. The
// email and index number must both be free.
func (s *userServiceImpl) RegisterUser(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsByEmailOrIndexNumber(ctx, req.Email, req.IndexNumber)
	if err != nil {
		return nil, fmt.Errorf("error checking user existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	defaultRole, err := s.roleRepo.GetByName(ctx, string(models.RoleUser))
	if err != nil {
		return nil, fmt.Errorf("error retrieving default role: %w", err)
	}
	if defaultRole == nil {
		return nil, fmt.Errorf("default role %s is not present", models.RoleUser)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     hashedPassword,
		YearOfStudy:  req.YearOfStudy,
		FieldOfStudy: req.FieldOfStudy,
		IndexNumber:  req.IndexNumber,
		Roles:        []models.Role{*defaultRole},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user with their roles
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	roles, err := s.roleRepo.GetRolesByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user roles: %w", err)
	}
	user.Roles = roles

	return user, nil
}

// UpdateUserProfile overwrites a user's profile fields. The password and
// granted roles are untouched. The user's own email and index number are
// excluded from the uniqueness probe.
func (s *userServiceImpl) UpdateUserProfile(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	exists, err := s.userRepo.ExistsByEmailOrIndexNumberExcluding(ctx, req.Email, req.IndexNumber, id)
	if err != nil {
		return nil, fmt.Errorf("error checking user uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.YearOfStudy = req.YearOfStudy
	user.FieldOfStudy = req.FieldOfStudy
	user.IndexNumber = req.IndexNumber

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	roles, err := s.roleRepo.GetRolesByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user roles: %w", err)
	}
	user.Roles = roles

	return user, nil
}

// UpdateUserPassword stores a new password hash for the user
func (s *userServiceImpl) UpdateUserPassword(ctx context.Context, id int64, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, id, hashedPassword)
}

// DeleteUser deletes a user account along with its role grants and
// lecture sign-ups
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

// GetUserLectures retrieves the lectures a user is signed up to
func (s *userServiceImpl) GetUserLectures(ctx context.Context, userID int64) ([]*models.Lecture, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	lectures, err := s.lectureRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user lectures: %w", err)
	}

	return lectures, nil
}
