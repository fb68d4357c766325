package services

import (
	"context"
	"fmt"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/app/models/dto"
	"github.com/medm/attendance/internal/app/repositories"
	"github.com/medm/attendance/internal/pkg/apperrors"
	"github.com/medm/attendance/internal/pkg/auth"
	"github.com/medm/attendance/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.TokenResponse, error)
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo    repositories.IUserRepository
	roleRepo    repositories.IRoleRepository
	userService UserService
	jwtService  *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	roleRepo repositories.IRoleRepository,
	userService UserService,
	jwtService *auth.JWTService,
) AuthService {
	return &authServiceImpl{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		userService: userService,
		jwtService:  jwtService,
	}
}

// Login verifies the credentials and issues an access token. An unknown
// email and a wrong password produce the same error, so the endpoint
// does not leak which accounts exist.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		logger.Debug().Int64("userID", user.ID).Msg("Password verification failed")
		return nil, apperrors.ErrInvalidCredentials
	}

	roles, err := s.roleRepo.GetRolesByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user roles: %w", err)
	}
	user.Roles = roles

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// Register creates a new account with the default user role
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterUserRequest) (*models.User, error) {
	return s.userService.RegisterUser(ctx, req)
}
