package services

import (
	"github.com/medm/attendance/internal/app/repositories"
	"github.com/medm/attendance/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService    AuthService
	RoleService    RoleService
	UserService    UserService
	LectureService LectureService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	roleService := NewRoleService(repos.RoleRepository)
	userService := NewUserService(repos.UserRepository, repos.RoleRepository, repos.LectureRepository)
	lectureService := NewLectureService(repos.LectureRepository, repos.UserRepository)
	authService := NewAuthService(repos.UserRepository, repos.RoleRepository, userService, jwtService)

	return &Services{
		AuthService:    authService,
		RoleService:    roleService,
		UserService:    userService,
		LectureService: lectureService,
	}
}
