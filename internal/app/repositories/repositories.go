package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medm/attendance/internal/app/models"
)

// IRoleRepository defines the interface for role-related database operations
type IRoleRepository interface {
	GetAll(ctx context.Context) ([]*models.Role, error)
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByNameExcluding(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, role *models.Role) error
	UpdateName(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
	GetRolesByUserID(ctx context.Context, userID int64) ([]models.Role, error)
}

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	GetAll(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrIndexNumber(ctx context.Context, email, indexNumber string) (bool, error)
	ExistsByEmailOrIndexNumberExcluding(ctx context.Context, email, indexNumber string, excludeID int64) (bool, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	Delete(ctx context.Context, id int64) error
}

// ILectureRepository defines the interface for lecture-related database operations
type ILectureRepository interface {
	GetAll(ctx context.Context) ([]*models.Lecture, error)
	GetByID(ctx context.Context, id int64) (*models.Lecture, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	ExistsByTitleExcluding(ctx context.Context, title string, excludeID int64) (bool, error)
	Create(ctx context.Context, lecture *models.Lecture) error
	Update(ctx context.Context, lecture *models.Lecture) error
	Delete(ctx context.Context, id int64) error
	GetAttendees(ctx context.Context, lectureID int64) ([]*models.User, error)
	Enroll(ctx context.Context, lectureID, userID int64) error
	GetByUserID(ctx context.Context, userID int64) ([]*models.Lecture, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	RoleRepository    *RoleRepository
	UserRepository    *UserRepository
	LectureRepository *LectureRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		RoleRepository:    NewRoleRepository(db),
		UserRepository:    NewUserRepository(db),
		LectureRepository: NewLectureRepository(db),
	}
}
