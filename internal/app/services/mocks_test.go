package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/medm/attendance/internal/app/models"
)

// MockRoleRepository is a mock implementation of repositories.IRoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) GetAll(ctx context.Context) ([]*models.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Role), args.Error(1)
}

func (m *MockRoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *MockRoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *MockRoleRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleRepository) ExistsByNameExcluding(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleRepository) Create(ctx context.Context, role *models.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *MockRoleRepository) UpdateName(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockRoleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoleRepository) GetRolesByUserID(ctx context.Context, userID int64) ([]models.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Role), args.Error(1)
}

// MockUserRepository is a mock implementation of repositories.IUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmailOrIndexNumber(ctx context.Context, email, indexNumber string) (bool, error) {
	args := m.Called(ctx, email, indexNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmailOrIndexNumberExcluding(ctx context.Context, email, indexNumber string, excludeID int64) (bool, error) {
	args := m.Called(ctx, email, indexNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLectureRepository is a mock implementation of repositories.ILectureRepository
type MockLectureRepository struct {
	mock.Mock
}

func (m *MockLectureRepository) GetAll(ctx context.Context) ([]*models.Lecture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Lecture), args.Error(1)
}

func (m *MockLectureRepository) GetByID(ctx context.Context, id int64) (*models.Lecture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lecture), args.Error(1)
}

func (m *MockLectureRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockLectureRepository) ExistsByTitleExcluding(ctx context.Context, title string, excludeID int64) (bool, error) {
	args := m.Called(ctx, title, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLectureRepository) Create(ctx context.Context, lecture *models.Lecture) error {
	args := m.Called(ctx, lecture)
	return args.Error(0)
}

func (m *MockLectureRepository) Update(ctx context.Context, lecture *models.Lecture) error {
	args := m.Called(ctx, lecture)
	return args.Error(0)
}

func (m *MockLectureRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLectureRepository) GetAttendees(ctx context.Context, lectureID int64) ([]*models.User, error) {
	args := m.Called(ctx, lectureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockLectureRepository) Enroll(ctx context.Context, lectureID, userID int64) error {
	args := m.Called(ctx, lectureID, userID)
	return args.Error(0)
}

func (m *MockLectureRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Lecture, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Lecture), args.Error(1)
}
