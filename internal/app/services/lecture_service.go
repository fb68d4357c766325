package services

import (
	"context"
	"fmt"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/app/repositories"
	"github.com/medm/attendance/internal/pkg/apperrors"
)

// LectureService defines the interface for lecture and attendance operations
type LectureService interface {
	GetAllLectures(ctx context.Context) ([]*models.Lecture, error)
	CreateLecture(ctx context.Context, lecture *models.Lecture) (*models.Lecture, error)
	GetLectureByID(ctx context.Context, id int64) (*models.Lecture, error)
	UpdateLecture(ctx context.Context, id int64, lecture *models.Lecture) error
	DeleteLecture(ctx context.Context, id int64) error
	GetAttendees(ctx context.Context, lectureID int64) ([]*models.User, error)
	EnrollUser(ctx context.Context, lectureID, userID int64) (*models.User, error)
}

// lectureServiceImpl implements LectureService
type lectureServiceImpl struct {
	lectureRepo repositories.ILectureRepository
	userRepo    repositories.IUserRepository
}

// NewLectureService creates a new LectureService
func NewLectureService(lectureRepo repositories.ILectureRepository, userRepo repositories.IUserRepository) LectureService {
	return &lectureServiceImpl{
		lectureRepo: lectureRepo,
		userRepo:    userRepo,
	}
}

// GetAllLectures retrieves all lectures
func (s *lectureServiceImpl) GetAllLectures(ctx context.Context) ([]*models.Lecture, error) {
	lectures, err := s.lectureRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lectures: %w", err)
	}
	return lectures, nil
}

// CreateLecture creates a new lecture with a unique title
func (s *lectureServiceImpl) CreateLecture(ctx context.Context, lecture *models.Lecture) (*models.Lecture, error) {
	exists, err := s.lectureRepo.ExistsByTitle(ctx, lecture.Title)
	if err != nil {
		return nil, fmt.Errorf("error checking lecture title: %w", err)
	}
	if exists {
		return nil, apperrors.ErrLectureAlreadyExists
	}

	if err := s.lectureRepo.Create(ctx, lecture); err != nil {
		return nil, err
	}

	return lecture, nil
}

// GetLectureByID retrieves a lecture by ID
func (s *lectureServiceImpl) GetLectureByID(ctx context.Context, id int64) (*models.Lecture, error) {
	lecture, err := s.lectureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecture: %w", err)
	}
	if lecture == nil {
		return nil, apperrors.ErrLectureNotFound
	}
	return lecture, nil
}

// UpdateLecture overwrites a lecture's fields, including the completed
// flag. The stored lecture's own title is excluded from the uniqueness
// probe.
func (s *lectureServiceImpl) UpdateLecture(ctx context.Context, id int64, lecture *models.Lecture) error {
	existing, err := s.lectureRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving lecture: %w", err)
	}
	if existing == nil {
		return apperrors.ErrLectureNotFound
	}

	exists, err := s.lectureRepo.ExistsByTitleExcluding(ctx, lecture.Title, id)
	if err != nil {
		return fmt.Errorf("error checking lecture title: %w", err)
	}
	if exists {
		return apperrors.ErrLectureAlreadyExists
	}

	lecture.ID = id
	return s.lectureRepo.Update(ctx, lecture)
}

// DeleteLecture deletes a lecture. A completed lecture is part of the
// attendance record and cannot be deleted.
func (s *lectureServiceImpl) DeleteLecture(ctx context.Context, id int64) error {
	lecture, err := s.lectureRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving lecture: %w", err)
	}
	if lecture == nil {
		return apperrors.ErrLectureNotFound
	}

	if lecture.Completed {
		return apperrors.ErrLectureCompleted
	}

	return s.lectureRepo.Delete(ctx, id)
}

// GetAttendees retrieves the users signed up to a lecture
func (s *lectureServiceImpl) GetAttendees(ctx context.Context, lectureID int64) ([]*models.User, error) {
	lecture, err := s.lectureRepo.GetByID(ctx, lectureID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecture: %w", err)
	}
	if lecture == nil {
		return nil, apperrors.ErrLectureNotFound
	}

	attendees, err := s.lectureRepo.GetAttendees(ctx, lectureID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving attendees: %w", err)
	}

	return attendees, nil
}

// EnrollUser signs a user up to a lecture. Signing up twice is a no-op
// and returns the same result as the first sign-up.
func (s *lectureServiceImpl) EnrollUser(ctx context.Context, lectureID, userID int64) (*models.User, error) {
	lecture, err := s.lectureRepo.GetByID(ctx, lectureID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecture: %w", err)
	}
	if lecture == nil {
		return nil, apperrors.ErrLectureNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := s.lectureRepo.Enroll(ctx, lectureID, userID); err != nil {
		return nil, err
	}

	return user, nil
}
