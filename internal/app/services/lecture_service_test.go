package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/pkg/apperrors"
)

func TestLectureService_CreateLecture(t *testing.T) {
	tests := []struct {
		name        string
		lecture     *models.Lecture
		setupMock   func(lectureRepo *MockLectureRepository)
		expectedErr error
	}{
		{
			name:    "creates lecture when title is free",
			lecture: &models.Lecture{Title: "Java 8", Description: "basics", Lecturer: "Tony Stark"},
			setupMock: func(lectureRepo *MockLectureRepository) {
				lectureRepo.On("ExistsByTitle", mock.Anything, "Java 8").Return(false, nil)
				lectureRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *models.Lecture) bool {
					return l.Title == "Java 8" && !l.Completed
				})).Return(nil)
			},
		},
		{
			name:    "rejects duplicate title",
			lecture: &models.Lecture{Title: "Java 8", Description: "basics", Lecturer: "Tony Stark"},
			setupMock: func(lectureRepo *MockLectureRepository) {
				lectureRepo.On("ExistsByTitle", mock.Anything, "Java 8").Return(true, nil)
			},
			expectedErr: apperrors.ErrLectureAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lectureRepo := new(MockLectureRepository)
			userRepo := new(MockUserRepository)
			tt.setupMock(lectureRepo)

			svc := NewLectureService(lectureRepo, userRepo)
			created, err := svc.CreateLecture(context.Background(), tt.lecture)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.lecture.Title, created.Title)
			}
			lectureRepo.AssertExpectations(t)
		})
	}
}

func TestLectureService_UpdateLecture(t *testing.T) {
	tests := []struct {
		name        string
		id          int64
		lecture     *models.Lecture
		setupMock   func(lectureRepo *MockLectureRepository)
		expectedErr error
	}{
		{
			name:    "overwrites all fields including completed",
			id:      5,
			lecture: &models.Lecture{Title: "Java 8", Description: "streams", Lecturer: "Tony Stark", Completed: true},
			setupMock: func(lectureRepo *MockLectureRepository) {
				lectureRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Lecture{ID: 5, Title: "Java 8"}, nil)
				lectureRepo.On("ExistsByTitleExcluding", mock.Anything, "Java 8", int64(5)).Return(false, nil)
				lectureRepo.On("Update", mock.Anything, mock.MatchedBy(func(l *models.Lecture) bool {
					return l.ID == 5 && l.Completed && l.Description == "streams"
				})).Return(nil)
			},
		},
		{
			name:    "unknown id",
			id:      99,
			lecture: &models.Lecture{Title: "Java 8"},
			setupMock: func(lectureRepo *MockLectureRepository) {
				lectureRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)
			},
			expectedErr: apperrors.ErrLectureNotFound,
		},
		{
			name:    "title already held by another lecture",
			id:      5,
			lecture: &models.Lecture{Title: "Spring Boot"},
			setupMock: func(lectureRepo *MockLectureRepository) {
				lectureRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Lecture{ID: 5, Title: "Java 8"}, nil)
				lectureRepo.On("ExistsByTitleExcluding", mock.Anything, "Spring Boot", int64(5)).Return(true, nil)
			},
			expectedErr: apperrors.ErrLectureAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lectureRepo := new(MockLectureRepository)
			userRepo := new(MockUserRepository)
			tt.setupMock(lectureRepo)

			svc := NewLectureService(lectureRepo, userRepo)
			err := svc.UpdateLecture(context.Background(), tt.id, tt.lecture)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			lectureRepo.AssertExpectations(t)
		})
	}
}

func TestLectureService_DeleteLecture(t *testing.T) {
	tests := []struct {
		name        string
		id          int64
		setupMock   func(lectureRepo *MockLectureRepository)
		expectedErr error
	}{
		{
			name: "deletes a pending lecture",
			id:   5,
			setupMock: func(lectureRepo *MockLectureRepository) {
				lectureRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Lecture{ID: 5, Completed: false}, nil)
				lectureRepo.On("Delete", mock.Anything, int64(5)).Return(nil)
			},
		},
		{
			name: "unknown id",
			id:   99,
			setupMock: func(lectureRepo *MockLectureRepository) {
				lectureRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)
			},
			expectedErr: apperrors.ErrLectureNotFound,
		},
		{
			name: "completed lecture is part of the record",
			id:   5,
			setupMock: func(lectureRepo *MockLectureRepository) {
				lectureRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Lecture{ID: 5, Completed: true}, nil)
			},
			expectedErr: apperrors.ErrLectureCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lectureRepo := new(MockLectureRepository)
			userRepo := new(MockUserRepository)
			tt.setupMock(lectureRepo)

			svc := NewLectureService(lectureRepo, userRepo)
			err := svc.DeleteLecture(context.Background(), tt.id)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			lectureRepo.AssertExpectations(t)
		})
	}
}

func TestLectureService_EnrollUser(t *testing.T) {
	tests := []struct {
		name        string
		lectureID   int64
		userID      int64
		setupMock   func(lectureRepo *MockLectureRepository, userRepo *MockUserRepository)
		expectedErr error
	}{
		{
			name:      "signs the user up",
			lectureID: 5,
			userID:    42,
			setupMock: func(lectureRepo *MockLectureRepository, userRepo *MockUserRepository) {
				lectureRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Lecture{ID: 5}, nil)
				userRepo.On("GetByID", mock.Anything, int64(42)).Return(&models.User{ID: 42, Email: "john@student.edu"}, nil)
				lectureRepo.On("Enroll", mock.Anything, int64(5), int64(42)).Return(nil)
			},
		},
		{
			name:      "unknown lecture",
			lectureID: 99,
			userID:    42,
			setupMock: func(lectureRepo *MockLectureRepository, userRepo *MockUserRepository) {
				lectureRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)
			},
			expectedErr: apperrors.ErrLectureNotFound,
		},
		{
			name:      "unknown user",
			lectureID: 5,
			userID:    99,
			setupMock: func(lectureRepo *MockLectureRepository, userRepo *MockUserRepository) {
				lectureRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Lecture{ID: 5}, nil)
				userRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)
			},
			expectedErr: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lectureRepo := new(MockLectureRepository)
			userRepo := new(MockUserRepository)
			tt.setupMock(lectureRepo, userRepo)

			svc := NewLectureService(lectureRepo, userRepo)
			user, err := svc.EnrollUser(context.Background(), tt.lectureID, tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, user.ID)
			}
			lectureRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestLectureService_EnrollUserTwiceIsIdempotent(t *testing.T) {
	lectureRepo := new(MockLectureRepository)
	userRepo := new(MockUserRepository)

	lectureRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Lecture{ID: 5}, nil)
	userRepo.On("GetByID", mock.Anything, int64(42)).Return(&models.User{ID: 42}, nil)
	lectureRepo.On("Enroll", mock.Anything, int64(5), int64(42)).Return(nil)

	svc := NewLectureService(lectureRepo, userRepo)

	first, err := svc.EnrollUser(context.Background(), 5, 42)
	assert.NoError(t, err)

	second, err := svc.EnrollUser(context.Background(), 5, 42)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestLectureService_GetAttendees(t *testing.T) {
	t.Run("returns the roster", func(t *testing.T) {
		lectureRepo := new(MockLectureRepository)
		userRepo := new(MockUserRepository)

		lectureRepo.On("GetByID", mock.Anything, int64(5)).Return(&models.Lecture{ID: 5}, nil)
		lectureRepo.On("GetAttendees", mock.Anything, int64(5)).Return([]*models.User{
			{ID: 1, Email: "a@student.edu"},
			{ID: 2, Email: "b@student.edu"},
		}, nil)

		svc := NewLectureService(lectureRepo, userRepo)
		attendees, err := svc.GetAttendees(context.Background(), 5)

		assert.NoError(t, err)
		assert.Len(t, attendees, 2)
	})

	t.Run("unknown lecture", func(t *testing.T) {
		lectureRepo := new(MockLectureRepository)
		userRepo := new(MockUserRepository)

		lectureRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

		svc := NewLectureService(lectureRepo, userRepo)
		attendees, err := svc.GetAttendees(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrLectureNotFound)
		assert.Nil(t, attendees)
	})
}
