package dto

import "github.com/medm/attendance/internal/app/models"

// CreateLectureRequest is the payload for creating a lecture
type CreateLectureRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=120" example:"Java 8"`
	Description string `json:"description" binding:"required,max=500" example:"basics"`
	Lecturer    string `json:"lecturer" binding:"required,max=120" example:"Tony Stark"`
}

// UpdateLectureRequest is the payload for updating a lecture.
// All mutable fields are overwritten, including the completed flag.
type UpdateLectureRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=120" example:"Java 8"`
	Description string `json:"description" binding:"required,max=500" example:"basics"`
	Lecturer    string `json:"lecturer" binding:"required,max=120" example:"Tony Stark"`
	Completed   bool   `json:"completed" example:"false"`
}

// EnrollUserRequest is the payload for signing a user up to a lecture
type EnrollUserRequest struct {
	UserID int64 `json:"userId" binding:"required,min=1" example:"42"`
}

// LectureResponse is the outward projection of a lecture
type LectureResponse struct {
	ID          int64  `json:"id" example:"1"`
	Title       string `json:"title" example:"Java 8"`
	Description string `json:"description" example:"basics"`
	Lecturer    string `json:"lecturer" example:"Tony Stark"`
	Completed   bool   `json:"completed" example:"false"`
}

// NewLectureResponse maps a lecture entity to its response view
func NewLectureResponse(lecture *models.Lecture) *LectureResponse {
	return &LectureResponse{
		ID:          lecture.ID,
		Title:       lecture.Title,
		Description: lecture.Description,
		Lecturer:    lecture.Lecturer,
		Completed:   lecture.Completed,
	}
}

// NewLectureResponseList maps a slice of lecture entities to response views
func NewLectureResponseList(lectures []*models.Lecture) []*LectureResponse {
	result := make([]*LectureResponse, 0, len(lectures))
	for _, lecture := range lectures {
		result = append(result, NewLectureResponse(lecture))
	}
	return result
}
