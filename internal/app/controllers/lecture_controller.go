package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/app/models/dto"
	"github.com/medm/attendance/internal/app/services"
	"github.com/medm/attendance/internal/middleware"
)

// LectureController handles lecture and attendance operations
type LectureController struct {
	lectureService services.LectureService
}

// NewLectureController creates a new LectureController
func NewLectureController(lectureService services.LectureService) *LectureController {
	return &LectureController{
		lectureService: lectureService,
	}
}

// GetAllLectures retrieves all lectures
// @Summary Get all lectures
// @Description Retrieves a list of all lectures
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.LectureResponse} "Lectures retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures [get]
func (c *LectureController) GetAllLectures(ctx *gin.Context) {
	lectures, err := c.lectureService.GetAllLectures(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewLectureResponseList(lectures),
		Timestamp: time.Now(),
	})
}

// CreateLecture handles lecture creation
// @Summary Create a new lecture
// @Description Creates a new lecture with a unique title
// @Tags lectures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLectureRequest true "Lecture information"
// @Success 201 {object} dto.APIResponse{data=dto.LectureResponse} "Lecture created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 409 {object} dto.ErrorResponse "Lecture already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures [post]
func (c *LectureController) CreateLecture(ctx *gin.Context) {
	var req dto.CreateLectureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	lecture := &models.Lecture{
		Title:       req.Title,
		Description: req.Description,
		Lecturer:    req.Lecturer,
	}

	created, err := c.lectureService.CreateLecture(ctx, lecture)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", "/api/v1/lectures/"+strconv.FormatInt(created.ID, 10))
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewLectureResponse(created),
		Timestamp: time.Now(),
	})
}

// GetLectureByID retrieves a lecture by ID
// @Summary Get lecture by ID
// @Description Retrieves a specific lecture by its ID
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Success 200 {object} dto.APIResponse{data=dto.LectureResponse} "Lecture retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecture ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id} [get]
func (c *LectureController) GetLectureByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	lecture, err := c.lectureService.GetLectureByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewLectureResponse(lecture),
		Timestamp: time.Now(),
	})
}

// UpdateLecture overwrites a lecture's fields
// @Summary Update a lecture
// @Description Overwrites a lecture's fields, including the completed flag
// @Tags lectures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param request body dto.UpdateLectureRequest true "Lecture information"
// @Success 204 "Lecture updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 409 {object} dto.ErrorResponse "Lecture title already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id} [put]
func (c *LectureController) UpdateLecture(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	var req dto.UpdateLectureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	lecture := &models.Lecture{
		Title:       req.Title,
		Description: req.Description,
		Lecturer:    req.Lecturer,
		Completed:   req.Completed,
	}

	if err := c.lectureService.UpdateLecture(ctx, id, lecture); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteLecture deletes a lecture
// @Summary Delete a lecture
// @Description Deletes a lecture. A completed lecture cannot be deleted.
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Success 204 "Lecture deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecture ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Lecture is completed"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id} [delete]
func (c *LectureController) DeleteLecture(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	if err := c.lectureService.DeleteLecture(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetAttendees retrieves the users signed up to a lecture
// @Summary List lecture attendees
// @Description Retrieves the users signed up to a lecture
// @Tags lectures
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Attendees retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid lecture ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Lecture not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/users [get]
func (c *LectureController) GetAttendees(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	attendees, err := c.lectureService.GetAttendees(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewUserResponseList(attendees),
		Timestamp: time.Now(),
	})
}

// EnrollUser signs a user up to a lecture
// @Summary Enroll in a lecture
// @Description Signs a user up to a lecture. Enrolling twice is a no-op.
// @Tags lectures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecture ID"
// @Param request body dto.EnrollUserRequest true "User to enroll"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "User enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Lecture or user not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lectures/{id}/users [post]
func (c *LectureController) EnrollUser(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return
	}

	var req dto.EnrollUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	user, err := c.lectureService.EnrollUser(ctx, id, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewUserResponse(user),
		Timestamp: time.Now(),
	})
}
