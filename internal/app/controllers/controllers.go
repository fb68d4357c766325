package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medm/attendance/internal/app/models/dto"
	"github.com/medm/attendance/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController    *AuthController
	RoleController    *RoleController
	UserController    *UserController
	LectureController *LectureController
}

// NewControllers initializes all controllers
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		AuthController:    NewAuthController(svc.AuthService),
		RoleController:    NewRoleController(svc.RoleService),
		UserController:    NewUserController(svc.UserService),
		LectureController: NewLectureController(svc.LectureService),
	}
}

// parseIDParam parses a numeric path parameter. On failure it writes the
// 400 response itself and returns a non-nil error so the caller can
// simply return.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails("The " + name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, err
	}
	return id, nil
}
