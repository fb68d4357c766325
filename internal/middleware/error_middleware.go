package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medm/attendance/internal/app/models/dto"
	"github.com/medm/attendance/internal/pkg/apperrors"
	"github.com/medm/attendance/internal/pkg/logger"
)

// HandleAPIError translates service errors into HTTP responses. All
// controllers delegate here so every error kind maps to exactly one
// status code.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")
	case apperrors.IsNotFound(err):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())
	case apperrors.IsConflict(err):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())
	case apperrors.IsForbidden(err):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, err.Error())
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// HandleValidationError reports a request-binding failure with the
// binding error text as detail
func HandleValidationError(c *gin.Context, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
		WithDetails(err.Error())
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
