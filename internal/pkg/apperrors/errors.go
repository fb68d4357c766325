package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Role errors
var (
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleAlreadyExists  = errors.New("role with this name already exists")
	ErrAdminRoleImmutable = errors.New("the administrator role cannot be modified or deleted")
)

// Lecture errors
var (
	ErrLectureNotFound      = errors.New("lecture not found")
	ErrLectureAlreadyExists = errors.New("lecture with this title already exists")
	ErrLectureCompleted     = errors.New("lecture is completed")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email or index number already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error kind
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// IsNotFound reports whether err is one of the not-found kinds
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound) ||
		errors.Is(err, ErrRoleNotFound) ||
		errors.Is(err, ErrLectureNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsConflict reports whether err is one of the conflict kinds
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrRoleAlreadyExists) ||
		errors.Is(err, ErrLectureAlreadyExists) ||
		errors.Is(err, ErrUserAlreadyExists)
}

// IsForbidden reports whether err is a state-dependent forbidden kind.
// Distinct from authorization rejections, which happen before the
// service layer runs.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrAdminRoleImmutable) ||
		errors.Is(err, ErrLectureCompleted)
}
