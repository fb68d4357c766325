package dto

import "github.com/medm/attendance/internal/app/models"

// RegisterUserRequest is the payload for registering a new user
type RegisterUserRequest struct {
	FirstName    string `json:"firstName" binding:"required,max=60" example:"John"`
	LastName     string `json:"lastName" binding:"required,max=60" example:"Doe"`
	Email        string `json:"email" binding:"required,email" example:"john.doe@student.edu"`
	Password     string `json:"password" binding:"required,min=8,max=72" example:"S3cret!pass"`
	YearOfStudy  string `json:"yearOfStudy" binding:"required,max=10" example:"3"`
	FieldOfStudy string `json:"fieldOfStudy" binding:"required,max=120" example:"Computer Science"`
	IndexNumber  string `json:"indexNumber" binding:"required,numeric,len=6" example:"000123"`
}

// UpdateUserRequest is the payload for updating a user's profile.
// The password is deliberately absent; it has its own endpoint and
// authorization path.
type UpdateUserRequest struct {
	FirstName    string `json:"firstName" binding:"required,max=60" example:"John"`
	LastName     string `json:"lastName" binding:"required,max=60" example:"Doe"`
	Email        string `json:"email" binding:"required,email" example:"john.doe@student.edu"`
	YearOfStudy  string `json:"yearOfStudy" binding:"required,max=10" example:"3"`
	FieldOfStudy string `json:"fieldOfStudy" binding:"required,max=120" example:"Computer Science"`
	IndexNumber  string `json:"indexNumber" binding:"required,numeric,len=6" example:"000123"`
}

// UpdatePasswordRequest is the payload for changing a user's password
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=72" example:"N3w!password"`
}

// UserResponse is the outward projection of a user. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID           int64           `json:"id" example:"1"`
	FirstName    string          `json:"firstName" example:"John"`
	LastName     string          `json:"lastName" example:"Doe"`
	Email        string          `json:"email" example:"john.doe@student.edu"`
	YearOfStudy  string          `json:"yearOfStudy" example:"3"`
	FieldOfStudy string          `json:"fieldOfStudy" example:"Computer Science"`
	IndexNumber  string          `json:"indexNumber" example:"000123"`
	Roles        []*RoleResponse `json:"roles,omitempty"`
}

// NewUserResponse maps a user entity to its response view
func NewUserResponse(user *models.User) *UserResponse {
	resp := &UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		YearOfStudy:  user.YearOfStudy,
		FieldOfStudy: user.FieldOfStudy,
		IndexNumber:  user.IndexNumber,
	}
	for i := range user.Roles {
		resp.Roles = append(resp.Roles, NewRoleResponse(&user.Roles[i]))
	}
	return resp
}

// NewUserResponseList maps a slice of user entities to response views
func NewUserResponseList(users []*models.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, NewUserResponse(user))
	}
	return result
}
