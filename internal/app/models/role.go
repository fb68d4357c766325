package models

// RoleName is the closed set of role names known to the application.
// Authorization rules are expressed against these constants instead of
// free-form strings.
type RoleName string

const (
	RoleAdmin RoleName = "ROLE_ADMIN"
	RoleUser  RoleName = "ROLE_USER"
)

// Role defines the role model based on the 'roles' table
type Role struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"ROLE_USER"`
}

// IsAdmin reports whether the role is the protected administrator role.
// The check is by name, not by id, so it survives id renumbering across
// environments.
func (r *Role) IsAdmin() bool {
	return RoleName(r.Name) == RoleAdmin
}
