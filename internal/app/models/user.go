package models

// User defines the user model based on the 'users' table
type User struct {
	ID           int64  `json:"id" db:"id" example:"1"`                             // Unique identifier for the user
	FirstName    string `json:"firstName" db:"first_name" example:"John"`           // User's first name
	LastName     string `json:"lastName" db:"last_name" example:"Doe"`              // User's last name
	Email        string `json:"email" db:"email" example:"john.doe@student.edu"`    // User's email address (unique)
	Password     string `json:"-" db:"password"`                                    // User's hashed password (excluded from JSON)
	YearOfStudy  string `json:"yearOfStudy" db:"year_of_study" example:"3"`         // Current year of study
	FieldOfStudy string `json:"fieldOfStudy" db:"field_of_study" example:"CS"`      // Field of study
	IndexNumber  string `json:"indexNumber" db:"index_number" example:"000123"`     // Student index number (unique)
	Roles        []Role `json:"roles,omitempty"`                                    // Granted roles, loaded separately
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(name RoleName) bool {
	for _, r := range u.Roles {
		if RoleName(r.Name) == name {
			return true
		}
	}
	return false
}
