package models

// Lecture defines the lecture model based on the 'lectures' table.
// The attendance roster lives in the 'user_lectures' join table and is
// owned by the lecture side; membership queries from the user side go
// through the repository instead of an in-memory back-reference.
type Lecture struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	Title       string `json:"title" db:"title" example:"Java 8"`       // Lecture title (unique)
	Description string `json:"description" db:"description" example:"basics"`
	Lecturer    string `json:"lecturer" db:"lecturer" example:"Tony Stark"`
	Completed   bool   `json:"completed" db:"completed" example:"false"` // Completed lectures cannot be deleted
}
