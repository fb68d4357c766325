// Package policy holds the declarative authorization table. Every
// protected operation maps to the set of roles allowed to perform it,
// so the whole privilege surface is reviewable in one place.
package policy

import (
	"github.com/medm/attendance/internal/app/models"
)

// Operation identifies a protected API operation
type Operation string

const (
	// Role operations
	OpListRoles  Operation = "roles.list"
	OpCreateRole Operation = "roles.create"
	OpGetRole    Operation = "roles.get"
	OpUpdateRole Operation = "roles.update"
	OpDeleteRole Operation = "roles.delete"

	// Lecture operations
	OpListLectures  Operation = "lectures.list"
	OpCreateLecture Operation = "lectures.create"
	OpGetLecture    Operation = "lectures.get"
	OpUpdateLecture Operation = "lectures.update"
	OpDeleteLecture Operation = "lectures.delete"
	OpListAttendees Operation = "lectures.attendees"
	OpEnroll        Operation = "lectures.enroll"

	// User operations
	OpListUsers        Operation = "users.list"
	OpCreateUser       Operation = "users.create"
	OpGetUser          Operation = "users.get"
	OpUpdateUser       Operation = "users.update"
	OpUpdatePassword   Operation = "users.updatePassword"
	OpDeleteUser       Operation = "users.delete"
	OpListUserLectures Operation = "users.lectures"
)

var adminOnly = []models.RoleName{models.RoleAdmin}
var adminOrUser = []models.RoleName{models.RoleAdmin, models.RoleUser}
var userOnly = []models.RoleName{models.RoleUser}

// rules maps each operation to its allowed roles. An operation missing
// from the table is denied for everyone.
var rules = map[Operation][]models.RoleName{
	OpListRoles:  adminOnly,
	OpCreateRole: adminOnly,
	OpGetRole:    adminOnly,
	OpUpdateRole: adminOnly,
	OpDeleteRole: adminOnly,

	OpListLectures:  adminOrUser,
	OpGetLecture:    adminOrUser,
	OpCreateLecture: adminOnly,
	OpUpdateLecture: adminOnly,
	OpDeleteLecture: adminOnly,
	OpListAttendees: adminOnly,
	OpEnroll:        userOnly,

	OpListUsers:        adminOnly,
	OpCreateUser:       adminOnly,
	OpDeleteUser:       adminOnly,
	OpGetUser:          adminOrUser,
	OpUpdateUser:       adminOrUser,
	OpUpdatePassword:   adminOrUser,
	OpListUserLectures: adminOrUser,
}

// Allowed reports whether any of the caller's roles permits the
// operation
func Allowed(op Operation, roles []models.RoleName) bool {
	allowed, ok := rules[op]
	if !ok {
		return false
	}
	for _, have := range roles {
		for _, want := range allowed {
			if have == want {
				return true
			}
		}
	}
	return false
}
