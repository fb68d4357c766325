package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medm/attendance/internal/app/models"
)

func TestAllowed(t *testing.T) {
	admin := []models.RoleName{models.RoleAdmin}
	user := []models.RoleName{models.RoleUser}
	both := []models.RoleName{models.RoleAdmin, models.RoleUser}

	tests := []struct {
		name  string
		op    Operation
		roles []models.RoleName
		want  bool
	}{
		{"admin manages roles", OpCreateRole, admin, true},
		{"user cannot manage roles", OpCreateRole, user, false},
		{"user cannot list roles", OpListRoles, user, false},

		{"user reads lectures", OpListLectures, user, true},
		{"admin reads lectures", OpGetLecture, admin, true},
		{"user cannot create lectures", OpCreateLecture, user, false},
		{"user cannot delete lectures", OpDeleteLecture, user, false},
		{"user cannot read the roster", OpListAttendees, user, false},
		{"admin reads the roster", OpListAttendees, admin, true},

		{"user enrolls", OpEnroll, user, true},
		{"admin alone cannot enroll", OpEnroll, admin, false},
		{"admin with user role enrolls", OpEnroll, both, true},

		{"user cannot list users", OpListUsers, user, false},
		{"user reads a profile", OpGetUser, user, true},
		{"user updates a profile", OpUpdateUser, user, true},
		{"user changes a password", OpUpdatePassword, user, true},
		{"user cannot delete accounts", OpDeleteUser, user, false},
		{"admin deletes accounts", OpDeleteUser, admin, true},

		{"no roles no access", OpListLectures, nil, false},
		{"unknown role no access", OpListLectures, []models.RoleName{"ROLE_GHOST"}, false},
		{"unknown operation denied for everyone", Operation("unknown.op"), both, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.op, tt.roles))
		})
	}
}
