package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, (&Role{ID: 1, Name: "ROLE_ADMIN"}).IsAdmin())
	assert.False(t, (&Role{ID: 2, Name: "ROLE_USER"}).IsAdmin())
	// The guard keys on the name, not the id
	assert.True(t, (&Role{ID: 7, Name: "ROLE_ADMIN"}).IsAdmin())
}

func TestUserHasRole(t *testing.T) {
	user := &User{Roles: []Role{{ID: 2, Name: "ROLE_USER"}}}

	assert.True(t, user.HasRole(RoleUser))
	assert.False(t, user.HasRole(RoleAdmin))
	assert.False(t, (&User{}).HasRole(RoleUser))
}
