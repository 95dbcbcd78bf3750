package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleModerator, ParseRole("moderator"))
	assert.Equal(t, RoleUser, ParseRole("user"))

	// Unknown or malformed claims fall back to least privilege.
	assert.Equal(t, RoleUser, ParseRole(""))
	assert.Equal(t, RoleUser, ParseRole("superadmin"))
	assert.Equal(t, RoleUser, ParseRole("Admin"))
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleModerator, CapModerateContent))
	assert.True(t, HasPermission(RoleAdmin, CapModerateContent))
	assert.False(t, HasPermission(RoleUser, CapModerateContent))

	assert.True(t, HasPermission(RoleAdmin, CapManageUsers))
	assert.False(t, HasPermission(RoleModerator, CapManageUsers))

	assert.False(t, HasPermission(Role("ghost"), CapModerateContent))
}

func TestCanAccessAdmin(t *testing.T) {
	assert.True(t, CanAccessAdmin(RoleAdmin))
	assert.True(t, CanAccessAdmin(RoleModerator))
	assert.False(t, CanAccessAdmin(RoleUser))
	assert.False(t, CanAccessAdmin(Role("")))
}
