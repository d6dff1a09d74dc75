package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recipeshare/recipeshare/internal/domain/entity"
)

func TestCanModify(t *testing.T) {
	user := &Caller{ID: "u1", Role: entity.RoleUser}
	admin := &Caller{ID: "a1", Role: entity.RoleAdmin}

	assert.True(t, CanModify(user, "u1"), "owner may modify")
	assert.False(t, CanModify(user, "u2"), "non-owner may not")
	assert.True(t, CanModify(admin, "u2"), "admin may modify anything")
	assert.False(t, CanModify(nil, "u1"), "anonymous may not")
}

func TestCanModerate(t *testing.T) {
	assert.False(t, CanModerate(&Caller{ID: "u1", Role: entity.RoleUser}))
	assert.True(t, CanModerate(&Caller{ID: "a1", Role: entity.RoleAdmin}))
	assert.False(t, CanModerate(nil))
}

func TestIsAdminNilSafe(t *testing.T) {
	var c *Caller
	assert.False(t, c.IsAdmin())
}
