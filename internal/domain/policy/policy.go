// Package policy holds the single authorization predicate consulted by
// every mutating operation, instead of repeating inline role checks per
// handler.
package policy

import (
	"github.com/recipeshare/recipeshare/internal/domain/entity"
)

// Caller is the identity resolved from a request's session.
type Caller struct {
	ID     string
	Email  string
	Name   string
	Role   entity.Role
	Status entity.UserStatus
}

// IsAdmin reports whether the caller carries the ADMIN role.
func (c *Caller) IsAdmin() bool { return c != nil && c.Role == entity.RoleAdmin }

// CanModify reports whether the caller may mutate a resource owned by
// ownerID: owners and admins may, everyone else may not.
func CanModify(c *Caller, ownerID string) bool {
	if c == nil {
		return false
	}
	return c.ID == ownerID || c.IsAdmin()
}

// CanModerate reports whether the caller may perform admin-only operations
// (category CUD, feature toggles, user role/status changes, settings).
func CanModerate(c *Caller) bool {
	return c.IsAdmin()
}
