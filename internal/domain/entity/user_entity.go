package entity

import (
	"time"
)

type Role string

type UserStatus string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"

	StatusActive UserStatus = "ACTIVE"
	StatusBanned UserStatus = "BANNED"
)

// User is the aggregate root for the identity store.
// Password holds a bcrypt hash; it is empty for accounts created without
// credentials, and such accounts cannot authenticate.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	ImageURL  string
	Role      Role
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// IsBanned reports whether the account is blocked.
func (u *User) IsBanned() bool { return u.Status == StatusBanned }
