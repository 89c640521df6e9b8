package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserID is a value object for user identity.
type UserID struct{ uuid.UUID }

// NewUserID creates a new UserID from uuid.
func NewUserID(id uuid.UUID) UserID { return UserID{UUID: id} }

// String returns the canonical string form.
func (u UserID) String() string { return u.UUID.String() }

// Role is a user role. The zero value is invalid.
type Role string

const (
	RoleAccount       Role = "account"
	RoleOfficeManager Role = "office-manager"
	RoleAdmin         Role = "admin"
)

// rolePriority is the fixed order used to pick a default active role when a
// user holds several: most privileged first.
var rolePriority = []Role{RoleAdmin, RoleOfficeManager, RoleAccount}

// ParseRole returns the Role for s or an error for unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAccount, RoleOfficeManager, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is a worker, manager or admin account. Roles is a set: a user may
// hold several roles at once.
type User struct {
	ID        UserID
	Email     string
	Roles     []Role
	CreatedAt time.Time
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultActiveRole returns the first role the user holds in the fixed
// priority order admin > office-manager > account.
func (u *User) DefaultActiveRole() Role {
	for _, r := range rolePriority {
		if u.HasRole(r) {
			return r
		}
	}
	return ""
}
