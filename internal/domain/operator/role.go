package operator

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is the POS staff role carried in caller tokens.
type Role string

const (
	RoleClerk   Role = "clerk"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClerk, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// Level orders roles; a higher level includes every permission of the lower ones.
func (r Role) Level() int {
	switch r {
	case RoleClerk:
		return 1
	case RoleManager:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

func (r Role) AtLeast(min Role) bool {
	return r.IsValid() && r.Level() >= min.Level()
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
