package domain

import (
	"errors"
	"strings"
)

// Role determines what a user may do. Standard users manage their own data,
// privileged users additionally manage other users.
type Role string

const (
	RoleStandard   Role = "standard"
	RolePrivileged Role = "privileged"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole accepts role names plus the numeric codes older clients send
// (1 = privileged, 2 = standard).
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "2":
		return RoleStandard, nil
	case "privileged", "1":
		return RolePrivileged, nil
	default:
		return "", ErrUnknownRole
	}
}

func (r Role) Valid() bool {
	return r == RoleStandard || r == RolePrivileged
}

func (r Role) String() string { return string(r) }
