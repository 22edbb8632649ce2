package models

import "slices"

type Role int

const (
	NO_ROLE Role = iota
	CLIENT
	ADVOCATE
	ADMIN
	SYSTEM
)

func (r Role) String() string {
	switch r {
	case NO_ROLE:
		return "NO_ROLE"
	case CLIENT:
		return "CLIENT"
	case ADVOCATE:
		return "ADVOCATE"
	case ADMIN:
		return "ADMIN"
	case SYSTEM:
		return "SYSTEM"
	default:
		return "UNKNOWN_ROLE"
	}
}

func (r Role) Permissions() []Permission {
	permissions := ROLES_PERMISSIONS[r]
	if permissions == nil {
		return []Permission{}
	}
	return permissions
}

func (r Role) HasPermission(permission Permission) bool {
	return slices.Contains(r.Permissions(), permission)
}

func RoleFromString(s string) Role {
	switch s {
	case "CLIENT":
		return CLIENT
	case "ADVOCATE":
		return ADVOCATE
	case "ADMIN":
		return ADMIN
	case "SYSTEM":
		return SYSTEM
	}
	return NO_ROLE
}
