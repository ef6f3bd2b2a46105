package utils

import (
	"strings"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleSupport    = "support"
)

var ValidAdminRoles = map[string]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RoleSupport:    true,
}

// ValidateAndNormalizeRole validates and normalizes a role string.
// Returns the normalized role (lowercase, dashes and spaces as underscores)
// and a boolean indicating if it's valid.
func ValidateAndNormalizeRole(role string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(role))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	return normalized, ValidAdminRoles[normalized]
}

// CanManageAdmins reports whether the role may view other staff accounts.
func CanManageAdmins(role string) bool {
	r, _ := ValidateAndNormalizeRole(role)
	return r == RoleSuperAdmin || r == RoleAdmin
}
