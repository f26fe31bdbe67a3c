// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular reader.
	RoleUser Role = "USER"
	// RoleModerator may manage catalog and community content.
	RoleModerator Role = "MODERATOR"
	// RoleAdmin may manage users.
	RoleAdmin Role = "ADMIN"
	// RoleOwner is the platform owner.
	RoleOwner Role = "OWNER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin, RoleOwner:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

var (
	// StaffRoles may manage catalog content.
	StaffRoles = Roles{RoleModerator, RoleAdmin, RoleOwner}
	// AdminRoles may manage accounts.
	AdminRoles = Roles{RoleAdmin, RoleOwner}
)
