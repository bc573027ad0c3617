// Copyright (c) 2026 Consumo. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// Role represents the authorization level granted to an account.
type Role string

const (
	// Platform staff: can manage the catalogue and inspect users/audit data
	RoleEmployee Role = "EMPLOYEE"

	// Default role for standard registered users
	RoleUser Role = "USER"
)

// IsValid reports whether the role is one of the closed enumeration values.
func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleUser
}

// # Action Policy

// Action identifies a privileged operation subject to a role gate.
type Action string

const (
	// Create, update, and delete products, blogs, forums, and threads
	ActionManageCatalog Action = "manage_catalog"

	// List and delete user accounts
	ActionViewUsers Action = "view_users"

	// Read the resource-access audit trail
	ActionViewAudit Action = "view_audit"
)

// Can reports whether the role is allowed to perform the given action.
//
// # Why a policy function?
//
// Keeping the role/action matrix in one pure function makes the authorization
// rules unit-testable without any HTTP or storage machinery, and prevents
// ad-hoc string comparisons from leaking into handlers.
func Can(role Role, action Action) bool {
	switch action {
	case ActionManageCatalog, ActionViewUsers, ActionViewAudit:
		return role == RoleEmployee
	default:
		return false
	}
}
