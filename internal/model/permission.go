package model

import "strings"

// Capability keys gating panel sections. These are the strings stored in a
// user's permission list and referenced by navigation items.
const (
	PermDashboard          = "dashboard"
	PermUserManagement     = "userManagement"
	PermProducts           = "products"
	PermCategoryManagement = "categoryManagement"
	PermOrders             = "orders"
	PermCustomers          = "customers"
	PermWallet             = "wallet"
	PermMembership         = "membership"
	PermReports            = "reports"
	PermHomepage           = "homepage"
	PermNotifications      = "notifications"
	PermSettings           = "settings"
)

// AllPermissions lists every capability key in display order.
var AllPermissions = []string{
	PermDashboard,
	PermUserManagement,
	PermProducts,
	PermCategoryManagement,
	PermOrders,
	PermCustomers,
	PermWallet,
	PermMembership,
	PermReports,
	PermHomepage,
	PermNotifications,
	PermSettings,
}

type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleAdmin      Role = "Admin"
	RolePanelUser  Role = "PanelUser"
	RoleCustomer   Role = "Customer"
)

// roleOrder fixes the precedence used by RoleFromPermissions so the inverse
// mapping is deterministic.
var roleOrder = []Role{RoleSuperAdmin, RoleAdmin, RolePanelUser, RoleCustomer}

// RolePermissions maps each role to its canonical default permission set.
// Admin gets everything except user management, mirroring the backend's role
// seeding.
var RolePermissions = map[Role][]string{
	RoleSuperAdmin: AllPermissions,
	RoleAdmin:      withoutPermission(AllPermissions, PermUserManagement),
	RolePanelUser: {
		PermDashboard,
		PermProducts,
		PermOrders,
		PermCustomers,
	},
	RoleCustomer: {},
}

func withoutPermission(perms []string, drop string) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		if p != drop {
			out = append(out, p)
		}
	}
	return out
}

// RoleFromPermissions re-derives a role label from an ad hoc permission set.
// The highest role whose entire default set is covered wins; a non-empty set
// covering no role still counts as a panel user, and an empty set is a plain
// customer. Role-default sets round-trip exactly.
func RoleFromPermissions(perms []string) Role {
	if len(perms) == 0 {
		return RoleCustomer
	}
	granted := make(map[string]bool, len(perms))
	for _, p := range perms {
		granted[p] = true
	}
	for _, role := range roleOrder {
		defaults := RolePermissions[role]
		if len(defaults) == 0 {
			continue
		}
		covered := true
		for _, p := range defaults {
			if !granted[p] {
				covered = false
				break
			}
		}
		if covered {
			return role
		}
	}
	return RolePanelUser
}

// IsAdminRole reports whether the role bypasses per-key permission checks.
// The match is case-insensitive against the two administrative labels.
func IsAdminRole(role string) bool {
	switch strings.ToLower(role) {
	case "admin", "super admin":
		return true
	}
	return false
}
