package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleDefaultsRoundTrip(t *testing.T) {
	for _, role := range []Role{RoleSuperAdmin, RoleAdmin, RolePanelUser} {
		assert.Equal(t, role, RoleFromPermissions(RolePermissions[role]), "role %s", role)
	}
}

func TestRoleFromPermissionsEmptyIsCustomer(t *testing.T) {
	assert.Equal(t, RoleCustomer, RoleFromPermissions(nil))
	assert.Equal(t, RoleCustomer, RoleFromPermissions([]string{}))
}

func TestRoleFromPermissionsPartialSetIsPanelUser(t *testing.T) {
	assert.Equal(t, RolePanelUser, RoleFromPermissions([]string{PermWallet}))
	assert.Equal(t, RolePanelUser, RoleFromPermissions([]string{PermDashboard, PermReports}))
}

func TestRoleFromPermissionsSupersetKeepsHighestRole(t *testing.T) {
	perms := append([]string{}, RolePermissions[RolePanelUser]...)
	perms = append(perms, PermWallet)
	assert.Equal(t, RolePanelUser, RoleFromPermissions(perms))
}

func TestAdminDefaultsExcludeUserManagement(t *testing.T) {
	assert.NotContains(t, RolePermissions[RoleAdmin], PermUserManagement)
	assert.Contains(t, RolePermissions[RoleSuperAdmin], PermUserManagement)
}

func TestIsAdminRole(t *testing.T) {
	assert.True(t, IsAdminRole("admin"))
	assert.True(t, IsAdminRole("Admin"))
	assert.True(t, IsAdminRole("SUPER ADMIN"))
	assert.True(t, IsAdminRole("Super Admin"))
	assert.False(t, IsAdminRole("PanelUser"))
	assert.False(t, IsAdminRole("Customer"))
	assert.False(t, IsAdminRole(""))
}
