package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserNormalizeDerivesDisplayFields(t *testing.T) {
	u := User{FirstName: "Amina", LastName: "Khan", IsActive: true, Permissions: RolePermissions[RolePanelUser]}
	u.Normalize()

	assert.Equal(t, "Amina Khan", u.Name)
	assert.Equal(t, "active", u.Status)
	assert.Equal(t, string(RolePanelUser), u.Role)
}

func TestUserNormalizeKeepsExplicitFields(t *testing.T) {
	u := User{Name: "Set Name", Status: "inactive", Role: "Admin"}
	u.Normalize()

	assert.Equal(t, "Set Name", u.Name)
	assert.Equal(t, "inactive", u.Status)
	assert.Equal(t, "Admin", u.Role)
}

func TestGrantedPermissionsSortedTrueKeys(t *testing.T) {
	in := UserInput{Permissions: map[string]bool{
		PermWallet:    true,
		PermDashboard: true,
		PermOrders:    false,
	}}
	assert.Equal(t, []string{PermDashboard, PermWallet}, in.GrantedPermissions())
}

func TestSplitFullName(t *testing.T) {
	first, last := SplitFullName("Amina Khan")
	assert.Equal(t, "Amina", first)
	assert.Equal(t, "Khan", last)

	first, last = SplitFullName("Cher")
	assert.Equal(t, "Cher", first)
	assert.Equal(t, "", last)

	first, last = SplitFullName("Jean Claude Van Damme")
	assert.Equal(t, "Jean", first)
	assert.Equal(t, "Claude Van Damme", last)
}

func TestCustomerTier(t *testing.T) {
	assert.Equal(t, TierGold, (&Customer{TotalSpent: 10000}).Tier())
	assert.Equal(t, TierSilver, (&Customer{TotalSpent: 5000}).Tier())
	assert.Equal(t, TierBronze, (&Customer{TotalSpent: 4999}).Tier())
	assert.Equal(t, TierGold, (&Customer{Membership: TierGold, TotalSpent: 0}).Tier())
}
