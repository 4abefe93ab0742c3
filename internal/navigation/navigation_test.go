package navigation

import (
	"testing"

	"go-backoffice-client/internal/model"

	"github.com/stretchr/testify/assert"
)

func itemIDs(items []Item) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestAdminSeesEverythingWithoutPermissions(t *testing.T) {
	visible := Visible("Admin", nil)
	assert.Len(t, visible, len(Items))

	visible = Visible("super admin", []string{})
	assert.Len(t, visible, len(Items))
}

func TestPanelUserSeesGrantedAndUnrestricted(t *testing.T) {
	visible := Visible("PanelUser", []string{model.PermProducts, model.PermOrders})
	ids := itemIDs(visible)

	assert.Contains(t, ids, "dashboard")
	assert.Contains(t, ids, "settings")
	assert.Contains(t, ids, "products")
	assert.Contains(t, ids, "orders")
	assert.NotContains(t, ids, "user-management")
	assert.NotContains(t, ids, "wallet")
}

func TestVisiblePreservesDisplayOrder(t *testing.T) {
	visible := Visible("PanelUser", []string{model.PermOrders, model.PermProducts})
	ids := itemIDs(visible)
	assert.Equal(t, []string{"dashboard", "products", "orders", "settings"}, ids)
}

func TestCanSee(t *testing.T) {
	assert.True(t, CanSee("Admin", nil, "user-management"))
	assert.True(t, CanSee("PanelUser", []string{model.PermProducts}, "products"))
	assert.False(t, CanSee("PanelUser", []string{model.PermProducts}, "wallet"))
	assert.True(t, CanSee("Customer", nil, "dashboard"))
}
