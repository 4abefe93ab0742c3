// Package navigation derives the visible menu from a user's role and
// permission set.
package navigation

import (
	"go-backoffice-client/internal/model"
)

// Item is a sidebar entry. Permission is empty for entries visible to every
// authenticated user.
type Item struct {
	ID         string
	Label      string
	Permission string
}

// Items is the full menu in display order.
var Items = []Item{
	{ID: "dashboard", Label: "Dashboard"},
	{ID: "user-management", Label: "User Management", Permission: model.PermUserManagement},
	{ID: "products", Label: "Products", Permission: model.PermProducts},
	{ID: "category-management", Label: "Category", Permission: model.PermCategoryManagement},
	{ID: "orders", Label: "Orders", Permission: model.PermOrders},
	{ID: "customers", Label: "Customers", Permission: model.PermCustomers},
	{ID: "wallet", Label: "Wallet", Permission: model.PermWallet},
	{ID: "membership", Label: "Membership", Permission: model.PermMembership},
	{ID: "reports", Label: "Reports", Permission: model.PermReports},
	{ID: "home-page", Label: "Home Page", Permission: model.PermHomepage},
	{ID: "notifications", Label: "Push Notifications", Permission: model.PermNotifications},
	{ID: "settings", Label: "Settings"},
}

// Visible filters Items for the given role and permission set. Administrative
// roles see everything; unrestricted items are always shown; otherwise the
// item's permission key must be granted.
func Visible(role string, perms []string) []Item {
	if model.IsAdminRole(role) {
		out := make([]Item, len(Items))
		copy(out, Items)
		return out
	}
	granted := make(map[string]bool, len(perms))
	for _, p := range perms {
		granted[p] = true
	}
	var out []Item
	for _, item := range Items {
		if item.Permission == "" || granted[item.Permission] {
			out = append(out, item)
		}
	}
	return out
}

// CanSee reports whether a single item id is visible to the user.
func CanSee(role string, perms []string, itemID string) bool {
	for _, item := range Visible(role, perms) {
		if item.ID == itemID {
			return true
		}
	}
	return false
}
