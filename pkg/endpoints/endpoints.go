// Package endpoints is the static registry of back-office API paths. Paths
// use ":param" placeholders resolved by Build.
package endpoints

import (
	"strings"

	"github.com/spf13/cast"
)

var Auth = struct {
	Login, Register, Logout, Profile, UpdateProfile, Refresh string
}{
	Login:         "/api/admin/login",
	Register:      "/api/admin/register",
	Logout:        "/api/admin/logout",
	Profile:       "/api/admin/profile",
	UpdateProfile: "/api/admin/profile/update",
	Refresh:       "/api/auth/refresh",
}

var Dashboard = struct {
	Stats, RecentOrders, RevenueChart string
}{
	Stats:        "/api/admin/dashboard/stats",
	RecentOrders: "/api/admin/dashboard/recent-orders",
	RevenueChart: "/api/admin/dashboard/revenue-chart",
}

var Customers = struct {
	List, Get, Create, Update, Delete, ToggleStatus string
}{
	List:         "/api/customer",
	Get:          "/api/customer/:id",
	Create:       "/api/customer/create",
	Update:       "/api/customer/update/:id",
	Delete:       "/api/customer/delete/:id",
	ToggleStatus: "/api/customer/toggle-status/:id",
}

var Orders = struct {
	List, Get, Create, Update, Delete, UpdateStatus string
}{
	List:         "/api/order",
	Get:          "/api/order/:id",
	Create:       "/api/order/create",
	Update:       "/api/order/update/:id",
	Delete:       "/api/order/delete/:id",
	UpdateStatus: "/api/order/status/:id",
}

var Products = struct {
	List, Get, Create, Update, Delete, ToggleStatus string
}{
	List:         "/api/product",
	Get:          "/api/product/:id",
	Create:       "/api/product/create",
	Update:       "/api/product/update/:id",
	Delete:       "/api/product/delete/:id",
	ToggleStatus: "/api/product/toggle-status/:id",
}

var Categories = struct {
	List, Get, Create, Update, Delete string
}{
	List:   "/api/category",
	Get:    "/api/category/:id",
	Create: "/api/category/create",
	Update: "/api/category/update/:id",
	Delete: "/api/category/delete/:id",
}

var Users = struct {
	List, Get, Create, Update, Delete string
}{
	List:   "/api/user",
	Get:    "/api/user/:id",
	Create: "/api/user/create",
	Update: "/api/user/update/:id",
	Delete: "/api/user/delete/:id",
}

var DeliveryStaff = struct {
	List, Get, Create, Update, Delete, ToggleStatus string
}{
	List:         "/api/delivery",
	Get:          "/api/delivery/:id",
	Create:       "/api/delivery/create",
	Update:       "/api/delivery/update/:id",
	Delete:       "/api/delivery/delete/:id",
	ToggleStatus: "/api/delivery/toggle-status/:id",
}

var Branches = struct {
	List, Get, Create, Update, Delete string
}{
	List:   "/api/branch",
	Get:    "/api/branch/:id",
	Create: "/api/branch/create",
	Update: "/api/branch/update/:id",
	Delete: "/api/branch/delete/:id",
}

var Notifications = struct {
	List, Create, Update, Delete, Stats, MarkRead, MarkAllRead string
}{
	List:        "/api/notification",
	Create:      "/api/notification/create",
	Update:      "/api/notification/update/:id",
	Delete:      "/api/notification/delete/:id",
	Stats:       "/api/notification/stats",
	MarkRead:    "/api/notification/read/:id",
	MarkAllRead: "/api/notification/read-all",
}

var Wallet = struct {
	Discounts, CreateDiscount, UpdateDiscount, DeleteDiscount, Stats string
}{
	Discounts:      "/api/wallet/discounts",
	CreateDiscount: "/api/wallet/discounts",
	UpdateDiscount: "/api/wallet/discounts/:id",
	DeleteDiscount: "/api/wallet/discounts/:id",
	Stats:          "/api/wallet/stats",
}

var Membership = struct {
	List, Create, Update, Delete string
}{
	List:   "/api/membership",
	Create: "/api/membership",
	Update: "/api/membership/:id",
	Delete: "/api/membership/:id",
}

var Reports = struct {
	Sales, Customers, Products, Revenue string
}{
	Sales:     "/api/reports/sales",
	Customers: "/api/reports/customers",
	Products:  "/api/reports/products",
	Revenue:   "/api/reports/revenue",
}

var Homepage = struct {
	Settings, UpdateSettings, Banners, CreateBanner, UpdateBanner, DeleteBanner, ReorderBanners string
}{
	Settings:       "/api/homepage/settings",
	UpdateSettings: "/api/homepage/settings",
	Banners:        "/api/homepage/banners",
	CreateBanner:   "/api/homepage/banners",
	UpdateBanner:   "/api/homepage/banners/:id",
	DeleteBanner:   "/api/homepage/banners/:id",
	ReorderBanners: "/api/homepage/banners/reorder",
}

// Build substitutes ":key" placeholders in endpoint with string-coerced values
// from params. Unmatched placeholders are left verbatim so a bad call site
// shows up in the request log instead of silently hitting a different route.
func Build(endpoint string, params map[string]any) string {
	url := endpoint
	for key, value := range params {
		url = strings.ReplaceAll(url, ":"+key, cast.ToString(value))
	}
	return url
}
