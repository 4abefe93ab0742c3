package model

// DashboardStats is the headline card data on the dashboard screen.
type DashboardStats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalProducts  int     `json:"totalProducts"`
}

// RevenuePoint is one bucket of the revenue chart.
type RevenuePoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}
