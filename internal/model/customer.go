package model

// Membership tiers, lowest to highest.
const (
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
)

type Customer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	JoinDate      string  `json:"joinDate"`
	Status        string  `json:"status"`
	Membership    string  `json:"membership"`
	TotalOrders   int     `json:"totalOrders"`
	TotalSpent    float64 `json:"totalSpent"`
	LastOrderDate string  `json:"lastOrderDate"`
}

// Tier returns the explicit membership when the backend sent one, otherwise
// derives it from total spend.
func (c *Customer) Tier() string {
	if c.Membership != "" {
		return c.Membership
	}
	switch {
	case c.TotalSpent >= 10000:
		return TierGold
	case c.TotalSpent >= 5000:
		return TierSilver
	default:
		return TierBronze
	}
}

type CustomerInput struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type CustomerPage struct {
	Customers []Customer
	Total     int
}
