package model

// Order statuses the panel distinguishes; anything else is displayed as-is.
const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
)

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customerId"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    string      `json:"createdAt"`
	DeliveryDate string      `json:"deliveryDate"`
}

type OrderInput struct {
	CustomerID   string      `json:"customerId" validate:"required"`
	Items        []OrderItem `json:"items" validate:"required,min=1,dive"`
	Total        float64     `json:"total"`
	Status       string      `json:"status"`
	DeliveryDate string      `json:"deliveryDate"`
}

type OrderPage struct {
	Orders []Order
	Total  int
}
