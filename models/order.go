package models

// OrderStatus represents all possible states of a catering order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderItem snapshots a cart line at checkout so later product mutation or
// deletion cannot change what was ordered.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	Price     int64   `json:"price"` // unit price at order time
}

type Order struct {
	Meta
	UserID              string      `json:"userId"`
	Items               []OrderItem `json:"items"`
	TotalAmount         int64       `json:"totalAmount"`
	Status              OrderStatus `json:"status"`
	DeliveryAddress     string      `json:"deliveryAddress"`
	ContactNumber       string      `json:"contactNumber"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
}
