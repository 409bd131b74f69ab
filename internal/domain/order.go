package domain

import "time"

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// String returns the string representation of the status
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the enumerated values
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// ValidOrderStatuses lists every accepted order status
func ValidOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusCancelled, OrderStatusRefunded}
}

// Order represents a buyer's request for some quantity of tickets to one event
type Order struct {
	ID         int64       `json:"id"`
	BuyerID    string      `json:"buyer_id"`
	BuyerName  string      `json:"buyer_name,omitempty"`
	EventID    int64       `json:"event_id"`
	Quantity   int         `json:"quantity"`
	TotalPrice float64     `json:"total_price"` // event price x quantity, fixed at creation
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

// OrganizerOrder is an order projected with event and buyer context, used when
// listing everything sold across an organizer's events
type OrganizerOrder struct {
	Order
	EventTitle string `json:"event_title"`
}
