package dto

import (
	"time"

	"github.com/jdvanegasm/proticket/internal/domain"
)

// CreateOrderRequest represents request to place an order against an event
type CreateOrderRequest struct {
	EventID   int64  `json:"event_id" binding:"required"`
	BuyerID   string `json:"buyer_id" binding:"required"`
	BuyerName string `json:"buyer_name,omitempty"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateOrderStatusRequest represents request to change an order's status
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID         int64     `json:"id"`
	BuyerID    string    `json:"buyer_id"`
	BuyerName  string    `json:"buyer_name,omitempty"`
	EventID    int64     `json:"event_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrganizerOrderResponse is an order enriched with its event title, used when
// listing all sales across one organizer's events
type OrganizerOrderResponse struct {
	OrderResponse
	EventTitle string `json:"event_title"`
}

// FromOrder converts a domain Order to OrderResponse
func FromOrder(o *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:         o.ID,
		BuyerID:    o.BuyerID,
		BuyerName:  o.BuyerName,
		EventID:    o.EventID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Status:     o.Status.String(),
		CreatedAt:  o.CreatedAt,
	}
}

// FromOrganizerOrder converts a domain OrganizerOrder to its response shape
func FromOrganizerOrder(o *domain.OrganizerOrder) *OrganizerOrderResponse {
	return &OrganizerOrderResponse{
		OrderResponse: *FromOrder(&o.Order),
		EventTitle:    o.EventTitle,
	}
}
