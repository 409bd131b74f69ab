package domain

import "time"

// Event represents a sellable occasion with capacity and price
type Event struct {
	ID            int64     `json:"id"`
	OrganizerID   int64     `json:"organizer_id"`
	CreatorUserID string    `json:"creator_user_id,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	StartDatetime time.Time `json:"start_datetime"`
	Price         float64   `json:"price"`
	Capacity      *int      `json:"capacity"` // nil = unlimited
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// DefaultEventStatus is applied when a new event omits a status
const DefaultEventStatus = "draft"

// EventStats holds the derived sales figures for one event
type EventStats struct {
	TicketsSold      int     `json:"tickets_sold"`
	AvailableTickets int     `json:"available_tickets"`
	Revenue          float64 `json:"revenue"`
}

// AvailableTickets computes remaining capacity given the tickets sold so far.
// A nil capacity is treated as zero for this figure, matching how the listing
// endpoints have always reported unlimited events.
func (e *Event) AvailableTickets(ticketsSold int) int {
	capacity := 0
	if e.Capacity != nil {
		capacity = *e.Capacity
	}
	if remaining := capacity - ticketsSold; remaining > 0 {
		return remaining
	}
	return 0
}
