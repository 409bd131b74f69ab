package dto

import (
	"time"

	"github.com/jdvanegasm/proticket/internal/domain"
)

// CreateEventRequest represents request to create an event. The creator is
// taken from the authenticated identity, never from the payload.
type CreateEventRequest struct {
	OrganizerID   int64     `json:"organizer_id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description,omitempty"`
	Location      string    `json:"location,omitempty"`
	StartDatetime time.Time `json:"start_datetime" binding:"required"`
	Price         float64   `json:"price"`
	Capacity      *int      `json:"capacity,omitempty"`
	Status        string    `json:"status,omitempty"`
}

// UpdateEventRequest carries a partial event update; nil fields are untouched.
// A creator_user_id in the payload is ignored on purpose.
type UpdateEventRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Location      *string    `json:"location,omitempty"`
	StartDatetime *time.Time `json:"start_datetime,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	Capacity      *int       `json:"capacity,omitempty"`
	Status        *string    `json:"status,omitempty"`
}

// EventResponse is the enriched event view returned by every read endpoint
type EventResponse struct {
	ID               int64     `json:"id"`
	OrganizerID      int64     `json:"organizer_id"`
	CreatorUserID    string    `json:"creator_user_id,omitempty"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Location         string    `json:"location,omitempty"`
	StartDatetime    time.Time `json:"start_datetime"`
	Price            float64   `json:"price"`
	Capacity         *int      `json:"capacity"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	TicketsSold      int       `json:"tickets_sold"`
	AvailableTickets int       `json:"available_tickets"`
	Revenue          float64   `json:"revenue"`
}

// FromEvent converts a domain Event plus its stats to EventResponse
func FromEvent(e *domain.Event, stats *domain.EventStats) *EventResponse {
	resp := &EventResponse{
		ID:            e.ID,
		OrganizerID:   e.OrganizerID,
		CreatorUserID: e.CreatorUserID,
		Title:         e.Title,
		Description:   e.Description,
		Location:      e.Location,
		StartDatetime: e.StartDatetime,
		Price:         e.Price,
		Capacity:      e.Capacity,
		Status:        e.Status,
		CreatedAt:     e.CreatedAt,
	}
	if stats != nil {
		resp.TicketsSold = stats.TicketsSold
		resp.AvailableTickets = stats.AvailableTickets
		resp.Revenue = stats.Revenue
	}
	return resp
}
