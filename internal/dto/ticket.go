package dto

import (
	"time"

	"github.com/jdvanegasm/proticket/internal/domain"
)

// CreateTicketRequest represents request to issue a ticket for an order.
// The ticket code is generated server side; clients cannot supply one.
type CreateTicketRequest struct {
	OrderID int64  `json:"order_id" binding:"required"`
	PDFURL  string `json:"pdf_url,omitempty"`
	QRCode  string `json:"qr_code,omitempty"`
}

// TicketResponse represents a ticket in API responses
type TicketResponse struct {
	ID         string    `json:"id"`
	OrderID    int64     `json:"order_id"`
	TicketCode string    `json:"ticket_code"`
	PDFURL     string    `json:"pdf_url,omitempty"`
	QRCode     string    `json:"qr_code,omitempty"`
	IssuedAt   time.Time `json:"issued_at"`
}

// FromTicket converts a domain Ticket to TicketResponse
func FromTicket(t *domain.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:         t.ID,
		OrderID:    t.OrderID,
		TicketCode: t.TicketCode,
		PDFURL:     t.PDFURL,
		QRCode:     t.QRCode,
		IssuedAt:   t.IssuedAt,
	}
}
