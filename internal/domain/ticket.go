package domain

import "time"

// Ticket is an issued, uniquely coded proof of purchase for one unit of an order
type Ticket struct {
	ID         string    `json:"id"`          // uuid
	OrderID    int64     `json:"order_id"`
	TicketCode string    `json:"ticket_code"` // server generated, used for public lookup
	PDFURL     string    `json:"pdf_url,omitempty"`
	QRCode     string    `json:"qr_code,omitempty"`
	IssuedAt   time.Time `json:"issued_at"`
}
