package service

import (
	"context"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
)

// OrganizerService manages organizer registration and lifecycle
type OrganizerService interface {
	// Create registers the authenticated user as an organizer. A user can only
	// register once; a second attempt returns domain.ErrOrganizerExists.
	Create(ctx context.Context, identity *domain.Identity, req *dto.CreateOrganizerRequest) (*domain.Organizer, error)

	// GetByID retrieves an organizer by primary key
	GetByID(ctx context.Context, id int64) (*domain.Organizer, error)

	// GetByUserID retrieves the organizer registered for a user
	GetByUserID(ctx context.Context, userID string) (*domain.Organizer, error)

	// List retrieves organizers with offset pagination
	List(ctx context.Context, limit, offset int) ([]*domain.Organizer, error)

	// Update applies a partial update to an organizer
	Update(ctx context.Context, id int64, req *dto.UpdateOrganizerRequest) (*domain.Organizer, error)

	// Delete removes an organizer and, through the schema, its events
	Delete(ctx context.Context, id int64) error
}

// EventService manages events and their sales statistics
type EventService interface {
	// Create publishes a new event under an existing organizer. The creator is
	// always the authenticated identity.
	Create(ctx context.Context, identity *domain.Identity, req *dto.CreateEventRequest) (*domain.Event, error)

	// GetByID retrieves an event together with its sales stats
	GetByID(ctx context.Context, id int64) (*domain.Event, *domain.EventStats, error)

	// List retrieves all events with their sales stats keyed by event id
	List(ctx context.Context) ([]*domain.Event, map[int64]*domain.EventStats, error)

	// ListByCreator retrieves the events authored by a user, with stats.
	// Callers may only list their own events unless they are admins.
	ListByCreator(ctx context.Context, identity *domain.Identity, creatorUserID string) ([]*domain.Event, map[int64]*domain.EventStats, error)

	// Update applies a partial update and returns the event with fresh stats.
	// Only the creator or an admin may update.
	Update(ctx context.Context, identity *domain.Identity, id int64, req *dto.UpdateEventRequest) (*domain.Event, *domain.EventStats, error)

	// Delete removes an event and everything sold against it. Only the creator
	// or an admin may delete.
	Delete(ctx context.Context, identity *domain.Identity, id int64) error
}

// OrderService manages ticket orders
type OrderService interface {
	// Create places an order, enforcing event capacity atomically
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*domain.Order, error)

	// GetByID retrieves an order by primary key
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// ListByBuyer retrieves all orders placed by a buyer, newest first
	ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Order, error)

	// ListByOrganizer retrieves all sales across events created by a user.
	// Callers may only list their own sales unless they are admins.
	ListByOrganizer(ctx context.Context, identity *domain.Identity, creatorUserID string) ([]*domain.OrganizerOrder, error)

	// UpdateStatus moves an order to a new status from the validated set
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
}

// PaymentService manages settlement attempts against orders
type PaymentService interface {
	// Create records a payment attempt for an existing order. Provider
	// transaction ids must be unique across all payments.
	Create(ctx context.Context, req *dto.CreatePaymentRequest) (*domain.Payment, error)

	// GetByID retrieves a payment by its uuid
	GetByID(ctx context.Context, id string) (*domain.Payment, error)

	// UpdateStatus moves a payment to a new status from the validated set
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Payment, error)
}

// TicketService manages issued tickets
type TicketService interface {
	// Create issues a ticket for an existing order with a fresh server
	// generated code
	Create(ctx context.Context, req *dto.CreateTicketRequest) (*domain.Ticket, error)

	// GetByID retrieves a ticket by its uuid
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)

	// ListByOrder retrieves every ticket issued against an order
	ListByOrder(ctx context.Context, orderID int64) ([]*domain.Ticket, error)

	// GetByCode retrieves a ticket by its public code, for scan-time lookups
	GetByCode(ctx context.Context, code string) (*domain.Ticket, error)
}
