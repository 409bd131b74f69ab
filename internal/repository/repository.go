package repository

import (
	"context"

	"github.com/jdvanegasm/proticket/internal/domain"
)

// OrganizerRepository defines persistence operations for organizers
type OrganizerRepository interface {
	// Create inserts a new organizer and fills its ID and CreatedAt
	Create(ctx context.Context, organizer *domain.Organizer) error

	// GetByID retrieves an organizer by primary key
	GetByID(ctx context.Context, id int64) (*domain.Organizer, error)

	// GetByUserID retrieves the organizer registered for a user.
	// Returns (nil, nil) when the user has no organizer.
	GetByUserID(ctx context.Context, userID string) (*domain.Organizer, error)

	// List retrieves organizers with offset pagination
	List(ctx context.Context, limit, offset int) ([]*domain.Organizer, error)

	// Update persists name/status changes
	Update(ctx context.Context, organizer *domain.Organizer) error

	// Delete removes an organizer; its events cascade away with it
	Delete(ctx context.Context, id int64) error
}

// EventRepository defines persistence operations for events
type EventRepository interface {
	// Create inserts a new event and fills its ID and CreatedAt
	Create(ctx context.Context, event *domain.Event) error

	// GetByID retrieves an event by primary key
	GetByID(ctx context.Context, id int64) (*domain.Event, error)

	// List retrieves all events
	List(ctx context.Context) ([]*domain.Event, error)

	// ListByCreator retrieves all events authored by the given user
	ListByCreator(ctx context.Context, creatorUserID string) ([]*domain.Event, error)

	// Update persists the full mutable field set of an event.
	// CreatorUserID is never written by this method.
	Update(ctx context.Context, event *domain.Event) error

	// Delete removes an event; orders, payments and tickets cascade away
	Delete(ctx context.Context, id int64) error

	// Stats computes tickets_sold and revenue for one event.
	// AvailableTickets is left for the caller, which knows the capacity.
	Stats(ctx context.Context, eventID int64) (*domain.EventStats, error)

	// StatsForEvents computes tickets_sold and revenue for many events at once,
	// keyed by event id. Events with no orders are absent from the map.
	StatsForEvents(ctx context.Context, eventIDs []int64) (map[int64]*domain.EventStats, error)
}

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	// Create atomically checks event capacity and inserts the order in one
	// transaction holding a row lock on the event, so two concurrent orders
	// can never both pass the capacity check. It reads the event's price to
	// fix TotalPrice, and fills ID and CreatedAt.
	// Returns domain.ErrEventNotFound or domain.ErrCapacityExceeded without
	// persisting anything when the check fails.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by primary key
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// ListByBuyer retrieves all orders placed by a buyer, newest first.
	// Returns an empty slice, not an error, when there are none.
	ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Order, error)

	// ListByOrganizer retrieves all orders against events created by the given
	// user, enriched with each event's title
	ListByOrganizer(ctx context.Context, creatorUserID string) ([]*domain.OrganizerOrder, error)

	// UpdateStatus changes an order's status. Status validity is the
	// service's responsibility.
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	// Create inserts a new payment attempt
	Create(ctx context.Context, payment *domain.Payment) error

	// GetByID retrieves a payment by its uuid
	GetByID(ctx context.Context, id string) (*domain.Payment, error)

	// GetByProviderTxnID retrieves a payment by provider transaction id.
	// Returns (nil, nil) when no payment carries that id.
	GetByProviderTxnID(ctx context.Context, providerTxnID string) (*domain.Payment, error)

	// UpdateStatus changes a payment's status and bumps updated_at
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error
}

// TicketRepository defines persistence operations for tickets
type TicketRepository interface {
	// Create inserts a newly issued ticket
	Create(ctx context.Context, ticket *domain.Ticket) error

	// GetByID retrieves a ticket by its uuid
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)

	// ListByOrder retrieves every ticket issued against an order
	ListByOrder(ctx context.Context, orderID int64) ([]*domain.Ticket, error)

	// GetByCode retrieves a ticket by its public code
	GetByCode(ctx context.Context, code string) (*domain.Ticket, error)
}
