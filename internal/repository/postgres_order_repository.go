package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PostgresOrderRepository implements OrderRepository using PostgreSQL with pgxpool
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// Create checks capacity and inserts the order inside one transaction.
// The event row is locked with FOR UPDATE so concurrent creations against the
// same event serialize on the capacity check and can never oversell.
// Orders of every status count toward capacity, matching the stats the
// listing endpoints report.
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.order.create")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("event_id", order.EventID),
		attribute.String("buyer_id", order.BuyerID),
		attribute.Int("quantity", order.Quantity),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var price float64
	var capacity *int
	err = tx.QueryRow(ctx,
		`SELECT price, capacity FROM events WHERE id = $1 FOR UPDATE`,
		order.EventID,
	).Scan(&price, &capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "event not found")
			return domain.ErrEventNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to lock event: %w", err)
	}

	var sold int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0)::int FROM orders WHERE event_id = $1`,
		order.EventID,
	).Scan(&sold)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to sum sold tickets: %w", err)
	}

	if capacity != nil && sold+order.Quantity > *capacity {
		span.SetAttributes(
			attribute.Int("tickets_sold", sold),
			attribute.Int("capacity", *capacity),
		)
		span.SetStatus(codes.Error, "capacity exceeded")
		return domain.ErrCapacityExceeded
	}

	order.TotalPrice = price * float64(order.Quantity)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (buyer_id, buyer_name, event_id, quantity, total_price, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`,
		order.BuyerID,
		nullString(order.BuyerName),
		order.EventID,
		order.Quantity,
		order.TotalPrice,
		order.Status.String(),
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to commit order: %w", err)
	}

	span.SetAttributes(attribute.Int64("order_id", order.ID))
	span.SetStatus(codes.Ok, "")
	return nil
}

const orderColumns = `id, buyer_id, buyer_name, event_id, quantity, total_price, status, created_at`

// GetByID retrieves an order by its ID
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.order.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.Int64("order_id", id))

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrderRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, domain.ErrOrderNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return order, nil
}

// ListByBuyer retrieves all orders placed by a buyer, newest first
func (r *PostgresOrderRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Order, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.order.list_by_buyer")
	defer span.End()

	span.SetAttributes(attribute.String("buyer_id", buyerID))

	query := `SELECT ` + orderColumns + ` FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, buyerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to list orders by buyer: %w", err)
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(orders)))
	span.SetStatus(codes.Ok, "")
	return orders, nil
}

// ListByOrganizer retrieves all orders against events created by the given
// user, joined with each event's title
func (r *PostgresOrderRepository) ListByOrganizer(ctx context.Context, creatorUserID string) ([]*domain.OrganizerOrder, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.order.list_by_organizer")
	defer span.End()

	span.SetAttributes(attribute.String("creator_user_id", creatorUserID))

	query := `
		SELECT o.id, o.buyer_id, o.buyer_name, o.event_id, o.quantity,
			o.total_price, o.status, o.created_at, e.title
		FROM orders o
		JOIN events e ON o.event_id = e.id
		WHERE e.creator_user_id = $1
		ORDER BY o.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, creatorUserID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to list orders by organizer: %w", err)
	}
	defer rows.Close()

	orders := []*domain.OrganizerOrder{}
	for rows.Next() {
		order := &domain.OrganizerOrder{}
		var buyerName *string
		var status string
		if err := rows.Scan(
			&order.ID,
			&order.BuyerID,
			&buyerName,
			&order.EventID,
			&order.Quantity,
			&order.TotalPrice,
			&status,
			&order.CreatedAt,
			&order.EventTitle,
		); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan organizer order: %w", err)
		}
		order.Status = domain.OrderStatus(status)
		if buyerName != nil {
			order.BuyerName = *buyerName
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("error iterating organizer orders: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(orders)))
	span.SetStatus(codes.Ok, "")
	return orders, nil
}

// UpdateStatus changes an order's status
func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.order.update_status")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("order_id", id),
		attribute.String("status", status.String()),
	)

	result, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if result.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "not found")
		return domain.ErrOrderNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// scanOrderRow scans a single order row
func scanOrderRow(row pgx.Row) (*domain.Order, error) {
	order := &domain.Order{}
	var buyerName *string
	var status string

	err := row.Scan(
		&order.ID,
		&order.BuyerID,
		&buyerName,
		&order.EventID,
		&order.Quantity,
		&order.TotalPrice,
		&status,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Status = domain.OrderStatus(status)
	if buyerName != nil {
		order.BuyerName = *buyerName
	}
	return order, nil
}

// Ensure PostgresOrderRepository implements OrderRepository
var _ OrderRepository = (*PostgresOrderRepository)(nil)
