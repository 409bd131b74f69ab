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

// PostgresEventRepository implements EventRepository using PostgreSQL with pgxpool
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

const eventColumns = `id, organizer_id, creator_user_id, title, description, location,
	start_datetime, price, capacity, status, created_at`

// Create inserts a new event record
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.event.create")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("organizer_id", event.OrganizerID),
		attribute.String("creator_user_id", event.CreatorUserID),
	)

	query := `
		INSERT INTO events (
			organizer_id, creator_user_id, title, description, location,
			start_datetime, price, capacity, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		event.OrganizerID,
		nullString(event.CreatorUserID),
		event.Title,
		event.Description,
		event.Location,
		event.StartDatetime,
		event.Price,
		event.Capacity,
		event.Status,
	).Scan(&event.ID, &event.CreatedAt)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create event: %w", err)
	}

	span.SetAttributes(attribute.Int64("event_id", event.ID))
	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves an event by its ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.event.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.Int64("event_id", id))

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	event, err := scanEventRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, domain.ErrEventNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return event, nil
}

// List retrieves all events
func (r *PostgresEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.event.list")
	defer span.End()

	query := `SELECT ` + eventColumns + ` FROM events ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events, err := collectEvents(rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(events)))
	span.SetStatus(codes.Ok, "")
	return events, nil
}

// ListByCreator retrieves all events authored by the given user
func (r *PostgresEventRepository) ListByCreator(ctx context.Context, creatorUserID string) ([]*domain.Event, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.event.list_by_creator")
	defer span.End()

	span.SetAttributes(attribute.String("creator_user_id", creatorUserID))

	query := `SELECT ` + eventColumns + ` FROM events WHERE creator_user_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, creatorUserID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to list events by creator: %w", err)
	}
	defer rows.Close()

	events, err := collectEvents(rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(events)))
	span.SetStatus(codes.Ok, "")
	return events, nil
}

// Update persists the mutable fields of an event. creator_user_id stays as is.
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.event.update")
	defer span.End()

	span.SetAttributes(attribute.Int64("event_id", event.ID))

	query := `
		UPDATE events SET
			organizer_id = $2,
			title = $3,
			description = $4,
			location = $5,
			start_datetime = $6,
			price = $7,
			capacity = $8,
			status = $9
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		event.ID,
		event.OrganizerID,
		event.Title,
		event.Description,
		event.Location,
		event.StartDatetime,
		event.Price,
		event.Capacity,
		event.Status,
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to update event: %w", err)
	}

	if result.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "not found")
		return domain.ErrEventNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// Delete removes an event; FK cascade removes its orders, payments and tickets
func (r *PostgresEventRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.event.delete")
	defer span.End()

	span.SetAttributes(attribute.Int64("event_id", id))

	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if result.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "not found")
		return domain.ErrEventNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// statsQuery sums quantities over every order of an event while revenue only
// counts paid orders. 'confirmed' is kept in the revenue filter as a legacy
// status value still present in older rows.
const statsQuery = `
	SELECT
		event_id,
		COALESCE(SUM(quantity), 0)::int AS tickets_sold,
		COALESCE(SUM(total_price) FILTER (WHERE status IN ('paid', 'confirmed')), 0) AS revenue
	FROM orders
	WHERE event_id = ANY($1)
	GROUP BY event_id
`

// Stats computes tickets_sold and revenue for one event
func (r *PostgresEventRepository) Stats(ctx context.Context, eventID int64) (*domain.EventStats, error) {
	stats, err := r.StatsForEvents(ctx, []int64{eventID})
	if err != nil {
		return nil, err
	}
	if s, ok := stats[eventID]; ok {
		return s, nil
	}
	return &domain.EventStats{}, nil
}

// StatsForEvents computes tickets_sold and revenue for many events at once
func (r *PostgresEventRepository) StatsForEvents(ctx context.Context, eventIDs []int64) (map[int64]*domain.EventStats, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.event.stats")
	defer span.End()

	span.SetAttributes(attribute.Int("event_count", len(eventIDs)))

	stats := make(map[int64]*domain.EventStats, len(eventIDs))
	if len(eventIDs) == 0 {
		span.SetStatus(codes.Ok, "")
		return stats, nil
	}

	rows, err := r.pool.Query(ctx, statsQuery, eventIDs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to query event stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID int64
		s := &domain.EventStats{}
		if err := rows.Scan(&eventID, &s.TicketsSold, &s.Revenue); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan event stats: %w", err)
		}
		stats[eventID] = s
	}

	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("error iterating event stats: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return stats, nil
}

// scanEventRow scans a single event row
func scanEventRow(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	var creatorUserID *string

	err := row.Scan(
		&event.ID,
		&event.OrganizerID,
		&creatorUserID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartDatetime,
		&event.Price,
		&event.Capacity,
		&event.Status,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if creatorUserID != nil {
		event.CreatorUserID = *creatorUserID
	}
	return event, nil
}

// collectEvents drains rows into a slice of events
func collectEvents(rows pgx.Rows) ([]*domain.Event, error) {
	events := []*domain.Event{}
	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

// nullString converts an empty string to a nil pointer for nullable columns
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Ensure PostgresEventRepository implements EventRepository
var _ EventRepository = (*PostgresEventRepository)(nil)
