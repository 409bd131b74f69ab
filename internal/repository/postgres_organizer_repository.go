package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PostgresOrganizerRepository implements OrganizerRepository using PostgreSQL with pgxpool
type PostgresOrganizerRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrganizerRepository creates a new PostgresOrganizerRepository
func NewPostgresOrganizerRepository(pool *pgxpool.Pool) *PostgresOrganizerRepository {
	return &PostgresOrganizerRepository{pool: pool}
}

// Create inserts a new organizer record
func (r *PostgresOrganizerRepository) Create(ctx context.Context, organizer *domain.Organizer) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.organizer.create")
	defer span.End()

	span.SetAttributes(attribute.String("user_id", organizer.UserID))

	query := `
		INSERT INTO organizers (user_id, organization_name, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		organizer.UserID,
		organizer.OrganizationName,
		organizer.Status,
	).Scan(&organizer.ID, &organizer.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			span.SetStatus(codes.Error, "duplicate registration")
			return domain.ErrOrganizerExists
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create organizer: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves an organizer by its ID
func (r *PostgresOrganizerRepository) GetByID(ctx context.Context, id int64) (*domain.Organizer, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.organizer.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.Int64("organizer_id", id))

	query := `
		SELECT id, user_id, organization_name, status, created_at
		FROM organizers
		WHERE id = $1
	`

	organizer := &domain.Organizer{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&organizer.ID,
		&organizer.UserID,
		&organizer.OrganizationName,
		&organizer.Status,
		&organizer.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, domain.ErrOrganizerNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get organizer: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return organizer, nil
}

// GetByUserID retrieves the organizer registered for a user, nil when absent
func (r *PostgresOrganizerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Organizer, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.organizer.get_by_user_id")
	defer span.End()

	span.SetAttributes(attribute.String("user_id", userID))

	query := `
		SELECT id, user_id, organization_name, status, created_at
		FROM organizers
		WHERE user_id = $1
	`

	organizer := &domain.Organizer{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&organizer.ID,
		&organizer.UserID,
		&organizer.OrganizationName,
		&organizer.Status,
		&organizer.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Ok, "not found")
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get organizer by user id: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return organizer, nil
}

// List retrieves organizers with offset pagination
func (r *PostgresOrganizerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Organizer, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.organizer.list")
	defer span.End()

	query := `
		SELECT id, user_id, organization_name, status, created_at
		FROM organizers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to list organizers: %w", err)
	}
	defer rows.Close()

	organizers := []*domain.Organizer{}
	for rows.Next() {
		organizer := &domain.Organizer{}
		if err := rows.Scan(
			&organizer.ID,
			&organizer.UserID,
			&organizer.OrganizationName,
			&organizer.Status,
			&organizer.CreatedAt,
		); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan organizer: %w", err)
		}
		organizers = append(organizers, organizer)
	}

	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("error iterating organizers: %w", err)
	}

	span.SetAttributes(attribute.Int("count", len(organizers)))
	span.SetStatus(codes.Ok, "")
	return organizers, nil
}

// Update persists name/status changes to an organizer
func (r *PostgresOrganizerRepository) Update(ctx context.Context, organizer *domain.Organizer) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.organizer.update")
	defer span.End()

	span.SetAttributes(attribute.Int64("organizer_id", organizer.ID))

	query := `
		UPDATE organizers SET
			organization_name = $2,
			status = $3
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, organizer.ID, organizer.OrganizationName, organizer.Status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to update organizer: %w", err)
	}

	if result.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "not found")
		return domain.ErrOrganizerNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// Delete removes an organizer; FK cascade removes its events
func (r *PostgresOrganizerRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.organizer.delete")
	defer span.End()

	span.SetAttributes(attribute.Int64("organizer_id", id))

	result, err := r.pool.Exec(ctx, `DELETE FROM organizers WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to delete organizer: %w", err)
	}

	if result.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "not found")
		return domain.ErrOrganizerNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Ensure PostgresOrganizerRepository implements OrganizerRepository
var _ OrganizerRepository = (*PostgresOrganizerRepository)(nil)
