package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PostgresPaymentRepository implements PaymentRepository using PostgreSQL with pgxpool
type PostgresPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPaymentRepository creates a new PostgresPaymentRepository
func NewPostgresPaymentRepository(pool *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{pool: pool}
}

const paymentColumns = `id, order_id, provider_txn_id, status, amount, created_at, updated_at`

// Create inserts a new payment attempt. The unique index on provider_txn_id
// backs up the service-level duplicate lookup.
func (r *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.payment.create")
	defer span.End()

	span.SetAttributes(
		attribute.String("payment_id", payment.ID),
		attribute.Int64("order_id", payment.OrderID),
		attribute.String("provider_txn_id", payment.ProviderTxnID),
	)

	query := `
		INSERT INTO payments (id, order_id, provider_txn_id, status, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		payment.ID,
		payment.OrderID,
		payment.ProviderTxnID,
		payment.Status.String(),
		payment.Amount,
	).Scan(&payment.CreatedAt, &payment.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			span.SetStatus(codes.Error, "duplicate provider txn")
			return domain.ErrDuplicateProviderTxn
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create payment: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves a payment by its uuid
func (r *PostgresPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.payment.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("payment_id", id))

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPaymentRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Error, "not found")
			return nil, domain.ErrPaymentNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return payment, nil
}

// GetByProviderTxnID retrieves a payment by provider transaction id, nil when absent
func (r *PostgresPaymentRepository) GetByProviderTxnID(ctx context.Context, providerTxnID string) (*domain.Payment, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.payment.get_by_provider_txn")
	defer span.End()

	span.SetAttributes(attribute.String("provider_txn_id", providerTxnID))

	query := `SELECT ` + paymentColumns + ` FROM payments WHERE provider_txn_id = $1`

	payment, err := scanPaymentRow(r.pool.QueryRow(ctx, query, providerTxnID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			span.SetStatus(codes.Ok, "not found")
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get payment by provider txn id: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return payment, nil
}

// UpdateStatus changes a payment's status and bumps updated_at
func (r *PostgresPaymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.payment.update_status")
	defer span.End()

	span.SetAttributes(
		attribute.String("payment_id", id),
		attribute.String("status", status.String()),
	)

	result, err := r.pool.Exec(ctx,
		`UPDATE payments SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status.String(), time.Now(),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	if result.RowsAffected() == 0 {
		span.SetStatus(codes.Error, "not found")
		return domain.ErrPaymentNotFound
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// scanPaymentRow scans a single payment row
func scanPaymentRow(row pgx.Row) (*domain.Payment, error) {
	payment := &domain.Payment{}
	var status string

	err := row.Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.ProviderTxnID,
		&status,
		&payment.Amount,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	payment.Status = domain.PaymentStatus(status)
	return payment, nil
}

// Ensure PostgresPaymentRepository implements PaymentRepository
var _ PaymentRepository = (*PostgresPaymentRepository)(nil)
