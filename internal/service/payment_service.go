package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
	"github.com/jdvanegasm/proticket/internal/repository"
)

// paymentService implements PaymentService
type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

// Create records a payment attempt for an existing order.
// The amount is stored as sent; it is not reconciled against the order total.
func (s *paymentService) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*domain.Payment, error) {
	if _, err := s.orderRepo.GetByID(ctx, req.OrderID); err != nil {
		return nil, err
	}

	existing, err := s.paymentRepo.GetByProviderTxnID(ctx, req.ProviderTxnID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateProviderTxn
	}

	payment := &domain.Payment{
		ID:            uuid.New().String(),
		OrderID:       req.OrderID,
		ProviderTxnID: req.ProviderTxnID,
		Status:        domain.PaymentStatusInitiated,
		Amount:        req.Amount,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// GetByID retrieves a payment by its uuid
func (s *paymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

// UpdateStatus moves a payment to a new status from the validated set
func (s *paymentService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Payment, error) {
	newStatus := domain.PaymentStatus(status)
	if !newStatus.IsValid() {
		return nil, domain.ErrInvalidPaymentStatus
	}

	if err := s.paymentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	return s.paymentRepo.GetByID(ctx, id)
}

// Ensure paymentService implements PaymentService
var _ PaymentService = (*paymentService)(nil)
