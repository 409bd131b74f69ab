package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
	"github.com/jdvanegasm/proticket/internal/repository"
)

// ticketService implements TicketService
type ticketService struct {
	ticketRepo repository.TicketRepository
	orderRepo  repository.OrderRepository
}

// NewTicketService creates a new TicketService
func NewTicketService(ticketRepo repository.TicketRepository, orderRepo repository.OrderRepository) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		orderRepo:  orderRepo,
	}
}

// Create issues a ticket for an existing order. The code is always generated
// here; nothing client supplied ever becomes a ticket code.
func (s *ticketService) Create(ctx context.Context, req *dto.CreateTicketRequest) (*domain.Ticket, error) {
	if _, err := s.orderRepo.GetByID(ctx, req.OrderID); err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		ID:         uuid.New().String(),
		OrderID:    req.OrderID,
		TicketCode: uuid.New().String(),
		PDFURL:     req.PDFURL,
		QRCode:     req.QRCode,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

// GetByID retrieves a ticket by its uuid
func (s *ticketService) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.ticketRepo.GetByID(ctx, id)
}

// ListByOrder retrieves every ticket issued against an order
func (s *ticketService) ListByOrder(ctx context.Context, orderID int64) ([]*domain.Ticket, error) {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.ticketRepo.ListByOrder(ctx, orderID)
}

// GetByCode retrieves a ticket by its public code
func (s *ticketService) GetByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	return s.ticketRepo.GetByCode(ctx, code)
}

// Ensure ticketService implements TicketService
var _ TicketService = (*ticketService)(nil)
