package service

import (
	"context"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
	"github.com/jdvanegasm/proticket/internal/repository"
)

// orderService implements OrderService
type orderService struct {
	orderRepo  repository.OrderRepository
	statsCache *EventStatsCache
}

// NewOrderService creates a new OrderService. statsCache may be nil.
func NewOrderService(orderRepo repository.OrderRepository, statsCache *EventStatsCache) OrderService {
	return &orderService{
		orderRepo:  orderRepo,
		statsCache: statsCache,
	}
}

// Create places an order against an event
func (s *orderService) Create(ctx context.Context, req *dto.CreateOrderRequest) (*domain.Order, error) {
	if req.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if req.BuyerID == "" {
		return nil, domain.ErrInvalidUserID
	}

	order := &domain.Order{
		BuyerID:   req.BuyerID,
		BuyerName: req.BuyerName,
		EventID:   req.EventID,
		Quantity:  req.Quantity,
		Status:    domain.OrderStatusPending,
	}

	// Capacity enforcement and pricing happen inside the repository's
	// transaction, so nothing is persisted on a failed check.
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.statsCache.Invalidate(ctx, order.EventID)
	return order, nil
}

// GetByID retrieves an order by primary key
func (s *orderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// ListByBuyer retrieves all orders placed by a buyer
func (s *orderService) ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Order, error) {
	if buyerID == "" {
		return nil, domain.ErrInvalidUserID
	}
	return s.orderRepo.ListByBuyer(ctx, buyerID)
}

// ListByOrganizer retrieves all sales across events created by a user
func (s *orderService) ListByOrganizer(ctx context.Context, identity *domain.Identity, creatorUserID string) ([]*domain.OrganizerOrder, error) {
	if identity == nil || identity.UserID == "" {
		return nil, domain.ErrAuthenticationRequired
	}
	if !identity.IsAdmin() && identity.UserID != creatorUserID {
		return nil, domain.ErrAuthorizationDenied
	}

	return s.orderRepo.ListByOrganizer(ctx, creatorUserID)
}

// UpdateStatus moves an order to a new status from the validated set
func (s *orderService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	newStatus := domain.OrderStatus(status)
	if !newStatus.IsValid() {
		return nil, domain.ErrInvalidOrderStatus
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	order.Status = newStatus

	// Status changes move revenue in and out of the paid bucket
	s.statsCache.Invalidate(ctx, order.EventID)
	return order, nil
}

// Ensure orderService implements OrderService
var _ OrderService = (*orderService)(nil)
