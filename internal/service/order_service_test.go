package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
)

func newOrderFixtures() (*MockEventRepository, *MockOrderRepository, OrderService) {
	eventRepo := NewMockEventRepository()
	eventRepo.AddEvent(&domain.Event{
		ID:            1,
		OrganizerID:   1,
		CreatorUserID: "creator-1",
		Title:         "Summer Fest",
		Price:         25,
		Capacity:      intPtr(10),
	})
	orderRepo := NewMockOrderRepository(eventRepo)
	svc := NewOrderService(orderRepo, nil)
	return eventRepo, orderRepo, svc
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newOrderFixtures()

	order, err := svc.Create(ctx, &dto.CreateOrderRequest{
		EventID:  1,
		BuyerID:  "buyer-1",
		Quantity: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("expected initial status %q, got %q", domain.OrderStatusPending, order.Status)
	}
	if order.TotalPrice != 100 {
		t.Errorf("expected total 100, got %v", order.TotalPrice)
	}
}

func TestOrderService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newOrderFixtures()

	tests := []struct {
		name    string
		req     *dto.CreateOrderRequest
		wantErr error
	}{
		{
			name:    "zero quantity",
			req:     &dto.CreateOrderRequest{EventID: 1, BuyerID: "buyer-1", Quantity: 0},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			req:     &dto.CreateOrderRequest{EventID: 1, BuyerID: "buyer-1", Quantity: -2},
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "missing buyer",
			req:     &dto.CreateOrderRequest{EventID: 1, Quantity: 2},
			wantErr: domain.ErrInvalidUserID,
		},
		{
			name:    "event missing",
			req:     &dto.CreateOrderRequest{EventID: 99, BuyerID: "buyer-1", Quantity: 2},
			wantErr: domain.ErrEventNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestOrderService_Create_Capacity(t *testing.T) {
	ctx := context.Background()
	_, orderRepo, svc := newOrderFixtures()

	// Capacity 10: 6 sold, then 5 must fail, then 4 must fill exactly
	if _, err := svc.Create(ctx, &dto.CreateOrderRequest{EventID: 1, BuyerID: "buyer-1", Quantity: 6}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Create(ctx, &dto.CreateOrderRequest{EventID: 1, BuyerID: "buyer-2", Quantity: 5}); !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if len(orderRepo.orders) != 1 {
		t.Fatalf("rejected order must not persist, have %d orders", len(orderRepo.orders))
	}

	if _, err := svc.Create(ctx, &dto.CreateOrderRequest{EventID: 1, BuyerID: "buyer-2", Quantity: 4}); err != nil {
		t.Fatalf("filling to capacity should succeed, got %v", err)
	}
}

func TestOrderService_ListByBuyer(t *testing.T) {
	ctx := context.Background()
	_, orderRepo, svc := newOrderFixtures()
	orderRepo.AddOrder(&domain.Order{ID: 1, BuyerID: "buyer-1", EventID: 1, Quantity: 2, Status: domain.OrderStatusPending})

	orders, err := svc.ListByBuyer(ctx, "buyer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(orders))
	}

	// Unknown buyers get an empty list, never an error
	orders, err = svc.ListByBuyer(ctx, "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("expected empty list, got %d", len(orders))
	}
}

func TestOrderService_ListByOrganizer(t *testing.T) {
	ctx := context.Background()
	_, orderRepo, svc := newOrderFixtures()
	orderRepo.AddOrder(&domain.Order{ID: 1, BuyerID: "buyer-1", EventID: 1, Quantity: 2, Status: domain.OrderStatusPaid})

	t.Run("self", func(t *testing.T) {
		orders, err := svc.ListByOrganizer(ctx, &domain.Identity{UserID: "creator-1", Role: domain.RoleOrganizer}, "creator-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 || orders[0].EventTitle != "Summer Fest" {
			t.Errorf("expected enriched order, got %+v", orders)
		}
	})

	t.Run("admin override", func(t *testing.T) {
		if _, err := svc.ListByOrganizer(ctx, &domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}, "creator-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("other user denied", func(t *testing.T) {
		_, err := svc.ListByOrganizer(ctx, &domain.Identity{UserID: "buyer-1", Role: domain.RoleBuyer}, "creator-1")
		if !errors.Is(err, domain.ErrAuthorizationDenied) {
			t.Fatalf("expected ErrAuthorizationDenied, got %v", err)
		}
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{name: "paid", status: "paid"},
		{name: "cancelled", status: "cancelled"},
		{name: "refunded", status: "refunded"},
		{name: "back to pending", status: "pending"},
		{name: "unknown status", status: "confirmed", wantErr: domain.ErrInvalidOrderStatus},
		{name: "empty status", status: "", wantErr: domain.ErrInvalidOrderStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, orderRepo, svc := newOrderFixtures()
			orderRepo.AddOrder(&domain.Order{ID: 1, BuyerID: "buyer-1", EventID: 1, Quantity: 2, Status: domain.OrderStatusPending})

			order, err := svc.UpdateStatus(ctx, 1, tt.status)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				if got := orderRepo.orders[1].Status; got != domain.OrderStatusPending {
					t.Errorf("rejected update must not mutate, status is %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if order.Status.String() != tt.status {
				t.Errorf("expected status %q, got %q", tt.status, order.Status)
			}
		})
	}

	t.Run("not found", func(t *testing.T) {
		_, _, svc := newOrderFixtures()
		if _, err := svc.UpdateStatus(ctx, 99, "paid"); !errors.Is(err, domain.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}
