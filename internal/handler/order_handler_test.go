package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
)

// MockOrderService is an in-memory OrderService with a fixed-capacity event
type MockOrderService struct {
	orders   map[int64]*domain.Order
	capacity int
	price    float64
	nextID   int64
}

func NewMockOrderService(capacity int, price float64) *MockOrderService {
	return &MockOrderService{
		orders:   make(map[int64]*domain.Order),
		capacity: capacity,
		price:    price,
		nextID:   1,
	}
}

func (m *MockOrderService) Create(ctx context.Context, req *dto.CreateOrderRequest) (*domain.Order, error) {
	if req.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if req.EventID != 1 {
		return nil, domain.ErrEventNotFound
	}
	sold := 0
	for _, o := range m.orders {
		sold += o.Quantity
	}
	if sold+req.Quantity > m.capacity {
		return nil, domain.ErrCapacityExceeded
	}
	order := &domain.Order{
		ID:         m.nextID,
		BuyerID:    req.BuyerID,
		BuyerName:  req.BuyerName,
		EventID:    req.EventID,
		Quantity:   req.Quantity,
		TotalPrice: m.price * float64(req.Quantity),
		Status:     domain.OrderStatusPending,
		CreatedAt:  time.Now(),
	}
	m.nextID++
	m.orders[order.ID] = order
	return order, nil
}

func (m *MockOrderService) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (m *MockOrderService) ListByBuyer(ctx context.Context, buyerID string) ([]*domain.Order, error) {
	orders := make([]*domain.Order, 0)
	for _, o := range m.orders {
		if o.BuyerID == buyerID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *MockOrderService) ListByOrganizer(ctx context.Context, identity *domain.Identity, creatorUserID string) ([]*domain.OrganizerOrder, error) {
	if identity == nil {
		return nil, domain.ErrAuthenticationRequired
	}
	if !identity.IsAdmin() && identity.UserID != creatorUserID {
		return nil, domain.ErrAuthorizationDenied
	}
	return []*domain.OrganizerOrder{}, nil
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	newStatus := domain.OrderStatus(status)
	if !newStatus.IsValid() {
		return nil, domain.ErrInvalidOrderStatus
	}
	order, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	order.Status = newStatus
	return order, nil
}

func setupOrderRouter(h *OrderHandler, identity *domain.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(identityMiddleware(identity))

	orders := router.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("/:id", h.GetByID)
		orders.GET("/user/:user_id", h.ListByBuyer)
		orders.GET("/organizer/:user_id", h.ListByOrganizer)
		orders.PUT("/:id/status", h.UpdateStatus)
	}

	return router
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestOrderHandler_Create(t *testing.T) {
	mockSvc := NewMockOrderService(10, 25)
	router := setupOrderRouter(NewOrderHandler(mockSvc), nil)

	resp := postJSON(router, "/orders", dto.CreateOrderRequest{
		EventID:  1,
		BuyerID:  "buyer-1",
		Quantity: 4,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, resp.Code, resp.Body.String())
	}

	var body dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Status != "pending" {
		t.Errorf("expected pending order, got %q", body.Status)
	}
	if body.TotalPrice != 100 {
		t.Errorf("expected total 100, got %v", body.TotalPrice)
	}
}

func TestOrderHandler_Create_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		payload    dto.CreateOrderRequest
		presold    int
		wantStatus int
	}{
		{
			name:       "capacity exceeded maps to conflict",
			payload:    dto.CreateOrderRequest{EventID: 1, BuyerID: "buyer-2", Quantity: 5},
			presold:    6,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing event maps to not found",
			payload:    dto.CreateOrderRequest{EventID: 99, BuyerID: "buyer-1", Quantity: 1},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "binding rejects zero quantity",
			payload:    dto.CreateOrderRequest{EventID: 1, BuyerID: "buyer-1", Quantity: 0},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockOrderService(10, 25)
			router := setupOrderRouter(NewOrderHandler(mockSvc), nil)

			if tt.presold > 0 {
				if resp := postJSON(router, "/orders", dto.CreateOrderRequest{EventID: 1, BuyerID: "buyer-1", Quantity: tt.presold}); resp.Code != http.StatusCreated {
					t.Fatalf("presale failed with status %d", resp.Code)
				}
			}

			resp := postJSON(router, "/orders", tt.payload)
			if resp.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestOrderHandler_ListByBuyer_Empty(t *testing.T) {
	router := setupOrderRouter(NewOrderHandler(NewMockOrderService(10, 25)), nil)

	req, _ := http.NewRequest(http.MethodGet, "/orders/user/nobody", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.Code)
	}

	var body []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a JSON array, got %q", resp.Body.String())
	}
	if len(body) != 0 {
		t.Errorf("expected empty list, got %d entries", len(body))
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	mockSvc := NewMockOrderService(10, 25)
	router := setupOrderRouter(NewOrderHandler(mockSvc), nil)

	if resp := postJSON(router, "/orders", dto.CreateOrderRequest{EventID: 1, BuyerID: "buyer-1", Quantity: 2}); resp.Code != http.StatusCreated {
		t.Fatalf("setup order failed with status %d", resp.Code)
	}

	tests := []struct {
		name       string
		path       string
		status     string
		wantStatus int
	}{
		{name: "valid transition", path: "/orders/1/status", status: "paid", wantStatus: http.StatusOK},
		{name: "unknown status", path: "/orders/1/status", status: "confirmed", wantStatus: http.StatusBadRequest},
		{name: "missing order", path: "/orders/42/status", status: "paid", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, _ := json.Marshal(dto.UpdateOrderStatusRequest{Status: tt.status})
			req, _ := http.NewRequest(http.MethodPut, tt.path, bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestOrderHandler_ListByOrganizer_Forbidden(t *testing.T) {
	router := setupOrderRouter(NewOrderHandler(NewMockOrderService(10, 25)), &domain.Identity{UserID: "buyer-1", Role: domain.RoleBuyer})

	req, _ := http.NewRequest(http.MethodGet, "/orders/organizer/creator-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, resp.Code)
	}
}
