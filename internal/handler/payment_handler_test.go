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
	"github.com/google/uuid"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
)

// MockPaymentService is an in-memory PaymentService keyed by payment uuid
type MockPaymentService struct {
	payments map[string]*domain.Payment
}

func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{payments: make(map[string]*domain.Payment)}
}

func (m *MockPaymentService) AddPayment(payment *domain.Payment) {
	m.payments[payment.ID] = payment
}

func (m *MockPaymentService) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*domain.Payment, error) {
	for _, p := range m.payments {
		if p.ProviderTxnID == req.ProviderTxnID {
			return nil, domain.ErrDuplicateProviderTxn
		}
	}
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		OrderID:       req.OrderID,
		ProviderTxnID: req.ProviderTxnID,
		Status:        domain.PaymentStatusInitiated,
		Amount:        req.Amount,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	m.payments[payment.ID] = payment
	return payment, nil
}

func (m *MockPaymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	payment, ok := m.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	return payment, nil
}

func (m *MockPaymentService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Payment, error) {
	newStatus := domain.PaymentStatus(status)
	if !newStatus.IsValid() {
		return nil, domain.ErrInvalidPaymentStatus
	}
	payment, ok := m.payments[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	payment.Status = newStatus
	return payment, nil
}

func setupPaymentRouter(h *PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	payments := router.Group("/payments")
	{
		payments.POST("", h.Create)
		payments.GET("/:id", h.GetByID)
		payments.PUT("/:id/status", h.UpdateStatus)
	}

	return router
}

func TestPaymentHandler_GetByID(t *testing.T) {
	mockSvc := NewMockPaymentService()
	paymentID := uuid.New().String()
	mockSvc.AddPayment(&domain.Payment{
		ID:            paymentID,
		OrderID:       1,
		ProviderTxnID: "txn-001",
		Status:        domain.PaymentStatusInitiated,
		Amount:        50,
	})
	router := setupPaymentRouter(NewPaymentHandler(mockSvc))

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "existing payment", path: "/payments/" + paymentID, wantStatus: http.StatusOK},
		{name: "unknown uuid", path: "/payments/" + uuid.New().String(), wantStatus: http.StatusNotFound},
		{name: "malformed id", path: "/payments/not-a-uuid", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestPaymentHandler_Create(t *testing.T) {
	mockSvc := NewMockPaymentService()
	router := setupPaymentRouter(NewPaymentHandler(mockSvc))

	resp := postJSON(router, "/payments", dto.CreatePaymentRequest{
		OrderID:       1,
		ProviderTxnID: "txn-001",
		Amount:        50,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, resp.Code, resp.Body.String())
	}

	var body dto.PaymentResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Status != "initiated" {
		t.Errorf("expected initiated payment, got %q", body.Status)
	}

	if resp := postJSON(router, "/payments", dto.CreatePaymentRequest{
		OrderID:       2,
		ProviderTxnID: "txn-001",
		Amount:        75,
	}); resp.Code != http.StatusConflict {
		t.Errorf("duplicate provider txn: expected status %d, got %d", http.StatusConflict, resp.Code)
	}
}

func TestPaymentHandler_UpdateStatus_MalformedID(t *testing.T) {
	mockSvc := NewMockPaymentService()
	router := setupPaymentRouter(NewPaymentHandler(mockSvc))

	raw, _ := json.Marshal(dto.UpdatePaymentStatusRequest{Status: "completed"})
	req, _ := http.NewRequest(http.MethodPut, "/payments/12345/status", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d: %s", http.StatusNotFound, resp.Code, resp.Body.String())
	}
}
