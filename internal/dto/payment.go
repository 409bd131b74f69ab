package dto

import (
	"time"

	"github.com/jdvanegasm/proticket/internal/domain"
)

// CreatePaymentRequest represents request to record a settlement attempt
type CreatePaymentRequest struct {
	OrderID       int64   `json:"order_id" binding:"required"`
	ProviderTxnID string  `json:"provider_txn_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
}

// UpdatePaymentStatusRequest represents request to change a payment's status
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID            string    `json:"id"`
	OrderID       int64     `json:"order_id"`
	ProviderTxnID string    `json:"provider_txn_id"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FromPayment converts a domain Payment to PaymentResponse
func FromPayment(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		ProviderTxnID: p.ProviderTxnID,
		Status:        p.Status.String(),
		Amount:        p.Amount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
