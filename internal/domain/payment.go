package domain

import "time"

// PaymentStatus represents the lifecycle state of a payment attempt
type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "initiated"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// String returns the string representation of the status
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the enumerated values
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusInitiated, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// Payment represents a recorded settlement attempt against an order.
// One order may carry multiple attempts, but every provider transaction id
// is used at most once across the whole table.
type Payment struct {
	ID            string        `json:"id"` // uuid, independent of the order key
	OrderID       int64         `json:"order_id"`
	ProviderTxnID string        `json:"provider_txn_id"`
	Status        PaymentStatus `json:"status"`
	Amount        float64       `json:"amount"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
