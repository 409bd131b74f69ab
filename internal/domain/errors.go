package domain

import "errors"

// Domain errors
var (
	// Not found errors
	ErrOrganizerNotFound = errors.New("organizer not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrTicketNotFound    = errors.New("ticket not found")

	// Validation errors
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrInvalidEventID       = errors.New("invalid event id")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidUserID        = errors.New("invalid user id")

	// Capacity errors
	ErrCapacityExceeded = errors.New("not enough available seats for this event")

	// Conflict errors
	ErrDuplicateProviderTxn = errors.New("transaction with this provider_txn_id already exists")
	ErrOrganizerExists      = errors.New("this user is already registered as an organizer")

	// Auth errors
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAuthorizationDenied    = errors.New("not authorized to access this resource")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrOrganizerNotFound) ||
		errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrPaymentNotFound) ||
		errors.Is(err, ErrTicketNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidOrderStatus) ||
		errors.Is(err, ErrInvalidPaymentStatus) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidEventID) ||
		errors.Is(err, ErrInvalidOrderID) ||
		errors.Is(err, ErrInvalidUserID)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateProviderTxn) ||
		errors.Is(err, ErrOrganizerExists) ||
		errors.Is(err, ErrCapacityExceeded)
}

// IsAuthError checks if the error is an authentication or authorization error
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthenticationRequired) ||
		errors.Is(err, ErrAuthorizationDenied)
}
