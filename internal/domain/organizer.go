package domain

import "time"

// Organizer represents an organizer account tied to exactly one user
type Organizer struct {
	ID               int64     `json:"id"`
	UserID           string    `json:"user_id"`
	OrganizationName string    `json:"organization_name"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// DefaultOrganizerStatus is applied when a new organizer omits a status
const DefaultOrganizerStatus = "draft"
