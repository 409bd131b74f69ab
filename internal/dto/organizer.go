package dto

import (
	"time"

	"github.com/jdvanegasm/proticket/internal/domain"
)

// CreateOrganizerRequest represents request to register an organizer
type CreateOrganizerRequest struct {
	OrganizationName string `json:"organization_name" binding:"required"`
	Status           string `json:"status,omitempty"`
}

// UpdateOrganizerRequest carries a partial organizer update; nil fields are untouched
type UpdateOrganizerRequest struct {
	OrganizationName *string `json:"organization_name,omitempty"`
	Status           *string `json:"status,omitempty"`
}

// OrganizerResponse represents an organizer in API responses
type OrganizerResponse struct {
	ID               int64     `json:"id"`
	UserID           string    `json:"user_id"`
	OrganizationName string    `json:"organization_name"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// FromOrganizer converts a domain Organizer to OrganizerResponse
func FromOrganizer(o *domain.Organizer) *OrganizerResponse {
	return &OrganizerResponse{
		ID:               o.ID,
		UserID:           o.UserID,
		OrganizationName: o.OrganizationName,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
	}
}
