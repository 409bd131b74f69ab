package service

import (
	"context"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
	"github.com/jdvanegasm/proticket/internal/repository"
)

// organizerService implements OrganizerService
type organizerService struct {
	organizerRepo repository.OrganizerRepository
}

// NewOrganizerService creates a new OrganizerService
func NewOrganizerService(organizerRepo repository.OrganizerRepository) OrganizerService {
	return &organizerService{organizerRepo: organizerRepo}
}

// Create registers the authenticated user as an organizer
func (s *organizerService) Create(ctx context.Context, identity *domain.Identity, req *dto.CreateOrganizerRequest) (*domain.Organizer, error) {
	if identity == nil || identity.UserID == "" {
		return nil, domain.ErrAuthenticationRequired
	}

	existing, err := s.organizerRepo.GetByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrOrganizerExists
	}

	status := req.Status
	if status == "" {
		status = domain.DefaultOrganizerStatus
	}

	organizer := &domain.Organizer{
		UserID:           identity.UserID,
		OrganizationName: req.OrganizationName,
		Status:           status,
	}

	if err := s.organizerRepo.Create(ctx, organizer); err != nil {
		return nil, err
	}

	return organizer, nil
}

// GetByID retrieves an organizer by primary key
func (s *organizerService) GetByID(ctx context.Context, id int64) (*domain.Organizer, error) {
	return s.organizerRepo.GetByID(ctx, id)
}

// GetByUserID retrieves the organizer registered for a user
func (s *organizerService) GetByUserID(ctx context.Context, userID string) (*domain.Organizer, error) {
	if userID == "" {
		return nil, domain.ErrInvalidUserID
	}

	organizer, err := s.organizerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if organizer == nil {
		return nil, domain.ErrOrganizerNotFound
	}
	return organizer, nil
}

// List retrieves organizers with offset pagination
func (s *organizerService) List(ctx context.Context, limit, offset int) ([]*domain.Organizer, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.organizerRepo.List(ctx, limit, offset)
}

// Update applies a partial update to an organizer
func (s *organizerService) Update(ctx context.Context, id int64, req *dto.UpdateOrganizerRequest) (*domain.Organizer, error) {
	organizer, err := s.organizerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OrganizationName != nil {
		organizer.OrganizationName = *req.OrganizationName
	}
	if req.Status != nil {
		organizer.Status = *req.Status
	}

	if err := s.organizerRepo.Update(ctx, organizer); err != nil {
		return nil, err
	}

	return organizer, nil
}

// Delete removes an organizer
func (s *organizerService) Delete(ctx context.Context, id int64) error {
	return s.organizerRepo.Delete(ctx, id)
}

// Ensure organizerService implements OrganizerService
var _ OrganizerService = (*organizerService)(nil)
