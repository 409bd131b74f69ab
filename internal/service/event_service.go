package service

import (
	"context"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
	"github.com/jdvanegasm/proticket/internal/repository"
)

// eventService implements EventService
type eventService struct {
	eventRepo     repository.EventRepository
	organizerRepo repository.OrganizerRepository
	statsCache    *EventStatsCache
}

// NewEventService creates a new EventService. statsCache may be nil, in which
// case every stats read hits the database.
func NewEventService(eventRepo repository.EventRepository, organizerRepo repository.OrganizerRepository, statsCache *EventStatsCache) EventService {
	return &eventService{
		eventRepo:     eventRepo,
		organizerRepo: organizerRepo,
		statsCache:    statsCache,
	}
}

// Create publishes a new event under an existing organizer
func (s *eventService) Create(ctx context.Context, identity *domain.Identity, req *dto.CreateEventRequest) (*domain.Event, error) {
	if identity == nil || identity.UserID == "" {
		return nil, domain.ErrAuthenticationRequired
	}
	if !identity.CanCreateEvents() {
		return nil, domain.ErrAuthorizationDenied
	}

	// The organizer must exist before anything can be sold under it
	if _, err := s.organizerRepo.GetByID(ctx, req.OrganizerID); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.DefaultEventStatus
	}

	event := &domain.Event{
		OrganizerID:   req.OrganizerID,
		CreatorUserID: identity.UserID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		StartDatetime: req.StartDatetime,
		Price:         req.Price,
		Capacity:      req.Capacity,
		Status:        status,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

// GetByID retrieves an event together with its sales stats
func (s *eventService) GetByID(ctx context.Context, id int64) (*domain.Event, *domain.EventStats, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.statsFor(ctx, event)
	if err != nil {
		return nil, nil, err
	}

	return event, stats, nil
}

// List retrieves all events with their sales stats
func (s *eventService) List(ctx context.Context) ([]*domain.Event, map[int64]*domain.EventStats, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.statsForAll(ctx, events)
	if err != nil {
		return nil, nil, err
	}

	return events, stats, nil
}

// ListByCreator retrieves the events authored by a user, with stats
func (s *eventService) ListByCreator(ctx context.Context, identity *domain.Identity, creatorUserID string) ([]*domain.Event, map[int64]*domain.EventStats, error) {
	if identity == nil || identity.UserID == "" {
		return nil, nil, domain.ErrAuthenticationRequired
	}
	if !identity.IsAdmin() && identity.UserID != creatorUserID {
		return nil, nil, domain.ErrAuthorizationDenied
	}

	events, err := s.eventRepo.ListByCreator(ctx, creatorUserID)
	if err != nil {
		return nil, nil, err
	}

	stats, err := s.statsForAll(ctx, events)
	if err != nil {
		return nil, nil, err
	}

	return events, stats, nil
}

// Update applies a partial update to an event the caller may manage
func (s *eventService) Update(ctx context.Context, identity *domain.Identity, id int64, req *dto.UpdateEventRequest) (*domain.Event, *domain.EventStats, error) {
	if identity == nil || identity.UserID == "" {
		return nil, nil, domain.ErrAuthenticationRequired
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !identity.CanManageEvent(event.CreatorUserID) {
		return nil, nil, domain.ErrAuthorizationDenied
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartDatetime != nil {
		event.StartDatetime = *req.StartDatetime
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.Capacity != nil {
		event.Capacity = req.Capacity
	}
	if req.Status != nil {
		event.Status = *req.Status
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, nil, err
	}

	// Availability is derived from the possibly changed capacity
	stats, err := s.statsFor(ctx, event)
	if err != nil {
		return nil, nil, err
	}

	return event, stats, nil
}

// Delete removes an event the caller may manage
func (s *eventService) Delete(ctx context.Context, identity *domain.Identity, id int64) error {
	if identity == nil || identity.UserID == "" {
		return domain.ErrAuthenticationRequired
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !identity.CanManageEvent(event.CreatorUserID) {
		return domain.ErrAuthorizationDenied
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.statsCache.Invalidate(ctx, id)
	return nil
}

// statsFor loads the sales aggregates for one event, via the cache when
// possible, and completes them with the availability derived from capacity.
func (s *eventService) statsFor(ctx context.Context, event *domain.Event) (*domain.EventStats, error) {
	if stats, ok := s.statsCache.Get(ctx, event.ID); ok {
		stats.AvailableTickets = event.AvailableTickets(stats.TicketsSold)
		return stats, nil
	}

	stats, err := s.eventRepo.Stats(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	s.statsCache.Set(ctx, event.ID, stats)
	stats.AvailableTickets = event.AvailableTickets(stats.TicketsSold)
	return stats, nil
}

// statsForAll loads aggregates for a batch of events in one query. Events
// with no orders get zero-valued stats. The cache is bypassed here; one
// grouped query is already a single round trip.
func (s *eventService) statsForAll(ctx context.Context, events []*domain.Event) (map[int64]*domain.EventStats, error) {
	if len(events) == 0 {
		return map[int64]*domain.EventStats{}, nil
	}

	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}

	stats, err := s.eventRepo.StatsForEvents(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		st, ok := stats[e.ID]
		if !ok {
			st = &domain.EventStats{}
			stats[e.ID] = st
		}
		st.AvailableTickets = e.AvailableTickets(st.TicketsSold)
	}

	return stats, nil
}

// Ensure eventService implements EventService
var _ EventService = (*eventService)(nil)
