package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdvanegasm/proticket/internal/auth"
	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
	"github.com/jdvanegasm/proticket/internal/service"
)

// EventHandler handles event HTTP requests
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create handles POST /events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), auth.IdentityFromContext(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	// A fresh event has sold nothing
	c.JSON(http.StatusCreated, dto.FromEvent(event, &domain.EventStats{
		AvailableTickets: event.AvailableTickets(0),
	}))
}

// List handles GET /events
func (h *EventHandler) List(c *gin.Context) {
	events, stats, err := h.eventService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, eventResponses(events, stats))
}

// GetByID handles GET /events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", domain.ErrEventNotFound)
	if !ok {
		return
	}

	event, stats, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromEvent(event, stats))
}

// ListByCreator handles GET /events/creator/:user_id
func (h *EventHandler) ListByCreator(c *gin.Context) {
	events, stats, err := h.eventService.ListByCreator(
		c.Request.Context(),
		auth.IdentityFromContext(c),
		c.Param("user_id"),
	)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, eventResponses(events, stats))
}

// Update handles PUT /events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", domain.ErrEventNotFound)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	event, stats, err := h.eventService.Update(c.Request.Context(), auth.IdentityFromContext(c), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromEvent(event, stats))
}

// Delete handles DELETE /events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", domain.ErrEventNotFound)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), auth.IdentityFromContext(c), id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Deleted: true,
		Message: "event deleted",
	})
}

func eventResponses(events []*domain.Event, stats map[int64]*domain.EventStats) []*dto.EventResponse {
	responses := make([]*dto.EventResponse, len(events))
	for i, event := range events {
		responses[i] = dto.FromEvent(event, stats[event.ID])
	}
	return responses
}
