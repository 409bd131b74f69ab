package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
	"github.com/jdvanegasm/proticket/internal/service"
)

// TicketHandler handles ticket HTTP requests
type TicketHandler struct {
	ticketService service.TicketService
}

// NewTicketHandler creates a new TicketHandler
func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// Create handles POST /tickets
func (h *TicketHandler) Create(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	ticket, err := h.ticketService.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromTicket(ticket))
}

// GetByID handles GET /tickets/:id
func (h *TicketHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", domain.ErrTicketNotFound)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTicket(ticket))
}

// ListByOrder handles GET /tickets/order/:order_id
func (h *TicketHandler) ListByOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "order_id", domain.ErrOrderNotFound)
	if !ok {
		return
	}

	tickets, err := h.ticketService.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]*dto.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = dto.FromTicket(ticket)
	}

	c.JSON(http.StatusOK, responses)
}

// GetByCode handles GET /tickets/code/:code
func (h *TicketHandler) GetByCode(c *gin.Context) {
	code, ok := parseUUIDParam(c, "code", domain.ErrTicketNotFound)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetByCode(c.Request.Context(), code)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTicket(ticket))
}
