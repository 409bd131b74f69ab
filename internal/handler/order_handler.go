package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdvanegasm/proticket/internal/auth"
	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
	"github.com/jdvanegasm/proticket/internal/service"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromOrder(order))
}

// GetByID handles GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", domain.ErrOrderNotFound)
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(order))
}

// ListByBuyer handles GET /orders/user/:user_id
func (h *OrderHandler) ListByBuyer(c *gin.Context) {
	orders, err := h.orderService.ListByBuyer(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]*dto.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = dto.FromOrder(order)
	}

	c.JSON(http.StatusOK, responses)
}

// ListByOrganizer handles GET /orders/organizer/:user_id
func (h *OrderHandler) ListByOrganizer(c *gin.Context) {
	orders, err := h.orderService.ListByOrganizer(
		c.Request.Context(),
		auth.IdentityFromContext(c),
		c.Param("user_id"),
	)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]*dto.OrganizerOrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = dto.FromOrganizerOrder(order)
	}

	c.JSON(http.StatusOK, responses)
}

// UpdateStatus handles PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", domain.ErrOrderNotFound)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(order))
}
