package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jdvanegasm/proticket/internal/auth"
	"github.com/jdvanegasm/proticket/internal/domain"
	"github.com/jdvanegasm/proticket/internal/dto"
	"github.com/jdvanegasm/proticket/internal/service"
)

// OrganizerHandler handles organizer HTTP requests
type OrganizerHandler struct {
	organizerService service.OrganizerService
}

// NewOrganizerHandler creates a new OrganizerHandler
func NewOrganizerHandler(organizerService service.OrganizerService) *OrganizerHandler {
	return &OrganizerHandler{organizerService: organizerService}
}

// Create handles POST /organizers
func (h *OrganizerHandler) Create(c *gin.Context) {
	var req dto.CreateOrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	organizer, err := h.organizerService.Create(c.Request.Context(), auth.IdentityFromContext(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromOrganizer(organizer))
}

// GetByID handles GET /organizers/:id
func (h *OrganizerHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id", domain.ErrOrganizerNotFound)
	if !ok {
		return
	}

	organizer, err := h.organizerService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrganizer(organizer))
}

// GetByUserID handles GET /organizers/user/:user_id
func (h *OrganizerHandler) GetByUserID(c *gin.Context) {
	organizer, err := h.organizerService.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrganizer(organizer))
}

// List handles GET /organizers
func (h *OrganizerHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	organizers, err := h.organizerService.List(c.Request.Context(), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]*dto.OrganizerResponse, len(organizers))
	for i, organizer := range organizers {
		responses[i] = dto.FromOrganizer(organizer)
	}

	c.JSON(http.StatusOK, responses)
}

// Update handles PUT /organizers/:id
func (h *OrganizerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id", domain.ErrOrganizerNotFound)
	if !ok {
		return
	}

	var req dto.UpdateOrganizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	organizer, err := h.organizerService.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrganizer(organizer))
}

// Delete handles DELETE /organizers/:id
func (h *OrganizerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id", domain.ErrOrganizerNotFound)
	if !ok {
		return
	}

	if err := h.organizerService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Deleted: true,
		Message: "organizer deleted",
	})
}
