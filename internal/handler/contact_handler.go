package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridehub/service-rental/internal/application"
	"github.com/ridehub/service-rental/pkg/response"
)

// ContactHandler handles HTTP requests for the contact form.
type ContactHandler struct {
	service *application.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *application.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// RegisterRoutes registers the public contact route.
func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.Submit)
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req application.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto)
}
