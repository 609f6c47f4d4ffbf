package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridehub/service-rental/internal/application"
	"github.com/ridehub/service-rental/pkg/response"
)

// VehicleHandler handles public HTTP requests for the vehicle catalog.
type VehicleHandler struct {
	service *application.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(service *application.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// RegisterRoutes registers the public catalog routes.
func (h *VehicleHandler) RegisterRoutes(r *gin.RouterGroup) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", h.List)
		vehicles.GET("/:slug", h.GetBySlug)
	}
}

// List handles GET /api/v1/vehicles
func (h *VehicleHandler) List(c *gin.Context) {
	var req application.ListVehiclesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	dtos, total, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, dtos, total, req.Page, req.Limit)
}

// GetBySlug handles GET /api/v1/vehicles/:slug
func (h *VehicleHandler) GetBySlug(c *gin.Context) {
	dto, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto)
}
