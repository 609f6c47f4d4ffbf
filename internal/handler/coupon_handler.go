package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridehub/service-rental/internal/application"
	"github.com/ridehub/service-rental/pkg/auth"
	"github.com/ridehub/service-rental/pkg/middleware"
	"github.com/ridehub/service-rental/pkg/response"
)

// CouponHandler handles HTTP requests for coupon validation.
type CouponHandler struct {
	service *application.CouponService
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(service *application.CouponService) *CouponHandler {
	return &CouponHandler{service: service}
}

// RegisterRoutes registers the coupon routes.
func (h *CouponHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	coupons := r.Group("/coupons")
	coupons.Use(middleware.AuthMiddleware(jwtManager))
	{
		coupons.POST("/validate", h.Validate)
	}
}

// Validate handles POST /api/v1/coupons/validate
func (h *CouponHandler) Validate(c *gin.Context) {
	var req application.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.service.Validate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto)
}
