package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ridehub/service-rental/internal/application"
	bookingDomain "github.com/ridehub/service-rental/internal/domain/booking"
	"github.com/ridehub/service-rental/pkg/auth"
	"github.com/ridehub/service-rental/pkg/middleware"
	"github.com/ridehub/service-rental/pkg/response"
)

// AdminHandler handles the back-office HTTP requests.
type AdminHandler struct {
	bookings *application.BookingService
	vehicles *application.VehicleService
	coupons  *application.CouponService
	contacts *application.ContactService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	bookings *application.BookingService,
	vehicles *application.VehicleService,
	coupons *application.CouponService,
	contacts *application.ContactService,
) *AdminHandler {
	return &AdminHandler{
		bookings: bookings,
		vehicles: vehicles,
		coupons:  coupons,
		contacts: contacts,
	}
}

// RegisterRoutes registers admin routes.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)
	adminRole := middleware.RequireRole(auth.RoleAdmin)

	admin := r.Group("/admin")
	admin.Use(authMW, adminRole)
	{
		admin.GET("/bookings", h.ListBookings)
		admin.POST("/bookings/:id/cancel", h.CancelBooking)
		admin.PATCH("/bookings/:id/status", h.UpdateBookingStatus)

		admin.POST("/vehicles", h.CreateVehicle)
		admin.PUT("/vehicles/:id", h.UpdateVehicle)
		admin.PATCH("/vehicles/:id/availability", h.SetVehicleAvailability)
		admin.DELETE("/vehicles/:id", h.DeleteVehicle)

		admin.POST("/coupons", h.CreateCoupon)
		admin.GET("/coupons", h.ListCoupons)
		admin.PATCH("/coupons/:id/active", h.SetCouponActive)

		admin.GET("/contact-messages", h.ListContactMessages)
	}
}

// ListBookings handles GET /api/v1/admin/bookings
func (h *AdminHandler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	dtos, total, err := h.bookings.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, dtos, total, page, limit)
}

// CancelBooking handles POST /api/v1/admin/bookings/:id/cancel
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	dto, err := h.bookings.Cancel(c.Request.Context(), adminID, true, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto)
}

// UpdateBookingStatus handles PATCH /api/v1/admin/bookings/:id/status
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.bookings.AdvanceStatus(c.Request.Context(), bookingID, bookingDomain.Status(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto)
}

// CreateVehicle handles POST /api/v1/admin/vehicles
func (h *AdminHandler) CreateVehicle(c *gin.Context) {
	var req application.SaveVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.vehicles.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto)
}

// UpdateVehicle handles PUT /api/v1/admin/vehicles/:id
func (h *AdminHandler) UpdateVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid vehicle ID")
		return
	}

	var req application.SaveVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.vehicles.Update(c.Request.Context(), vehicleID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto)
}

// SetVehicleAvailability handles PATCH /api/v1/admin/vehicles/:id/availability
func (h *AdminHandler) SetVehicleAvailability(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid vehicle ID")
		return
	}

	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.vehicles.SetAvailability(c.Request.Context(), vehicleID, *req.Available)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto)
}

// DeleteVehicle handles DELETE /api/v1/admin/vehicles/:id
func (h *AdminHandler) DeleteVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid vehicle ID")
		return
	}

	if err := h.vehicles.Delete(c.Request.Context(), vehicleID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// CreateCoupon handles POST /api/v1/admin/coupons
func (h *AdminHandler) CreateCoupon(c *gin.Context) {
	var req application.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.coupons.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto)
}

// ListCoupons handles GET /api/v1/admin/coupons
func (h *AdminHandler) ListCoupons(c *gin.Context) {
	dtos, err := h.coupons.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dtos)
}

// SetCouponActive handles PATCH /api/v1/admin/coupons/:id/active
func (h *AdminHandler) SetCouponActive(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid coupon ID")
		return
	}

	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.coupons.SetActive(c.Request.Context(), couponID, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto)
}

// ListContactMessages handles GET /api/v1/admin/contact-messages
func (h *AdminHandler) ListContactMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	dtos, total, err := h.contacts.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, dtos, total, page, limit)
}
