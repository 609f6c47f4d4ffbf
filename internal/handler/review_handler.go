package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ridehub/service-rental/internal/application"
	"github.com/ridehub/service-rental/pkg/auth"
	"github.com/ridehub/service-rental/pkg/middleware"
	"github.com/ridehub/service-rental/pkg/response"
)

// ReviewHandler handles HTTP requests for vehicle reviews.
type ReviewHandler struct {
	reviews  *application.ReviewService
	vehicles *application.VehicleService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews *application.ReviewService, vehicles *application.VehicleService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, vehicles: vehicles}
}

// RegisterRoutes registers the review routes. Listing is public;
// submitting requires a logged-in renter.
func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	r.GET("/vehicles/:slug/reviews", h.ListForVehicle)
	r.POST("/reviews", middleware.AuthMiddleware(jwtManager), h.Submit)
}

// ListForVehicle handles GET /api/v1/vehicles/:slug/reviews. The path
// segment accepts either the vehicle's UUID or its catalog slug.
func (h *ReviewHandler) ListForVehicle(c *gin.Context) {
	param := c.Param("slug")

	vehicleID, err := uuid.Parse(param)
	if err != nil {
		v, err := h.vehicles.GetBySlug(c.Request.Context(), param)
		if err != nil {
			response.Error(c, err)
			return
		}
		vehicleID = v.ID
	}

	dto, err := h.reviews.ListForVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto)
}

// Submit handles POST /api/v1/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req struct {
		VehicleID uuid.UUID `json:"vehicle_id" binding:"required"`
		Rating    int       `json:"rating" binding:"required,min=1,max=5"`
		Comment   string    `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.reviews.Submit(c.Request.Context(), userID, req.VehicleID, application.SubmitReviewRequest{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto)
}
