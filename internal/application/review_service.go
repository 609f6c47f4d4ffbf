package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	reviewDomain "github.com/ridehub/service-rental/internal/domain/review"
	vehicleDomain "github.com/ridehub/service-rental/internal/domain/vehicle"
	"github.com/ridehub/service-rental/pkg/domain"
)

// SubmitReviewRequest holds data to review a vehicle.
type SubmitReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// ReviewDTO is the API response representation of a review.
type ReviewDTO struct {
	ID        uuid.UUID `json:"id"`
	VehicleID uuid.UUID `json:"vehicle_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// VehicleReviewsDTO bundles a vehicle's reviews with its average rating.
type VehicleReviewsDTO struct {
	AverageRating float64     `json:"average_rating"`
	Reviews       []ReviewDTO `json:"reviews"`
}

// ReviewService handles vehicle review use cases.
type ReviewService struct {
	reviews  reviewDomain.Repository
	vehicles vehicleDomain.Repository
	logger   *zap.Logger
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews reviewDomain.Repository, vehicles vehicleDomain.Repository, logger *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, vehicles: vehicles, logger: logger}
}

// Submit records a review. Each renter may review a vehicle once.
func (s *ReviewService) Submit(ctx context.Context, userID, vehicleID uuid.UUID, req SubmitReviewRequest) (*ReviewDTO, error) {
	if _, err := s.vehicles.FindByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	reviewed, err := s.reviews.HasUserReviewed(ctx, vehicleID, userID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, domain.NewConflictError("you have already reviewed this vehicle")
	}

	r, err := reviewDomain.NewReview(vehicleID, userID, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("review submitted",
		zap.String("vehicle_id", vehicleID.String()),
		zap.Int("rating", req.Rating),
	)

	dto := toReviewDTO(r)
	return &dto, nil
}

// ListForVehicle returns a vehicle's reviews and average rating.
func (s *ReviewService) ListForVehicle(ctx context.Context, vehicleID uuid.UUID) (*VehicleReviewsDTO, error) {
	reviews, err := s.reviews.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	average, err := s.reviews.AverageForVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	dtos := make([]ReviewDTO, len(reviews))
	for i, r := range reviews {
		dtos[i] = toReviewDTO(r)
	}

	return &VehicleReviewsDTO{
		AverageRating: average,
		Reviews:       dtos,
	}, nil
}

func toReviewDTO(r *reviewDomain.Review) ReviewDTO {
	return ReviewDTO{
		ID:        r.ID(),
		VehicleID: r.VehicleID(),
		UserID:    r.UserID(),
		Rating:    r.Rating(),
		Comment:   r.Comment(),
		CreatedAt: r.CreatedAt(),
	}
}
