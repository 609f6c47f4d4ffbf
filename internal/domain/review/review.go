package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ridehub/service-rental/pkg/domain"
)

// Review is one renter's rating of a vehicle. A renter may review a
// given vehicle at most once.
type Review struct {
	id        uuid.UUID
	vehicleID uuid.UUID
	userID    uuid.UUID
	rating    int
	comment   string
	createdAt time.Time
}

// NewReview creates a review with a rating between 1 and 5.
func NewReview(vehicleID, userID uuid.UUID, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.NewValidationError("rating must be between 1 and 5")
	}
	return &Review{
		id:        uuid.New(),
		vehicleID: vehicleID,
		userID:    userID,
		rating:    rating,
		comment:   comment,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Review from persistence.
func Reconstruct(id, vehicleID, userID uuid.UUID, rating int, comment string, createdAt time.Time) *Review {
	return &Review{id: id, vehicleID: vehicleID, userID: userID, rating: rating, comment: comment, createdAt: createdAt}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) VehicleID() uuid.UUID { return r.vehicleID }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) Rating() int          { return r.rating }
func (r *Review) Comment() string      { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

// Repository defines persistence operations for reviews.
type Repository interface {
	Save(ctx context.Context, r *Review) error
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*Review, error)
	HasUserReviewed(ctx context.Context, vehicleID, userID uuid.UUID) (bool, error)
	AverageForVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error)
}
