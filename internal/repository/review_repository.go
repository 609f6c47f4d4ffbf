package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	reviewDomain "github.com/ridehub/service-rental/internal/domain/review"
	"github.com/ridehub/service-rental/pkg/domain"
)

// ReviewModel is the GORM model for the reviews table. The composite
// unique index enforces one review per renter per vehicle even under
// concurrent submissions.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_vehicle_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_vehicle_user"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName sets the table name.
func (ReviewModel) TableName() string { return "reviews" }

// GormReviewRepository implements review.Repository using GORM.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository.
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Save persists a review; a duplicate (vehicle, user) pair conflicts.
func (r *GormReviewRepository) Save(ctx context.Context, rev *reviewDomain.Review) error {
	model := ReviewModel{
		ID:        rev.ID(),
		VehicleID: rev.VehicleID(),
		UserID:    rev.UserID(),
		Rating:    rev.Rating(),
		Comment:   rev.Comment(),
		CreatedAt: rev.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("you have already reviewed this vehicle")
		}
		return err
	}
	return nil
}

// ListByVehicle returns a vehicle's reviews, newest first.
func (r *GormReviewRepository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*reviewDomain.Review, error) {
	var models []ReviewModel
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	reviews := make([]*reviewDomain.Review, len(models))
	for i, m := range models {
		reviews[i] = reviewDomain.Reconstruct(m.ID, m.VehicleID, m.UserID, m.Rating, m.Comment, m.CreatedAt)
	}
	return reviews, nil
}

// HasUserReviewed reports whether the user already reviewed the vehicle.
func (r *GormReviewRepository) HasUserReviewed(ctx context.Context, vehicleID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ReviewModel{}).
		Where("vehicle_id = ? AND user_id = ?", vehicleID, userID).
		Count(&count).Error
	return count > 0, err
}

// AverageForVehicle returns the mean rating, zero when unreviewed.
func (r *GormReviewRepository) AverageForVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Model(&ReviewModel{}).
		Where("vehicle_id = ?", vehicleID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}
