package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	reviewDomain "github.com/ridehub/service-rental/internal/domain/review"
	vehicleDomain "github.com/ridehub/service-rental/internal/domain/vehicle"
	"github.com/ridehub/service-rental/pkg/domain"
)

func reviewTestVehicle(t *testing.T) *vehicleDomain.Vehicle {
	t.Helper()
	v, err := vehicleDomain.NewVehicle(vehicleDomain.CategoryCar, vehicleDomain.Details{
		Name:        "Hyundai i20",
		Year:        2024,
		PricePerDay: 1800,
	}, false)
	require.NoError(t, err)
	return v
}

func TestSubmitReview(t *testing.T) {
	v := reviewTestVehicle(t)
	vehicles := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*vehicleDomain.Vehicle, error) {
			return v, nil
		},
	}
	var saved *reviewDomain.Review
	reviews := &mockReviewRepo{
		saveFn: func(ctx context.Context, r *reviewDomain.Review) error {
			saved = r
			return nil
		},
	}
	svc := NewReviewService(reviews, vehicles, zap.NewNop())

	dto, err := svc.Submit(context.Background(), uuid.New(), v.ID(), SubmitReviewRequest{
		Rating:  5,
		Comment: "smooth ride",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, dto.Rating)
	require.NotNil(t, saved)
}

func TestSubmitReview_Duplicate(t *testing.T) {
	v := reviewTestVehicle(t)
	vehicles := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*vehicleDomain.Vehicle, error) {
			return v, nil
		},
	}
	reviews := &mockReviewRepo{
		hasUserReviewedFn: func(ctx context.Context, vehicleID, userID uuid.UUID) (bool, error) {
			return true, nil
		},
	}
	svc := NewReviewService(reviews, vehicles, zap.NewNop())

	_, err := svc.Submit(context.Background(), uuid.New(), v.ID(), SubmitReviewRequest{Rating: 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestListForVehicle(t *testing.T) {
	vehicleID := uuid.New()
	r1, err := reviewDomain.NewReview(vehicleID, uuid.New(), 5, "great")
	require.NoError(t, err)
	r2, err := reviewDomain.NewReview(vehicleID, uuid.New(), 4, "")
	require.NoError(t, err)

	reviews := &mockReviewRepo{
		listByVehicleFn: func(ctx context.Context, id uuid.UUID) ([]*reviewDomain.Review, error) {
			return []*reviewDomain.Review{r1, r2}, nil
		},
		averageForVehicleFn: func(ctx context.Context, id uuid.UUID) (float64, error) {
			return 4.5, nil
		},
	}
	svc := NewReviewService(reviews, &mockVehicleRepo{}, zap.NewNop())

	dto, err := svc.ListForVehicle(context.Background(), vehicleID)
	require.NoError(t, err)
	assert.Len(t, dto.Reviews, 2)
	assert.InDelta(t, 4.5, dto.AverageRating, 0.001)
}
