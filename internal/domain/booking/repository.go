package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for Booking aggregates.
type Repository interface {
	// Create persists a new booking atomically: it must serialize
	// against concurrent bookings for the same vehicle, re-check the
	// date conflict, and consume one coupon usage when couponID is set.
	Create(ctx context.Context, b *Booking, couponID *uuid.UUID) error

	// FindByID retrieves a booking by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)

	// ListByRenter retrieves a renter's bookings, newest first.
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*Booking, error)

	// ListAll retrieves all bookings with pagination (admin).
	ListAll(ctx context.Context, page, limit int) ([]*Booking, int64, error)

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, b *Booking) error

	// HasConflict reports whether an active booking for the vehicle
	// overlaps the candidate date range (closed-interval semantics).
	HasConflict(ctx context.Context, vehicleID uuid.UUID, startDate, endDate time.Time) (bool, error)

	// CountActiveByVehicle counts active bookings for a vehicle.
	CountActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (int64, error)
}
