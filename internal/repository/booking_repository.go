package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingDomain "github.com/ridehub/service-rental/internal/domain/booking"
	couponDomain "github.com/ridehub/service-rental/internal/domain/coupon"
	"github.com/ridehub/service-rental/pkg/domain"
)

// BookingModel is the GORM persistence model for the bookings table.
type BookingModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingNumber  string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	VehicleID      uuid.UUID `gorm:"type:uuid;not null;index"`
	RenterID       uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate      time.Time `gorm:"type:timestamptz;not null"`
	EndDate        time.Time `gorm:"type:timestamptz;not null"`
	TotalDays      int64     `gorm:"not null"`
	PricePerDay    int64     `gorm:"not null"`
	Subtotal       int64     `gorm:"not null"`
	CouponCode     string    `gorm:"type:varchar(50)"`
	Discount       int64     `gorm:"not null;default:0"`
	FinalPrice     int64     `gorm:"not null"`
	BookingStatus  string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaymentStatus  string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	PaymentOrderID string    `gorm:"type:varchar(100)"`
	PaymentID      string    `gorm:"type:varchar(100)"`
	Notes          string    `gorm:"type:text"`
	Version        int64     `gorm:"not null;default:1"`
	CreatedAt      time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt      time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}

// BookingRepositoryImpl is the GORM-based implementation of booking.Repository.
type BookingRepositoryImpl struct {
	db *gorm.DB
}

// NewBookingRepository creates a new GORM-based booking repository.
func NewBookingRepository(db *gorm.DB) *BookingRepositoryImpl {
	return &BookingRepositoryImpl{db: db}
}

func activeStatusStrings() []string {
	statuses := bookingDomain.ActiveStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// overlapCondition matches closed-interval overlaps via the three
// sub-cases: candidate start inside an existing range, candidate end
// inside an existing range, or candidate range containing an existing one.
const overlapCondition = `(start_date <= ? AND end_date >= ?) OR (start_date <= ? AND end_date >= ?) OR (start_date >= ? AND end_date <= ?)`

func hasConflictTx(tx *gorm.DB, vehicleID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := tx.Model(&BookingModel{}).
		Where("vehicle_id = ?", vehicleID).
		Where("booking_status IN ?", activeStatusStrings()).
		Where(overlapCondition, startDate, startDate, endDate, endDate, startDate, endDate).
		Count(&count).Error
	return count > 0, err
}

// HasConflict reports whether an active booking overlaps the candidate range.
func (r *BookingRepositoryImpl) HasConflict(ctx context.Context, vehicleID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	return hasConflictTx(r.db.WithContext(ctx), vehicleID, startDate, endDate)
}

// Create persists a new booking in a single transaction. The vehicle
// row is locked first so two requests for the same vehicle serialize;
// the conflict check and the coupon usage increment both happen under
// that lock. A coupon whose last unit was taken by a concurrent request
// surfaces coupon.ErrExhausted without creating anything.
func (r *BookingRepositoryImpl) Create(ctx context.Context, b *bookingDomain.Booking, couponID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v VehicleModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", b.VehicleID()).First(&v).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("Vehicle", b.VehicleID().String())
			}
			return err
		}

		conflict, err := hasConflictTx(tx, b.VehicleID(), b.StartDate(), b.EndDate())
		if err != nil {
			return err
		}
		if conflict {
			return domain.NewConflictError("vehicle is already booked for these dates")
		}

		if couponID != nil {
			res := tx.Model(&CouponModel{}).
				Where("id = ? AND active = ? AND (usage_limit = 0 OR used_count < usage_limit)", *couponID, true).
				UpdateColumn("used_count", gorm.Expr("used_count + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return couponDomain.ErrExhausted
			}
		}

		model := toBookingModel(b)
		return tx.Create(&model).Error
	})
}

// FindByID retrieves a booking by its unique ID.
func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, err
	}
	return toBookingDomain(&model), nil
}

// ListByRenter retrieves a renter's bookings, newest first.
func (r *BookingRepositoryImpl) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("renter_id = ?", renterID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bookings[i] = toBookingDomain(&models[i])
	}
	return bookings, nil
}

// ListAll retrieves all bookings with pagination (admin).
func (r *BookingRepositoryImpl) ListAll(ctx context.Context, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []BookingModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bookings[i] = toBookingDomain(&models[i])
	}
	return bookings, total, nil
}

// Update persists changes to an existing booking with optimistic locking.
func (r *BookingRepositoryImpl) Update(ctx context.Context, b *bookingDomain.Booking) error {
	model := toBookingModel(b)
	previousVersion := b.Version() - 1

	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, previousVersion).
		Updates(&model)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// CountActiveByVehicle counts active bookings for a vehicle.
func (r *BookingRepositoryImpl) CountActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Where("vehicle_id = ?", vehicleID).
		Where("booking_status IN ?", activeStatusStrings()).
		Count(&count).Error
	return count, err
}

// toBookingDomain maps a BookingModel to the domain Booking aggregate.
func toBookingDomain(model *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstitute(
		model.ID,
		model.BookingNumber,
		model.VehicleID,
		model.RenterID,
		model.StartDate,
		model.EndDate,
		model.TotalDays,
		model.PricePerDay,
		model.Subtotal,
		model.CouponCode,
		model.Discount,
		model.FinalPrice,
		bookingDomain.Status(model.BookingStatus),
		bookingDomain.PaymentStatus(model.PaymentStatus),
		model.PaymentOrderID,
		model.PaymentID,
		model.Notes,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// toBookingModel maps a domain Booking aggregate to a BookingModel.
func toBookingModel(b *bookingDomain.Booking) BookingModel {
	return BookingModel{
		ID:             b.ID(),
		BookingNumber:  b.BookingNumber(),
		VehicleID:      b.VehicleID(),
		RenterID:       b.RenterID(),
		StartDate:      b.StartDate(),
		EndDate:        b.EndDate(),
		TotalDays:      b.TotalDays(),
		PricePerDay:    b.PricePerDay(),
		Subtotal:       b.Subtotal(),
		CouponCode:     b.CouponCode(),
		Discount:       b.Discount(),
		FinalPrice:     b.FinalPrice(),
		BookingStatus:  string(b.Status()),
		PaymentStatus:  string(b.PaymentStatus()),
		PaymentOrderID: b.PaymentOrderID(),
		PaymentID:      b.PaymentID(),
		Notes:          b.Notes(),
		Version:        b.Version(),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
}
