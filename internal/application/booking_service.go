package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingDomain "github.com/ridehub/service-rental/internal/domain/booking"
	couponDomain "github.com/ridehub/service-rental/internal/domain/coupon"
	vehicleDomain "github.com/ridehub/service-rental/internal/domain/vehicle"
	"github.com/ridehub/service-rental/pkg/domain"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// EventPublisher receives booking lifecycle notifications. Publishing
// is fire-and-forget from the service's point of view.
type EventPublisher interface {
	BookingCreated(ctx context.Context, b *bookingDomain.Booking)
	BookingConfirmed(ctx context.Context, b *bookingDomain.Booking)
	BookingCancelled(ctx context.Context, b *bookingDomain.Booking, cancelledBy uuid.UUID)
	BookingStatusChanged(ctx context.Context, b *bookingDomain.Booking, from bookingDomain.Status)
}

// CreateBookingRequest holds data to create a booking.
type CreateBookingRequest struct {
	VehicleID  uuid.UUID `json:"vehicle_id" binding:"required"`
	StartDate  string    `json:"start_date" binding:"required"`
	EndDate    string    `json:"end_date" binding:"required"`
	CouponCode string    `json:"coupon_code"`
	Notes      string    `json:"notes"`
}

// BookingDTO is the API response representation of a booking.
type BookingDTO struct {
	ID            uuid.UUID `json:"id"`
	BookingNumber string    `json:"booking_number"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	RenterID      uuid.UUID `json:"renter_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	TotalDays     int64     `json:"total_days"`
	PricePerDay   int64     `json:"price_per_day"`
	Subtotal      int64     `json:"subtotal"`
	CouponCode    string    `json:"coupon_code,omitempty"`
	Discount      int64     `json:"discount"`
	FinalPrice    int64     `json:"final_price"`
	BookingStatus string    `json:"booking_status"`
	PaymentStatus string    `json:"payment_status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookingService orchestrates the booking lifecycle.
type BookingService struct {
	bookings bookingDomain.Repository
	vehicles vehicleDomain.Repository
	coupons  couponDomain.Repository
	events   EventPublisher
	logger   *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.Repository,
	vehicles vehicleDomain.Repository,
	coupons couponDomain.Repository,
	events EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		vehicles: vehicles,
		coupons:  coupons,
		events:   events,
		logger:   logger,
	}
}

// Create runs the booking workflow: date validation, availability,
// pricing, optional coupon, then atomic persistence. A coupon that
// fails any applicability check is silently ignored, never an error.
func (s *BookingService) Create(ctx context.Context, renterID uuid.UUID, req CreateBookingRequest) (*BookingDTO, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, domain.NewValidationError("invalid start_date format (use YYYY-MM-DD)")
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, domain.NewValidationError("invalid end_date format (use YYYY-MM-DD)")
	}

	v, err := s.vehicles.FindByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	if !v.Available() {
		return nil, domain.NewValidationError("vehicle is not available")
	}

	// Pre-check for a friendly rejection; the repository re-checks
	// under a lock before committing.
	conflict, err := s.bookings.HasConflict(ctx, v.ID(), startDate, endDate)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, domain.NewConflictError("vehicle is already booked for these dates")
	}

	_, subtotal, err := bookingDomain.Quote(startDate, endDate, v.PricePerDay())
	if err != nil {
		return nil, err
	}

	appliedCode, discount, couponID := s.evaluateCoupon(ctx, req.CouponCode, subtotal)

	b, err := bookingDomain.NewBooking(v.ID(), renterID, startDate, endDate, v.PricePerDay(), appliedCode, discount, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Create(ctx, b, couponID); err != nil {
		if errors.Is(err, couponDomain.ErrExhausted) {
			// Lost the race for the coupon's last unit; degrade to no
			// discount rather than failing the booking.
			s.logger.Info("coupon exhausted at commit time, retrying without discount",
				zap.String("coupon_code", appliedCode),
			)
			b, err = bookingDomain.NewBooking(v.ID(), renterID, startDate, endDate, v.PricePerDay(), "", 0, req.Notes)
			if err != nil {
				return nil, err
			}
			err = s.bookings.Create(ctx, b, nil)
		}
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("booking created",
		zap.String("booking_number", b.BookingNumber()),
		zap.String("vehicle_id", v.ID().String()),
		zap.Int64("final_price", b.FinalPrice()),
	)

	s.events.BookingCreated(ctx, b)

	dto := toBookingDTO(b)
	return &dto, nil
}

// evaluateCoupon resolves and evaluates a coupon code against the
// subtotal. Any failure (missing, inactive, expired, exhausted, below
// minimum) degrades to a zero discount.
func (s *BookingService) evaluateCoupon(ctx context.Context, code string, subtotal int64) (appliedCode string, discount int64, couponID *uuid.UUID) {
	normalized := couponDomain.NormalizeCode(code)
	if normalized == "" {
		return "", 0, nil
	}

	c, err := s.coupons.FindByCode(ctx, normalized)
	if err != nil {
		s.logger.Debug("coupon not applied", zap.String("code", normalized), zap.Error(err))
		return "", 0, nil
	}

	discount, err = c.Evaluate(time.Now().UTC(), subtotal)
	if err != nil {
		s.logger.Debug("coupon not applied", zap.String("code", normalized), zap.Error(err))
		return "", 0, nil
	}

	id := c.ID()
	return normalized, discount, &id
}

// Get returns one booking, visible to its renter or an admin.
func (s *BookingService) Get(ctx context.Context, actorID uuid.UUID, isAdmin bool, bookingID uuid.UUID) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.RenterID() != actorID {
		return nil, domain.NewForbiddenError("you do not own this booking")
	}

	dto := toBookingDTO(b)
	return &dto, nil
}

// ListMine returns the renter's bookings.
func (s *BookingService) ListMine(ctx context.Context, renterID uuid.UUID) ([]BookingDTO, error) {
	bookings, err := s.bookings.ListByRenter(ctx, renterID)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos, nil
}

// ListAll returns all bookings paginated (admin).
func (s *BookingService) ListAll(ctx context.Context, page, limit int) ([]BookingDTO, int64, error) {
	bookings, total, err := s.bookings.ListAll(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos, total, nil
}

// Cancel transitions a booking to CANCELLED. Only the owning renter or
// an admin may cancel; terminal states reject with a state error.
func (s *BookingService) Cancel(ctx context.Context, actorID uuid.UUID, isAdmin bool, bookingID uuid.UUID) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.RenterID() != actorID {
		return nil, domain.NewForbiddenError("you do not own this booking")
	}

	if err := b.Cancel(); err != nil {
		return nil, err
	}
	b.IncrementVersion()

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking cancelled",
		zap.String("booking_number", b.BookingNumber()),
		zap.String("cancelled_by", actorID.String()),
	)

	s.events.BookingCancelled(ctx, b, actorID)

	dto := toBookingDTO(b)
	return &dto, nil
}

// AdvanceStatus performs a manual admin transition to ONGOING or
// COMPLETED. Trips are started and finished by staff, not a scheduler.
func (s *BookingService) AdvanceStatus(ctx context.Context, bookingID uuid.UUID, target bookingDomain.Status) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	from := b.Status()
	switch target {
	case bookingDomain.StatusOngoing:
		err = b.StartTrip()
	case bookingDomain.StatusCompleted:
		err = b.Complete()
	default:
		return nil, domain.NewValidationError("target status must be ONGOING or COMPLETED")
	}
	if err != nil {
		return nil, err
	}
	b.IncrementVersion()

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.events.BookingStatusChanged(ctx, b, from)

	dto := toBookingDTO(b)
	return &dto, nil
}

// toBookingDTO maps a domain Booking to its API representation.
func toBookingDTO(b *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:            b.ID(),
		BookingNumber: b.BookingNumber(),
		VehicleID:     b.VehicleID(),
		RenterID:      b.RenterID(),
		StartDate:     b.StartDate().Format(dateLayout),
		EndDate:       b.EndDate().Format(dateLayout),
		TotalDays:     b.TotalDays(),
		PricePerDay:   b.PricePerDay(),
		Subtotal:      b.Subtotal(),
		CouponCode:    b.CouponCode(),
		Discount:      b.Discount(),
		FinalPrice:    b.FinalPrice(),
		BookingStatus: string(b.Status()),
		PaymentStatus: string(b.PaymentStatus()),
		Notes:         b.Notes(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}
