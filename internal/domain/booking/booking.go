package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ridehub/service-rental/pkg/domain"
)

// Status is the lifecycle state of a rental booking.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusOngoing   Status = "ONGOING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// PaymentStatus is the lifecycle state of the payment for a booking.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// ActiveStatuses are the booking states that hold a vehicle's dates.
// A booking in any of these blocks overlapping requests.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusOngoing}
}

// Booking is the aggregate root for a vehicle rental.
type Booking struct {
	id             uuid.UUID
	bookingNumber  string
	vehicleID      uuid.UUID
	renterID       uuid.UUID
	startDate      time.Time
	endDate        time.Time
	totalDays      int64
	pricePerDay    int64
	subtotal       int64
	couponCode     string
	discount       int64
	finalPrice     int64
	status         Status
	paymentStatus  PaymentStatus
	paymentOrderID string
	paymentID      string
	notes          string
	version        int64
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking creates a PENDING booking for the given date range. The
// per-day price is snapshotted from the vehicle at creation time; the
// discount must already be evaluated by the coupon domain.
func NewBooking(vehicleID, renterID uuid.UUID, startDate, endDate time.Time, pricePerDay int64, couponCode string, discount int64, notes string) (*Booking, error) {
	days, subtotal, err := Quote(startDate, endDate, pricePerDay)
	if err != nil {
		return nil, err
	}
	if discount < 0 || discount > subtotal {
		return nil, domain.NewValidationError("discount must be between zero and the subtotal")
	}

	now := time.Now().UTC()
	id := uuid.New()
	return &Booking{
		id:            id,
		bookingNumber: "RH-" + strings.ToUpper(id.String()[:8]),
		vehicleID:     vehicleID,
		renterID:      renterID,
		startDate:     startDate,
		endDate:       endDate,
		totalDays:     days,
		pricePerDay:   pricePerDay,
		subtotal:      subtotal,
		couponCode:    couponCode,
		discount:      discount,
		finalPrice:    subtotal - discount,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		notes:         notes,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// --- Getters ---

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) BookingNumber() string        { return b.bookingNumber }
func (b *Booking) VehicleID() uuid.UUID         { return b.vehicleID }
func (b *Booking) RenterID() uuid.UUID          { return b.renterID }
func (b *Booking) StartDate() time.Time         { return b.startDate }
func (b *Booking) EndDate() time.Time           { return b.endDate }
func (b *Booking) TotalDays() int64             { return b.totalDays }
func (b *Booking) PricePerDay() int64           { return b.pricePerDay }
func (b *Booking) Subtotal() int64              { return b.subtotal }
func (b *Booking) CouponCode() string           { return b.couponCode }
func (b *Booking) Discount() int64              { return b.discount }
func (b *Booking) FinalPrice() int64            { return b.finalPrice }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentOrderID() string       { return b.paymentOrderID }
func (b *Booking) PaymentID() string            { return b.paymentID }
func (b *Booking) Notes() string                { return b.notes }
func (b *Booking) Version() int64               { return b.version }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }

// --- Behavior / State Transitions ---

// Cancel moves the booking to CANCELLED. Terminal states reject with a
// tailored message so the caller can tell the two cases apart.
func (b *Booking) Cancel() error {
	switch b.status {
	case StatusCancelled:
		return domain.NewStateError("booking already cancelled")
	case StatusCompleted:
		return domain.NewStateError("cannot cancel a completed booking")
	}
	b.status = StatusCancelled
	b.updatedAt = time.Now().UTC()
	return nil
}

// ConfirmPayment records a verified payment: payment status COMPLETED
// and booking status CONFIRMED in a single transition.
func (b *Booking) ConfirmPayment(paymentID string) error {
	if b.paymentStatus != PaymentPending {
		return domain.NewStateError("payment already settled for this booking")
	}
	if b.status != StatusPending {
		return domain.NewInvalidStateError(string(b.status), string(StatusConfirmed))
	}
	now := time.Now().UTC()
	b.paymentStatus = PaymentCompleted
	b.paymentID = paymentID
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

// MarkPaymentFailed records a payment the gateway reported as failed.
// The booking itself stays PENDING so the renter can retry.
func (b *Booking) MarkPaymentFailed() error {
	if b.paymentStatus != PaymentPending {
		return domain.NewStateError("payment already settled for this booking")
	}
	b.paymentStatus = PaymentFailed
	b.updatedAt = time.Now().UTC()
	return nil
}

// AttachPaymentOrder stores the gateway order id awaiting verification.
func (b *Booking) AttachPaymentOrder(orderID string) error {
	if b.paymentStatus == PaymentCompleted {
		return domain.NewStateError("booking is already paid")
	}
	if b.status != StatusPending {
		return domain.NewStateError("booking is not awaiting payment")
	}
	b.paymentOrderID = orderID
	b.paymentStatus = PaymentPending
	b.updatedAt = time.Now().UTC()
	return nil
}

// StartTrip moves a confirmed booking to ONGOING.
func (b *Booking) StartTrip() error {
	if b.status != StatusConfirmed {
		return domain.NewInvalidStateError(string(b.status), string(StatusOngoing))
	}
	b.status = StatusOngoing
	b.updatedAt = time.Now().UTC()
	return nil
}

// Complete moves an ongoing booking to COMPLETED.
func (b *Booking) Complete() error {
	if b.status != StatusOngoing {
		return domain.NewInvalidStateError(string(b.status), string(StatusCompleted))
	}
	b.status = StatusCompleted
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}

// Reconstitute rebuilds a Booking from persisted data.
func Reconstitute(
	id uuid.UUID,
	bookingNumber string,
	vehicleID, renterID uuid.UUID,
	startDate, endDate time.Time,
	totalDays, pricePerDay, subtotal int64,
	couponCode string,
	discount, finalPrice int64,
	status Status,
	paymentStatus PaymentStatus,
	paymentOrderID, paymentID, notes string,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		bookingNumber:  bookingNumber,
		vehicleID:      vehicleID,
		renterID:       renterID,
		startDate:      startDate,
		endDate:        endDate,
		totalDays:      totalDays,
		pricePerDay:    pricePerDay,
		subtotal:       subtotal,
		couponCode:     couponCode,
		discount:       discount,
		finalPrice:     finalPrice,
		status:         status,
		paymentStatus:  paymentStatus,
		paymentOrderID: paymentOrderID,
		paymentID:      paymentID,
		notes:          notes,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}
