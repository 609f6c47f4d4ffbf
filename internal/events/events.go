package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicBookingEvents carries all booking lifecycle events.
const TopicBookingEvents = "booking.events"

// Event types published by this service.
const (
	BookingCreated       = "booking.created"
	BookingConfirmed     = "booking.confirmed"
	BookingCancelled     = "booking.cancelled"
	BookingStatusChanged = "booking.status_changed"
)

// BookingCreatedEvent is published when a booking is persisted.
type BookingCreatedEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	RenterID      uuid.UUID `json:"renter_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	FinalPrice    int64     `json:"final_price"`
	CouponCode    string    `json:"coupon_code,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BookingConfirmedEvent is published when a payment is verified.
type BookingConfirmedEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	PaymentID     string    `json:"payment_id"`
	AmountPaid    int64     `json:"amount_paid"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is published when a booking is cancelled.
type BookingCancelledEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	CancelledBy   uuid.UUID `json:"cancelled_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BookingStatusChangedEvent is published on manual status advances.
type BookingStatusChangedEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	FromStatus    string    `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
