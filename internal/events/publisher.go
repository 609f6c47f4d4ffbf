package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ridehub/service-rental/internal/domain/booking"
	"github.com/ridehub/service-rental/pkg/kafka"
)

const eventSource = "service-rental"

// BookingEventPublisher publishes booking lifecycle events. Publishing
// is best effort: failures are logged and never fail the request that
// triggered them.
type BookingEventPublisher struct {
	producer *kafka.Producer
	logger   *zap.Logger
}

// NewBookingEventPublisher creates a publisher over the shared producer.
func NewBookingEventPublisher(producer *kafka.Producer, logger *zap.Logger) *BookingEventPublisher {
	return &BookingEventPublisher{producer: producer, logger: logger}
}

// BookingCreated publishes a BookingCreatedEvent.
func (p *BookingEventPublisher) BookingCreated(ctx context.Context, b *booking.Booking) {
	p.publish(ctx, BookingCreated, BookingCreatedEvent{
		BookingID:     b.ID(),
		BookingNumber: b.BookingNumber(),
		VehicleID:     b.VehicleID(),
		RenterID:      b.RenterID(),
		StartDate:     b.StartDate(),
		EndDate:       b.EndDate(),
		FinalPrice:    b.FinalPrice(),
		CouponCode:    b.CouponCode(),
		OccurredAt:    time.Now().UTC(),
	})
}

// BookingConfirmed publishes a BookingConfirmedEvent.
func (p *BookingEventPublisher) BookingConfirmed(ctx context.Context, b *booking.Booking) {
	p.publish(ctx, BookingConfirmed, BookingConfirmedEvent{
		BookingID:     b.ID(),
		BookingNumber: b.BookingNumber(),
		PaymentID:     b.PaymentID(),
		AmountPaid:    b.FinalPrice(),
		OccurredAt:    time.Now().UTC(),
	})
}

// BookingCancelled publishes a BookingCancelledEvent.
func (p *BookingEventPublisher) BookingCancelled(ctx context.Context, b *booking.Booking, cancelledBy uuid.UUID) {
	p.publish(ctx, BookingCancelled, BookingCancelledEvent{
		BookingID:     b.ID(),
		BookingNumber: b.BookingNumber(),
		CancelledBy:   cancelledBy,
		OccurredAt:    time.Now().UTC(),
	})
}

// BookingStatusChanged publishes a BookingStatusChangedEvent.
func (p *BookingEventPublisher) BookingStatusChanged(ctx context.Context, b *booking.Booking, from booking.Status) {
	p.publish(ctx, BookingStatusChanged, BookingStatusChangedEvent{
		BookingID:     b.ID(),
		BookingNumber: b.BookingNumber(),
		FromStatus:    string(from),
		ToStatus:      string(b.Status()),
		OccurredAt:    time.Now().UTC(),
	})
}

func (p *BookingEventPublisher) publish(ctx context.Context, eventType string, data interface{}) {
	ce, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		p.logger.Error("failed to create cloud event", zap.String("type", eventType), zap.Error(err))
		return
	}
	if err := p.producer.PublishEvent(ctx, TopicBookingEvents, ce); err != nil {
		p.logger.Error("failed to publish booking event", zap.String("type", eventType), zap.Error(err))
	}
}
