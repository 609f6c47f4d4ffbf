package application

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ridehub/service-rental/internal/adapter"
	bookingDomain "github.com/ridehub/service-rental/internal/domain/booking"
	"github.com/ridehub/service-rental/pkg/domain"
)

// paymentCurrency is the only currency the gateway account accepts.
const paymentCurrency = "INR"

// VerifyPaymentRequest carries the gateway callback fields.
type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// PaymentOrderDTO is returned when a gateway order is opened.
type PaymentOrderDTO struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentService opens gateway orders for bookings and verifies the
// resulting payments.
type PaymentService struct {
	bookings bookingDomain.Repository
	gateway  adapter.PaymentGateway
	events   EventPublisher
	logger   *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(bookings bookingDomain.Repository, gateway adapter.PaymentGateway, events EventPublisher, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		bookings: bookings,
		gateway:  gateway,
		events:   events,
		logger:   logger,
	}
}

// CreateOrder opens a gateway order for a pending booking. Amounts are
// stored in rupees; the gateway wants paise.
func (s *PaymentService) CreateOrder(ctx context.Context, actorID uuid.UUID, bookingID uuid.UUID) (*PaymentOrderDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.RenterID() != actorID {
		return nil, domain.NewForbiddenError("you do not own this booking")
	}
	if b.Status() != bookingDomain.StatusPending || b.PaymentStatus() != bookingDomain.PaymentPending {
		return nil, domain.NewStateError("booking is not awaiting payment")
	}

	orderID, err := s.gateway.CreateOrder(ctx, b.FinalPrice()*100, paymentCurrency, b.BookingNumber())
	if err != nil {
		s.logger.Error("failed to create payment order", zap.Error(err))
		return nil, domain.NewUpstreamError("failed to create payment order")
	}

	if err := b.AttachPaymentOrder(orderID); err != nil {
		return nil, err
	}
	b.IncrementVersion()
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("payment order created",
		zap.String("booking_number", b.BookingNumber()),
		zap.String("order_id", orderID),
		zap.Int64("amount", b.FinalPrice()),
	)

	return &PaymentOrderDTO{
		OrderID:  orderID,
		Amount:   b.FinalPrice(),
		Currency: paymentCurrency,
	}, nil
}

// Verify checks the gateway signature for a booking's payment. On
// success the booking becomes CONFIRMED; on a bad signature nothing
// about the booking changes.
func (s *PaymentService) Verify(ctx context.Context, actorID uuid.UUID, bookingID uuid.UUID, req VerifyPaymentRequest) (*BookingDTO, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.RenterID() != actorID {
		return nil, domain.NewForbiddenError("you do not own this booking")
	}
	if b.PaymentOrderID() != req.OrderID {
		return nil, domain.NewValidationError("order does not belong to this booking")
	}

	if err := s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		s.logger.Warn("payment signature verification failed",
			zap.String("booking_number", b.BookingNumber()),
			zap.String("order_id", req.OrderID),
		)
		return nil, err
	}

	if err := b.ConfirmPayment(req.PaymentID); err != nil {
		return nil, err
	}
	b.IncrementVersion()

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("payment verified, booking confirmed",
		zap.String("booking_number", b.BookingNumber()),
		zap.String("payment_id", req.PaymentID),
	)

	s.events.BookingConfirmed(ctx, b)

	dto := toBookingDTO(b)
	return &dto, nil
}
