package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingDomain "github.com/ridehub/service-rental/internal/domain/booking"
	"github.com/ridehub/service-rental/pkg/domain"
)

func pendingBooking(t *testing.T, renterID uuid.UUID) *bookingDomain.Booking {
	t.Helper()
	b, err := bookingDomain.NewBooking(uuid.New(), renterID,
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		2000, "", 0, "")
	require.NoError(t, err)
	return b
}

func TestCreateOrder_ConvertsToMinorUnits(t *testing.T) {
	renter := uuid.New()
	b := pendingBooking(t, renter)
	var gotAmount int64
	var gotReceipt string

	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
			return b, nil
		},
	}
	gateway := &mockGateway{
		createOrderFn: func(ctx context.Context, amount int64, currency, receipt string) (string, error) {
			gotAmount = amount
			gotReceipt = receipt
			return "order_abc", nil
		},
	}
	svc := NewPaymentService(bookings, gateway, &mockPublisher{}, zap.NewNop())

	dto, err := svc.CreateOrder(context.Background(), renter, b.ID())
	require.NoError(t, err)

	// 6000 rupees becomes 600000 paise at the gateway boundary, but the
	// response reports rupees.
	assert.Equal(t, int64(600000), gotAmount)
	assert.Equal(t, b.BookingNumber(), gotReceipt)
	assert.Equal(t, "order_abc", dto.OrderID)
	assert.Equal(t, int64(6000), dto.Amount)
	assert.Equal(t, "INR", dto.Currency)
	assert.Equal(t, "order_abc", b.PaymentOrderID())
}

func TestCreateOrder_NotOwner(t *testing.T) {
	b := pendingBooking(t, uuid.New())
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
			return b, nil
		},
	}
	svc := NewPaymentService(bookings, &mockGateway{}, &mockPublisher{}, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), uuid.New(), b.ID())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateOrder_AlreadyConfirmed(t *testing.T) {
	renter := uuid.New()
	b := pendingBooking(t, renter)
	require.NoError(t, b.ConfirmPayment("pay_1"))

	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
			return b, nil
		},
	}
	svc := NewPaymentService(bookings, &mockGateway{}, &mockPublisher{}, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), renter, b.ID())
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestVerify_Success(t *testing.T) {
	renter := uuid.New()
	b := pendingBooking(t, renter)
	require.NoError(t, b.AttachPaymentOrder("order_abc"))

	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
			return b, nil
		},
	}
	events := &mockPublisher{}
	svc := NewPaymentService(bookings, &mockGateway{}, events, zap.NewNop())

	dto, err := svc.Verify(context.Background(), renter, b.ID(), VerifyPaymentRequest{
		OrderID:   "order_abc",
		PaymentID: "pay_xyz",
		Signature: "sig",
	})
	require.NoError(t, err)

	assert.Equal(t, "CONFIRMED", dto.BookingStatus)
	assert.Equal(t, "COMPLETED", dto.PaymentStatus)
	assert.Len(t, events.confirmed, 1)
}

func TestVerify_BadSignatureLeavesBookingUntouched(t *testing.T) {
	renter := uuid.New()
	b := pendingBooking(t, renter)
	require.NoError(t, b.AttachPaymentOrder("order_abc"))

	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
			return b, nil
		},
		updateFn: func(ctx context.Context, b *bookingDomain.Booking) error {
			t.Fatal("booking must not be persisted on signature failure")
			return nil
		},
	}
	gateway := &mockGateway{
		verifySignatureFn: func(orderID, paymentID, signature string) error {
			return domain.NewUpstreamError("invalid payment signature")
		},
	}
	events := &mockPublisher{}
	svc := NewPaymentService(bookings, gateway, events, zap.NewNop())

	_, err := svc.Verify(context.Background(), renter, b.ID(), VerifyPaymentRequest{
		OrderID:   "order_abc",
		PaymentID: "pay_xyz",
		Signature: "tampered",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, bookingDomain.StatusPending, b.Status())
	assert.Equal(t, bookingDomain.PaymentPending, b.PaymentStatus())
	assert.Empty(t, events.confirmed)
}

func TestVerify_OrderMismatch(t *testing.T) {
	renter := uuid.New()
	b := pendingBooking(t, renter)
	require.NoError(t, b.AttachPaymentOrder("order_abc"))

	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
			return b, nil
		},
	}
	svc := NewPaymentService(bookings, &mockGateway{}, &mockPublisher{}, zap.NewNop())

	_, err := svc.Verify(context.Background(), renter, b.ID(), VerifyPaymentRequest{
		OrderID:   "order_other",
		PaymentID: "pay_xyz",
		Signature: "sig",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
