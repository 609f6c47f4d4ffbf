package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	bookingDomain "github.com/ridehub/service-rental/internal/domain/booking"
	contactDomain "github.com/ridehub/service-rental/internal/domain/contact"
	couponDomain "github.com/ridehub/service-rental/internal/domain/coupon"
	reviewDomain "github.com/ridehub/service-rental/internal/domain/review"
	vehicleDomain "github.com/ridehub/service-rental/internal/domain/vehicle"
	"github.com/ridehub/service-rental/pkg/domain"
)

type mockBookingRepo struct {
	createFn               func(ctx context.Context, b *bookingDomain.Booking, couponID *uuid.UUID) error
	findByIDFn             func(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error)
	listByRenterFn         func(ctx context.Context, renterID uuid.UUID) ([]*bookingDomain.Booking, error)
	listAllFn              func(ctx context.Context, page, limit int) ([]*bookingDomain.Booking, int64, error)
	updateFn               func(ctx context.Context, b *bookingDomain.Booking) error
	hasConflictFn          func(ctx context.Context, vehicleID uuid.UUID, startDate, endDate time.Time) (bool, error)
	countActiveByVehicleFn func(ctx context.Context, vehicleID uuid.UUID) (int64, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b *bookingDomain.Booking, couponID *uuid.UUID) error {
	if m.createFn != nil {
		return m.createFn(ctx, b, couponID)
	}
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, domain.NewNotFoundError("Booking", id.String())
}

func (m *mockBookingRepo) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*bookingDomain.Booking, error) {
	if m.listByRenterFn != nil {
		return m.listByRenterFn(ctx, renterID)
	}
	return nil, nil
}

func (m *mockBookingRepo) ListAll(ctx context.Context, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx, page, limit)
	}
	return nil, 0, nil
}

func (m *mockBookingRepo) Update(ctx context.Context, b *bookingDomain.Booking) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, b)
	}
	return nil
}

func (m *mockBookingRepo) HasConflict(ctx context.Context, vehicleID uuid.UUID, startDate, endDate time.Time) (bool, error) {
	if m.hasConflictFn != nil {
		return m.hasConflictFn(ctx, vehicleID, startDate, endDate)
	}
	return false, nil
}

func (m *mockBookingRepo) CountActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (int64, error) {
	if m.countActiveByVehicleFn != nil {
		return m.countActiveByVehicleFn(ctx, vehicleID)
	}
	return 0, nil
}

type mockVehicleRepo struct {
	saveFn       func(ctx context.Context, v *vehicleDomain.Vehicle) error
	updateFn     func(ctx context.Context, v *vehicleDomain.Vehicle) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
	findByIDFn   func(ctx context.Context, id uuid.UUID) (*vehicleDomain.Vehicle, error)
	findBySlugFn func(ctx context.Context, slug string) (*vehicleDomain.Vehicle, error)
	listFn       func(ctx context.Context, filter vehicleDomain.Filter) ([]*vehicleDomain.Vehicle, int64, error)
}

func (m *mockVehicleRepo) Save(ctx context.Context, v *vehicleDomain.Vehicle) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, v)
	}
	return nil
}

func (m *mockVehicleRepo) Update(ctx context.Context, v *vehicleDomain.Vehicle) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, v)
	}
	return nil
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*vehicleDomain.Vehicle, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, domain.NewNotFoundError("Vehicle", id.String())
}

func (m *mockVehicleRepo) FindBySlug(ctx context.Context, slug string) (*vehicleDomain.Vehicle, error) {
	if m.findBySlugFn != nil {
		return m.findBySlugFn(ctx, slug)
	}
	return nil, domain.NewNotFoundError("Vehicle", slug)
}

func (m *mockVehicleRepo) List(ctx context.Context, filter vehicleDomain.Filter) ([]*vehicleDomain.Vehicle, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, 0, nil
}

type mockCouponRepo struct {
	saveFn       func(ctx context.Context, c *couponDomain.Coupon) error
	updateFn     func(ctx context.Context, c *couponDomain.Coupon) error
	findByCodeFn func(ctx context.Context, code string) (*couponDomain.Coupon, error)
	findByIDFn   func(ctx context.Context, id uuid.UUID) (*couponDomain.Coupon, error)
	listFn       func(ctx context.Context) ([]*couponDomain.Coupon, error)
}

func (m *mockCouponRepo) Save(ctx context.Context, c *couponDomain.Coupon) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, c)
	}
	return nil
}

func (m *mockCouponRepo) Update(ctx context.Context, c *couponDomain.Coupon) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, c)
	}
	return nil
}

func (m *mockCouponRepo) FindByCode(ctx context.Context, code string) (*couponDomain.Coupon, error) {
	if m.findByCodeFn != nil {
		return m.findByCodeFn(ctx, code)
	}
	return nil, domain.NewNotFoundError("Coupon", code)
}

func (m *mockCouponRepo) FindByID(ctx context.Context, id uuid.UUID) (*couponDomain.Coupon, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, domain.NewNotFoundError("Coupon", id.String())
}

func (m *mockCouponRepo) List(ctx context.Context) ([]*couponDomain.Coupon, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockReviewRepo struct {
	saveFn              func(ctx context.Context, r *reviewDomain.Review) error
	listByVehicleFn     func(ctx context.Context, vehicleID uuid.UUID) ([]*reviewDomain.Review, error)
	hasUserReviewedFn   func(ctx context.Context, vehicleID, userID uuid.UUID) (bool, error)
	averageForVehicleFn func(ctx context.Context, vehicleID uuid.UUID) (float64, error)
}

func (m *mockReviewRepo) Save(ctx context.Context, r *reviewDomain.Review) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, r)
	}
	return nil
}

func (m *mockReviewRepo) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*reviewDomain.Review, error) {
	if m.listByVehicleFn != nil {
		return m.listByVehicleFn(ctx, vehicleID)
	}
	return nil, nil
}

func (m *mockReviewRepo) HasUserReviewed(ctx context.Context, vehicleID, userID uuid.UUID) (bool, error) {
	if m.hasUserReviewedFn != nil {
		return m.hasUserReviewedFn(ctx, vehicleID, userID)
	}
	return false, nil
}

func (m *mockReviewRepo) AverageForVehicle(ctx context.Context, vehicleID uuid.UUID) (float64, error) {
	if m.averageForVehicleFn != nil {
		return m.averageForVehicleFn(ctx, vehicleID)
	}
	return 0, nil
}

type mockContactRepo struct {
	saveFn    func(ctx context.Context, msg *contactDomain.Message) error
	listAllFn func(ctx context.Context, page, limit int) ([]*contactDomain.Message, int64, error)
}

func (m *mockContactRepo) Save(ctx context.Context, msg *contactDomain.Message) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, msg)
	}
	return nil
}

func (m *mockContactRepo) ListAll(ctx context.Context, page, limit int) ([]*contactDomain.Message, int64, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx, page, limit)
	}
	return nil, 0, nil
}

// mockPublisher records the event types it saw.
type mockPublisher struct {
	created       []*bookingDomain.Booking
	confirmed     []*bookingDomain.Booking
	cancelled     []*bookingDomain.Booking
	statusChanged []*bookingDomain.Booking
}

func (m *mockPublisher) BookingCreated(ctx context.Context, b *bookingDomain.Booking) {
	m.created = append(m.created, b)
}

func (m *mockPublisher) BookingConfirmed(ctx context.Context, b *bookingDomain.Booking) {
	m.confirmed = append(m.confirmed, b)
}

func (m *mockPublisher) BookingCancelled(ctx context.Context, b *bookingDomain.Booking, cancelledBy uuid.UUID) {
	m.cancelled = append(m.cancelled, b)
}

func (m *mockPublisher) BookingStatusChanged(ctx context.Context, b *bookingDomain.Booking, from bookingDomain.Status) {
	m.statusChanged = append(m.statusChanged, b)
}

type mockGateway struct {
	createOrderFn     func(ctx context.Context, amount int64, currency, receipt string) (string, error)
	verifySignatureFn func(orderID, paymentID, signature string) error
}

func (m *mockGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	if m.createOrderFn != nil {
		return m.createOrderFn(ctx, amount, currency, receipt)
	}
	return "order_test_1", nil
}

func (m *mockGateway) VerifySignature(orderID, paymentID, signature string) error {
	if m.verifySignatureFn != nil {
		return m.verifySignatureFn(orderID, paymentID, signature)
	}
	return nil
}
