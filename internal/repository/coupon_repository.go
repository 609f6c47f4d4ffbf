package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	couponDomain "github.com/ridehub/service-rental/internal/domain/coupon"
	"github.com/ridehub/service-rental/pkg/domain"
)

// CouponModel is the GORM model for the coupons table.
type CouponModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Description  string    `gorm:"type:text"`
	DiscountType string    `gorm:"type:varchar(20);not null"`
	Value        int64     `gorm:"not null"`
	MinAmount    int64     `gorm:"not null;default:0"`
	MaxDiscount  int64     `gorm:"not null;default:0"`
	UsageLimit   int       `gorm:"not null;default:0"`
	UsedCount    int       `gorm:"not null;default:0"`
	ValidFrom    time.Time `gorm:"type:timestamptz;not null"`
	ValidUntil   time.Time `gorm:"type:timestamptz;not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt    time.Time `gorm:"type:timestamptz;not null"`
}

// TableName sets the table name.
func (CouponModel) TableName() string { return "coupons" }

// GormCouponRepository implements coupon.Repository using GORM.
type GormCouponRepository struct {
	db *gorm.DB
}

// NewGormCouponRepository creates a new GormCouponRepository.
func NewGormCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// Save persists a new coupon. A duplicate code maps to a conflict.
func (r *GormCouponRepository) Save(ctx context.Context, c *couponDomain.Coupon) error {
	model := toCouponModel(c)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("coupon code already exists")
		}
		return err
	}
	return nil
}

// Update persists changes to a coupon.
func (r *GormCouponRepository) Update(ctx context.Context, c *couponDomain.Coupon) error {
	model := toCouponModel(c)
	return r.db.WithContext(ctx).
		Model(&CouponModel{}).
		Where("id = ?", model.ID).
		Select("Description", "DiscountType", "Value", "MinAmount", "MaxDiscount",
			"UsageLimit", "UsedCount", "ValidFrom", "ValidUntil", "Active", "UpdatedAt").
		Updates(&model).Error
}

// FindByCode returns a coupon by its normalized code.
func (r *GormCouponRepository) FindByCode(ctx context.Context, code string) (*couponDomain.Coupon, error) {
	var model CouponModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Coupon", code)
		}
		return nil, err
	}
	return toCouponDomain(&model), nil
}

// FindByID returns a coupon by ID.
func (r *GormCouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*couponDomain.Coupon, error) {
	var model CouponModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Coupon", id.String())
		}
		return nil, err
	}
	return toCouponDomain(&model), nil
}

// List returns all coupons, newest first (admin).
func (r *GormCouponRepository) List(ctx context.Context) ([]*couponDomain.Coupon, error) {
	var models []CouponModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	coupons := make([]*couponDomain.Coupon, len(models))
	for i := range models {
		coupons[i] = toCouponDomain(&models[i])
	}
	return coupons, nil
}

func toCouponModel(c *couponDomain.Coupon) CouponModel {
	return CouponModel{
		ID:           c.ID(),
		Code:         c.Code(),
		Description:  c.Description(),
		DiscountType: string(c.DiscountType()),
		Value:        c.Value(),
		MinAmount:    c.MinAmount(),
		MaxDiscount:  c.MaxDiscount(),
		UsageLimit:   c.UsageLimit(),
		UsedCount:    c.UsedCount(),
		ValidFrom:    c.ValidFrom(),
		ValidUntil:   c.ValidUntil(),
		Active:       c.Active(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func toCouponDomain(m *CouponModel) *couponDomain.Coupon {
	return couponDomain.Reconstruct(
		m.ID, m.Code, m.Description,
		couponDomain.DiscountType(m.DiscountType),
		m.Value, m.MinAmount, m.MaxDiscount,
		m.UsageLimit, m.UsedCount,
		m.ValidFrom, m.ValidUntil, m.Active,
		m.CreatedAt, m.UpdatedAt,
	)
}
