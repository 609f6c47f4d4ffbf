package coupon

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiscountType represents how a coupon's value is applied.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "PERCENTAGE"
	DiscountTypeFixed      DiscountType = "FIXED"
)

// Evaluation failures. Callers treat all of these as "coupon does not
// apply" rather than surfacing an error to the renter.
var (
	ErrInactive    = errors.New("coupon is not active")
	ErrNotInWindow = errors.New("coupon is outside its validity window")
	ErrExhausted   = errors.New("coupon usage limit reached")
	ErrMinAmount   = errors.New("subtotal below coupon minimum amount")
)

// Coupon is the aggregate root for discount codes.
type Coupon struct {
	id           uuid.UUID
	code         string
	description  string
	discountType DiscountType
	value        int64 // percentage (1-100) or fixed amount in rupees
	minAmount    int64 // 0 means no minimum
	maxDiscount  int64 // 0 means no cap; only applies to PERCENTAGE
	usageLimit   int   // 0 means unlimited
	usedCount    int
	validFrom    time.Time
	validUntil   time.Time
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NormalizeCode upper-cases and trims a coupon code. Lookups are
// case-insensitive across the service.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewCoupon creates an active coupon.
func NewCoupon(code, description string, discountType DiscountType, value, minAmount, maxDiscount int64, usageLimit int, validFrom, validUntil time.Time) (*Coupon, error) {
	code = NormalizeCode(code)
	if len(code) < 3 {
		return nil, fmt.Errorf("coupon code must be at least 3 characters")
	}
	if discountType != DiscountTypePercentage && discountType != DiscountTypeFixed {
		return nil, fmt.Errorf("invalid discount type: %s", discountType)
	}
	if value <= 0 {
		return nil, fmt.Errorf("discount value must be positive")
	}
	if discountType == DiscountTypePercentage && value > 100 {
		return nil, fmt.Errorf("percentage discount cannot exceed 100")
	}
	if !validUntil.After(validFrom) {
		return nil, fmt.Errorf("valid_until must be after valid_from")
	}
	if minAmount < 0 || maxDiscount < 0 || usageLimit < 0 {
		return nil, fmt.Errorf("amounts and usage limit cannot be negative")
	}

	now := time.Now().UTC()
	return &Coupon{
		id:           uuid.New(),
		code:         code,
		description:  description,
		discountType: discountType,
		value:        value,
		minAmount:    minAmount,
		maxDiscount:  maxDiscount,
		usageLimit:   usageLimit,
		validFrom:    validFrom,
		validUntil:   validUntil,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a Coupon from persistence.
func Reconstruct(id uuid.UUID, code, description string, discountType DiscountType, value, minAmount, maxDiscount int64, usageLimit, usedCount int, validFrom, validUntil time.Time, active bool, createdAt, updatedAt time.Time) *Coupon {
	return &Coupon{
		id: id, code: code, description: description, discountType: discountType,
		value: value, minAmount: minAmount, maxDiscount: maxDiscount,
		usageLimit: usageLimit, usedCount: usedCount,
		validFrom: validFrom, validUntil: validUntil, active: active,
		createdAt: createdAt, updatedAt: updatedAt,
	}
}

// Evaluate runs the applicability checks in order and returns the
// discount for the subtotal. PERCENTAGE discounts are capped at
// maxDiscount when set; FIXED discounts apply verbatim. Either way the
// discount never exceeds the subtotal.
func (c *Coupon) Evaluate(now time.Time, subtotal int64) (int64, error) {
	if !c.active {
		return 0, ErrInactive
	}
	if now.Before(c.validFrom) || now.After(c.validUntil) {
		return 0, ErrNotInWindow
	}
	if c.usageLimit > 0 && c.usedCount >= c.usageLimit {
		return 0, ErrExhausted
	}
	if c.minAmount > 0 && subtotal < c.minAmount {
		return 0, ErrMinAmount
	}

	var discount int64
	switch c.discountType {
	case DiscountTypePercentage:
		discount = subtotal * c.value / 100
		if c.maxDiscount > 0 && discount > c.maxDiscount {
			discount = c.maxDiscount
		}
	case DiscountTypeFixed:
		discount = c.value
	}

	if discount > subtotal {
		discount = subtotal
	}
	return discount, nil
}

// IncrementUsage records one successful application.
func (c *Coupon) IncrementUsage() {
	c.usedCount++
	c.updatedAt = time.Now().UTC()
}

// Activate enables the coupon.
func (c *Coupon) Activate() {
	c.active = true
	c.updatedAt = time.Now().UTC()
}

// Deactivate disables the coupon without deleting usage history.
func (c *Coupon) Deactivate() {
	c.active = false
	c.updatedAt = time.Now().UTC()
}

// Getters.
func (c *Coupon) ID() uuid.UUID              { return c.id }
func (c *Coupon) Code() string               { return c.code }
func (c *Coupon) Description() string        { return c.description }
func (c *Coupon) DiscountType() DiscountType { return c.discountType }
func (c *Coupon) Value() int64               { return c.value }
func (c *Coupon) MinAmount() int64           { return c.minAmount }
func (c *Coupon) MaxDiscount() int64         { return c.maxDiscount }
func (c *Coupon) UsageLimit() int            { return c.usageLimit }
func (c *Coupon) UsedCount() int             { return c.usedCount }
func (c *Coupon) ValidFrom() time.Time       { return c.validFrom }
func (c *Coupon) ValidUntil() time.Time      { return c.validUntil }
func (c *Coupon) Active() bool               { return c.active }
func (c *Coupon) CreatedAt() time.Time       { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time       { return c.updatedAt }
