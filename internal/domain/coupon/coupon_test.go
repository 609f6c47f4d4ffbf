package coupon

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	windowStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
	inWindow    = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)
)

func percentCoupon(t *testing.T, value, maxDiscount int64) *Coupon {
	t.Helper()
	c, err := NewCoupon("SAVE20", "seasonal promo", DiscountTypePercentage, value, 0, maxDiscount, 0, windowStart, windowEnd)
	require.NoError(t, err)
	return c
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SAVE20", NormalizeCode("  save20 "))
	assert.Equal(t, "WELCOME50", NormalizeCode("welcome50"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestNewCoupon_Validation(t *testing.T) {
	_, err := NewCoupon("AB", "", DiscountTypeFixed, 100, 0, 0, 0, windowStart, windowEnd)
	assert.Error(t, err, "short code")

	_, err = NewCoupon("SAVE", "", DiscountType("BOGUS"), 100, 0, 0, 0, windowStart, windowEnd)
	assert.Error(t, err, "unknown type")

	_, err = NewCoupon("SAVE", "", DiscountTypePercentage, 150, 0, 0, 0, windowStart, windowEnd)
	assert.Error(t, err, "percentage above 100")

	_, err = NewCoupon("SAVE", "", DiscountTypeFixed, 100, 0, 0, 0, windowEnd, windowStart)
	assert.Error(t, err, "inverted window")
}

func TestEvaluate_PercentageWithCap(t *testing.T) {
	c := percentCoupon(t, 20, 500)

	// 20% of 6000 is 1200, capped at 500.
	discount, err := c.Evaluate(inWindow, 6000)
	require.NoError(t, err)
	assert.Equal(t, int64(500), discount)

	// 20% of 2000 is 400, under the cap.
	discount, err = c.Evaluate(inWindow, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(400), discount)
}

func TestEvaluate_PercentageNoCap(t *testing.T) {
	c := percentCoupon(t, 20, 0)

	discount, err := c.Evaluate(inWindow, 6000)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), discount)
}

func TestEvaluate_FixedClampedToSubtotal(t *testing.T) {
	c, err := NewCoupon("FLAT750", "", DiscountTypeFixed, 750, 0, 0, 0, windowStart, windowEnd)
	require.NoError(t, err)

	discount, err := c.Evaluate(inWindow, 6000)
	require.NoError(t, err)
	assert.Equal(t, int64(750), discount)

	// Fixed value above the subtotal clamps to the subtotal.
	discount, err = c.Evaluate(inWindow, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), discount)
}

func TestEvaluate_Inactive(t *testing.T) {
	c := percentCoupon(t, 20, 0)
	c.Deactivate()

	_, err := c.Evaluate(inWindow, 6000)
	assert.ErrorIs(t, err, ErrInactive)

	c.Activate()
	_, err = c.Evaluate(inWindow, 6000)
	assert.NoError(t, err)
}

func TestEvaluate_OutsideWindow(t *testing.T) {
	c := percentCoupon(t, 20, 0)

	_, err := c.Evaluate(windowStart.Add(-time.Hour), 6000)
	assert.ErrorIs(t, err, ErrNotInWindow)

	_, err = c.Evaluate(windowEnd.Add(time.Hour), 6000)
	assert.ErrorIs(t, err, ErrNotInWindow)
}

func TestEvaluate_UsageLimit(t *testing.T) {
	c, err := NewCoupon("WELCOME50", "first ride", DiscountTypeFixed, 50, 0, 0, 1, windowStart, windowEnd)
	require.NoError(t, err)

	discount, err := c.Evaluate(inWindow, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(50), discount)

	c.IncrementUsage()
	_, err = c.Evaluate(inWindow, 1000)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestEvaluate_MinAmount(t *testing.T) {
	c, err := NewCoupon("BIG10", "", DiscountTypePercentage, 10, 5000, 0, 0, windowStart, windowEnd)
	require.NoError(t, err)

	_, err = c.Evaluate(inWindow, 4999)
	assert.ErrorIs(t, err, ErrMinAmount)

	discount, err := c.Evaluate(inWindow, 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(500), discount)
}

func TestEvaluate_CheckOrder(t *testing.T) {
	// An inactive coupon that is also outside its window must report
	// inactive first.
	c := percentCoupon(t, 20, 0)
	c.Deactivate()

	_, err := c.Evaluate(windowEnd.Add(time.Hour), 6000)
	assert.ErrorIs(t, err, ErrInactive)
}
