package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestQuote_WholeDays(t *testing.T) {
	days, subtotal, err := Quote(date("2026-07-01"), date("2026-07-04"), 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(3), days)
	assert.Equal(t, int64(6000), subtotal)
}

func TestQuote_PartialDayRoundsUp(t *testing.T) {
	start := date("2026-07-01")
	end := start.Add(26 * time.Hour)

	days, subtotal, err := Quote(start, end, 1500)
	require.NoError(t, err)
	assert.Equal(t, int64(2), days)
	assert.Equal(t, int64(3000), subtotal)
}

func TestQuote_SubDayCountsAsOne(t *testing.T) {
	start := date("2026-07-01")
	end := start.Add(6 * time.Hour)

	days, subtotal, err := Quote(start, end, 800)
	require.NoError(t, err)
	assert.Equal(t, int64(1), days)
	assert.Equal(t, int64(800), subtotal)
}

func TestQuote_EndNotAfterStart(t *testing.T) {
	_, _, err := Quote(date("2026-07-04"), date("2026-07-01"), 2000)
	assert.Error(t, err)

	_, _, err = Quote(date("2026-07-01"), date("2026-07-01"), 2000)
	assert.Error(t, err)
}

func TestQuote_NonPositivePrice(t *testing.T) {
	_, _, err := Quote(date("2026-07-01"), date("2026-07-04"), 0)
	assert.Error(t, err)

	_, _, err = Quote(date("2026-07-01"), date("2026-07-04"), -100)
	assert.Error(t, err)
}
