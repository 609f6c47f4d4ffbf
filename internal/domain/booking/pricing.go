package booking

import (
	"math"
	"time"

	"github.com/ridehub/service-rental/pkg/domain"
)

// Quote computes the chargeable day count and subtotal for a rental
// window. The day count is the ceiling of the elapsed time in whole
// days, never less than one. Pure: no clock, no side effects.
func Quote(startDate, endDate time.Time, pricePerDay int64) (days, subtotal int64, err error) {
	if !endDate.After(startDate) {
		return 0, 0, domain.NewValidationError("end date must be after start date")
	}
	if pricePerDay <= 0 {
		return 0, 0, domain.NewValidationError("price per day must be positive")
	}

	days = int64(math.Ceil(endDate.Sub(startDate).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days, days * pricePerDay, nil
}
