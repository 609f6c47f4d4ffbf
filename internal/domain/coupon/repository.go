package coupon

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for coupons.
type Repository interface {
	Save(ctx context.Context, c *Coupon) error
	Update(ctx context.Context, c *Coupon) error

	// FindByCode looks up a coupon by its normalized code.
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Coupon, error)

	// List returns all coupons, newest first (admin).
	List(ctx context.Context) ([]*Coupon, error)
}
