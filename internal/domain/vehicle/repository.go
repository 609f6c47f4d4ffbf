package vehicle

import (
	"context"

	"github.com/google/uuid"
)

// Filter narrows catalog listings. Zero values mean "no restriction".
type Filter struct {
	Category      Category
	Brand         string
	MinPrice      int64
	MaxPrice      int64
	OnlyAvailable bool
	OnlyFeatured  bool
	Page          int
	Limit         int
}

// Repository defines persistence operations for vehicles.
type Repository interface {
	Save(ctx context.Context, v *Vehicle) error
	Update(ctx context.Context, v *Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	FindBySlug(ctx context.Context, slug string) (*Vehicle, error)

	// List returns vehicles matching the filter plus the total count.
	List(ctx context.Context, filter Filter) ([]*Vehicle, int64, error)
}
