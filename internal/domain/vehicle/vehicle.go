package vehicle

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category distinguishes the two rental fleets.
type Category string

const (
	CategoryCar  Category = "CAR"
	CategoryBike Category = "BIKE"
)

var slugSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a vehicle name.
func Slugify(name string) string {
	slug := slugSanitizer.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// Details are the descriptive, admin-editable vehicle attributes.
type Details struct {
	Name         string
	Description  string
	Brand        string
	Model        string
	Year         int
	PricePerDay  int64
	FuelType     string
	Transmission string
	Seats        int
	Color        string
	Images       []string
}

// Vehicle is the aggregate root for a rentable vehicle. It is mutated
// only through admin operations; the booking flow reads it.
type Vehicle struct {
	id        uuid.UUID
	slug      string
	category  Category
	details   Details
	available bool
	featured  bool
	createdAt time.Time
	updatedAt time.Time
}

// NewVehicle creates an available vehicle with a slug derived from its name.
func NewVehicle(category Category, details Details, featured bool) (*Vehicle, error) {
	if category != CategoryCar && category != CategoryBike {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Vehicle{
		id:        uuid.New(),
		slug:      Slugify(details.Name),
		category:  category,
		details:   details,
		available: true,
		featured:  featured,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func validateDetails(d Details) error {
	if len(strings.TrimSpace(d.Name)) < 3 {
		return fmt.Errorf("vehicle name must be at least 3 characters")
	}
	if d.PricePerDay <= 0 {
		return fmt.Errorf("price per day must be positive")
	}
	if d.Year < 2000 || d.Year > time.Now().UTC().Year()+1 {
		return fmt.Errorf("year out of range")
	}
	return nil
}

// Reconstruct rebuilds a Vehicle from persistence.
func Reconstruct(id uuid.UUID, slug string, category Category, details Details, available, featured bool, createdAt, updatedAt time.Time) *Vehicle {
	return &Vehicle{
		id: id, slug: slug, category: category, details: details,
		available: available, featured: featured,
		createdAt: createdAt, updatedAt: updatedAt,
	}
}

// UpdateDetails replaces the descriptive attributes. The slug follows
// the name so catalog URLs stay readable.
func (v *Vehicle) UpdateDetails(details Details) error {
	if err := validateDetails(details); err != nil {
		return err
	}
	v.details = details
	v.slug = Slugify(details.Name)
	v.updatedAt = time.Now().UTC()
	return nil
}

// SetAvailability toggles whether the vehicle can be booked.
func (v *Vehicle) SetAvailability(available bool) {
	v.available = available
	v.updatedAt = time.Now().UTC()
}

// SetFeatured toggles homepage promotion.
func (v *Vehicle) SetFeatured(featured bool) {
	v.featured = featured
	v.updatedAt = time.Now().UTC()
}

// Getters.
func (v *Vehicle) ID() uuid.UUID        { return v.id }
func (v *Vehicle) Slug() string         { return v.slug }
func (v *Vehicle) Category() Category   { return v.category }
func (v *Vehicle) Details() Details     { return v.details }
func (v *Vehicle) Name() string         { return v.details.Name }
func (v *Vehicle) PricePerDay() int64   { return v.details.PricePerDay }
func (v *Vehicle) Available() bool      { return v.available }
func (v *Vehicle) Featured() bool       { return v.featured }
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time { return v.updatedAt }
