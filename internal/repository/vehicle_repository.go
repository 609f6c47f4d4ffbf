package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	vehicleDomain "github.com/ridehub/service-rental/internal/domain/vehicle"
	"github.com/ridehub/service-rental/pkg/domain"
)

// isUniqueViolation reports whether an error came from a unique
// constraint. GORM surfaces driver errors verbatim, so we match text.
func isUniqueViolation(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "unique constraint"))
}

// VehicleModel is the GORM model for the vehicles table.
type VehicleModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug         string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	Category     string    `gorm:"type:varchar(10);not null;index"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Description  string    `gorm:"type:text"`
	Brand        string    `gorm:"type:varchar(60);index"`
	Model        string    `gorm:"type:varchar(60)"`
	Year         int       `gorm:"not null"`
	PricePerDay  int64     `gorm:"not null"`
	FuelType     string    `gorm:"type:varchar(20)"`
	Transmission string    `gorm:"type:varchar(20)"`
	Seats        int       `gorm:"default:0"`
	Color        string    `gorm:"type:varchar(30)"`
	Images       []string  `gorm:"serializer:json;type:jsonb"`
	Available    bool      `gorm:"not null;default:true"`
	Featured     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt    time.Time `gorm:"type:timestamptz;not null"`
}

// TableName sets the table name.
func (VehicleModel) TableName() string { return "vehicles" }

// GormVehicleRepository implements vehicle.Repository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Save persists a new vehicle.
func (r *GormVehicleRepository) Save(ctx context.Context, v *vehicleDomain.Vehicle) error {
	model := toVehicleModel(v)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError("a vehicle with this name already exists")
		}
		return err
	}
	return nil
}

// Update persists changes to a vehicle. Boolean flags are written
// explicitly so toggling availability off actually persists.
func (r *GormVehicleRepository) Update(ctx context.Context, v *vehicleDomain.Vehicle) error {
	model := toVehicleModel(v)
	return r.db.WithContext(ctx).
		Model(&VehicleModel{}).
		Where("id = ?", model.ID).
		Select("Slug", "Category", "Name", "Description", "Brand", "Model", "Year",
			"PricePerDay", "FuelType", "Transmission", "Seats", "Color", "Images",
			"Available", "Featured", "UpdatedAt").
		Updates(&model).Error
}

// Delete removes a vehicle.
func (r *GormVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&VehicleModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Vehicle", id.String())
	}
	return nil
}

// FindByID returns a vehicle by ID.
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicleDomain.Vehicle, error) {
	var model VehicleModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Vehicle", id.String())
		}
		return nil, err
	}
	return toVehicleDomain(&model), nil
}

// FindBySlug returns a vehicle by its catalog slug.
func (r *GormVehicleRepository) FindBySlug(ctx context.Context, slug string) (*vehicleDomain.Vehicle, error) {
	var model VehicleModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Vehicle", slug)
		}
		return nil, err
	}
	return toVehicleDomain(&model), nil
}

// List returns vehicles matching the filter plus the total count.
func (r *GormVehicleRepository) List(ctx context.Context, filter vehicleDomain.Filter) ([]*vehicleDomain.Vehicle, int64, error) {
	q := r.db.WithContext(ctx).Model(&VehicleModel{})

	if filter.Category != "" {
		q = q.Where("category = ?", string(filter.Category))
	}
	if filter.Brand != "" {
		q = q.Where("brand = ?", filter.Brand)
	}
	if filter.MinPrice > 0 {
		q = q.Where("price_per_day >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("price_per_day <= ?", filter.MaxPrice)
	}
	if filter.OnlyAvailable {
		q = q.Where("available = ?", true)
	}
	if filter.OnlyFeatured {
		q = q.Where("featured = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var models []VehicleModel
	if err := q.Order("featured DESC, created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}

	vehicles := make([]*vehicleDomain.Vehicle, len(models))
	for i := range models {
		vehicles[i] = toVehicleDomain(&models[i])
	}
	return vehicles, total, nil
}

func toVehicleModel(v *vehicleDomain.Vehicle) VehicleModel {
	d := v.Details()
	return VehicleModel{
		ID:           v.ID(),
		Slug:         v.Slug(),
		Category:     string(v.Category()),
		Name:         d.Name,
		Description:  d.Description,
		Brand:        d.Brand,
		Model:        d.Model,
		Year:         d.Year,
		PricePerDay:  d.PricePerDay,
		FuelType:     d.FuelType,
		Transmission: d.Transmission,
		Seats:        d.Seats,
		Color:        d.Color,
		Images:       d.Images,
		Available:    v.Available(),
		Featured:     v.Featured(),
		CreatedAt:    v.CreatedAt(),
		UpdatedAt:    v.UpdatedAt(),
	}
}

func toVehicleDomain(m *VehicleModel) *vehicleDomain.Vehicle {
	return vehicleDomain.Reconstruct(
		m.ID,
		m.Slug,
		vehicleDomain.Category(m.Category),
		vehicleDomain.Details{
			Name:         m.Name,
			Description:  m.Description,
			Brand:        m.Brand,
			Model:        m.Model,
			Year:         m.Year,
			PricePerDay:  m.PricePerDay,
			FuelType:     m.FuelType,
			Transmission: m.Transmission,
			Seats:        m.Seats,
			Color:        m.Color,
			Images:       m.Images,
		},
		m.Available,
		m.Featured,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
