package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingDomain "github.com/ridehub/service-rental/internal/domain/booking"
	vehicleDomain "github.com/ridehub/service-rental/internal/domain/vehicle"
	"github.com/ridehub/service-rental/pkg/domain"
)

// SaveVehicleRequest holds data to create or update a vehicle (admin).
type SaveVehicleRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Category     string   `json:"category" binding:"required"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         int      `json:"year" binding:"required"`
	PricePerDay  int64    `json:"price_per_day" binding:"required,gt=0"`
	FuelType     string   `json:"fuel_type"`
	Transmission string   `json:"transmission"`
	Seats        int      `json:"seats"`
	Color        string   `json:"color"`
	Images       []string `json:"images"`
	Featured     bool     `json:"featured"`
}

// ListVehiclesRequest carries the public catalog filters.
type ListVehiclesRequest struct {
	Category      string `form:"category"`
	Brand         string `form:"brand"`
	MinPrice      int64  `form:"min_price"`
	MaxPrice      int64  `form:"max_price"`
	OnlyAvailable bool   `form:"available"`
	OnlyFeatured  bool   `form:"featured"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

// VehicleDTO is the API response representation of a vehicle.
type VehicleDTO struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	Brand        string    `json:"brand,omitempty"`
	Model        string    `json:"model,omitempty"`
	Year         int       `json:"year"`
	PricePerDay  int64     `json:"price_per_day"`
	FuelType     string    `json:"fuel_type,omitempty"`
	Transmission string    `json:"transmission,omitempty"`
	Seats        int       `json:"seats,omitempty"`
	Color        string    `json:"color,omitempty"`
	Images       []string  `json:"images"`
	Available    bool      `json:"available"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VehicleService handles the vehicle catalog use cases.
type VehicleService struct {
	vehicles vehicleDomain.Repository
	bookings bookingDomain.Repository
	logger   *zap.Logger
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(vehicles vehicleDomain.Repository, bookings bookingDomain.Repository, logger *zap.Logger) *VehicleService {
	return &VehicleService{vehicles: vehicles, bookings: bookings, logger: logger}
}

// List returns the catalog filtered and paginated.
func (s *VehicleService) List(ctx context.Context, req ListVehiclesRequest) ([]VehicleDTO, int64, error) {
	filter := vehicleDomain.Filter{
		Category:      vehicleDomain.Category(req.Category),
		Brand:         req.Brand,
		MinPrice:      req.MinPrice,
		MaxPrice:      req.MaxPrice,
		OnlyAvailable: req.OnlyAvailable,
		OnlyFeatured:  req.OnlyFeatured,
		Page:          req.Page,
		Limit:         req.Limit,
	}

	vehicles, total, err := s.vehicles.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]VehicleDTO, len(vehicles))
	for i, v := range vehicles {
		dtos[i] = toVehicleDTO(v)
	}
	return dtos, total, nil
}

// GetBySlug returns one vehicle from its catalog slug.
func (s *VehicleService) GetBySlug(ctx context.Context, slug string) (*VehicleDTO, error) {
	v, err := s.vehicles.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	dto := toVehicleDTO(v)
	return &dto, nil
}

// Create adds a vehicle to the catalog (admin only).
func (s *VehicleService) Create(ctx context.Context, req SaveVehicleRequest) (*VehicleDTO, error) {
	v, err := vehicleDomain.NewVehicle(vehicleDomain.Category(req.Category), toDetails(req), req.Featured)
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	if err := s.vehicles.Save(ctx, v); err != nil {
		return nil, err
	}

	s.logger.Info("vehicle created",
		zap.String("slug", v.Slug()),
		zap.String("category", string(v.Category())),
	)
	dto := toVehicleDTO(v)
	return &dto, nil
}

// Update replaces a vehicle's descriptive attributes (admin only).
func (s *VehicleService) Update(ctx context.Context, vehicleID uuid.UUID, req SaveVehicleRequest) (*VehicleDTO, error) {
	v, err := s.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := v.UpdateDetails(toDetails(req)); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	v.SetFeatured(req.Featured)

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}

	dto := toVehicleDTO(v)
	return &dto, nil
}

// SetAvailability toggles whether a vehicle can be booked (admin only).
func (s *VehicleService) SetAvailability(ctx context.Context, vehicleID uuid.UUID, available bool) (*VehicleDTO, error) {
	v, err := s.vehicles.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	v.SetAvailability(available)
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}

	dto := toVehicleDTO(v)
	return &dto, nil
}

// Delete removes a vehicle from the catalog (admin only). Vehicles
// with active bookings cannot be deleted.
func (s *VehicleService) Delete(ctx context.Context, vehicleID uuid.UUID) error {
	active, err := s.bookings.CountActiveByVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}
	if active > 0 {
		return domain.NewConflictError("vehicle has active bookings")
	}

	if err := s.vehicles.Delete(ctx, vehicleID); err != nil {
		return err
	}

	s.logger.Info("vehicle deleted", zap.String("vehicle_id", vehicleID.String()))
	return nil
}

func toDetails(req SaveVehicleRequest) vehicleDomain.Details {
	return vehicleDomain.Details{
		Name:         req.Name,
		Description:  req.Description,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		PricePerDay:  req.PricePerDay,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Seats:        req.Seats,
		Color:        req.Color,
		Images:       req.Images,
	}
}

// toVehicleDTO maps a domain Vehicle to its API representation.
func toVehicleDTO(v *vehicleDomain.Vehicle) VehicleDTO {
	d := v.Details()
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return VehicleDTO{
		ID:           v.ID(),
		Slug:         v.Slug(),
		Name:         d.Name,
		Description:  d.Description,
		Category:     string(v.Category()),
		Brand:        d.Brand,
		Model:        d.Model,
		Year:         d.Year,
		PricePerDay:  d.PricePerDay,
		FuelType:     d.FuelType,
		Transmission: d.Transmission,
		Seats:        d.Seats,
		Color:        d.Color,
		Images:       images,
		Available:    v.Available(),
		Featured:     v.Featured(),
		CreatedAt:    v.CreatedAt(),
		UpdatedAt:    v.UpdatedAt(),
	}
}
