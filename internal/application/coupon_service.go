package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	couponDomain "github.com/ridehub/service-rental/internal/domain/coupon"
	"github.com/ridehub/service-rental/pkg/domain"
)

// CreateCouponRequest holds data to create a coupon.
type CreateCouponRequest struct {
	Code         string `json:"code" binding:"required"`
	Description  string `json:"description"`
	DiscountType string `json:"discount_type" binding:"required"`
	Value        int64  `json:"value" binding:"required"`
	MinAmount    int64  `json:"min_amount"`
	MaxDiscount  int64  `json:"max_discount"`
	UsageLimit   int    `json:"usage_limit"`
	ValidFrom    string `json:"valid_from" binding:"required"`
	ValidUntil   string `json:"valid_until" binding:"required"`
}

// ValidateCouponRequest holds data to validate a coupon against an amount.
type ValidateCouponRequest struct {
	Code   string `json:"code" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// CouponDTO is the API response representation of a coupon.
type CouponDTO struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Description  string    `json:"description,omitempty"`
	DiscountType string    `json:"discount_type"`
	Value        int64     `json:"value"`
	MinAmount    int64     `json:"min_amount"`
	MaxDiscount  int64     `json:"max_discount"`
	UsageLimit   int       `json:"usage_limit"`
	UsedCount    int       `json:"used_count"`
	ValidFrom    time.Time `json:"valid_from"`
	ValidUntil   time.Time `json:"valid_until"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// CouponValidationDTO is the result of validating a coupon code.
type CouponValidationDTO struct {
	Valid    bool   `json:"valid"`
	Code     string `json:"code"`
	Discount int64  `json:"discount"`
	Message  string `json:"message,omitempty"`
}

// CouponService handles coupon use cases.
type CouponService struct {
	repo   couponDomain.Repository
	logger *zap.Logger
}

// NewCouponService creates a new CouponService.
func NewCouponService(repo couponDomain.Repository, logger *zap.Logger) *CouponService {
	return &CouponService{repo: repo, logger: logger}
}

// Create creates a new coupon (admin only).
func (s *CouponService) Create(ctx context.Context, req CreateCouponRequest) (*CouponDTO, error) {
	validFrom, err := time.Parse(time.RFC3339, req.ValidFrom)
	if err != nil {
		return nil, domain.NewValidationError("invalid valid_from format (use RFC3339)")
	}
	validUntil, err := time.Parse(time.RFC3339, req.ValidUntil)
	if err != nil {
		return nil, domain.NewValidationError("invalid valid_until format (use RFC3339)")
	}

	c, err := couponDomain.NewCoupon(
		req.Code,
		req.Description,
		couponDomain.DiscountType(req.DiscountType),
		req.Value,
		req.MinAmount,
		req.MaxDiscount,
		req.UsageLimit,
		validFrom,
		validUntil,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("coupon created", zap.String("code", c.Code()))
	dto := toCouponDTO(c)
	return &dto, nil
}

// List returns all coupons (admin only).
func (s *CouponService) List(ctx context.Context) ([]CouponDTO, error) {
	coupons, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]CouponDTO, len(coupons))
	for i, c := range coupons {
		dtos[i] = toCouponDTO(c)
	}
	return dtos, nil
}

// SetActive toggles a coupon's active flag (admin only).
func (s *CouponService) SetActive(ctx context.Context, couponID uuid.UUID, active bool) (*CouponDTO, error) {
	c, err := s.repo.FindByID(ctx, couponID)
	if err != nil {
		return nil, err
	}

	if active {
		c.Activate()
	} else {
		c.Deactivate()
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("coupon active flag updated",
		zap.String("code", c.Code()),
		zap.Bool("active", active),
	)
	dto := toCouponDTO(c)
	return &dto, nil
}

// Validate checks whether a coupon applies to an amount. Invalid
// coupons yield Valid=false with a message rather than an error.
func (s *CouponService) Validate(ctx context.Context, req ValidateCouponRequest) (*CouponValidationDTO, error) {
	code := couponDomain.NormalizeCode(req.Code)

	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return &CouponValidationDTO{Valid: false, Code: code, Message: "coupon not found"}, nil
	}

	discount, err := c.Evaluate(time.Now().UTC(), req.Amount)
	if err != nil {
		return &CouponValidationDTO{Valid: false, Code: code, Message: err.Error()}, nil
	}

	return &CouponValidationDTO{
		Valid:    true,
		Code:     c.Code(),
		Discount: discount,
	}, nil
}

// toCouponDTO maps a domain Coupon to its API representation.
func toCouponDTO(c *couponDomain.Coupon) CouponDTO {
	return CouponDTO{
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
	}
}
