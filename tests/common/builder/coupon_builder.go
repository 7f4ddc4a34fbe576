//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "closet-by-era/internal/domain/coupon"
	reqdto "closet-by-era/internal/handler/dto/request"
	"closet-by-era/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID             uuid.UUID
	Code           string
	DiscountType   string
	DiscountValue  float64
	MinOrderAmount float64
	MaxUses        *int32
	UsesCount      int32
	EndsAt         *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:             uuid.New(),
		Code:           "SAVE10",
		DiscountType:   "percentage",
		DiscountValue:  10,
		MinOrderAmount: 0,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(b.ID, b.Code, b.DiscountType, b.DiscountValue, b.MinOrderAmount, b.MaxUses, b.EndsAt, b.IsActive)
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	isActive := b.IsActive
	return reqdto.CreateCouponRequest{
		Code:           b.Code,
		DiscountType:   b.DiscountType,
		DiscountValue:  b.DiscountValue,
		MinOrderAmount: b.MinOrderAmount,
		MaxUses:        b.MaxUses,
		EndsAt:         b.EndsAt,
		IsActive:       &isActive,
	}
}

func (b *CouponBuilder) BuildUpdateRequestDTO() reqdto.UpdateCouponRequest {
	return reqdto.UpdateCouponRequest{
		DiscountType:   b.DiscountType,
		DiscountValue:  b.DiscountValue,
		MinOrderAmount: b.MinOrderAmount,
		MaxUses:        b.MaxUses,
		EndsAt:         b.EndsAt,
		IsActive:       b.IsActive,
	}
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		ID:             b.ID,
		Code:           b.Code,
		DiscountType:   b.DiscountType,
		DiscountValue:  b.DiscountValue,
		MinOrderAmount: b.MinOrderAmount,
		MaxUses:        b.MaxUses,
		UsesCount:      b.UsesCount,
		EndsAt:         b.EndsAt,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithDiscount(discountType string, value float64) *CouponBuilder {
	b.DiscountType = discountType
	b.DiscountValue = value
	return b
}

func (b *CouponBuilder) WithMinOrderAmount(amount float64) *CouponBuilder {
	b.MinOrderAmount = amount
	return b
}

func (b *CouponBuilder) WithMaxUses(maxUses int32) *CouponBuilder {
	b.MaxUses = &maxUses
	return b
}

func (b *CouponBuilder) WithUsesCount(usesCount int32) *CouponBuilder {
	b.UsesCount = usesCount
	return b
}

func (b *CouponBuilder) WithEndsAt(endsAt time.Time) *CouponBuilder {
	b.EndsAt = &endsAt
	return b
}

func (b *CouponBuilder) Inactive() *CouponBuilder {
	b.IsActive = false
	return b
}

func (b *CouponBuilder) Expired() *CouponBuilder {
	past := time.Now().Add(-24 * time.Hour)
	b.EndsAt = &past
	return b
}

func (b *CouponBuilder) UsedUp() *CouponBuilder {
	maxUses := int32(3)
	b.MaxUses = &maxUses
	b.UsesCount = 3
	return b
}
