package request

import "time"

// ApplyCouponRequest is the storefront validation payload. CartTotal is
// bound without "required" so a zero-value cart is accepted.
type ApplyCouponRequest struct {
	Code      string  `json:"code" binding:"required"`
	CartTotal float64 `json:"cart_total" binding:"gte=0"`
}

type RedeemCouponRequest struct {
	Code      string  `json:"code" binding:"required"`
	CartTotal float64 `json:"cart_total" binding:"gte=0"`
}

type CreateCouponRequest struct {
	Code           string     `json:"code" binding:"required"`
	DiscountType   string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue  float64    `json:"discount_value" binding:"required,gt=0"`
	MinOrderAmount float64    `json:"min_order_amount" binding:"gte=0"`
	MaxUses        *int32     `json:"max_uses,omitempty" binding:"omitempty,gt=0"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	IsActive       *bool      `json:"is_active,omitempty"`
}

// Active reports the requested active flag, defaulting to true when the
// field is omitted.
func (r *CreateCouponRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

type UpdateCouponRequest struct {
	DiscountType   string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue  float64    `json:"discount_value" binding:"required,gt=0"`
	MinOrderAmount float64    `json:"min_order_amount" binding:"gte=0"`
	MaxUses        *int32     `json:"max_uses,omitempty" binding:"omitempty,gt=0"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	IsActive       bool       `json:"is_active"`
}
