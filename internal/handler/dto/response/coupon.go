package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"closet-by-era/internal/usecase/queries"
)

type CouponResponse struct {
	ID             uuid.UUID  `json:"id"`
	Code           string     `json:"code"`
	DiscountType   string     `json:"discount_type"`
	DiscountValue  float64    `json:"discount_value"`
	MinOrderAmount float64    `json:"min_order_amount"`
	MaxUses        *int32     `json:"max_uses,omitempty"`
	UsesCount      int32      `json:"uses_count"`
	EndsAt         *time.Time `json:"ends_at,omitempty"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ApplyCouponResponse is the storefront validation result. On rejection
// Success is false and Code/Error carry the taxonomy reason and its
// display-ready message.
type ApplyCouponResponse struct {
	Success        bool            `json:"success"`
	Coupon         *CouponResponse `json:"coupon,omitempty"`
	DiscountAmount *float64        `json:"discount_amount,omitempty"`
	Code           string          `json:"code,omitempty"`
	Error          string          `json:"error,omitempty"`
}

type RedeemCouponResponse struct {
	Success        bool            `json:"success"`
	Coupon         *CouponResponse `json:"coupon,omitempty"`
	DiscountAmount *float64        `json:"discount_amount,omitempty"`
	UsesCount      *int32          `json:"uses_count,omitempty"`
	Code           string          `json:"code,omitempty"`
	Error          string          `json:"error,omitempty"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	var resp CouponResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCouponList(items []queries.CouponView) []CouponResponse {
	resps := make([]CouponResponse, 0, len(items))
	for i := range items {
		resps = append(resps, *FromCouponView(&items[i]))
	}
	return resps
}

func CouponApplied(v *queries.CouponView, discountAmount float64) *ApplyCouponResponse {
	return &ApplyCouponResponse{
		Success:        true,
		Coupon:         FromCouponView(v),
		DiscountAmount: &discountAmount,
	}
}

func CouponRejected(code, message string) *ApplyCouponResponse {
	return &ApplyCouponResponse{
		Success: false,
		Code:    code,
		Error:   message,
	}
}

func CouponRedeemed(v *queries.CouponView, discountAmount float64, usesCount int32) *RedeemCouponResponse {
	return &RedeemCouponResponse{
		Success:        true,
		Coupon:         FromCouponView(v),
		DiscountAmount: &discountAmount,
		UsesCount:      &usesCount,
	}
}

func RedeemRejected(code, message string) *RedeemCouponResponse {
	return &RedeemCouponResponse{
		Success: false,
		Code:    code,
		Error:   message,
	}
}
