package coupon

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is the discount-code aggregate. usesCount is only ever mutated
// by the redemption path (storage-side increment) or an explicit admin
// reset; the entity itself never changes it.
type Coupon struct {
	id             uuid.UUID
	code           Code
	discount       Discount
	minOrderAmount float64
	maxUses        *int32
	usesCount      int32
	endsAt         *time.Time
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	discountType string,
	discountValue float64,
	minOrderAmount float64,
	maxUses *int32,
	endsAt *time.Time,
	isActive bool,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	kind, err := NewDiscountType(discountType)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(kind, discountValue)
	if err != nil {
		return nil, err
	}

	if minOrderAmount < 0 {
		return nil, NewValidationError(ReasonInvalidMinimum, "minimum order amount cannot be negative")
	}

	if maxUses != nil && *maxUses <= 0 {
		return nil, NewValidationError(ReasonInvalidValue, "max uses must be positive when set")
	}

	return &Coupon{
		id:             id,
		code:           couponCode,
		discount:       discount,
		minOrderAmount: minOrderAmount,
		maxUses:        maxUses,
		endsAt:         endsAt,
		isActive:       isActive,
	}, nil
}

// Reconstruct rebuilds a coupon from a persisted row. The row has
// already passed create/update validation, so no re-validation happens.
func Reconstruct(
	id uuid.UUID,
	code Code,
	discount Discount,
	minOrderAmount float64,
	maxUses *int32,
	usesCount int32,
	endsAt *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:             id,
		code:           code,
		discount:       discount,
		minOrderAmount: minOrderAmount,
		maxUses:        maxUses,
		usesCount:      usesCount,
		endsAt:         endsAt,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// CheckRedeemable applies the redemption rules in their fixed order:
// active -> expiry -> usage cap -> minimum order. Callers stop at the
// first failure, so reordering would change which message a borderline
// coupon produces.
//
// An inactive coupon reports the same generic reason as a missing one
// to avoid code enumeration.
func (c *Coupon) CheckRedeemable(now time.Time, cartTotal float64) *RejectionError {
	if !c.isActive {
		return NewRejectionError(ReasonInvalidCode, "Invalid coupon code")
	}
	if c.endsAt != nil && now.After(*c.endsAt) {
		return NewRejectionError(ReasonExpired, "Coupon has expired")
	}
	if c.maxUses != nil && c.usesCount >= *c.maxUses {
		return NewRejectionError(ReasonUsageLimitReached, "Coupon usage limit reached")
	}
	if cartTotal < c.minOrderAmount {
		return NewRejectionError(ReasonBelowMinimum, "Minimum order of %s required", FormatAmount(c.minOrderAmount))
	}
	return nil
}

// DiscountAmount computes the discount this coupon grants for a cart
// subtotal. It does not re-check redeemability.
func (c *Coupon) DiscountAmount(cartTotal float64) float64 {
	return c.discount.AmountFor(cartTotal)
}

func (c *Coupon) ID() uuid.UUID           { return c.id }
func (c *Coupon) Code() Code              { return c.code }
func (c *Coupon) Discount() Discount      { return c.discount }
func (c *Coupon) MinOrderAmount() float64 { return c.minOrderAmount }
func (c *Coupon) MaxUses() *int32         { return c.maxUses }
func (c *Coupon) UsesCount() int32        { return c.usesCount }
func (c *Coupon) EndsAt() *time.Time      { return c.endsAt }
func (c *Coupon) IsActive() bool          { return c.isActive }
func (c *Coupon) CreatedAt() time.Time    { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time    { return c.updatedAt }
