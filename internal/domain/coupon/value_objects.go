package coupon

import (
	"regexp"
	"strconv"
	"strings"
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is a coupon code, always stored upper-cased. Lookups are
// case-insensitive, so "save10" and "SAVE10" name the same coupon.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), NewValidationError(ReasonInvalidCode, "coupon code must be 3-20 letters or digits")
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func NewDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercentage, DiscountFixed:
		return DiscountType(s), nil
	default:
		return "", NewValidationError(ReasonInvalidValue, "discount type must be percentage or fixed")
	}
}

func (t DiscountType) String() string {
	return string(t)
}

// Discount pairs a discount type with its value. Percentage values are
// interpreted as 0-100.
type Discount struct {
	kind  DiscountType
	value float64
}

func NewDiscount(kind DiscountType, value float64) (Discount, error) {
	if value <= 0 {
		return Discount{}, NewValidationError(ReasonInvalidValue, "discount value must be positive")
	}
	if kind == DiscountPercentage && value > 100 {
		return Discount{}, NewValidationError(ReasonInvalidValue, "percentage discount cannot exceed 100")
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Type() DiscountType { return d.kind }
func (d Discount) Value() float64     { return d.value }

// AmountFor computes the discount for a cart subtotal. A fixed discount
// never exceeds the subtotal itself.
func (d Discount) AmountFor(cartTotal float64) float64 {
	if d.kind == DiscountPercentage {
		return cartTotal * d.value / 100.0
	}
	if d.value > cartTotal {
		return cartTotal
	}
	return d.value
}

// FormatAmount renders a monetary amount the way user-facing rejection
// messages expect: no trailing zeros, no currency symbol.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
