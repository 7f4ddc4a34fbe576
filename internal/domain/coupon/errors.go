package coupon

import "fmt"

// Reason identifies why a coupon was rejected or why a create/update was
// refused. Reasons are stable API vocabulary: the admin console and the
// storefront both branch on them.
type Reason string

const (
	// Redemption rejections, in the order Validate checks them.
	ReasonInvalidCode       Reason = "INVALID_CODE"
	ReasonExpired           Reason = "EXPIRED"
	ReasonUsageLimitReached Reason = "USAGE_LIMIT_REACHED"
	ReasonBelowMinimum      Reason = "BELOW_MINIMUM"

	// Create/update validation failures.
	ReasonInvalidValue   Reason = "INVALID_VALUE"
	ReasonInvalidMinimum Reason = "INVALID_MINIMUM"
	ReasonDuplicateCode  Reason = "DUPLICATE_CODE"
)

// RejectionError is an expected, user-facing condition: the message is
// suitable for direct display and must not leak storage internals.
type RejectionError struct {
	Reason  Reason
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

func NewRejectionError(reason Reason, format string, args ...any) *RejectionError {
	return &RejectionError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ValidationError reports an invalid coupon definition on create/update.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(reason Reason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
