package queries

import (
	"time"

	"closet-by-era/internal/domain/coupon"
	"closet-by-era/internal/domain/rfm"

	"github.com/google/uuid"
)

// CouponView represents read-optimized coupon data
type CouponView struct {
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

// ToDomain rebuilds the domain aggregate from a persisted view. Rows
// passed create/update validation on the way in, so a failure here
// means corrupted storage.
func (v *CouponView) ToDomain() (*coupon.Coupon, error) {
	kind, err := coupon.NewDiscountType(v.DiscountType)
	if err != nil {
		return nil, err
	}
	discount, err := coupon.NewDiscount(kind, v.DiscountValue)
	if err != nil {
		return nil, err
	}
	return coupon.Reconstruct(
		v.ID,
		coupon.Code(v.Code),
		discount,
		v.MinOrderAmount,
		v.MaxUses,
		v.UsesCount,
		v.EndsAt,
		v.IsActive,
		v.CreatedAt,
		v.UpdatedAt,
	), nil
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// CustomerView is one row of the admin customer table.
type CustomerView struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Email       string     `json:"email"`
	OrderCount  int64      `json:"order_count"`
	TotalSpent  float64    `json:"total_spent"`
	LastOrderAt *time.Time `json:"last_order_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CustomerRFMView is one scored customer in the segmentation report.
type CustomerRFMView struct {
	CustomerID  uuid.UUID `json:"customer_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	RecencyDays int       `json:"recency_days"`
	Frequency   int       `json:"frequency"`
	Monetary    float64   `json:"monetary"`
	RScore      int       `json:"r_score"`
	FScore      int       `json:"f_score"`
	MScore      int       `json:"m_score"`
	Segment     string    `json:"segment"`
}

// SegmentSummaryView is one segment card: always present for all seven
// segments, zero counts included.
type SegmentSummaryView struct {
	Segment      string  `json:"segment"`
	Count        int     `json:"count"`
	AvgMonetary  float64 `json:"avg_monetary"`
	AvgFrequency float64 `json:"avg_frequency"`
}

type SegmentReport struct {
	Customers   []CustomerRFMView    `json:"customers"`
	Segments    []SegmentSummaryView `json:"segments"`
	GeneratedAt time.Time            `json:"generated_at"`
}

func fromCustomerScore(s rfm.CustomerScore) CustomerRFMView {
	return CustomerRFMView{
		CustomerID:  s.CustomerID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		RecencyDays: s.RecencyDays,
		Frequency:   s.Frequency,
		Monetary:    s.Monetary,
		RScore:      s.RScore,
		FScore:      s.FScore,
		MScore:      s.MScore,
		Segment:     s.Segment.String(),
	}
}

func fromSegmentSummary(s rfm.SegmentSummary) SegmentSummaryView {
	return SegmentSummaryView{
		Segment:      s.Segment.String(),
		Count:        s.Count,
		AvgMonetary:  s.AvgMonetary,
		AvgFrequency: s.AvgFrequency,
	}
}
