package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"closet-by-era/internal/usecase/queries"
)

type CustomerRFMResponse struct {
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

type SegmentSummaryResponse struct {
	Segment      string  `json:"segment"`
	Count        int     `json:"count"`
	AvgMonetary  float64 `json:"avg_monetary"`
	AvgFrequency float64 `json:"avg_frequency"`
}

type SegmentReportResponse struct {
	Customers   []CustomerRFMResponse    `json:"customers"`
	Segments    []SegmentSummaryResponse `json:"segments"`
	GeneratedAt time.Time                `json:"generated_at"`
}

func FromSegmentReport(report *queries.SegmentReport) *SegmentReportResponse {
	var resp SegmentReportResponse
	_ = copier.Copy(&resp, report)
	return &resp
}
