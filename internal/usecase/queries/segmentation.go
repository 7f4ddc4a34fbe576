package queries

import (
	"context"

	"closet-by-era/internal/domain/rfm"
	"closet-by-era/internal/pkg/clock"
)

// SegmentationQueries produces the RFM customer-segmentation report.
// The report is a pure view recomputed from current order data on every
// request; nothing is persisted.
type SegmentationQueries interface {
	AnalyzeSegments(ctx context.Context) (*SegmentReport, error)
}

type segmentationQueriesImpl struct {
	readStore CustomerReadStore
	clock     clock.Clock
}

func NewSegmentationQueries(readStore CustomerReadStore, clk clock.Clock) SegmentationQueries {
	return &segmentationQueriesImpl{readStore: readStore, clock: clk}
}

func (q *segmentationQueriesImpl) AnalyzeSegments(ctx context.Context) (*SegmentReport, error) {
	histories, err := q.readStore.ListOrderHistories(ctx)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	report := rfm.Analyze(now, histories)

	customers := make([]CustomerRFMView, 0, len(report.Customers))
	for _, s := range report.Customers {
		customers = append(customers, fromCustomerScore(s))
	}
	segments := make([]SegmentSummaryView, 0, len(report.Segments))
	for _, s := range report.Segments {
		segments = append(segments, fromSegmentSummary(s))
	}

	return &SegmentReport{
		Customers:   customers,
		Segments:    segments,
		GeneratedAt: now,
	}, nil
}
