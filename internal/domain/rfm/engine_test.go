//go:build unit

package rfm_test

import (
	"math"
	"testing"
	"time"

	"closet-by-era/internal/domain/rfm"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var analysisNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// fixedID returns a UUID whose string form sorts by n, so tie-break
// order in the tests is predictable.
func fixedID(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n
	return id
}

func customerWith(n byte, orders ...rfm.Order) rfm.CustomerOrders {
	return rfm.CustomerOrders{
		CustomerID: fixedID(n),
		FirstName:  "Test",
		LastName:   "Customer",
		Email:      "customer@example.com",
		Orders:     orders,
	}
}

func orderAt(total float64, daysAgo int) rfm.Order {
	return rfm.Order{Total: total, PlacedAt: analysisNow.AddDate(0, 0, -daysAgo)}
}

func scoreByID(t *testing.T, report rfm.Report, id uuid.UUID) rfm.CustomerScore {
	t.Helper()
	for _, s := range report.Customers {
		if s.CustomerID == id {
			return s
		}
	}
	t.Fatalf("customer %s not in report", id)
	return rfm.CustomerScore{}
}

func TestAnalyzeQuintileScores(t *testing.T) {
	t.Run("five distinct monetary totals map onto the five buckets", func(t *testing.T) {
		customers := []rfm.CustomerOrders{
			customerWith(1, orderAt(100, 10)),
			customerWith(2, orderAt(200, 10)),
			customerWith(3, orderAt(300, 10)),
			customerWith(4, orderAt(400, 10)),
			customerWith(5, orderAt(500, 10)),
		}

		report := rfm.Analyze(analysisNow, customers)
		require.Len(t, report.Customers, 5)

		for n := byte(1); n <= 5; n++ {
			s := scoreByID(t, report, fixedID(n))
			assert.Equal(t, int(n), s.MScore, "customer with total %d00", n)
		}
	})

	t.Run("recency scores lower day counts higher", func(t *testing.T) {
		customers := []rfm.CustomerOrders{
			customerWith(1, orderAt(100, 2)),
			customerWith(2, orderAt(100, 30)),
			customerWith(3, orderAt(100, 90)),
			customerWith(4, orderAt(100, 180)),
			customerWith(5, orderAt(100, 365)),
		}

		report := rfm.Analyze(analysisNow, customers)

		assert.Equal(t, 5, scoreByID(t, report, fixedID(1)).RScore)
		assert.Equal(t, 1, scoreByID(t, report, fixedID(5)).RScore)
	})

	t.Run("bucket assignment is independent of input order", func(t *testing.T) {
		forward := []rfm.CustomerOrders{
			customerWith(1, orderAt(100, 10)),
			customerWith(2, orderAt(200, 20)),
			customerWith(3, orderAt(300, 30)),
			customerWith(4, orderAt(400, 40)),
		}
		backward := []rfm.CustomerOrders{forward[3], forward[2], forward[1], forward[0]}

		a := rfm.Analyze(analysisNow, forward)
		b := rfm.Analyze(analysisNow, backward)

		for n := byte(1); n <= 4; n++ {
			sa := scoreByID(t, a, fixedID(n))
			sb := scoreByID(t, b, fixedID(n))
			assert.Equal(t, sa.RScore, sb.RScore)
			assert.Equal(t, sa.FScore, sb.FScore)
			assert.Equal(t, sa.MScore, sb.MScore)
		}
	})

	t.Run("ties on a metric break by customer ID", func(t *testing.T) {
		customers := []rfm.CustomerOrders{
			customerWith(2, orderAt(100, 10)),
			customerWith(1, orderAt(100, 10)),
		}

		first := rfm.Analyze(analysisNow, customers)
		second := rfm.Analyze(analysisNow, []rfm.CustomerOrders{customers[1], customers[0]})

		// Same totals, so the lower ID always lands in the lower bucket.
		assert.Equal(t, scoreByID(t, first, fixedID(1)).MScore, scoreByID(t, second, fixedID(1)).MScore)
		assert.Equal(t, scoreByID(t, first, fixedID(2)).MScore, scoreByID(t, second, fixedID(2)).MScore)
		assert.Less(t,
			scoreByID(t, first, fixedID(1)).MScore,
			scoreByID(t, first, fixedID(2)).MScore)
	})
}

func TestAnalyzeMetrics(t *testing.T) {
	customers := []rfm.CustomerOrders{
		customerWith(1,
			orderAt(100, 40),
			orderAt(250.50, 5),
			orderAt(49.50, 90),
		),
	}

	report := rfm.Analyze(analysisNow, customers)
	s := scoreByID(t, report, fixedID(1))

	assert.Equal(t, 5, s.RecencyDays, "recency counts from the most recent order")
	assert.Equal(t, 3, s.Frequency)
	assert.InDelta(t, 400.0, s.Monetary, 1e-9)
}

func TestAnalyzeClassification(t *testing.T) {
	// Five customers whose metrics all rank in the same order, so the
	// best ranks 5/5/5 and the worst 1/1/1.
	customers := make([]rfm.CustomerOrders, 0, 5)
	for n := byte(1); n <= 5; n++ {
		orders := make([]rfm.Order, 0, n)
		for i := byte(0); i < n; i++ {
			orders = append(orders, orderAt(float64(n)*100, int(6-n)*30))
		}
		customers = append(customers, customerWith(n, orders...))
	}

	report := rfm.Analyze(analysisNow, customers)

	assert.Equal(t, rfm.SegmentChampions, scoreByID(t, report, fixedID(5)).Segment)
	assert.Equal(t, rfm.SegmentLost, scoreByID(t, report, fixedID(1)).Segment)
}

func TestAnalyzeEmptyPopulation(t *testing.T) {
	report := rfm.Analyze(analysisNow, nil)

	assert.Empty(t, report.Customers)

	want := make([]rfm.SegmentSummary, 0, 7)
	for _, seg := range rfm.AllSegments() {
		want = append(want, rfm.SegmentSummary{Segment: seg})
	}
	if diff := cmp.Diff(want, report.Segments); diff != "" {
		t.Errorf("segment summaries mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeExcludesCustomersWithoutOrders(t *testing.T) {
	customers := []rfm.CustomerOrders{
		customerWith(1, orderAt(100, 10)),
		customerWith(2), // no completed orders
	}

	report := rfm.Analyze(analysisNow, customers)

	require.Len(t, report.Customers, 1)
	assert.Equal(t, fixedID(1), report.Customers[0].CustomerID)

	total := 0
	for _, s := range report.Segments {
		total += s.Count
	}
	assert.Equal(t, 1, total)
}

func TestAnalyzeSummaries(t *testing.T) {
	customers := []rfm.CustomerOrders{
		customerWith(1, orderAt(100, 10), orderAt(200, 20)),
		customerWith(2, orderAt(300, 10), orderAt(100, 20), orderAt(200, 30)),
	}

	report := rfm.Analyze(analysisNow, customers)

	require.Len(t, report.Segments, 7)

	var populated []rfm.SegmentSummary
	for _, s := range report.Segments {
		if s.Count > 0 {
			populated = append(populated, s)
		}
	}

	totalCount := 0
	totalMonetary := 0.0
	for _, s := range populated {
		totalCount += s.Count
		totalMonetary += s.AvgMonetary * float64(s.Count)
	}
	assert.Equal(t, 2, totalCount)
	assert.InDelta(t, 900.0, totalMonetary, 1e-9)
}

func TestAnalyzePanicsOnNonFiniteTotal(t *testing.T) {
	customers := []rfm.CustomerOrders{
		customerWith(1, rfm.Order{Total: math.NaN(), PlacedAt: analysisNow}),
	}

	assert.Panics(t, func() {
		rfm.Analyze(analysisNow, customers)
	})
}

func TestAnalyzeFutureOrderClampsRecency(t *testing.T) {
	customers := []rfm.CustomerOrders{
		customerWith(1, orderAt(100, -3)),
	}

	report := rfm.Analyze(analysisNow, customers)
	assert.Equal(t, 0, scoreByID(t, report, fixedID(1)).RecencyDays)
}
