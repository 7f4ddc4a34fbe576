// Package rfm scores customers along recency, frequency, and monetary
// axes and buckets them into named segments. The engine is pure: it
// receives already-fetched order histories and does no I/O.
package rfm

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Total    float64
	PlacedAt time.Time
}

// CustomerOrders is one customer's completed-order history, the
// engine's only input.
type CustomerOrders struct {
	CustomerID uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	Orders     []Order
}

// CustomerScore is a scored customer. Scores are 1-5 quintile ranks
// against the full population; Segment is derived from the triple.
type CustomerScore struct {
	CustomerID  uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	RecencyDays int
	Frequency   int
	Monetary    float64
	RScore      int
	FScore      int
	MScore      int
	Segment     Segment
}

type SegmentSummary struct {
	Segment      Segment
	Count        int
	AvgMonetary  float64
	AvgFrequency float64
}

type Report struct {
	Customers []CustomerScore
	Segments  []SegmentSummary
}

// Analyze computes the RFM report for the given population.
//
// Customers with no orders are excluded from scoring entirely: a
// quintile rank over a metric the customer does not have is
// meaningless. The returned segment summaries always contain all seven
// segments, zero-count ones included, with zero-safe averages.
//
// Order totals must be real numbers; a NaN or Inf total is a caller
// bug and panics.
func Analyze(now time.Time, customers []CustomerOrders) Report {
	scored := make([]CustomerScore, 0, len(customers))
	for _, c := range customers {
		if len(c.Orders) == 0 {
			continue
		}
		scored = append(scored, rawMetrics(now, c))
	}

	assignScores(scored,
		func(s *CustomerScore) float64 { return float64(s.RecencyDays) },
		func(s *CustomerScore, v int) { s.RScore = v },
		true)
	assignScores(scored,
		func(s *CustomerScore) float64 { return float64(s.Frequency) },
		func(s *CustomerScore, v int) { s.FScore = v },
		false)
	assignScores(scored,
		func(s *CustomerScore) float64 { return s.Monetary },
		func(s *CustomerScore, v int) { s.MScore = v },
		false)

	for i := range scored {
		scored[i].Segment = ClassifySegment(scored[i].RScore, scored[i].FScore, scored[i].MScore)
	}

	return Report{
		Customers: scored,
		Segments:  summarize(scored),
	}
}

func rawMetrics(now time.Time, c CustomerOrders) CustomerScore {
	var (
		latest   time.Time
		monetary float64
	)
	for _, o := range c.Orders {
		if math.IsNaN(o.Total) || math.IsInf(o.Total, 0) {
			panic(fmt.Sprintf("rfm: customer %s has non-finite order total", c.CustomerID))
		}
		monetary += o.Total
		if o.PlacedAt.After(latest) {
			latest = o.PlacedAt
		}
	}

	recencyDays := int(now.Sub(latest).Hours() / 24)
	if recencyDays < 0 {
		recencyDays = 0
	}

	return CustomerScore{
		CustomerID:  c.CustomerID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		RecencyDays: recencyDays,
		Frequency:   len(c.Orders),
		Monetary:    monetary,
	}
}

// assignScores ranks the population by one metric and writes the 1-5
// quintile score back into each customer. Ties are broken by customer
// ID so bucket assignment is reproducible regardless of input order.
// For recency a lower raw value is better; for frequency and monetary
// a higher one is.
func assignScores(scored []CustomerScore, metric func(*CustomerScore) float64, set func(*CustomerScore, int), lowerIsBetter bool) {
	n := len(scored)
	if n == 0 {
		return
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		va, vb := metric(&scored[order[a]]), metric(&scored[order[b]])
		if va != vb {
			return va < vb
		}
		return scored[order[a]].CustomerID.String() < scored[order[b]].CustomerID.String()
	})

	for rank, idx := range order {
		bucket := rank * 5 / n
		if lowerIsBetter {
			set(&scored[idx], 5-bucket)
		} else {
			set(&scored[idx], bucket+1)
		}
	}
}

func summarize(scored []CustomerScore) []SegmentSummary {
	type agg struct {
		count        int
		sumMonetary  float64
		sumFrequency int
	}
	bySegment := make(map[Segment]*agg, 7)
	for _, seg := range AllSegments() {
		bySegment[seg] = &agg{}
	}
	for _, s := range scored {
		a := bySegment[s.Segment]
		a.count++
		a.sumMonetary += s.Monetary
		a.sumFrequency += s.Frequency
	}

	summaries := make([]SegmentSummary, 0, 7)
	for _, seg := range AllSegments() {
		a := bySegment[seg]
		summary := SegmentSummary{Segment: seg, Count: a.count}
		if a.count > 0 {
			summary.AvgMonetary = a.sumMonetary / float64(a.count)
			summary.AvgFrequency = float64(a.sumFrequency) / float64(a.count)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
