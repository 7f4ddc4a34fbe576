package rfm

// Segment is a named customer cohort derived from the three RFM scores.
type Segment string

const (
	SegmentChampions   Segment = "champions"
	SegmentLoyal       Segment = "loyal"
	SegmentNew         Segment = "new"
	SegmentPotential   Segment = "potential"
	SegmentAtRisk      Segment = "at_risk"
	SegmentHibernating Segment = "hibernating"
	SegmentLost        Segment = "lost"
)

func (s Segment) String() string {
	return string(s)
}

// AllSegments lists every segment in display order. Reports always
// contain all of them, even at zero members.
func AllSegments() []Segment {
	return []Segment{
		SegmentChampions,
		SegmentLoyal,
		SegmentNew,
		SegmentPotential,
		SegmentAtRisk,
		SegmentHibernating,
		SegmentLost,
	}
}

// ClassifySegment maps an (r, f, m) score triple to its segment. Rules
// are evaluated top to bottom, first match wins; the final rule is a
// catch-all, so every triple in 1..5 lands in exactly one segment.
func ClassifySegment(r, f, m int) Segment {
	switch {
	case r >= 4 && f >= 4 && m >= 4:
		return SegmentChampions
	case f >= 4 && m >= 3:
		return SegmentLoyal
	case r >= 3 && f <= 2:
		return SegmentNew
	case r >= 3 && f >= 2:
		return SegmentPotential
	case r <= 2 && f >= 3:
		return SegmentAtRisk
	case r <= 2 && f <= 2 && m >= 3:
		return SegmentHibernating
	default:
		return SegmentLost
	}
}
