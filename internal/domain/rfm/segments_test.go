//go:build unit

package rfm_test

import (
	"testing"

	"closet-by-era/internal/domain/rfm"

	"github.com/stretchr/testify/assert"
)

func TestClassifySegment(t *testing.T) {
	cases := []struct {
		name    string
		r, f, m int
		want    rfm.Segment
	}{
		{name: "top scores are champions", r: 5, f: 5, m: 5, want: rfm.SegmentChampions},
		{name: "champions lower bound", r: 4, f: 4, m: 4, want: rfm.SegmentChampions},
		{name: "frequent high spender with low recency is loyal", r: 2, f: 4, m: 3, want: rfm.SegmentLoyal},
		{name: "loyal requires m of at least 3", r: 2, f: 4, m: 2, want: rfm.SegmentAtRisk},
		{name: "recent but infrequent is new", r: 3, f: 2, m: 5, want: rfm.SegmentNew},
		{name: "recent with some frequency is potential", r: 3, f: 3, m: 2, want: rfm.SegmentPotential},
		{name: "lapsed but frequent is at risk", r: 1, f: 3, m: 1, want: rfm.SegmentAtRisk},
		{name: "lapsed infrequent big spender is hibernating", r: 1, f: 1, m: 3, want: rfm.SegmentHibernating},
		{name: "bottom scores are lost", r: 1, f: 1, m: 1, want: rfm.SegmentLost},
		{name: "lapsed infrequent low spender is lost", r: 2, f: 2, m: 2, want: rfm.SegmentLost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rfm.ClassifySegment(tc.r, tc.f, tc.m))
		})
	}
}

// Every (r, f, m) triple in 1..5 must land in exactly one segment via
// first match: the switch has a default, so here we just confirm the
// result is always one of the seven named segments.
func TestClassifySegmentIsTotal(t *testing.T) {
	valid := make(map[rfm.Segment]bool)
	for _, seg := range rfm.AllSegments() {
		valid[seg] = true
	}

	for r := 1; r <= 5; r++ {
		for f := 1; f <= 5; f++ {
			for m := 1; m <= 5; m++ {
				seg := rfm.ClassifySegment(r, f, m)
				assert.True(t, valid[seg], "r=%d f=%d m=%d produced unknown segment %q", r, f, m, seg)
			}
		}
	}
}
