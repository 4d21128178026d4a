// Package regions derives the complement gaps between strand-state
// breakpoints on a chromosome and counts the Watson and Crick reads
// overlapping each gap. These per-region counts are the evidence the state
// classifier runs on.
package regions

import (
	"github.com/daewoooo/BreakPointR/breaks"
	"github.com/vertgenlab/gonomics/interval"
	"github.com/vertgenlab/gonomics/numbers"
)

// Region is the interval between two consecutive breakpoints (or a
// breakpoint and a chromosome end) together with its strand-split read
// counts. Regions exist only during classification.
type Region struct {
	Chrom      string
	ChromStart int
	ChromEnd   int
	WCount     int
	CCount     int
	TotalCount int
}

func (r Region) GetChrom() string { return r.Chrom }
func (r Region) GetChromStart() int { return r.ChromStart }
func (r Region) GetChromEnd() int { return r.ChromEnd }

// DeriveRegions returns the complement intervals of the given sorted
// breakpoints across [spanStart, spanEnd): one region before the first
// breakpoint, one between each consecutive pair, and one after the last.
// N breakpoints always yield N+1 regions; regions squeezed to zero width by
// adjacent breakpoints are kept and simply never accumulate reads.
func DeriveRegions(chrom string, spanStart, spanEnd int, bps []breaks.Breakpoint) []Region {
	ans := make([]Region, 0, len(bps)+1)
	prev := spanStart
	for i := range bps {
		ans = append(ans, Region{Chrom: chrom, ChromStart: prev, ChromEnd: bps[i].ChromStart})
		prev = numbers.Max(prev, bps[i].ChromEnd)
	}
	ans = append(ans, Region{Chrom: chrom, ChromStart: prev, ChromEnd: spanEnd})
	return ans
}

// CountReads fills WCount, CCount, and TotalCount for each region by
// overlap against the fragment set. Watson reads are '-' strand, Crick
// reads '+'. The input slice is returned with counts populated.
func CountReads(rgs []Region, frags []breaks.Fragment) []Region {
	if len(rgs) == 0 || len(frags) == 0 {
		return rgs
	}
	queryable := make([]interval.Interval, len(frags))
	for i := range frags {
		queryable[i] = frags[i]
	}
	tree := interval.BuildTree(queryable)
	var hits []interval.Interval
	for i := range rgs {
		if rgs[i].ChromEnd <= rgs[i].ChromStart {
			continue
		}
		hits = interval.Query(tree, rgs[i], "any")
		for _, h := range hits {
			switch h.(breaks.Fragment).Strand {
			case breaks.Watson:
				rgs[i].WCount++
			case breaks.Crick:
				rgs[i].CCount++
			}
		}
		rgs[i].TotalCount = rgs[i].WCount + rgs[i].CCount
	}
	return rgs
}

// Span returns the chromosome span used for gap derivation. A positive size
// (from a chrom.sizes file) wins; otherwise the span runs from zero to the
// rightmost end observed across fragments and breakpoints.
func Span(bps []breaks.Breakpoint, frags []breaks.Fragment, size int) (start, end int) {
	if size > 0 {
		return 0, size
	}
	for i := range bps {
		end = numbers.Max(end, bps[i].ChromEnd)
	}
	for i := range frags {
		end = numbers.Max(end, frags[i].ChromEnd)
	}
	return 0, end
}
