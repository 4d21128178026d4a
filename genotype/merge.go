package genotype

import (
	"math"

	"github.com/daewoooo/BreakPointR/breaks"
	"github.com/daewoooo/BreakPointR/regions"
	"github.com/vertgenlab/gonomics/interval"
	"github.com/vertgenlab/gonomics/numbers"
)

// ClassifiedRegion is a region that received a state call.
type ClassifiedRegion struct {
	regions.Region
	State string
	Pval  float64
}

// ClassifyRegions runs the configured classifier over each region and drops
// no-calls, keeping the survivors in position order.
func ClassifyRegions(rgs []regions.Region, cfg Config) []ClassifiedRegion {
	var ans []ClassifiedRegion
	var state string
	var pval float64
	var ok bool
	for i := range rgs {
		switch cfg.Method {
		case MethodBinomial:
			state, pval, ok = GenotypeBinomial(rgs[i].WCount, rgs[i].CCount, cfg.Background, cfg.MinReads, cfg.LogSpace)
		default:
			state, pval, ok = GenotypeFisher(rgs[i].CCount, rgs[i].WCount, rgs[i].TotalCount, cfg.Background, cfg.MinReads)
		}
		if !ok {
			continue
		}
		ans = append(ans, ClassifiedRegion{Region: rgs[i], State: state, Pval: pval})
	}
	return ans
}

// MergeRegions walks consecutive classified regions, silently merging
// same-state neighbors and emitting a transition breakpoint wherever the
// state changes. The emitted interval runs from the end of the left region
// to the start of the right one. The last region never opens a breakpoint.
func MergeRegions(rgs []ClassifiedRegion) []breaks.GenotypedBreak {
	var ans []breaks.GenotypedBreak
	for i := 0; i+1 < len(rgs); i++ {
		if rgs[i].State == rgs[i+1].State {
			continue
		}
		ans = append(ans, breaks.GenotypedBreak{
			Chrom:      rgs[i].Chrom,
			ChromStart: rgs[i].ChromEnd,
			ChromEnd:   rgs[i+1].ChromStart,
			Genotype:   rgs[i].State + "-" + rgs[i+1].State,
		})
	}
	return ans
}

// RefineBreaks narrows each merged breakpoint to the strongest signal
// inside it: among the original input breakpoints overlapping the merged
// interval, the ones sharing the maximal deltaW are unioned into one span
// that replaces the coarse region boundary, and their deltaW is attached.
// A merged breakpoint overlapping no original is dropped; upstream gap
// derivation should make that impossible.
func RefineBreaks(merged []breaks.GenotypedBreak, originals []breaks.Breakpoint) []breaks.GenotypedBreak {
	if len(merged) == 0 || len(originals) == 0 {
		return nil
	}
	queryable := make([]interval.Interval, len(originals))
	for i := range originals {
		queryable[i] = originals[i]
	}
	tree := interval.BuildTree(queryable)

	var ans []breaks.GenotypedBreak
	var hits []interval.Interval
	for _, m := range merged {
		hits = interval.Query(tree, m, "any")
		if len(hits) == 0 {
			continue
		}
		maxDeltaW := math.Inf(-1)
		for _, h := range hits {
			if bp := h.(breaks.Breakpoint); bp.DeltaW > maxDeltaW {
				maxDeltaW = bp.DeltaW
			}
		}
		start, end := math.MaxInt, 0
		for _, h := range hits {
			bp := h.(breaks.Breakpoint)
			if bp.DeltaW != maxDeltaW {
				continue
			}
			start = numbers.Min(start, bp.ChromStart)
			end = numbers.Max(end, bp.ChromEnd)
		}
		m.ChromStart = start
		m.ChromEnd = end
		m.DeltaW = maxDeltaW
		ans = append(ans, m)
	}
	return ans
}
