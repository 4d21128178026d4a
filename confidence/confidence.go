// Package confidence bounds the location of each genotyped breakpoint by
// expanding a window outward read-by-read on both flanks and running a
// sequential one-sided binomial test at every step. A flank stops growing
// at the first read where the window is no longer statistically consistent
// with belonging to the far side of the breakpoint at the requested
// confidence level.
package confidence

import (
	"sort"
	"strings"
	"sync"

	"github.com/daewoooo/BreakPointR/breaks"
	"github.com/daewoooo/BreakPointR/genotype"
	"github.com/daewoooo/BreakPointR/stats"
)

// Estimate returns one confidence interval per input breakpoint, in input
// order. background is the wrong-strand read rate assumed for homozygous
// states and conf the requested confidence level, e.g. 0.99. Chromosomes
// are processed in parallel into disjoint output slots.
func Estimate(gbs []breaks.GenotypedBreak, frags []breaks.Fragment, background, conf float64) []breaks.ConfidenceInterval {
	ans := make([]breaks.ConfidenceInterval, len(gbs))
	fragsByChrom := breaks.SplitFragmentsByChrom(frags)
	idxByChrom := make(map[string][]int)
	for i := range gbs {
		idxByChrom[gbs[i].Chrom] = append(idxByChrom[gbs[i].Chrom], i)
	}

	wg := new(sync.WaitGroup)
	for chrom, idx := range idxByChrom {
		wg.Add(1)
		go func(chrom string, idx []int) {
			defer wg.Done()
			for _, j := range idx {
				ans[j] = estimateOne(gbs[j], fragsByChrom[chrom], background, conf)
			}
		}(chrom, idx)
	}
	wg.Wait()
	return ans
}

// flankRead is one fragment seen from a breakpoint flank: near orders reads
// by proximity to the breakpoint, bound is the coordinate the confidence
// interval extends to when the read is included.
type flankRead struct {
	bound  int
	near   int
	strand byte
}

func estimateOne(gb breaks.GenotypedBreak, frags []breaks.Fragment, background, conf float64) breaks.ConfidenceInterval {
	ci := breaks.ConfidenceInterval{Chrom: gb.Chrom, ChromStart: gb.ChromStart, ChromEnd: gb.ChromEnd}
	leftState, rightState, found := strings.Cut(gb.Genotype, "-")
	if !found {
		return ci
	}
	pos := (gb.ChromStart + gb.ChromEnd) / 2

	var left, right []flankRead
	for i := range frags {
		switch {
		case frags[i].ChromEnd <= pos:
			left = append(left, flankRead{bound: frags[i].ChromStart, near: frags[i].ChromEnd, strand: frags[i].Strand})
		case frags[i].ChromStart >= pos:
			right = append(right, flankRead{bound: frags[i].ChromEnd, near: frags[i].ChromStart, strand: frags[i].Strand})
		}
		// reads straddling the breakpoint support neither flank
	}
	sort.Slice(left, func(i, j int) bool { return left[i].near > left[j].near })
	sort.Slice(right, func(i, j int) bool { return right[i].near < right[j].near })

	if bound, ok := expandFlank(left, leftState, rightState, background, conf); ok && bound < ci.ChromStart {
		ci.ChromStart = bound
	}
	if bound, ok := expandFlank(right, rightState, leftState, background, conf); ok && bound > ci.ChromEnd {
		ci.ChromEnd = bound
	}
	return ci
}

// expandFlank walks reads nearest-first, accumulating the count of reads on
// the strand that favors the flank's own state over the far side's. Under
// the null hypothesis that the window still belongs to the far side, each
// read carries that strand with the far state's expected frequency; the
// flank stops at the first read where the probability of the observed or a
// more extreme count drops below 1-conf. If the evidence never reaches the
// threshold the whole flank is included.
func expandFlank(reads []flankRead, own, far string, background, conf float64) (bound int, ok bool) {
	if len(reads) == 0 {
		return 0, false
	}
	ownWatson := watsonFrac(own, background) > watsonFrac(far, background)
	evidence := breaks.Crick
	nullP := 1 - watsonFrac(far, background)
	if ownWatson {
		evidence = breaks.Watson
		nullP = watsonFrac(far, background)
	}
	threshold := 1 - conf

	var n, k int
	for i := range reads {
		n++
		if reads[i].strand == evidence {
			k++
		}
		bound = reads[i].bound
		if stats.BinomialUpperTail(k, n, nullP) < threshold {
			return bound, true
		}
	}
	return bound, true
}

// watsonFrac is the Watson read fraction expected under a strand state.
func watsonFrac(state string, background float64) float64 {
	switch state {
	case genotype.StateWW:
		return 1 - background
	case genotype.StateCC:
		return background
	default:
		return 0.5
	}
}
