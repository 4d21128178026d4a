package genotype

import (
	"errors"
	"fmt"
	"sync"

	"github.com/daewoooo/BreakPointR/breaks"
	"github.com/daewoooo/BreakPointR/regions"
	"github.com/vertgenlab/gonomics/chromInfo"
	"golang.org/x/exp/slices"
)

// GenotypeBreaks runs the full pipeline: derive the gap regions between the
// input breakpoints, count strand-split read evidence per region, classify,
// merge same-state neighbors, and refine the surviving transition
// breakpoints to their maximal-deltaW loci. Chromosomes are processed in
// parallel into disjoint slots and concatenated in lexical chromosome
// order. sizes may be nil, in which case each chromosome span ends at the
// rightmost observed fragment or breakpoint.
//
// An empty breakpoint set and an unrecognized method are configuration
// errors, reported immediately. A run that yields no transition breakpoints
// returns a nil slice and no error.
func GenotypeBreaks(bps []breaks.Breakpoint, frags []breaks.Fragment, sizes map[string]chromInfo.ChromInfo, cfg Config) ([]breaks.GenotypedBreak, error) {
	if len(bps) == 0 {
		return nil, errors.New("no breakpoints to genotype")
	}
	if cfg.Method != MethodFisher && cfg.Method != MethodBinomial {
		return nil, fmt.Errorf("unknown genotyping method %q", cfg.Method)
	}

	bpsByChrom := breaks.SplitBreakpointsByChrom(bps)
	fragsByChrom := breaks.SplitFragmentsByChrom(frags)
	chroms := make([]string, 0, len(bpsByChrom))
	for chrom := range bpsByChrom {
		chroms = append(chroms, chrom)
	}
	slices.Sort(chroms)

	results := make([][]breaks.GenotypedBreak, len(chroms))
	wg := new(sync.WaitGroup)
	for i := range chroms {
		wg.Add(1)
		go func(slot int, chrom string) {
			defer wg.Done()
			var size int
			if sizes != nil {
				size = sizes[chrom].Size
			}
			results[slot] = genotypeChrom(chrom, bpsByChrom[chrom], fragsByChrom[chrom], size, cfg)
		}(i, chroms[i])
	}
	wg.Wait()

	var ans []breaks.GenotypedBreak
	for i := range results {
		ans = append(ans, results[i]...)
	}
	return ans, nil
}

func genotypeChrom(chrom string, bps []breaks.Breakpoint, frags []breaks.Fragment, size int, cfg Config) []breaks.GenotypedBreak {
	if len(frags) == 0 {
		return nil
	}
	start, end := regions.Span(bps, frags, size)
	rgs := regions.DeriveRegions(chrom, start, end, bps)
	rgs = regions.CountReads(rgs, frags)
	classified := ClassifyRegions(rgs, cfg)
	merged := MergeRegions(classified)
	return RefineBreaks(merged, bps)
}
