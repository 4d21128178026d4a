// Package breaks defines the interval records shared by the breakpoint
// genotyping pipeline: input breakpoints and strand-aware read fragments,
// and the genotyped breakpoints and confidence intervals produced from them.
// All coordinates are half-open [start,end) on the forward genome.
package breaks

import (
	"sort"
)

// Watson and Crick strand codes carried by Fragment. Watson-template reads
// align to the minus strand, Crick-template reads to the plus strand.
const (
	Watson byte = '-'
	Crick  byte = '+'
)

// Fragment is a single aligned read. Read-only input.
type Fragment struct {
	Chrom      string
	ChromStart int
	ChromEnd   int
	Strand     byte // Watson or Crick
}

func (f Fragment) GetChrom() string { return f.Chrom }
func (f Fragment) GetChromStart() int { return f.ChromStart }
func (f Fragment) GetChromEnd() int { return f.ChromEnd }

// Breakpoint is a candidate strand-state change locus nominated upstream.
// DeltaW is the magnitude of the directional signal change at the locus.
type Breakpoint struct {
	Chrom      string
	ChromStart int
	ChromEnd   int
	DeltaW     float64
}

func (b Breakpoint) GetChrom() string { return b.Chrom }
func (b Breakpoint) GetChromStart() int { return b.ChromStart }
func (b Breakpoint) GetChromEnd() int { return b.ChromEnd }

// GenotypedBreak is a refined breakpoint labeled with the state transition
// it represents, e.g. "ww-wc". DeltaW is inherited from the strongest
// subsumed input breakpoint.
type GenotypedBreak struct {
	Chrom      string
	ChromStart int
	ChromEnd   int
	Genotype   string
	DeltaW     float64
}

func (g GenotypedBreak) GetChrom() string { return g.Chrom }
func (g GenotypedBreak) GetChromStart() int { return g.ChromStart }
func (g GenotypedBreak) GetChromEnd() int { return g.ChromEnd }

// ConfidenceInterval bounds the location of a genotyped breakpoint at a
// requested confidence level.
type ConfidenceInterval struct {
	Chrom      string
	ChromStart int
	ChromEnd   int
}

func (c ConfidenceInterval) GetChrom() string { return c.Chrom }
func (c ConfidenceInterval) GetChromStart() int { return c.ChromStart }
func (c ConfidenceInterval) GetChromEnd() int { return c.ChromEnd }

// SortBreakpoints orders breakpoints by start, then end. Gap derivation
// requires this order within a chromosome.
func SortBreakpoints(b []Breakpoint) {
	sort.Slice(b, func(i, j int) bool {
		if b[i].ChromStart != b[j].ChromStart {
			return b[i].ChromStart < b[j].ChromStart
		}
		return b[i].ChromEnd < b[j].ChromEnd
	})
}

// SortFragments orders fragments by start, then end.
func SortFragments(f []Fragment) {
	sort.Slice(f, func(i, j int) bool {
		if f[i].ChromStart != f[j].ChromStart {
			return f[i].ChromStart < f[j].ChromStart
		}
		return f[i].ChromEnd < f[j].ChromEnd
	})
}

// SplitBreakpointsByChrom partitions breakpoints by chromosome and sorts
// each partition by coordinate.
func SplitBreakpointsByChrom(b []Breakpoint) map[string][]Breakpoint {
	m := make(map[string][]Breakpoint)
	for i := range b {
		m[b[i].Chrom] = append(m[b[i].Chrom], b[i])
	}
	for chrom := range m {
		SortBreakpoints(m[chrom])
	}
	return m
}

// SplitFragmentsByChrom partitions fragments by chromosome and sorts each
// partition by coordinate.
func SplitFragmentsByChrom(f []Fragment) map[string][]Fragment {
	m := make(map[string][]Fragment)
	for i := range f {
		m[f[i].Chrom] = append(m[f[i].Chrom], f[i])
	}
	for chrom := range m {
		SortFragments(m[chrom])
	}
	return m
}
