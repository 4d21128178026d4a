// Package genotype assigns a strand state (ww, cc, or wc) to the regions
// between candidate breakpoints, merges neighbors that share a state, and
// re-derives refined, genotyped breakpoints at the transitions.
package genotype

import (
	"math"

	"github.com/daewoooo/BreakPointR/stats"
)

// Strand-state labels.
const (
	StateWW = "ww"
	StateCC = "cc"
	StateWC = "wc"
)

// Genotyping methods accepted by Config.Method.
const (
	MethodFisher   = "fisher"
	MethodBinomial = "binom"
)

// Defaults for the configuration surface. Confidence-interval estimation
// assumes a lower background rate than genotyping.
const (
	DefaultBackground   = 0.05
	DefaultCIBackground = 0.02
	DefaultMinReads     = 10
	DefaultConf         = 0.99
)

// Config carries the genotyping parameters.
type Config struct {
	Background float64 // expected wrong-strand read proportion in a pure ww/cc region
	MinReads   int     // minimum reads in a region for a call
	Method     string  // MethodFisher or MethodBinomial
	LogSpace   bool    // binomial method only: compare log probability masses
}

// DefaultConfig returns the standard genotyping configuration.
func DefaultConfig() Config {
	return Config{Background: DefaultBackground, MinReads: DefaultMinReads, Method: MethodFisher}
}

// GenotypeFisher picks the best-fitting strand state for a region from its
// Crick and Watson read counts using Fisher's exact test. Three 2x2 tables
// compare the observed split against a Crick-skewed background split (cc,
// one-sided greater), an even split (wc, complement of the two-sided test),
// and a Watson-skewed background split (ww, mirror of cc). The state with
// the minimum p-value wins. Regions with fewer than minReads total reads
// are no-calls: ok is false and the caller must drop the region rather
// than assume a state.
func GenotypeFisher(cReads, wReads, roiReads int, background float64, minReads int) (bestFit string, pval float64, ok bool) {
	if roiReads < minReads || roiReads <= 0 {
		return "", 0, false
	}
	expC := int(math.Round(float64(roiReads) * (1 - background)))
	expW := int(math.Round(float64(roiReads) * background))
	half := int(math.Round(float64(roiReads) / 2))

	pCC := stats.FisherExact(cReads, expC, wReads, expW, stats.Greater)
	pWC := 1 - stats.FisherExact(cReads, half, wReads, half, stats.TwoSided)
	pWW := stats.FisherExact(wReads, expC, cReads, expW, stats.Greater)
	if pWC < 0 { // balanced regions can push the complement a hair below zero
		pWC = 0
	}

	bestFit, pval = StateCC, pCC
	if pWC < pval {
		bestFit, pval = StateWC, pWC
	}
	if pWW < pval {
		bestFit, pval = StateWW, pWW
	}
	return bestFit, pval, true
}

// GenotypeBinomial picks the best-fitting strand state by maximum binomial
// likelihood of the Watson read count over roiReads trials, under success
// probabilities 1-background (ww), background (cc), and 0.5 (wc). Note the
// cc hypothesis also evaluates the Watson count rather than the Crick
// count; this asymmetry is part of the external contract and is kept
// as-is pending verification against the reference tool (the mass of
// Binomial(n, background) at wReads still peaks when Crick dominates, so
// the ranking is unchanged for symmetric backgrounds). With logSpace the
// returned score is the log probability mass. Regions below minReads are
// no-calls with ok false.
func GenotypeBinomial(wReads, cReads int, background float64, minReads int, logSpace bool) (bestFit string, pval float64, ok bool) {
	roiReads := wReads + cReads
	if roiReads < minReads || roiReads <= 0 {
		return "", 0, false
	}
	pWW := stats.BinomialDist(wReads, roiReads, 1-background, logSpace)
	pCC := stats.BinomialDist(wReads, roiReads, background, logSpace)
	pWC := stats.BinomialDist(wReads, roiReads, 0.5, logSpace)

	bestFit, pval = StateWW, pWW
	if pCC > pval {
		bestFit, pval = StateCC, pCC
	}
	if pWC > pval {
		bestFit, pval = StateWC, pWC
	}
	return bestFit, pval, true
}
