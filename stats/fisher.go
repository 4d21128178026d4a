// Package stats provides the exact-test primitives used for strand-state
// genotyping: Fisher's exact test on 2x2 contingency tables and binomial
// probability mass / tail helpers.
package stats

import (
	"math"
)

// Alternative selects the tail of FisherExact.
type Alternative int

const (
	Less Alternative = iota
	Greater
	TwoSided
)

// relErr matches the relative tolerance R's fisher.test uses when summing
// point probabilities for the two-sided p-value.
const relErr = 1 + 1e-7

// FisherExact performs Fisher's exact test on the 2x2 table
//
//	a  b
//	c  d
//
// conditioning on the margins. Greater and Less test the odds ratio of the
// a cell; TwoSided sums the probabilities of all tables as or less probable
// than the observed one.
func FisherExact(a, b, c, d int, alt Alternative) float64 {
	n := a + b + c + d
	row1 := a + b
	col1 := a + c
	lo := col1 - (n - row1)
	if lo < 0 {
		lo = 0
	}
	hi := row1
	if col1 < hi {
		hi = col1
	}

	var pval float64
	switch alt {
	case Greater:
		for x := a; x <= hi; x++ {
			pval += hyperProb(x, row1, col1, n)
		}
	case Less:
		for x := lo; x <= a; x++ {
			pval += hyperProb(x, row1, col1, n)
		}
	case TwoSided:
		observed := hyperProb(a, row1, col1, n)
		for x := lo; x <= hi; x++ {
			if p := hyperProb(x, row1, col1, n); p <= observed*relErr {
				pval += p
			}
		}
	}
	if pval > 1 {
		pval = 1
	}
	return pval
}

// hyperProb is the hypergeometric point probability of drawing x row-one
// members in col1 draws from a population of n with row1 row-one members,
// computed in log space to keep large-count tables stable.
func hyperProb(x, row1, col1, n int) float64 {
	return math.Exp(logChoose(row1, x) + logChoose(n-row1, col1-x) - logChoose(n, col1))
}

func logChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return a - b - c
}
