package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// BinomialDist returns the probability mass of k successes in n trials with
// success probability p, in log space when logSpace is set.
func BinomialDist(k, n int, p float64, logSpace bool) float64 {
	dist := distuv.Binomial{N: float64(n), P: p}
	if logSpace {
		return dist.LogProb(float64(k))
	}
	return dist.Prob(float64(k))
}

// BinomialUpperTail returns P(X >= k) for X ~ Binomial(n, p), the
// probability of the observed or a more extreme success count.
func BinomialUpperTail(k, n int, p float64) float64 {
	if k <= 0 {
		return 1
	}
	if k > n {
		return 0
	}
	dist := distuv.Binomial{N: float64(n), P: p}
	return 1 - dist.CDF(float64(k-1))
}
