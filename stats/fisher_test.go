package stats

import (
	"math"
	"testing"
)

func TestFisherExactTails(t *testing.T) {
	// R: fisher.test(matrix(c(3,1,1,3), ncol=2))
	if p := FisherExact(3, 1, 1, 3, Greater); math.Abs(p-17.0/70) > 1e-12 {
		t.Error("greater tail of (3,1,1,3) should be 17/70, got", p)
	}
	if p := FisherExact(3, 1, 1, 3, Less); math.Abs(p-69.0/70) > 1e-12 {
		t.Error("less tail of (3,1,1,3) should be 69/70, got", p)
	}
	if p := FisherExact(3, 1, 1, 3, TwoSided); math.Abs(p-34.0/70) > 1e-12 {
		t.Error("two-sided p of (3,1,1,3) should be 34/70, got", p)
	}
}

func TestFisherExactBalanced(t *testing.T) {
	// observed table sits at the mode, so every table is as or less probable
	if p := FisherExact(10, 10, 10, 10, TwoSided); math.Abs(p-1) > 1e-9 {
		t.Error("two-sided p of a balanced table should be 1, got", p)
	}
}

func TestFisherExactSkew(t *testing.T) {
	if p := FisherExact(19, 1, 1, 19, Greater); p > 1e-6 {
		t.Error("strongly enriched table should have a tiny greater-tail p, got", p)
	}
	// observed count at the bottom of its support
	if p := FisherExact(2, 19, 18, 1, Greater); p < 0.99 {
		t.Error("depleted table should have greater-tail p near 1, got", p)
	}
}
