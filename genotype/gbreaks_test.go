package genotype

import (
	"testing"

	"github.com/daewoooo/BreakPointR/breaks"
)

func spread(chrom string, lo, hi, count int, strand byte) []breaks.Fragment {
	var ans []breaks.Fragment
	readLen := 100
	if hi-lo < readLen*2 {
		readLen = (hi - lo) / 2
	}
	step := (hi - lo - readLen) / (count + 1)
	for i := 0; i < count; i++ {
		s := lo + (i+1)*step
		ans = append(ans, breaks.Fragment{Chrom: chrom, ChromStart: s, ChromEnd: s + readLen, Strand: strand})
	}
	return ans
}

func chromFixture(chrom string) ([]breaks.Breakpoint, []breaks.Fragment) {
	bps := []breaks.Breakpoint{
		{Chrom: chrom, ChromStart: 1000, ChromEnd: 1001, DeltaW: 3.0},
		{Chrom: chrom, ChromStart: 5000, ChromEnd: 5001, DeltaW: 1.5},
	}
	var frags []breaks.Fragment
	frags = append(frags, spread(chrom, 0, 1000, 18, breaks.Watson)...)
	frags = append(frags, spread(chrom, 0, 1000, 2, breaks.Crick)...)
	frags = append(frags, spread(chrom, 1001, 5000, 10, breaks.Watson)...)
	frags = append(frags, spread(chrom, 1001, 5000, 10, breaks.Crick)...)
	frags = append(frags, spread(chrom, 5001, 10000, 1, breaks.Watson)...)
	frags = append(frags, spread(chrom, 5001, 10000, 19, breaks.Crick)...)
	// pin the chromosome span so the last region reaches 10000
	frags = append(frags, breaks.Fragment{Chrom: chrom, ChromStart: 9900, ChromEnd: 10000, Strand: breaks.Crick})
	return bps, frags
}

func TestGenotypeBreaksEndToEnd(t *testing.T) {
	bps, frags := chromFixture("chr1")
	gbs, err := GenotypeBreaks(bps, frags, nil, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(gbs) != 2 {
		t.Fatal("expected two genotyped breakpoints, got", gbs)
	}
	if gbs[0].Genotype != "ww-wc" || gbs[0].ChromStart != 1000 || gbs[0].ChromEnd != 1001 || gbs[0].DeltaW != 3.0 {
		t.Error("first breakpoint should be ww-wc at 1000 with deltaW 3.0:", gbs[0])
	}
	if gbs[1].Genotype != "wc-cc" || gbs[1].ChromStart != 5000 || gbs[1].ChromEnd != 5001 || gbs[1].DeltaW != 1.5 {
		t.Error("second breakpoint should be wc-cc at 5000 with deltaW 1.5:", gbs[1])
	}
}

func TestGenotypeBreaksBinomialEndToEnd(t *testing.T) {
	bps, frags := chromFixture("chr1")
	cfg := DefaultConfig()
	cfg.Method = MethodBinomial
	gbs, err := GenotypeBreaks(bps, frags, nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(gbs) != 2 || gbs[0].Genotype != "ww-wc" || gbs[1].Genotype != "wc-cc" {
		t.Error("binomial method should find the same transitions, got", gbs)
	}
}

func TestGenotypeBreaksChromosomeOrder(t *testing.T) {
	bps2, frags2 := chromFixture("chr2")
	bps1, frags1 := chromFixture("chr1")
	gbs, err := GenotypeBreaks(append(bps2, bps1...), append(frags2, frags1...), nil, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(gbs) != 4 {
		t.Fatal("expected four genotyped breakpoints across two chromosomes, got", gbs)
	}
	if gbs[0].Chrom != "chr1" || gbs[1].Chrom != "chr1" || gbs[2].Chrom != "chr2" || gbs[3].Chrom != "chr2" {
		t.Error("output should be concatenated in lexical chromosome order:", gbs)
	}
}

func TestGenotypeBreaksBelowMinReads(t *testing.T) {
	bps, frags := chromFixture("chr1")
	cfg := DefaultConfig()
	cfg.MinReads = 100
	gbs, err := GenotypeBreaks(bps, frags, nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(gbs) != 0 {
		t.Error("all regions below minReads must yield no genotyped breakpoints, got", gbs)
	}
}

func TestGenotypeBreaksConfigErrors(t *testing.T) {
	bps, frags := chromFixture("chr1")
	if _, err := GenotypeBreaks(nil, frags, nil, DefaultConfig()); err == nil {
		t.Error("empty breakpoint input must be an immediate error")
	}
	cfg := DefaultConfig()
	cfg.Method = "bayes"
	if _, err := GenotypeBreaks(bps, frags, nil, cfg); err == nil {
		t.Error("unknown genotyping method must be an immediate error")
	}
}
