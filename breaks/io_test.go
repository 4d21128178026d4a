package breaks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestReadBreakpoints(t *testing.T) {
	file := writeTemp(t, "breaks.bed", "chr1\t1000\t1001\t3.0\nchr1\t5000\t5001\t1.5\n")
	bps, err := ReadBreakpoints(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(bps) != 2 {
		t.Fatal("expected two breakpoints, got", bps)
	}
	if bps[0].Chrom != "chr1" || bps[0].ChromStart != 1000 || bps[0].ChromEnd != 1001 || bps[0].DeltaW != 3.0 {
		t.Error("first breakpoint parsed wrong:", bps[0])
	}
	if bps[1].DeltaW != 1.5 {
		t.Error("second breakpoint deltaW parsed wrong:", bps[1])
	}
}

func TestReadBreakpointsBadDeltaW(t *testing.T) {
	file := writeTemp(t, "breaks.bed", "chr1\t1000\t1001\tscore\n")
	if _, err := ReadBreakpoints(file); err == nil {
		t.Error("unparseable deltaW must be an error")
	}
}

func TestReadFragments(t *testing.T) {
	file := writeTemp(t, "frags.bed", "chr1\t100\t200\tread1\t0\t-\nchr1\t300\t400\tread2\t0\t+\n")
	frags, err := ReadFragments(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(frags) != 2 {
		t.Fatal("expected two fragments, got", frags)
	}
	if frags[0].Strand != Watson || frags[1].Strand != Crick {
		t.Error("strands parsed wrong:", frags)
	}
	if frags[0].ChromStart != 100 || frags[0].ChromEnd != 200 {
		t.Error("coordinates parsed wrong:", frags[0])
	}
}

func TestReadFragmentsFourColumns(t *testing.T) {
	file := writeTemp(t, "frags.bed", "chr1\t100\t200\t-\n")
	frags, err := ReadFragments(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(frags) != 1 || frags[0].Strand != Watson {
		t.Error("four-column input should take strand from column 4:", frags)
	}
}

func TestReadFragmentsBadStrand(t *testing.T) {
	file := writeTemp(t, "frags.bed", "chr1\t100\t200\tread1\t0\t*\n")
	if _, err := ReadFragments(file); err == nil {
		t.Error("invalid strand must be an error")
	}
}

func TestWriters(t *testing.T) {
	var sb strings.Builder
	WriteGenotypedBreaks(&sb, []GenotypedBreak{{Chrom: "chr1", ChromStart: 1000, ChromEnd: 1001, Genotype: "ww-wc", DeltaW: 3.0}})
	if sb.String() != "chr1\t1000\t1001\tww-wc\t3\n" {
		t.Error("genotyped breakpoint output wrong:", sb.String())
	}
	sb.Reset()
	WriteConfidenceIntervals(&sb, []ConfidenceInterval{{Chrom: "chr1", ChromStart: 900, ChromEnd: 1100}})
	if sb.String() != "chr1\t900\t1100\n" {
		t.Error("confidence interval output wrong:", sb.String())
	}
}
