package breaks

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/bed"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// ReadBreakpoints reads candidate breakpoints from a BED4+ file where the
// name column holds the deltaW score of the locus. Records with end <= start
// are rejected.
func ReadBreakpoints(file string) ([]Breakpoint, error) {
	var ans []Breakpoint
	var deltaW float64
	var err error
	records := bed.Read(file)
	for _, b := range records {
		if b.ChromEnd <= b.ChromStart {
			return nil, fmt.Errorf("breakpoint %s:%d-%d has non-positive width", b.Chrom, b.ChromStart, b.ChromEnd)
		}
		deltaW, err = strconv.ParseFloat(b.Name, 64)
		if err != nil {
			return nil, fmt.Errorf("breakpoint %s:%d-%d: cannot parse deltaW from name field %q", b.Chrom, b.ChromStart, b.ChromEnd, b.Name)
		}
		ans = append(ans, Breakpoint{Chrom: b.Chrom, ChromStart: b.ChromStart, ChromEnd: b.ChromEnd, DeltaW: deltaW})
	}
	return ans, nil
}

// ReadFragments reads aligned read fragments from a BED-like file. The
// strand is taken from column 6 when present (BED6), else from column 4.
func ReadFragments(file string) ([]Fragment, error) {
	var ans []Fragment
	var line, strand string
	var words []string
	var start, end int
	var done bool
	var err error
	in := fileio.EasyOpen(file)
	defer func() { exception.PanicOnErr(in.Close()) }()
	for line, done = fileio.EasyNextRealLine(in); !done; line, done = fileio.EasyNextRealLine(in) {
		words = strings.Split(line, "\t")
		if len(words) < 4 {
			return nil, fmt.Errorf("fragment record %q has fewer than 4 fields", line)
		}
		start, err = strconv.Atoi(words[1])
		if err != nil {
			return nil, fmt.Errorf("fragment record %q: bad start", line)
		}
		end, err = strconv.Atoi(words[2])
		if err != nil {
			return nil, fmt.Errorf("fragment record %q: bad end", line)
		}
		if len(words) >= 6 {
			strand = words[5]
		} else {
			strand = words[3]
		}
		if strand != "+" && strand != "-" {
			return nil, fmt.Errorf("fragment record %q: strand must be + or -, got %q", line, strand)
		}
		ans = append(ans, Fragment{Chrom: words[0], ChromStart: start, ChromEnd: end, Strand: strand[0]})
	}
	return ans, nil
}

// WriteGenotypedBreaks writes genotyped breakpoints as
// chrom / start / end / genotype / deltaW.
func WriteGenotypedBreaks(out io.Writer, gbs []GenotypedBreak) {
	for i := range gbs {
		fmt.Fprintf(out, "%s\t%d\t%d\t%s\t%g\n", gbs[i].Chrom, gbs[i].ChromStart, gbs[i].ChromEnd, gbs[i].Genotype, gbs[i].DeltaW)
	}
}

// WriteConfidenceIntervals writes confidence intervals as BED3.
func WriteConfidenceIntervals(out io.Writer, cis []ConfidenceInterval) {
	for i := range cis {
		fmt.Fprintf(out, "%s\t%d\t%d\n", cis[i].Chrom, cis[i].ChromStart, cis[i].ChromEnd)
	}
}
