package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/daewoooo/BreakPointR/breaks"
	"github.com/daewoooo/BreakPointR/confidence"
	"github.com/daewoooo/BreakPointR/genotype"
	"github.com/vertgenlab/gonomics/chromInfo"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

func usage() {
	fmt.Print(
		"genotypeBreaks - Genotype strand-state breakpoints from Strand-seq read evidence.\n" +
			"Classifies the regions between candidate breakpoints as ww, cc, or wc, merges\n" +
			"same-state neighbors, and reports refined breakpoints at the state transitions.\n" +
			"Usage:\n" +
			"genotypeBreaks [options] -breaks breakpoints.bed -frags fragments.bed\n\n")
	flag.PrintDefaults()
}

func main() {
	breaksFile := flag.String("breaks", "", "Candidate breakpoints in BED4 format with the deltaW score in the name column.")
	fragsFile := flag.String("frags", "", "Aligned read fragments in BED6 format with strand in column 6.")
	output := flag.String("o", "stdout", "Output file for genotyped breakpoints.")
	ciOutput := flag.String("ci", "", "Optional output file for breakpoint confidence intervals (BED3).")
	chromSizes := flag.String("chromSizes", "", "Optional chrom.sizes file. Without it each chromosome span ends at the rightmost observed position.")
	background := flag.Float64("background", genotype.DefaultBackground, "Expected wrong-strand read proportion in a pure ww/cc region.")
	minReads := flag.Int("minReads", genotype.DefaultMinReads, "Minimum reads in a region to attempt a state call.")
	genoT := flag.String("genoT", genotype.MethodFisher, "Genotyping method: fisher or binom.")
	conf := flag.Float64("conf", genotype.DefaultConf, "Confidence level for breakpoint confidence intervals.")
	ciBackground := flag.Float64("ciBackground", genotype.DefaultCIBackground, "Background rate assumed during confidence interval estimation.")
	logSpace := flag.Bool("log", false, "Compare log-space probabilities. Only affects the binom method.")
	flag.Parse()

	if *breaksFile == "" || *fragsFile == "" {
		usage()
		log.Fatal("ERROR: must input breakpoints (-breaks) and fragments (-frags).")
	}

	genotypeBreaks(*breaksFile, *fragsFile, *output, *ciOutput, *chromSizes, *background, *ciBackground, *conf, *minReads, *genoT, *logSpace)
}

func genotypeBreaks(breaksFile, fragsFile, output, ciOutput, chromSizes string, background, ciBackground, conf float64, minReads int, genoT string, logSpace bool) {
	bps, err := breaks.ReadBreakpoints(breaksFile)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	frags, err := breaks.ReadFragments(fragsFile)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	var sizes map[string]chromInfo.ChromInfo
	if chromSizes != "" {
		sizes = chromInfo.ReadToMap(chromSizes)
	}

	cfg := genotype.Config{Background: background, MinReads: minReads, Method: genoT, LogSpace: logSpace}
	gbs, err := genotype.GenotypeBreaks(bps, frags, sizes, cfg)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}

	out := fileio.EasyCreate(output)
	breaks.WriteGenotypedBreaks(out, gbs)
	exception.PanicOnErr(out.Close())

	if ciOutput == "" {
		return
	}
	cis := confidence.Estimate(gbs, frags, ciBackground, conf)
	ciOut := fileio.EasyCreate(ciOutput)
	breaks.WriteConfidenceIntervals(ciOut, cis)
	exception.PanicOnErr(ciOut.Close())
}
