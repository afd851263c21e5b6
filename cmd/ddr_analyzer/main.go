package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	var opts pipelineOptions

	flag.StringVar(&opts.csvPath, "csv", "", "input CSV of concentration,viability rows (required)")
	flag.StringVar(&opts.pdfPath, "pdf", "", "output PDF report path (optional)")
	flag.StringVar(&opts.exportPath, "export", "", "output results CSV path (optional)")
	flag.StringVar(&opts.pngPath, "png", "", "output curve plot PNG path (optional)")
	flag.StringVar(&opts.fitType, "fit", "monophasic", "fit type: monophasic or biphasic")
	flag.StringVar(&opts.algorithm, "loss", "huber", "loss algorithm: huber or anything else for squared")
	flag.StringVar(&opts.drugLabel, "label", "sample", "drug/sample label for the report")
	flag.Float64Var(&opts.huberDelta, "huber-delta", 0.05, "Huber delta on the fractional viability scale")
	flag.IntVar(&opts.minPoints, "min-points", 4, "minimum points required before metrics are reported")
	flag.BoolVar(&opts.weightMidpoint, "weight-midpoint", false, "extra weight on the middle sorted point (monophasic only)")
	flag.Parse()

	if opts.csvPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := runPipeline(opts); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
