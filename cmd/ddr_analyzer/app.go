package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/mtran-code/ddr-demo/internal/fit"
	"github.com/mtran-code/ddr-demo/internal/parser"
	"github.com/mtran-code/ddr-demo/internal/report"
)

type pipelineOptions struct {
	csvPath        string
	pdfPath        string
	exportPath     string
	pngPath        string
	fitType        string
	algorithm      string
	drugLabel      string
	huberDelta     float64
	minPoints      int
	weightMidpoint bool
}

// runPipeline executes parse → sort → fit → metrics → render → export.
func runPipeline(opts pipelineOptions) error {
	cfg := fit.DefaultConfig()
	cfg.HuberDelta = opts.huberDelta
	cfg.MinPointsForFit = opts.minPoints
	cfg.WeightMidpoint = opts.weightMidpoint

	fitType := fit.Monophasic
	if opts.fitType == "biphasic" {
		fitType = fit.Biphasic
	} else if opts.fitType != "monophasic" {
		return fmt.Errorf("unknown fit type %q", opts.fitType)
	}

	log.Printf("Parsing: %s", opts.csvPath)
	parsed, err := parser.ParseDoseResponse(opts.csvPath)
	if err != nil {
		return fmt.Errorf("parsing CSV: %w", err)
	}
	log.Printf("Parsed %d points.", len(parsed.Points))
	for _, w := range parsed.ParseErrors {
		log.Printf("- %s", w)
	}

	sorted := parser.SortPoints(parsed.Points)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var curve *fit.FittedCurve
	if len(sorted) >= cfg.MinPointsForFit {
		log.Printf("Fitting %s curve (loss: %s)...", fitType, opts.algorithm)
		params := fit.Fit(fitType, sorted, cfg, opts.algorithm, rng)
		curve = &fit.FittedCurve{Type: fitType, Params: params}
	} else {
		log.Printf("Only %d points (< %d); skipping fit.", len(sorted), cfg.MinPointsForFit)
	}

	helper := func(pts []parser.DataPoint, c fit.Config) []float64 {
		return fit.FitIC50Monophasic(pts, c, rng)
	}
	metrics := fit.ComputeMetrics(curve, sorted, cfg, opts.algorithm, helper)
	log.Printf("Metrics: R²=%.4f IC50=%.4g AUC=%.4f Emax=%.2f",
		metrics.RSquared, metrics.IC50, metrics.AUC, metrics.Emax)

	plotImages := make(map[string][]byte)
	if curve != nil {
		if img, err := report.CreateCurvePlot(sorted, curve, metrics, fmt.Sprintf("Dose-Response: %s", opts.drugLabel)); err != nil {
			log.Printf("Error generating curve plot: %v", err)
		} else {
			plotImages["curve"] = img
		}
		if img, err := report.CreateResidualPlot(sorted, curve, "Fit Residuals"); err != nil {
			log.Printf("Error generating residual plot: %v", err)
		} else {
			plotImages["residuals"] = img
		}
	}

	if opts.pngPath != "" {
		if img, ok := plotImages["curve"]; ok {
			if err := os.WriteFile(opts.pngPath, img, 0o644); err != nil {
				return fmt.Errorf("writing PNG: %w", err)
			}
			log.Printf("Curve plot written: %s", opts.pngPath)
		} else {
			log.Printf("No curve plot available; skipping PNG output.")
		}
	}

	if opts.pdfPath != "" {
		log.Printf("Generating PDF: %s", opts.pdfPath)
		if err := report.BuildPDFReport(opts.pdfPath, opts.drugLabel, parsed.Points, curve, metrics, plotImages); err != nil {
			return fmt.Errorf("generating PDF report: %w", err)
		}
		log.Printf("PDF report written: %s", opts.pdfPath)
	}

	if opts.exportPath != "" {
		if err := report.ExportResultsCSV(opts.exportPath, parsed.Points, curve, metrics); err != nil {
			return fmt.Errorf("exporting results CSV: %w", err)
		}
		log.Printf("Results CSV written: %s", opts.exportPath)
	}

	return nil
}
