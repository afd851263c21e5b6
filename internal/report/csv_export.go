package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/mtran-code/ddr-demo/internal/fit"
	"github.com/mtran-code/ddr-demo/internal/parser"
)

// ExportResultsCSV writes the observations, fitted parameters and metrics to
// a delimited text file with fixed-precision formatting. Points go out in
// their arrival order; the fit and metrics sections follow as commented-style
// key/value rows so the file stays loadable as plain CSV.
func ExportResultsCSV(filepath string, points []parser.DataPoint, curve *fit.FittedCurve, metrics fit.Metrics) error {
	file, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"concentration_uM", "viability_pct"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, pt := range points {
		row := []string{
			strconv.FormatFloat(pt.Concentration, 'g', 6, 64),
			strconv.FormatFloat(pt.Viability, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write data row: %w", err)
		}
	}

	if curve != nil {
		if err := writer.Write([]string{"fit_type", string(curve.Type)}); err != nil {
			return fmt.Errorf("failed to write fit row: %w", err)
		}
		for phase := 0; phase*3+2 < len(curve.Params); phase++ {
			row := []string{
				fmt.Sprintf("phase_%d", phase+1),
				strconv.FormatFloat(curve.Params[phase*3], 'f', 4, 64),
				strconv.FormatFloat(curve.Params[phase*3+1], 'f', 4, 64),
				strconv.FormatFloat(curve.Params[phase*3+2], 'g', 6, 64),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write parameter row: %w", err)
			}
		}
	}

	metricRows := [][2]string{
		{"r_squared", formatMetric(metrics.RSquared, "%.4f")},
		{"ic50_uM", formatMetric(metrics.IC50, "%.6g")},
		{"auc", formatMetric(metrics.AUC, "%.4f")},
		{"emax_pct", formatMetric(metrics.Emax, "%.2f")},
	}
	for _, mr := range metricRows {
		if err := writer.Write([]string{mr[0], mr[1]}); err != nil {
			return fmt.Errorf("failed to write metric row: %w", err)
		}
	}

	return nil
}
