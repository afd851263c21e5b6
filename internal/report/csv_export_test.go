package report

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtran-code/ddr-demo/internal/fit"
	"github.com/mtran-code/ddr-demo/internal/parser"
)

func samplePoints() []parser.DataPoint {
	return []parser.DataPoint{
		{Concentration: 0.001, Viability: 100},
		{Concentration: 0.01, Viability: 95},
		{Concentration: 0.1, Viability: 50},
		{Concentration: 1, Viability: 10},
		{Concentration: 10, Viability: 5},
	}
}

func TestExportResultsCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	curve := &fit.FittedCurve{Type: fit.Monophasic, Params: []float64{1.2, 0.05, 0.1}}
	metrics := fit.Metrics{RSquared: 0.99, IC50: 0.11, AUC: 1.5, Emax: 6.2}

	require.NoError(t, ExportResultsCSV(path, samplePoints(), curve, metrics))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	require.NoError(t, err)

	require.Equal(t, []string{"concentration_uM", "viability_pct"}, rows[0])
	assert.Equal(t, []string{"0.001", "100.00"}, rows[1])

	// Data rows, fit_type row, one phase row, four metric rows.
	assert.Len(t, rows, 1+5+1+1+4)

	byKey := make(map[string][]string)
	for _, row := range rows[6:] {
		byKey[row[0]] = row
	}
	assert.Equal(t, "monophasic", byKey["fit_type"][1])
	assert.Equal(t, "0.9900", byKey["r_squared"][1])
	assert.Equal(t, "6.20", byKey["emax_pct"][1])
}

func TestExportResultsCSVNilCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	nan := math.NaN()
	metrics := fit.Metrics{RSquared: nan, IC50: nan, AUC: nan, Emax: nan}

	require.NoError(t, ExportResultsCSV(path, samplePoints(), nil, metrics))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.NotContains(t, content, "fit_type")
	assert.Contains(t, content, "r_squared,n/a")
	assert.Contains(t, content, "ic50_uM,n/a")
}
