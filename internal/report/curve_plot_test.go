package report

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtran-code/ddr-demo/internal/fit"
	"github.com/mtran-code/ddr-demo/internal/parser"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestCreateCurvePlotProducesPNG(t *testing.T) {
	sorted := parser.SortPoints(samplePoints())
	curve := &fit.FittedCurve{Type: fit.Monophasic, Params: []float64{1.2, 0.05, 0.1}}
	metrics := fit.Metrics{RSquared: 0.99, IC50: 0.11, AUC: 1.5, Emax: 6.2}

	img, err := CreateCurvePlot(sorted, curve, metrics, "Dose-Response: test")
	require.NoError(t, err)
	require.NotEmpty(t, img)
	assert.Equal(t, pngMagic, img[:4])
}

func TestCreateCurvePlotWithoutFit(t *testing.T) {
	sorted := parser.SortPoints(samplePoints())
	nan := math.NaN()
	metrics := fit.Metrics{RSquared: nan, IC50: nan, AUC: nan, Emax: nan}

	img, err := CreateCurvePlot(sorted, nil, metrics, "Dose-Response: raw")
	require.NoError(t, err)
	assert.NotEmpty(t, img)
}

func TestCreateCurvePlotNoPoints(t *testing.T) {
	_, err := CreateCurvePlot(nil, nil, fit.Metrics{}, "empty")
	assert.Error(t, err)
}

func TestCreateResidualPlotProducesPNG(t *testing.T) {
	sorted := parser.SortPoints(samplePoints())
	curve := &fit.FittedCurve{Type: fit.Monophasic, Params: []float64{1.2, 0.05, 0.1}}

	img, err := CreateResidualPlot(sorted, curve, "Fit Residuals")
	require.NoError(t, err)
	require.NotEmpty(t, img)
	assert.Equal(t, pngMagic, img[:4])
}

func TestCreateResidualPlotRequiresCurve(t *testing.T) {
	sorted := parser.SortPoints(samplePoints())
	_, err := CreateResidualPlot(sorted, nil, "Fit Residuals")
	assert.Error(t, err)
}
