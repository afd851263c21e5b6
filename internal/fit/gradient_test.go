package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtran-code/ddr-demo/internal/parser"
)

func TestGradientDescentNeverWorseThanStart(t *testing.T) {
	cfg := DefaultConfig()
	points := testPoints()
	objective := func(p []float64) float64 {
		return ObjectiveFunction(p, points, Monophasic, cfg, "ols")
	}

	starts := [][]float64{
		{1, 0.045, 0.1},
		{5, 0.9, 100},
		{0.1, 0.5, 0.001},
	}
	for _, start := range starts {
		projected := projectToBounds(start, cfg)
		result := gradientDescentBounded(objective, start, cfg)
		require.LessOrEqual(t, objective(result), objective(projected))
		assert.True(t, withinBounds(result, cfg))
	}
}

func TestGradientDescentProjectsOutOfBoundsStart(t *testing.T) {
	cfg := DefaultConfig()
	points := testPoints()
	objective := func(p []float64) float64 {
		return ObjectiveFunction(p, points, Monophasic, cfg, "ols")
	}

	result := gradientDescentBounded(objective, []float64{100, -2, 1e9}, cfg)
	assert.True(t, withinBounds(result, cfg))
	assert.Less(t, objective(result), boundsPenalty)
}

func TestGradientDescentRefinesPerturbedOptimum(t *testing.T) {
	cfg := DefaultConfig()
	truth := []float64{1.2, 0.1, 0.5}
	points := make([]parser.DataPoint, 0, 7)
	for _, c := range []float64{0.001, 0.01, 0.1, 0.5, 1, 10, 100} {
		points = append(points, parser.DataPoint{Concentration: c, Viability: Hill(c, truth) * 100})
	}
	objective := func(p []float64) float64 {
		return ObjectiveFunction(p, points, Monophasic, cfg, "ols")
	}

	// Start slightly off the noiseless optimum; descent must close most of
	// the gap.
	start := []float64{1.4, 0.13, 0.7}
	startValue := objective(start)
	result := gradientDescentBounded(objective, start, cfg)
	assert.Less(t, objective(result), startValue/2)
}
