package fit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtran-code/ddr-demo/internal/parser"
)

func TestIC50HelperRequiresTwoPoints(t *testing.T) {
	cfg := DefaultConfig()
	assert.Nil(t, FitIC50Monophasic(nil, cfg, nil))
	assert.Nil(t, FitIC50Monophasic([]parser.DataPoint{{Concentration: 1, Viability: 50}}, cfg, nil))
}

func TestIC50HelperRecoversCleanCurve(t *testing.T) {
	cfg := DefaultConfig()
	// Truth matches one of the fixed seeds closely, so the multi-start
	// Nelder–Mead has an easy basin to land in.
	truth := []float64{1, 0.0, 1.0}
	points := noiselessMonophasic(truth, []float64{0.01, 0.1, 0.5, 1, 5, 10, 100})

	sub := FitIC50Monophasic(points, cfg, nil)
	require.NotNil(t, sub)
	require.Len(t, sub, 3)
	assert.True(t, withinBounds(sub, cfg))
	assert.InDelta(t, 1.0, sub[2], 0.2)
}

func TestIC50HelperUsesSquaredLossRegardlessOfConfig(t *testing.T) {
	cfg := DefaultConfig()
	points := testPoints()

	// The helper always fits against plain squared error; the configured
	// algorithm plays no part, so results are identical either way.
	a := FitIC50Monophasic(points, cfg, nil)
	cfgHuber := cfg
	cfgHuber.HuberDelta = 0.001
	b := FitIC50Monophasic(points, cfgHuber, nil)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a, b)
}

func TestIC50HelperDeterministicWithFixedSeed(t *testing.T) {
	cfg := DefaultConfig()
	points := testPoints()

	a := FitIC50Monophasic(points, cfg, rand.New(rand.NewSource(9)))
	b := FitIC50Monophasic(points, cfg, rand.New(rand.NewSource(9)))
	assert.Equal(t, a, b)
}
