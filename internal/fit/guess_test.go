package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtran-code/ddr-demo/internal/parser"
)

func TestInitialGuessMonophasic(t *testing.T) {
	cfg := DefaultConfig()
	guess := InitialGuess(Monophasic, testPoints(), cfg)
	require.Len(t, guess, 3)

	// eInf = min(0.9, max(0, 0.9·minFraction)); min fraction here is 0.05.
	assert.InDelta(t, 0.045, guess[1], 1e-12)

	// The 50% crossing sits between 0.01 (95%) and 0.1 (50%); interpolation
	// lands on 0.1 exactly since the second point is at 50%.
	assert.InDelta(t, 0.1, guess[2], 1e-9)
}

func TestInitialGuessFallsBackToMeanLogConcentration(t *testing.T) {
	cfg := DefaultConfig()
	// No point crosses 50%: all viabilities above.
	points := parser.SortPoints([]parser.DataPoint{
		{Concentration: 0.01, Viability: 100},
		{Concentration: 0.1, Viability: 95},
		{Concentration: 1, Viability: 90},
		{Concentration: 10, Viability: 85},
	})
	guess := InitialGuess(Monophasic, points, cfg)

	meanLog := (math.Log10(0.01) + math.Log10(0.1) + math.Log10(1) + math.Log10(10)) / 4
	assert.InDelta(t, math.Pow(10, meanLog), guess[2], 1e-9)
}

func TestInitialGuessClampsViabilityFractions(t *testing.T) {
	cfg := DefaultConfig()
	// Negative and >100% viabilities clamp to [0, 1] before shape analysis,
	// so eInf stays at 0 rather than going negative.
	points := parser.SortPoints([]parser.DataPoint{
		{Concentration: 0.01, Viability: 120},
		{Concentration: 0.1, Viability: 80},
		{Concentration: 1, Viability: 30},
		{Concentration: 10, Viability: -5},
	})
	guess := InitialGuess(Monophasic, points, cfg)
	assert.Equal(t, 0.0, guess[1])
}

func TestInitialGuessBiphasic(t *testing.T) {
	cfg := DefaultConfig()
	guess := InitialGuess(Biphasic, testPoints(), cfg)
	require.Len(t, guess, 6)

	// Two widely separated EC50 seeds from the 25th/75th percentile
	// log-concentrations.
	assert.Less(t, guess[2], guess[5])

	// Second-phase eInf = min(0.95, max(eInf+0.05, 0)).
	assert.InDelta(t, guess[1]+0.05, guess[4], 1e-12)

	// Both phases seed a unit Hill slope.
	assert.Equal(t, 1.0, guess[0])
	assert.Equal(t, 1.0, guess[3])
}
