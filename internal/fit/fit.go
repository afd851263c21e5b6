// Package fit implements dose–response curve fitting: monophasic Hill and
// biphasic two-stage models, a weighted robust objective over bounded
// parameters, a multi-stage derivative-free optimizer, and the derived
// pharmacological metrics (R², IC50, AUC, Emax).
//
// Every entry point is a pure function of its explicit inputs; the only
// run-to-run variance comes from the injected random source, used for mesh
// candidate subsampling and for the IC50 helper's simplex jitter. There is
// no caching: any change to data, fit type, algorithm or config is a full
// re-run.
package fit

import (
	"math/rand"
	"time"

	"github.com/mtran-code/ddr-demo/internal/parser"
)

// Fit produces fitted model parameters for the sorted data points using the
// two-tier strategy: build a data-driven initial guess, refine it with
// projected gradient descent, and fall back to a coarse mesh search plus
// coordinate pattern search whenever the refinement fails to beat the guess
// by more than the improvement tolerance. Gradient descent on this objective
// stalls easily in flat or penalty regions; the mesh tier trades speed for
// coverage.
//
// points must be sorted ascending by concentration (see parser.SortPoints).
// There is no minimum-point gate here; that lives with the caller, and
// metrics enforce MinPointsForFit. A nil rng gets a time-seeded source.
func Fit(fitType FitType, points []parser.DataPoint, cfg Config, algorithm string, rng *rand.Rand) []float64 {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	objective := func(params []float64) float64 {
		return ObjectiveFunction(params, points, fitType, cfg, algorithm)
	}

	guess := InitialGuess(fitType, points, cfg)
	guessValue := objective(guess)

	refined := gradientDescentBounded(objective, guess, cfg)
	refinedValue := objective(refined)

	// The refinement must be strictly better than the guess by the relative
	// improvement tolerance, or it is considered stalled.
	if !(refinedValue < guessValue*(1-cfg.ImprovementTol)) {
		meshBest := meshSearch(objective, guess, cfg, rng)
		return patternSearch(objective, meshBest, cfg)
	}

	if guessValue < refinedValue {
		return guess
	}
	return refined
}
