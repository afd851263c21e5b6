package fit

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/mtran-code/ddr-demo/internal/parser"
)

// FitIC50Monophasic is the independent multi-start monophasic sub-fit used
// to obtain a stable IC50 when the main fit is biphasic. It runs Nelder–Mead
// from three seeds (one derived from the data, two fixed), each expanded
// into a jittered simplex, always against the plain squared-error objective
// regardless of the configured algorithm, and keeps the candidate with the
// lowest sum of squared residuals on the percent-viability scale. Returns
// nil when fewer than 2 points are supplied. A nil rng makes the simplex
// jitter deterministic.
func FitIC50Monophasic(sorted []parser.DataPoint, cfg Config, rng *rand.Rand) []float64 {
	if len(sorted) < 2 {
		return nil
	}

	logX := make([]float64, len(sorted))
	minFraction := math.Inf(1)
	for i, pt := range sorted {
		logX[i] = math.Log10(pt.Concentration)
		if f := pt.Viability / 100; f < minFraction {
			minFraction = f
		}
	}

	seeds := [][]float64{
		{1.0, math.Max(0, math.Min(1, minFraction)), math.Pow(10, stat.Mean(logX, nil))},
		{1.0, 0.0, 1.0},
		{0.5, 0.1, 0.01},
	}

	objective := func(params []float64) float64 {
		return ObjectiveFunction(params, sorted, Monophasic, cfg, "ols")
	}

	var best []float64
	bestSSR := math.Inf(1)
	for _, seed := range seeds {
		simplex := jitteredSimplex(projectToBounds(seed, cfg), cfg, rng)
		candidate := projectToBounds(NelderMead(objective, simplex, cfg.NMMaxIterations, cfg.NMTolerance), cfg)
		if ssr := percentSSR(candidate, sorted); ssr < bestSSR {
			best, bestSSR = candidate, ssr
		}
	}
	return best
}

// jitteredSimplex expands a seed into a k+1 vertex simplex by perturbing one
// coordinate per extra vertex multiplicatively: a small factor on the eInf
// coordinate, a larger one elsewhere. A zero coordinate gets the jitter as
// an absolute offset.
func jitteredSimplex(seed []float64, cfg Config, rng *rand.Rand) [][]float64 {
	simplex := make([][]float64, len(seed)+1)
	base := make([]float64, len(seed))
	copy(base, seed)
	simplex[0] = base

	for j := range seed {
		jitter := cfg.JitterOther
		if j%3 == 1 { // eInf coordinate of each phase
			jitter = cfg.JitterEInf
		}
		if rng != nil {
			jitter *= 0.5 + rng.Float64()
		}
		vertex := make([]float64, len(seed))
		copy(vertex, seed)
		if vertex[j] == 0 {
			vertex[j] = jitter
		} else {
			vertex[j] *= 1 + jitter
		}
		simplex[j+1] = vertex
	}
	return simplex
}

// percentSSR scores a monophasic candidate by its unweighted sum of squared
// residuals on the percent-viability scale.
func percentSSR(params []float64, sorted []parser.DataPoint) float64 {
	ssr := 0.0
	for _, pt := range sorted {
		r := pt.Viability - Hill(pt.Concentration, params)*100
		ssr += r * r
	}
	return ssr
}
