package fit

import (
	"math"
	"math/rand"
)

// paramRange describes one dimension of the search box. EC50 dimensions are
// walked in log10 space and mapped back before evaluation.
type paramRange struct {
	min, max float64
	isLog    bool
}

func searchRanges(dimensions int, cfg Config) []paramRange {
	ranges := make([]paramRange, dimensions)
	for i := 0; i < dimensions; i += 3 {
		ranges[i] = paramRange{min: cfg.HillSlopeMin, max: cfg.HillSlopeMax}
		ranges[i+1] = paramRange{min: cfg.EInfMin, max: cfg.EInfMax}
		ranges[i+2] = paramRange{min: cfg.LogEC50Min, max: cfg.LogEC50Max, isLog: true}
	}
	return ranges
}

func meshDensities(dimensions int, cfg Config) []int {
	densities := make([]int, dimensions)
	for i := range densities {
		densities[i] = cfg.MeshDensities[i%len(cfg.MeshDensities)]
	}
	return densities
}

// meshSearch evaluates the objective over a coarse cartesian grid spanning
// the bound box (EC50 discretized in log space) plus the supplied guess, and
// returns the minimizer. When the full grid exceeds cfg.MeshMaxCandidates the
// candidates are uniformly subsampled down to the cap using rng, the only
// source of run-to-run variance in a fit.
func meshSearch(objective func([]float64) float64, guess []float64, cfg Config, rng *rand.Rand) []float64 {
	ranges := searchRanges(len(guess), cfg)
	densities := meshDensities(len(guess), cfg)

	total := 1
	for _, d := range densities {
		total *= d
	}

	candidates := make([][]float64, 0, total)
	indices := make([]int, len(densities))
	for {
		candidate := make([]float64, len(guess))
		for j, r := range ranges {
			var level float64
			if densities[j] > 1 {
				level = r.min + float64(indices[j])*(r.max-r.min)/float64(densities[j]-1)
			} else {
				level = (r.min + r.max) / 2
			}
			if r.isLog {
				level = math.Pow(10, level)
			}
			candidate[j] = level
		}
		candidates = append(candidates, projectToBounds(candidate, cfg))

		// Advance the mixed-radix counter over grid levels.
		j := 0
		for ; j < len(indices); j++ {
			indices[j]++
			if indices[j] < densities[j] {
				break
			}
			indices[j] = 0
		}
		if j == len(indices) {
			break
		}
	}

	if len(candidates) > cfg.MeshMaxCandidates {
		subset := make([][]float64, 0, cfg.MeshMaxCandidates)
		for _, k := range rng.Perm(len(candidates))[:cfg.MeshMaxCandidates] {
			subset = append(subset, candidates[k])
		}
		candidates = subset
	}

	best := projectToBounds(guess, cfg)
	bestValue := objective(best)
	for _, candidate := range candidates {
		if v := objective(candidate); v < bestValue {
			best, bestValue = candidate, v
		}
	}
	return best
}

// patternSearch runs coordinate-wise pattern search from start: each sweep
// probes both signed directions in every dimension with a step of
// span·PatternStepScale·(bound range); a sweep with no strict improvement
// halves the span, and the search stops once span falls to
// cfg.PatternPrecision.
func patternSearch(objective func([]float64) float64, start []float64, cfg Config) []float64 {
	ranges := searchRanges(len(start), cfg)

	best := projectToBounds(start, cfg)
	bestValue := objective(best)

	span := cfg.PatternSpan
	for span > cfg.PatternPrecision {
		improved := false
		for j, r := range ranges {
			step := span * cfg.PatternStepScale * (r.max - r.min)
			for _, dir := range []float64{1, -1} {
				trial := make([]float64, len(best))
				copy(trial, best)
				if r.isLog {
					trial[j] = math.Pow(10, math.Log10(trial[j])+dir*step)
				} else {
					trial[j] += dir * step
				}
				trial = projectToBounds(trial, cfg)
				if v := objective(trial); v < bestValue {
					best, bestValue = trial, v
					improved = true
				}
			}
		}
		if !improved {
			span /= 2
		}
	}
	return best
}
