package fit

import (
	"github.com/mtran-code/ddr-demo/internal/parser"
)

// boundsPenalty is returned by the objective for any out-of-bounds parameter
// vector, turning the bounded problem into one an unconstrained optimizer
// can walk. Large and finite on purpose: never raised as an error.
const boundsPenalty = 1e12

// ObjectiveFunction computes the weighted robust residual sum for a
// parameter vector against the sorted data points. Residuals are on the
// fractional (0–1) viability scale. The first two and last two sorted points
// carry cfg.EndpointsWeight; for monophasic fits with WeightMidpoint set,
// the point at floor(n/2) carries cfg.MidpointWeight instead (it overrides
// the endpoint weight, not adds to it). The per-residual loss is selected by
// algorithm name (see lossFor).
func ObjectiveFunction(params []float64, sorted []parser.DataPoint, fitType FitType, cfg Config, algorithm string) float64 {
	if !withinBounds(params, cfg) {
		return boundsPenalty
	}

	loss := lossFor(algorithm, cfg.HuberDelta)
	n := len(sorted)
	mid := n / 2

	sum := 0.0
	for i, pt := range sorted {
		predicted := Evaluate(fitType, pt.Concentration, params)
		residual := pt.Viability/100 - predicted

		w := 1.0
		if i < 2 || i >= n-2 {
			w = cfg.EndpointsWeight
		}
		if fitType == Monophasic && cfg.WeightMidpoint && i == mid {
			w = cfg.MidpointWeight
		}
		sum += w * loss(residual)
	}
	return sum
}
