package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mtran-code/ddr-demo/internal/parser"
)

// InitialGuess builds a deliberately crude starting parameter vector from the
// empirical dose–response shape. points must be sorted by concentration. The
// result seeds the optimizer and is not itself expected to be a good fit.
func InitialGuess(fitType FitType, sorted []parser.DataPoint, cfg Config) []float64 {
	n := len(sorted)
	logX := make([]float64, n)
	fractions := make([]float64, n)
	for i, pt := range sorted {
		logX[i] = math.Log10(pt.Concentration)
		fractions[i] = clamp(pt.Viability/100, 0, 1)
	}

	minFraction := fractions[0]
	for _, f := range fractions[1:] {
		if f < minFraction {
			minFraction = f
		}
	}
	eInf := math.Min(0.9, math.Max(0, 0.9*minFraction))

	// Scan consecutive pairs for a crossing of the 50% viability level and
	// interpolate it in log-concentration space. With no bracketing pair the
	// mean log-concentration stands in.
	logEC50 := stat.Mean(logX, nil)
	for i := 0; i+1 < n; i++ {
		a, b := fractions[i]-0.5, fractions[i+1]-0.5
		if a == b {
			continue
		}
		if a*b <= 0 {
			t := a / (a - b)
			logEC50 = logX[i] + t*(logX[i+1]-logX[i])
			break
		}
	}

	if fitType == Monophasic {
		return []float64{1.0, eInf, math.Pow(10, logEC50)}
	}

	// Biphasic: seed two widely separated phases at the 25th/75th percentile
	// log-concentrations. Quantile wants the series sorted; logX already is,
	// since the points arrive sorted by concentration.
	p25 := stat.Quantile(0.25, stat.Empirical, logX, nil)
	p75 := stat.Quantile(0.75, stat.Empirical, logX, nil)
	eInf2 := math.Min(0.95, math.Max(eInf+0.05, 0))
	return []float64{
		1.0, eInf, math.Pow(10, p25),
		1.0, eInf2, math.Pow(10, p75),
	}
}
