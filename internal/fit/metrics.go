package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/mtran-code/ddr-demo/internal/parser"
)

// Metrics are the pharmacological summary statistics derived from a fitted
// curve and its dataset. NaN marks an undefined value (insufficient data, a
// degenerate IC50 condition, an unimplemented Emax mode), never a failure.
// Metrics are always recomputed wholesale from the current curve and data.
type Metrics struct {
	RSquared float64
	IC50     float64
	AUC      float64
	Emax     float64
}

// IC50Helper produces a stable monophasic parameter vector for IC50
// extraction when the main fit is biphasic. nil means no usable sub-fit.
type IC50Helper func(sorted []parser.DataPoint, cfg Config) []float64

func nanMetrics() Metrics {
	nan := math.NaN()
	return Metrics{RSquared: nan, IC50: nan, AUC: nan, Emax: nan}
}

// ComputeMetrics derives R², IC50, AUC and Emax from a fitted curve and the
// sorted data points. With fewer than cfg.MinPointsForFit points or a nil
// curve every metric is NaN: a normal, user-visible state, not an error.
// The IC50 helper is an injected collaborator so the biphasic path can reuse
// the independent monophasic sub-fit.
func ComputeMetrics(curve *FittedCurve, sorted []parser.DataPoint, cfg Config, algorithm string, helper IC50Helper) Metrics {
	if curve == nil || len(sorted) < cfg.MinPointsForFit {
		return nanMetrics()
	}

	return Metrics{
		RSquared: rSquared(curve, sorted),
		IC50:     ic50(curve, sorted, cfg, helper),
		AUC:      AUCLog10(sorted),
		Emax:     emax(curve, sorted, cfg),
	}
}

// rSquared is 1 − SSR/SST on the percent-viability scale, using the
// unweighted model prediction rather than the fitting objective. Zero total
// variance yields exactly 0, not NaN.
func rSquared(curve *FittedCurve, sorted []parser.DataPoint) float64 {
	observed := make([]float64, len(sorted))
	for i, pt := range sorted {
		observed[i] = pt.Viability
	}
	mean := stat.Mean(observed, nil)

	ssr, sst := 0.0, 0.0
	for i, pt := range sorted {
		predicted := Evaluate(curve.Type, pt.Concentration, curve.Params) * 100
		ssr += (observed[i] - predicted) * (observed[i] - predicted)
		sst += (observed[i] - mean) * (observed[i] - mean)
	}
	if sst == 0 {
		return 0
	}
	return 1 - ssr/sst
}

// ic50 is the concentration at which the fitted curve crosses 50% viability.
// Monophasic curves have the closed form ec50·(0.5/(0.5−eInf))^(1/hillSlope),
// defined only when eInf < 0.5 (otherwise the curve never reaches 50%).
// Biphasic curves delegate to the helper sub-fit and take its ec50.
func ic50(curve *FittedCurve, sorted []parser.DataPoint, cfg Config, helper IC50Helper) float64 {
	if curve.Type == Biphasic {
		if helper == nil {
			return math.NaN()
		}
		sub := helper(sorted, cfg)
		if sub == nil {
			return math.NaN()
		}
		return sub[2]
	}

	hs, eInf, ec50 := curve.Params[0], curve.Params[1], curve.Params[2]
	if eInf >= 0.5 || hs == 0 {
		return math.NaN()
	}
	value := ec50 * math.Pow(0.5/(0.5-eInf), 1/hs)
	if !isFinite(value) {
		return math.NaN()
	}
	return value
}

// AUCLog10 is the trapezoidal integral of capped viability
// (min(viability, 100)) over log10 concentration across the sorted points,
// divided by 100. Duplicated concentrations contribute zero-width trapezoids
// and are left in. The result is not normalized by the tested span: a wider
// span yields a larger magnitude.
func AUCLog10(sorted []parser.DataPoint) float64 {
	if len(sorted) < 2 {
		return math.NaN()
	}
	area := 0.0
	for i := 0; i+1 < len(sorted); i++ {
		x0 := math.Log10(sorted[i].Concentration)
		x1 := math.Log10(sorted[i+1].Concentration)
		y0 := math.Min(sorted[i].Viability, 100)
		y1 := math.Min(sorted[i+1].Viability, 100)
		area += (x1 - x0) * (y0 + y1) / 2
	}
	return area / 100
}

// emax evaluates the fitted model at the maximum observed concentration and
// reports percent viability. Only the "fromCurveAtMax" mode is implemented;
// any other mode value is NaN.
func emax(curve *FittedCurve, sorted []parser.DataPoint, cfg Config) float64 {
	if cfg.EmaxMode != "fromCurveAtMax" {
		return math.NaN()
	}
	maxConc := sorted[len(sorted)-1].Concentration
	return Evaluate(curve.Type, maxConc, curve.Params) * 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
