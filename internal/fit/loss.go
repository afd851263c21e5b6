package fit

import "math"

// SquaredLoss is the ordinary least-squares per-residual loss.
func SquaredLoss(residual float64) float64 {
	return residual * residual
}

// HuberLoss is quadratic for |residual| <= delta and linear beyond, reducing
// the influence of outlier wells. delta is in fractional-viability units
// (residuals are computed on the 0–1 scale, not percent).
func HuberLoss(residual, delta float64) float64 {
	abs := math.Abs(residual)
	if abs <= delta {
		return 0.5 * residual * residual
	}
	return delta * (abs - 0.5*delta)
}

// lossFor selects the per-residual loss by algorithm name. "huber" selects
// Huber; every other name (including "hill", "ols" and anything
// unrecognized) falls back to squared loss.
func lossFor(algorithm string, delta float64) func(float64) float64 {
	if algorithm == "huber" {
		return func(r float64) float64 { return HuberLoss(r, delta) }
	}
	return SquaredLoss
}
