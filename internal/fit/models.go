package fit

import "math"

// FitType selects the parametric dose–response model.
type FitType string

const (
	Monophasic FitType = "monophasic"
	Biphasic   FitType = "biphasic"
)

// FittedCurve is the immutable result of one fit request. Params is
// [hillSlope, eInf, ec50] for monophasic curves and two such triples
// concatenated for biphasic curves.
type FittedCurve struct {
	Type   FitType
	Params []float64
}

// Hill evaluates the monophasic Hill equation at the given concentration and
// returns the predicted viability fraction. params is [hillSlope, eInf, ec50].
// The upper asymptote is fixed at 1.0 (100% viability at zero dose); the
// curve approaches eInf at saturating dose. Concentration and ec50 must be
// positive.
func Hill(concentration float64, params []float64) float64 {
	hs, eInf, ec50 := params[0], params[1], params[2]
	return eInf + (1-eInf)/(1+math.Pow(10, hs*(math.Log10(concentration)-math.Log10(ec50))))
}

// BiphasicModel evaluates the two-stage model: the product of two independent
// Hill phases, params [hs1, eInf1, ec50_1, hs2, eInf2, ec50_2]. The product
// is not normalized, so it can undershoot either phase alone.
func BiphasicModel(concentration float64, params []float64) float64 {
	return Hill(concentration, params[:3]) * Hill(concentration, params[3:])
}

// Evaluate dispatches to the model selected by fitType and returns the
// predicted viability fraction. Rendering collaborators sample this to draw
// the fitted curve.
func Evaluate(fitType FitType, concentration float64, params []float64) float64 {
	if fitType == Biphasic {
		return BiphasicModel(concentration, params)
	}
	return Hill(concentration, params)
}
