package fit

import "math"

// Parameter vectors are triples of [hillSlope, eInf, ec50], one triple per
// phase. hillSlope and eInf are bounded in linear space; the ec50 bound is
// held in log10 space even though the parameter is stored linearly. Every
// point accepted by the objective or produced by projection satisfies the
// log-space ec50 bound.

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// withinBounds reports whether every parameter lies inside its configured
// bound. A non-positive ec50 has no log10 and always fails.
func withinBounds(params []float64, cfg Config) bool {
	for i := 0; i+2 < len(params); i += 3 {
		hs, eInf, ec50 := params[i], params[i+1], params[i+2]
		if hs < cfg.HillSlopeMin || hs > cfg.HillSlopeMax {
			return false
		}
		if eInf < cfg.EInfMin || eInf > cfg.EInfMax {
			return false
		}
		if ec50 <= 0 {
			return false
		}
		logEC50 := math.Log10(ec50)
		if logEC50 < cfg.LogEC50Min || logEC50 > cfg.LogEC50Max {
			return false
		}
	}
	return true
}

// projectToBounds returns a copy of params with every parameter clamped into
// its bound; the ec50 coordinates are clamped in log10 space and mapped back.
// Idempotent: projecting a projected vector is a no-op.
func projectToBounds(params []float64, cfg Config) []float64 {
	out := make([]float64, len(params))
	copy(out, params)
	for i := 0; i+2 < len(out); i += 3 {
		out[i] = clamp(out[i], cfg.HillSlopeMin, cfg.HillSlopeMax)
		out[i+1] = clamp(out[i+1], cfg.EInfMin, cfg.EInfMax)
		// In-bound ec50 values pass through untouched so projection is
		// exactly idempotent; only violations take the log10 round trip.
		logEC50 := math.Inf(-1)
		if out[i+2] > 0 {
			logEC50 = math.Log10(out[i+2])
		}
		if logEC50 < cfg.LogEC50Min {
			out[i+2] = math.Pow(10, cfg.LogEC50Min)
		} else if logEC50 > cfg.LogEC50Max {
			out[i+2] = math.Pow(10, cfg.LogEC50Max)
		}
	}
	return out
}
