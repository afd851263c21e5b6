package fit

// Config is the single flat bundle of numeric options read by every fitting
// component. It is resolved once at the boundary (defaults applied at
// construction, CLI overrides on top) and treated as immutable afterwards;
// no component reads ambient state.
type Config struct {
	// Fitting.
	MinPointsForFit int    // below this, metrics are all NaN (the fit itself has no gate)
	EmaxMode        string // only "fromCurveAtMax" is implemented

	// Parameter bounds. The EC50 bound is expressed and enforced in log10
	// space; the parameter itself is stored linearly.
	HillSlopeMin float64
	HillSlopeMax float64
	EInfMin      float64
	EInfMax      float64
	LogEC50Min   float64
	LogEC50Max   float64

	// Nelder–Mead.
	NMMaxIterations int
	NMTolerance     float64

	// Projected gradient descent.
	GradMaxIterations int
	GradEps           float64 // relative finite-difference perturbation
	GradAlpha         float64 // initial step size
	GradMaxBacktracks int
	ImprovementTol    float64 // minimum relative improvement to accept / to skip the mesh fallback

	// Robust weighting.
	HuberDelta      float64 // fractional-viability units
	EndpointsWeight float64 // applied to the first two and last two sorted points
	MidpointWeight  float64 // monophasic only, index floor(n/2), overrides the endpoint weight
	WeightMidpoint  bool

	// Mesh + pattern search.
	MeshDensities     []int // grid levels per monophasic parameter; doubled for biphasic
	MeshMaxCandidates int
	PatternStepScale  float64 // step = span · scale · bound range, per dimension
	PatternSpan       float64
	PatternPrecision  float64

	// Simplex jitter for the IC50 helper seeds.
	JitterEInf  float64
	JitterOther float64
}

// DefaultConfig returns the standard configuration. Callers override fields
// before the first fit; the bundle must not change between a fit and the
// metrics computed from it.
func DefaultConfig() Config {
	return Config{
		MinPointsForFit: 4,
		EmaxMode:        "fromCurveAtMax",

		HillSlopeMin: 0.05,
		HillSlopeMax: 10,
		EInfMin:      0,
		EInfMax:      1,
		LogEC50Min:   -4,
		LogEC50Max:   3,

		NMMaxIterations: 400,
		NMTolerance:     1e-9,

		GradMaxIterations: 200,
		GradEps:           1e-6,
		GradAlpha:         1.0,
		GradMaxBacktracks: 30,
		ImprovementTol:    1e-6,

		HuberDelta:      0.05,
		EndpointsWeight: 10,
		MidpointWeight:  10,
		WeightMidpoint:  false,

		MeshDensities:     []int{2, 10, 5},
		MeshMaxCandidates: 2000,
		PatternStepScale:  0.25,
		PatternSpan:       1.0,
		PatternPrecision:  1e-4,

		JitterEInf:  0.05,
		JitterOther: 0.25,
	}
}
