package engine

// Params carries every tunable the engine uses. Entry points take it
// explicitly so tests can pin or vary parameter sets; DefaultParams returns
// the production values.
type Params struct {
	// Default slippage percent per traction type, overridable per call.
	SlippageFourWheel float64
	SlippageTwoWheel  float64
	SlippageTracked   float64
	SlippageDefault   float64

	// Soil defaults applied when the soil type is unrecognized.
	DefaultCn           float64
	DefaultRollingCoeff float64

	// Default implement working depth in meters when the record omits it.
	DefaultWorkingDepthM float64

	// Slope percentage at and above which terrain classifies as STEEP,
	// the minimum-power slope factor gets its bump, and the traction
	// hard filter activates.
	SteepSlopeThreshold float64

	// Optimal sizing band: tractor power between required*BandLow and
	// required*BandHigh earns the full efficiency score.
	OptimalBandLow  float64
	OptimalBandHigh float64

	// Per-component score weights. They sum to the 100-point scale.
	WeightEfficiency   float64
	WeightTraction     float64
	WeightSoil         float64
	WeightEconomic     float64
	WeightAvailability float64
}

// DefaultParams returns the standard parameter set.
func DefaultParams() Params {
	return Params{
		SlippageFourWheel: 8,
		SlippageTwoWheel:  15,
		SlippageTracked:   5,
		SlippageDefault:   12,

		DefaultCn:           35,
		DefaultRollingCoeff: 0.08,

		DefaultWorkingDepthM: 0.20,

		SteepSlopeThreshold: 15,

		OptimalBandLow:  1.0,
		OptimalBandHigh: 1.25,

		WeightEfficiency:   40,
		WeightTraction:     25,
		WeightSoil:         15,
		WeightEconomic:     10,
		WeightAvailability: 10,
	}
}

// MaxScore is the total score scale.
const MaxScore = 100.0

// soilCn resolves the ASABE cone-index proxy for a soil type. Lower values
// mean weaker soil and therefore a larger power inflation factor.
func (p Params) soilCn(soil SoilType) float64 {
	switch soil {
	case SoilClay:
		return 30
	case SoilLoam:
		return 40
	case SoilSandy:
		return 25
	case SoilSilt:
		return 35
	case SoilPeat:
		return 20
	default:
		return p.DefaultCn
	}
}

// rollingCoeff resolves the rolling-resistance coefficient for a soil type.
func (p Params) rollingCoeff(soil SoilType) float64 {
	switch soil {
	case SoilClay:
		return 0.08
	case SoilLoam:
		return 0.06
	case SoilSandy:
		return 0.16
	case SoilSilt:
		return 0.10
	case SoilPeat:
		return 0.20
	default:
		return p.DefaultRollingCoeff
	}
}

// slippagePercent resolves the default slippage for a traction type.
func (p Params) slippagePercent(traction TractionType) float64 {
	switch traction {
	case TractionFourWheel:
		return p.SlippageFourWheel
	case TractionTwoWheel:
		return p.SlippageTwoWheel
	case TractionTracked:
		return p.SlippageTracked
	default:
		return p.SlippageDefault
	}
}
