package engine

import "math"

// PowerLossInput collects everything the loss model needs for one pass.
// SlippagePercent, when non-nil, overrides the traction-type default.
type PowerLossInput struct {
	EnginePowerHP   float64
	TotalWeightKG   float64
	SpeedKMH        float64
	SlopePercent    float64
	AltitudeM       float64
	Soil            SoilType
	Traction        TractionType
	SlippagePercent *float64
}

// PowerLoss is the loss breakdown for one tractor on one terrain.
type PowerLoss struct {
	SlopeHP        float64 `json:"slopeHp"`
	AltitudeHP     float64 `json:"altitudeHp"`
	RollingHP      float64 `json:"rollingHp"`
	SlippageHP     float64 `json:"slippageHp"`
	TotalHP        float64 `json:"totalHp"`
	NetPowerHP     float64 `json:"netPowerHp"`
	EfficiencyPct  float64 `json:"efficiencyPercent"`
	RollingCoeff   float64 `json:"rollingCoefficient"`
	SlippageApplied float64 `json:"slippagePercentApplied"`
}

// SlopeLossHP is the power spent climbing: (weight * speed * slope) / 273.
func SlopeLossHP(totalWeightKG, speedKMH, slopePercent float64) float64 {
	return nonNegative(totalWeightKG * speedKMH * slopePercent / 273)
}

// AltitudeLossHP models the ~3% power drop per 300 m of elevation.
func AltitudeLossHP(enginePowerHP, altitudeM float64) float64 {
	return nonNegative(enginePowerHP * 0.03 * (altitudeM / 300))
}

// RollingLossHP is the rolling-resistance loss for the given coefficient.
func RollingLossHP(totalWeightKG, rollingCoeff, speedKMH float64) float64 {
	return nonNegative(totalWeightKG * rollingCoeff * speedKMH / 273)
}

// SlippageLossHP is the fraction of engine power lost to wheel or track slip.
func SlippageLossHP(enginePowerHP, slippagePercent float64) float64 {
	return nonNegative(enginePowerHP * slippagePercent / 100)
}

// ComputePowerLoss evaluates the four loss terms and derives net power and
// efficiency. Zero weight, slope or altitude zeroes the corresponding term;
// no term goes negative.
func ComputePowerLoss(p Params, in PowerLossInput) PowerLoss {
	coeff := p.rollingCoeff(in.Soil)
	slippage := p.slippagePercent(in.Traction)
	if in.SlippagePercent != nil {
		slippage = *in.SlippagePercent
	}

	out := PowerLoss{
		SlopeHP:         SlopeLossHP(in.TotalWeightKG, in.SpeedKMH, in.SlopePercent),
		AltitudeHP:      AltitudeLossHP(in.EnginePowerHP, in.AltitudeM),
		RollingHP:       RollingLossHP(in.TotalWeightKG, coeff, in.SpeedKMH),
		SlippageHP:      SlippageLossHP(in.EnginePowerHP, slippage),
		RollingCoeff:    coeff,
		SlippageApplied: slippage,
	}
	out.TotalHP = out.SlopeHP + out.AltitudeHP + out.RollingHP + out.SlippageHP
	out.NetPowerHP = in.EnginePowerHP - out.TotalHP
	if in.EnginePowerHP > 0 {
		out.EfficiencyPct = out.NetPowerHP / in.EnginePowerHP * 100
	}
	return out
}

// RequiredPower is the minimum-power result with the raw factors that
// produced it, kept for explainability in API responses.
type RequiredPower struct {
	BaseHP               float64 `json:"baseHp"`
	Cn                   float64 `json:"coneIndex"`
	SoilFactor           float64 `json:"soilFactor"`
	SlopeFactor          float64 `json:"slopeFactor"`
	WorkingDepthM        float64 `json:"workingDepthM"`
	TotalHP              float64 `json:"totalHp"`
	RequiresHighTraction bool    `json:"requiresHighTraction"`
}

// MinimumPower inflates the implement's rated draft by soil strength and
// slope. The slope factor is monotone in slope and gets a fixed bump at the
// steep threshold, which also flags the high-traction requirement consumed
// by the recommendation filter.
func MinimumPower(p Params, imp Implement, terrain Terrain) RequiredPower {
	analysis := Analyze(p, terrain)

	depth := imp.WorkingDepthM
	if depth <= 0 {
		depth = p.DefaultWorkingDepthM
	}

	return RequiredPower{
		BaseHP:               imp.PowerRequirementHP,
		Cn:                   analysis.Cn,
		SoilFactor:           analysis.SoilFactor,
		SlopeFactor:          analysis.SlopeFactor,
		WorkingDepthM:        depth,
		TotalHP:              imp.PowerRequirementHP * analysis.SoilFactor * analysis.SlopeFactor,
		RequiresHighTraction: analysis.RequiresHighTraction,
	}
}

func nonNegative(v float64) float64 {
	return math.Max(0, v)
}
