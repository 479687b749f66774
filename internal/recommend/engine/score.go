package engine

// Breakdown is the per-criterion score contribution. Contributions are
// non-negative and sum to the total.
type Breakdown struct {
	Efficiency   float64 `json:"efficiency"`
	Traction     float64 `json:"traction"`
	Soil         float64 `json:"soil"`
	Economic     float64 `json:"economic"`
	Availability float64 `json:"availability"`
}

// Score is the full scoring result for one candidate.
type Score struct {
	Total       float64   `json:"total"`
	Breakdown   Breakdown `json:"breakdown"`
	MaxPossible float64   `json:"maxPossible"`
	Percentage  float64   `json:"percentageScore"`
}

// ComputeScore evaluates one candidate tractor against the implement,
// terrain analysis and required power. Candidates are assumed pre-filtered
// for basic validity by the orchestrator; NaN inputs propagate into the
// affected component rather than being coerced.
func ComputeScore(p Params, t Tractor, analysis Analysis, requiredHP float64) Score {
	b := Breakdown{
		Efficiency:   scoreEfficiency(p, t.EnginePowerHP, requiredHP),
		Traction:     scoreTraction(p, t.Traction, analysis),
		Soil:         scoreSoil(p, t, analysis),
		Economic:     scoreEconomic(p, t.EnginePowerHP, requiredHP),
		Availability: scoreAvailability(p, t.Status),
	}
	total := b.Efficiency + b.Traction + b.Soil + b.Economic + b.Availability
	return Score{
		Total:       total,
		Breakdown:   b,
		MaxPossible: MaxScore,
		Percentage:  total / MaxScore * 100,
	}
}

// scoreEfficiency rewards tight sizing. Full marks inside the optimal band,
// undersizing penalized harder than oversizing, and the oversize penalty
// grows strictly with surplus.
func scoreEfficiency(p Params, tractorHP, requiredHP float64) float64 {
	if requiredHP <= 0 || tractorHP <= 0 {
		return 0
	}
	low := requiredHP * p.OptimalBandLow
	high := requiredHP * p.OptimalBandHigh
	switch {
	case tractorHP < low:
		return p.WeightEfficiency * (tractorHP / low) * 0.5
	case tractorHP <= high:
		return p.WeightEfficiency
	default:
		return p.WeightEfficiency * high / tractorHP
	}
}

// scoreTraction ranks traction types, with an extra bonus for four-wheel and
// tracked machines on STEEP terrain to widen the gap exactly where it matters.
func scoreTraction(p Params, traction TractionType, analysis Analysis) float64 {
	var base float64
	switch traction {
	case TractionTracked:
		base = 20
	case TractionFourWheel:
		base = 18
	case TractionTwoWheel:
		base = 10
	default:
		base = 8
	}
	if analysis.SlopeClass == SlopeSteep && (traction == TractionFourWheel || traction == TractionTracked) {
		base += 5
	}
	if base > p.WeightTraction {
		base = p.WeightTraction
	}
	return base
}

// scoreSoil reflects how the machine's traction and weight suit the soil.
// Soft, low-Cn soils favor tracked and heavy machines.
func scoreSoil(p Params, t Tractor, analysis Analysis) float64 {
	soft := analysis.Cn < 30
	var score float64
	switch t.Traction {
	case TractionTracked:
		if soft {
			score = 15
		} else {
			score = 12
		}
	case TractionFourWheel:
		switch {
		case soft && t.WeightKG >= 4000:
			score = 12
		case soft:
			score = 10
		default:
			score = 13
		}
	case TractionTwoWheel:
		if soft {
			score = 6
		} else {
			score = 11
		}
	default:
		score = 5
	}
	if score > p.WeightSoil {
		score = p.WeightSoil
	}
	return score
}

// scoreEconomic is an operating-cost proxy: the more surplus power the
// machine drags around, the lower the score.
func scoreEconomic(p Params, tractorHP, requiredHP float64) float64 {
	if requiredHP <= 0 || tractorHP <= 0 {
		return 0
	}
	surplusRatio := (tractorHP - requiredHP) / requiredHP
	if surplusRatio < 0 {
		surplusRatio = 0
	}
	score := p.WeightEconomic * (1 - surplusRatio/2)
	if score < 0 {
		score = 0
	}
	return score
}

// scoreAvailability is an exact lookup, never interpolated.
func scoreAvailability(p Params, status Status) float64 {
	switch status {
	case StatusAvailable:
		return p.WeightAvailability
	case StatusInUse:
		return p.WeightAvailability / 2
	default:
		return 0
	}
}
