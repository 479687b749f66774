package engine

// Band is one utilization bucket. Min is the inclusive lower bound on
// utilization percent; bands are evaluated in order, highest bound first.
type Band struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Min         float64 `json:"-"`
}

// Classify maps a utilization percent onto one band from the ordered set.
// The last band acts as the catch-all and must have Min 0.
func Classify(utilizationPct float64, bands []Band) Band {
	for _, band := range bands {
		if utilizationPct >= band.Min {
			return band
		}
	}
	if len(bands) == 0 {
		return Band{}
	}
	return bands[len(bands)-1]
}

// RecommendationBands is the four-band scheme used on ranked
// recommendations, where every candidate already has enough power and the
// question is how oversized it is.
func RecommendationBands() []Band {
	return []Band{
		{Label: "OPTIMAL", Description: "Potencia bien dimensionada para la labor", Min: 85},
		{Label: "GOOD", Description: "Ligeramente sobredimensionado, rendimiento adecuado", Min: 70},
		{Label: "OVERPOWERED", Description: "Sobredimensionado, mayor costo operativo", Min: 50},
		{Label: "EXCESSIVE", Description: "Potencia muy superior a la necesaria", Min: 0},
	}
}

// MinimumPowerBands is the three-band scheme used by the minimum-power
// endpoint, which also has to name machines that fall short.
func MinimumPowerBands() []Band {
	return []Band{
		{Label: "INSUFFICIENT", Description: "Potencia insuficiente para la labor", Min: 100.01},
		{Label: "OPTIMAL", Description: "Potencia adecuada para la labor", Min: 80},
		{Label: "OVERPOWERED", Description: "Potencia superior a la necesaria", Min: 0},
	}
}
