package engine

// Slope classes.
const (
	SlopeFlat     = "FLAT"
	SlopeModerate = "MODERATE"
	SlopeSteep    = "STEEP"
)

// Altitude bands.
const (
	AltitudeLow    = "LOW"
	AltitudeMedium = "MEDIUM"
	AltitudeHigh   = "HIGH"
)

// Analysis is the qualitative read of a terrain plus the derived factors the
// scorer and minimum-power model reuse.
type Analysis struct {
	SlopeClass           string   `json:"slopeClassification"`
	SoilClass            SoilType `json:"soilClassification"`
	AltitudeBand         string   `json:"altitudeBand"`
	SlopePercent         float64  `json:"slopePercentage"`
	AltitudeM            float64  `json:"altitudeMeters"`
	TemperatureC         float64  `json:"temperatureCelsius"`
	Cn                   float64  `json:"coneIndex"`
	SoilFactor           float64  `json:"soilFactor"`
	SlopeFactor          float64  `json:"slopeFactor"`
	RequiresHighTraction bool     `json:"requiresHighTraction"`
}

// Analyze classifies a terrain. It is total: every terrain record maps to
// exactly one analysis, validation belongs to the orchestration boundary.
func Analyze(p Params, t Terrain) Analysis {
	slopeClass := SlopeFlat
	switch {
	case t.SlopePercent >= p.SteepSlopeThreshold:
		slopeClass = SlopeSteep
	case t.SlopePercent >= 5:
		slopeClass = SlopeModerate
	}

	altitudeBand := AltitudeLow
	switch {
	case t.AltitudeM >= 3000:
		altitudeBand = AltitudeHigh
	case t.AltitudeM >= 1500:
		altitudeBand = AltitudeMedium
	}

	cn := p.soilCn(t.Soil)
	soilFactor := 1 + (50-cn)/100
	if soilFactor < 1 {
		soilFactor = 1
	}
	steep := slopeClass == SlopeSteep
	slopeFactor := 1 + t.SlopePercent*0.015
	if steep {
		slopeFactor += 0.10
	}

	return Analysis{
		SlopeClass:           slopeClass,
		SoilClass:            t.Soil,
		AltitudeBand:         altitudeBand,
		SlopePercent:         t.SlopePercent,
		AltitudeM:            t.AltitudeM,
		TemperatureC:         t.TemperatureC,
		Cn:                   cn,
		SoilFactor:           soilFactor,
		SlopeFactor:          slopeFactor,
		RequiresHighTraction: steep,
	}
}
