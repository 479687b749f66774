package terrains

import (
	"time"

	"agromech-backend/internal/recommend/engine"
)

// defaultTemperatureC is applied when a terrain record omits temperature.
const defaultTemperatureC = 20.0

// Terrain is a plot of land with the physical attributes the engine needs.
// Soil is stored as the canonical engine tag.
type Terrain struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"ownerId"`
	Name            string          `json:"name"`
	SoilType        engine.SoilType `json:"soilType"`
	SlopePercentage float64         `json:"slopePercentage"`
	AltitudeMeters  float64         `json:"altitudeMeters"`
	TemperatureC    float64         `json:"temperatureCelsius,omitempty"`
	AreaHectares    float64         `json:"areaHectares,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ForEngine converts the record into the engine's plain terrain shape,
// applying the temperature default the core expects the caller to resolve.
func (t Terrain) ForEngine() engine.Terrain {
	temperature := t.TemperatureC
	if temperature == 0 {
		temperature = defaultTemperatureC
	}
	return engine.Terrain{
		Soil:         t.SoilType,
		SlopePercent: t.SlopePercentage,
		AltitudeM:    t.AltitudeMeters,
		TemperatureC: temperature,
	}
}
