package engine

import "strings"

// TractionType is the canonical traction category for a tractor. Raw values
// from storage or requests go through ParseTraction once at the boundary;
// everything below works on the canonical tag.
type TractionType string

const (
	TractionTwoWheel  TractionType = "two_wheel_drive"
	TractionFourWheel TractionType = "four_wheel_drive"
	TractionTracked   TractionType = "tracked"
	TractionUnknown   TractionType = "unknown"
)

// ParseTraction normalizes a raw traction label against the known synonym set.
func ParseTraction(raw string) TractionType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "4x4", "4wd", "awd", "four-wheel-drive", "four_wheel_drive", "doble traccion", "doble tracción":
		return TractionFourWheel
	case "4x2", "2wd", "two-wheel-drive", "two_wheel_drive", "traccion simple", "tracción simple":
		return TractionTwoWheel
	case "track", "tracked", "tracks", "crawler", "oruga", "orugas":
		return TractionTracked
	default:
		return TractionUnknown
	}
}

// SoilType is the canonical soil category for a terrain.
type SoilType string

const (
	SoilClay    SoilType = "clay"
	SoilLoam    SoilType = "loam"
	SoilSandy   SoilType = "sandy"
	SoilSilt    SoilType = "silt"
	SoilPeat    SoilType = "peat"
	SoilUnknown SoilType = "unknown"
)

// ParseSoil normalizes a raw soil label. Unrecognized labels map to
// SoilUnknown, which downstream lookups resolve with documented defaults.
func ParseSoil(raw string) SoilType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "clay", "arcilloso", "arcilla":
		return SoilClay
	case "loam", "franco":
		return SoilLoam
	case "sandy", "sand", "arenoso", "arena":
		return SoilSandy
	case "silt", "silty", "limoso", "limo":
		return SoilSilt
	case "peat", "turba", "turboso":
		return SoilPeat
	default:
		return SoilUnknown
	}
}

// Status is the availability state of a tractor.
type Status string

const (
	StatusAvailable Status = "available"
	StatusInUse     Status = "in_use"
	StatusInactive  Status = "inactive"
	StatusUnknown   Status = "unknown"
)

// ParseStatus normalizes a raw status label.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "available", "disponible":
		return StatusAvailable
	case "in_use", "in-use", "en_uso", "en uso":
		return StatusInUse
	case "inactive", "maintenance", "inactivo", "mantenimiento":
		return StatusInactive
	default:
		return StatusUnknown
	}
}

// Terrain is the plain terrain record the engine evaluates. Callers apply
// defaults (temperature) before handing it in.
type Terrain struct {
	Soil         SoilType `json:"soilType"`
	SlopePercent float64  `json:"slopePercentage"`
	AltitudeM    float64  `json:"altitudeMeters"`
	TemperatureC float64  `json:"temperatureCelsius"`
}

// Implement is the plain implement record. WorkingDepthM of zero means
// "not provided"; MinimumPower substitutes the configured default.
type Implement struct {
	PowerRequirementHP float64 `json:"powerRequirementHp"`
	WorkingDepthM      float64 `json:"workingDepthM"`
}

// Tractor is a candidate under evaluation.
type Tractor struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	EnginePowerHP float64      `json:"enginePowerHp"`
	WeightKG      float64      `json:"weightKg"`
	Traction      TractionType `json:"tractionType"`
	Status        Status       `json:"status"`
}
