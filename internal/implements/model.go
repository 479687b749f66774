package implements

import (
	"time"

	"agromech-backend/internal/recommend/engine"
)

// Implement is a towed or mounted tool that demands tractor power.
type Implement struct {
	ID                 string    `json:"id"`
	OwnerID            string    `json:"ownerId"`
	Name               string    `json:"name"`
	ImplementType      string    `json:"implementType,omitempty"`
	PowerRequirementHP float64   `json:"powerRequirementHp"`
	WorkingDepthM      float64   `json:"workingDepthM,omitempty"`
	WorkingWidthM      float64   `json:"workingWidthM,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ForEngine converts the record into the engine's plain implement shape.
func (i Implement) ForEngine() engine.Implement {
	return engine.Implement{
		PowerRequirementHP: i.PowerRequirementHP,
		WorkingDepthM:      i.WorkingDepthM,
	}
}
