package tractors

import (
	"time"

	"agromech-backend/internal/recommend/engine"
)

// Tractor is a machine in the fleet. Traction and status are stored as the
// canonical engine tags; raw request values are normalized in the service.
type Tractor struct {
	ID            string              `json:"id"`
	OwnerID       string              `json:"ownerId"`
	Name          string              `json:"name"`
	Brand         string              `json:"brand,omitempty"`
	Model         string              `json:"model,omitempty"`
	EnginePowerHP float64             `json:"enginePowerHp"`
	WeightKG      float64             `json:"weightKg"`
	TractionType  engine.TractionType `json:"tractionType"`
	Status        engine.Status       `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// Candidate converts the record into the engine's plain candidate shape.
func (t Tractor) Candidate() engine.Tractor {
	return engine.Tractor{
		ID:            t.ID,
		Name:          t.Name,
		EnginePowerHP: t.EnginePowerHP,
		WeightKG:      t.WeightKG,
		Traction:      t.TractionType,
		Status:        t.Status,
	}
}
