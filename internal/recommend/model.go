package recommend

import (
	"encoding/json"
	"time"
)

// Recommendation is one stored generator run. Result holds the full
// response envelope verbatim so history replays exactly what was returned.
type Recommendation struct {
	ID              string          `json:"id"`
	UserID          string          `json:"-"`
	TerrainID       string          `json:"terrainId"`
	ImplementID     string          `json:"implementId"`
	RequiredPowerHP float64         `json:"requiredPowerHp"`
	Success         bool            `json:"success"`
	TopScore        *float64        `json:"topScore,omitempty"`
	Result          json.RawMessage `json:"result"`
	CreatedAt       time.Time       `json:"createdAt"`
}
