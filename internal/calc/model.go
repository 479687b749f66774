package calc

import (
	"encoding/json"
	"time"
)

// Query types persisted to the history table.
const (
	QueryPowerLoss    = "power_loss"
	QueryMinimumPower = "minimum_power"
)

// Query is one stored calculation, request and result kept verbatim.
type Query struct {
	ID        string          `json:"id"`
	UserID    string          `json:"-"`
	QueryType string          `json:"queryType"`
	Request   json.RawMessage `json:"request"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"createdAt"`
}
