package calc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"agromech-backend/internal/recommend/engine"
	"agromech-backend/internal/shared/metrics"
	"agromech-backend/internal/shared/telemetry"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	Repo   Repo
	Params engine.Params
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Params: engine.DefaultParams()}
}

// TerrainInput mirrors the terrain fields accepted inline on both endpoints.
type TerrainInput struct {
	SoilType        string  `json:"soilType"`
	SlopePercentage float64 `json:"slopePercentage"`
	AltitudeMeters  float64 `json:"altitudeMeters"`
	TemperatureC    float64 `json:"temperatureCelsius"`
}

func (t TerrainInput) toEngine() engine.Terrain {
	return engine.Terrain{
		Soil:         engine.ParseSoil(t.SoilType),
		SlopePercent: t.SlopePercentage,
		AltitudeM:    t.AltitudeMeters,
		TemperatureC: t.TemperatureC,
	}
}

type PowerLossRequest struct {
	Tractor *struct {
		EnginePowerHP float64 `json:"enginePowerHp"`
		WeightKG      float64 `json:"weightKg"`
		TractionType  string  `json:"tractionType"`
	} `json:"tractor"`
	ImplementWeightKG float64       `json:"implementWeightKg"`
	Terrain           *TerrainInput `json:"terrain"`
	SpeedKMH          float64       `json:"speedKmh"`
	SlippagePercent   *float64      `json:"slippagePercent"`
}

type PowerLossResult struct {
	TotalWeightKG float64          `json:"totalWeightKg"`
	Losses        engine.PowerLoss `json:"losses"`
}

// PowerLoss runs the loss model over an inline tractor and terrain and
// records the query in the user's history.
func (s *Service) PowerLoss(ctx context.Context, userID string, req PowerLossRequest) (PowerLossResult, error) {
	if req.Tractor == nil {
		return PowerLossResult{}, invalid("tractor es requerido")
	}
	if req.Terrain == nil {
		return PowerLossResult{}, invalid("terrain es requerido")
	}
	if !positiveFinite(req.Tractor.EnginePowerHP) {
		return PowerLossResult{}, invalid("enginePower debe ser un número positivo")
	}
	if !positiveFinite(req.SpeedKMH) {
		return PowerLossResult{}, invalid("speed debe ser un número positivo")
	}
	if req.Tractor.WeightKG < 0 || req.ImplementWeightKG < 0 {
		return PowerLossResult{}, invalid("weight no puede ser negativo")
	}

	terrain := req.Terrain.toEngine()
	totalWeight := req.Tractor.WeightKG + req.ImplementWeightKG
	losses := engine.ComputePowerLoss(s.Params, engine.PowerLossInput{
		EnginePowerHP:   req.Tractor.EnginePowerHP,
		TotalWeightKG:   totalWeight,
		SpeedKMH:        req.SpeedKMH,
		SlopePercent:    terrain.SlopePercent,
		AltitudeM:       terrain.AltitudeM,
		Soil:            terrain.Soil,
		Traction:        engine.ParseTraction(req.Tractor.TractionType),
		SlippagePercent: req.SlippagePercent,
	})

	result := PowerLossResult{TotalWeightKG: totalWeight, Losses: losses}
	s.record(ctx, userID, QueryPowerLoss, req, result)
	return result, nil
}

type MinimumPowerRequest struct {
	Terrain   *TerrainInput `json:"terrain"`
	Implement *struct {
		PowerRequirementHP float64 `json:"powerRequirementHp"`
		WorkingDepthM      float64 `json:"workingDepthM"`
	} `json:"implement"`
	Tractors []CandidateTractor `json:"tractors"`
}

type CandidateTractor struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	EnginePowerHP float64 `json:"enginePowerHp"`
}

type CandidateAssessment struct {
	CandidateTractor
	UtilizationPercent int                   `json:"utilizationPercent"`
	Classification     engine.Classification `json:"classification"`
}

type MinimumPowerResult struct {
	Required   engine.RequiredPower  `json:"requiredPower"`
	Analysis   engine.Analysis       `json:"terrainAnalysis"`
	Candidates []CandidateAssessment `json:"candidates,omitempty"`
}

// MinimumPower computes the required power for an implement on a terrain and,
// when candidate tractors are supplied, grades each one against it.
func (s *Service) MinimumPower(ctx context.Context, userID string, req MinimumPowerRequest) (MinimumPowerResult, error) {
	if req.Terrain == nil {
		return MinimumPowerResult{}, invalid("terrain es requerido")
	}
	if req.Implement == nil {
		return MinimumPowerResult{}, invalid("implement es requerido")
	}
	if !positiveFinite(req.Implement.PowerRequirementHP) {
		return MinimumPowerResult{}, invalid("powerRequirement debe ser un número positivo")
	}

	terrain := req.Terrain.toEngine()
	imp := engine.Implement{
		PowerRequirementHP: req.Implement.PowerRequirementHP,
		WorkingDepthM:      req.Implement.WorkingDepthM,
	}
	required := engine.MinimumPower(s.Params, imp, terrain)
	analysis := engine.Analyze(s.Params, terrain)

	result := MinimumPowerResult{Required: required, Analysis: analysis}
	bands := engine.MinimumPowerBands()
	for _, candidate := range req.Tractors {
		// Classification uses the exact percentage so a tractor slightly
		// below the required power never rounds into the optimal band.
		utilizationPct := 0.0
		if candidate.EnginePowerHP > 0 {
			utilizationPct = required.TotalHP / candidate.EnginePowerHP * 100
		}
		band := engine.Classify(utilizationPct, bands)
		result.Candidates = append(result.Candidates, CandidateAssessment{
			CandidateTractor:   candidate,
			UtilizationPercent: int(math.Round(utilizationPct)),
			Classification:     engine.Classification{Label: band.Label, Description: band.Description},
		})
	}

	s.record(ctx, userID, QueryMinimumPower, req, result)
	return result, nil
}

func (s *Service) History(ctx context.Context, userID string, limit, offset int) ([]Query, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// record persists the query pair best-effort. A storage failure never fails
// the calculation itself.
func (s *Service) record(ctx context.Context, userID, queryType string, request, result any) {
	metrics.IncCalculationQuery()
	if s.Repo == nil || userID == "" {
		return
	}
	reqJSON, err := json.Marshal(request)
	if err != nil {
		telemetry.Error("calc.history_marshal_failed", map[string]any{"error": err.Error()})
		return
	}
	resJSON, err := json.Marshal(result)
	if err != nil {
		telemetry.Error("calc.history_marshal_failed", map[string]any{"error": err.Error()})
		return
	}
	query := Query{
		ID:        uuid.NewString(),
		UserID:    userID,
		QueryType: queryType,
		Request:   reqJSON,
		Result:    resJSON,
	}
	if err := s.Repo.Insert(ctx, query); err != nil {
		telemetry.Error("calc.history_insert_failed", map[string]any{
			"error":      err.Error(),
			"query_type": queryType,
		})
	}
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
