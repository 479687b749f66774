package calc

import (
	"context"
	"errors"
	"math"
	"testing"
)

func powerLossRequest() PowerLossRequest {
	var req PowerLossRequest
	req.Tractor = &struct {
		EnginePowerHP float64 `json:"enginePowerHp"`
		WeightKG      float64 `json:"weightKg"`
		TractionType  string  `json:"tractionType"`
	}{EnginePowerHP: 100, WeightKG: 4000, TractionType: "4x4"}
	req.Terrain = &TerrainInput{SoilType: "loam", SlopePercentage: 10, AltitudeMeters: 600}
	req.SpeedKMH = 6
	return req
}

func minimumPowerRequest() MinimumPowerRequest {
	var req MinimumPowerRequest
	req.Terrain = &TerrainInput{SoilType: "loam", SlopePercentage: 0, AltitudeMeters: 0}
	req.Implement = &struct {
		PowerRequirementHP float64 `json:"powerRequirementHp"`
		WorkingDepthM      float64 `json:"workingDepthM"`
	}{PowerRequirementHP: 100}
	return req
}

func TestPowerLossValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	missingTractor := powerLossRequest()
	missingTractor.Tractor = nil
	if _, err := svc.PowerLoss(context.Background(), "user-1", missingTractor); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing tractor, got %v", err)
	}

	missingTerrain := powerLossRequest()
	missingTerrain.Terrain = nil
	if _, err := svc.PowerLoss(context.Background(), "user-1", missingTerrain); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing terrain, got %v", err)
	}

	zeroSpeed := powerLossRequest()
	zeroSpeed.SpeedKMH = 0
	if _, err := svc.PowerLoss(context.Background(), "user-1", zeroSpeed); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero speed, got %v", err)
	}
}

func TestPowerLossCombinesTractorAndImplementWeight(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	req := powerLossRequest()
	req.ImplementWeightKG = 800
	result, err := svc.PowerLoss(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("PowerLoss: %v", err)
	}
	if result.TotalWeightKG != 4800 {
		t.Fatalf("expected total weight 4800, got %v", result.TotalWeightKG)
	}
	// slope loss uses the combined weight: 4800*6*10/273
	want := 4800.0 * 6 * 10 / 273
	if math.Abs(result.Losses.SlopeHP-want) > 1e-9 {
		t.Fatalf("expected slope loss %v, got %v", want, result.Losses.SlopeHP)
	}
	if result.Losses.TotalHP <= 0 || result.Losses.NetPowerHP >= 100 {
		t.Fatalf("expected positive losses and reduced net power: %+v", result.Losses)
	}
}

func TestPowerLossRecordsHistory(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if _, err := svc.PowerLoss(context.Background(), "user-1", powerLossRequest()); err != nil {
		t.Fatalf("PowerLoss: %v", err)
	}

	history, err := svc.History(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(history))
	}
	if history[0].QueryType != QueryPowerLoss {
		t.Fatalf("expected query type %q, got %q", QueryPowerLoss, history[0].QueryType)
	}
	if len(history[0].Request) == 0 || len(history[0].Result) == 0 {
		t.Fatalf("expected request and result payloads stored")
	}
}

func TestMinimumPowerValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	missingTerrain := minimumPowerRequest()
	missingTerrain.Terrain = nil
	if _, err := svc.MinimumPower(context.Background(), "user-1", missingTerrain); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing terrain, got %v", err)
	}

	badPower := minimumPowerRequest()
	badPower.Implement.PowerRequirementHP = -5
	if _, err := svc.MinimumPower(context.Background(), "user-1", badPower); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative requirement, got %v", err)
	}
}

func TestMinimumPowerClassifiesCandidates(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	req := minimumPowerRequest()
	req.Tractors = []CandidateTractor{
		{ID: "t1", Name: "Small", EnginePowerHP: 90},
		{ID: "t2", Name: "Fit", EnginePowerHP: 120},
		{ID: "t3", Name: "Big", EnginePowerHP: 300},
	}

	result, err := svc.MinimumPower(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("MinimumPower: %v", err)
	}
	// flat loam: soil factor 1.10, slope factor 1.0 -> required 110 HP
	if math.Abs(result.Required.TotalHP-110) > 1e-9 {
		t.Fatalf("expected required 110, got %v", result.Required.TotalHP)
	}
	if len(result.Candidates) != 3 {
		t.Fatalf("expected 3 graded candidates, got %d", len(result.Candidates))
	}

	labels := map[string]string{}
	for _, candidate := range result.Candidates {
		labels[candidate.ID] = candidate.Classification.Label
	}
	if labels["t1"] != "INSUFFICIENT" {
		t.Fatalf("90 HP against 110 required should be INSUFFICIENT, got %q", labels["t1"])
	}
	if labels["t2"] != "OPTIMAL" {
		t.Fatalf("120 HP against 110 required should be OPTIMAL, got %q", labels["t2"])
	}
	if labels["t3"] != "OVERPOWERED" {
		t.Fatalf("300 HP against 110 required should be OVERPOWERED, got %q", labels["t3"])
	}
}

func TestMinimumPowerBarelyShortCandidateIsInsufficient(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	// 109.56 HP against 110 required sits at 100.4% utilization. The
	// rounded percentage lands on 100, but the tractor is still short of
	// the requirement and must not grade as optimal.
	req := minimumPowerRequest()
	req.Tractors = []CandidateTractor{
		{ID: "t1", Name: "Borderline", EnginePowerHP: 109.56},
	}

	result, err := svc.MinimumPower(context.Background(), "user-1", req)
	if err != nil {
		t.Fatalf("MinimumPower: %v", err)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("expected 1 graded candidate, got %d", len(result.Candidates))
	}
	got := result.Candidates[0]
	if got.UtilizationPercent != 100 {
		t.Fatalf("expected displayed utilization 100, got %d", got.UtilizationPercent)
	}
	if got.Classification.Label != "INSUFFICIENT" {
		t.Fatalf("underpowered tractor graded %q, want INSUFFICIENT", got.Classification.Label)
	}
}

func TestMinimumPowerRecordsHistory(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if _, err := svc.MinimumPower(context.Background(), "user-1", minimumPowerRequest()); err != nil {
		t.Fatalf("MinimumPower: %v", err)
	}

	history, err := svc.History(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].QueryType != QueryMinimumPower {
		t.Fatalf("expected one minimum-power history row, got %+v", history)
	}
}
