package terrains

import (
	"context"
	"errors"
	"testing"

	"agromech-backend/internal/recommend/engine"
)

func TestServiceCreateNormalizesSoil(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	terrain, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:            "Lote 3",
		SoilType:        "Arcilloso",
		SlopePercentage: 12,
		AltitudeMeters:  1800,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if terrain.SoilType != engine.SoilClay {
		t.Fatalf("expected clay, got %q", terrain.SoilType)
	}
}

func TestServiceCreateAllowsEmptySoil(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	terrain, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:           "Lote sin estudio",
		AltitudeMeters: 500,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if terrain.SoilType != engine.SoilUnknown {
		t.Fatalf("expected unknown soil, got %q", terrain.SoilType)
	}
}

func TestServiceCreateRejectsUnrecognizedSoil(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:     "Lote 4",
		SoilType: "martian regolith",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceCreateRejectsNegativeSlope(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:            "Lote 5",
		SoilType:        "loam",
		SlopePercentage: -3,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestForEngineAppliesTemperatureDefault(t *testing.T) {
	terrain := Terrain{SoilType: engine.SoilLoam, SlopePercentage: 5, AltitudeMeters: 900}
	converted := terrain.ForEngine()
	if converted.TemperatureC != defaultTemperatureC {
		t.Fatalf("expected default temperature %v, got %v", defaultTemperatureC, converted.TemperatureC)
	}

	terrain.TemperatureC = 31
	converted = terrain.ForEngine()
	if converted.TemperatureC != 31 {
		t.Fatalf("expected explicit temperature kept, got %v", converted.TemperatureC)
	}
}
