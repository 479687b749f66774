package tractors

import (
	"context"
	"errors"
	"testing"

	"agromech-backend/internal/recommend/engine"
)

func TestServiceCreateNormalizesTractionAndStatus(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	tractor, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:          "  Massey 290  ",
		EnginePowerHP: 95,
		WeightKG:      3600,
		TractionType:  "4x4",
		Status:        "disponible",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tractor.Name != "Massey 290" {
		t.Fatalf("expected trimmed name, got %q", tractor.Name)
	}
	if tractor.TractionType != engine.TractionFourWheel {
		t.Fatalf("expected normalized traction, got %q", tractor.TractionType)
	}
	if tractor.Status != engine.StatusAvailable {
		t.Fatalf("expected normalized status, got %q", tractor.Status)
	}
	if tractor.ID == "" {
		t.Fatalf("expected minted id")
	}
}

func TestServiceCreateDefaultsStatusToAvailable(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	tractor, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:          "Fendt 300",
		EnginePowerHP: 100,
		TractionType:  "tracked",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tractor.Status != engine.StatusAvailable {
		t.Fatalf("expected available default, got %q", tractor.Status)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	cases := []struct {
		name  string
		input CreateInput
	}{
		{"missing name", CreateInput{EnginePowerHP: 90, TractionType: "4x4"}},
		{"non-positive power", CreateInput{Name: "T", EnginePowerHP: 0, TractionType: "4x4"}},
		{"negative weight", CreateInput{Name: "T", EnginePowerHP: 90, WeightKG: -1, TractionType: "4x4"}},
		{"unknown traction", CreateInput{Name: "T", EnginePowerHP: 90, TractionType: "hovercraft"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "user-1", tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestServiceUpdatePartial(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:          "Kubota M7",
		EnginePowerHP: 130,
		WeightKG:      5400,
		TractionType:  "4wd",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(context.Background(), "user-1", created.ID, CreateInput{Status: "mantenimiento"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != engine.StatusInactive {
		t.Fatalf("expected inactive status, got %q", updated.Status)
	}
	if updated.Name != "Kubota M7" || updated.EnginePowerHP != 130 {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestServiceOwnerScoping(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, err := svc.Create(context.Background(), "user-1", CreateInput{
		Name:          "Valtra A",
		EnginePowerHP: 75,
		TractionType:  "2wd",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(context.Background(), "user-2", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "user-2", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign delete, got %v", err)
	}
}

func TestServiceListAvailableExcludesInactive(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	for _, status := range []string{"available", "in_use", "inactive"} {
		if _, err := svc.Create(context.Background(), "user-1", CreateInput{
			Name:          "T-" + status,
			EnginePowerHP: 90,
			TractionType:  "4x4",
			Status:        status,
		}); err != nil {
			t.Fatalf("Create %s: %v", status, err)
		}
	}

	fleet, err := svc.ListAvailable(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(fleet) != 2 {
		t.Fatalf("expected 2 working tractors, got %d", len(fleet))
	}
	for _, tractor := range fleet {
		if tractor.Status == engine.StatusInactive {
			t.Fatalf("inactive tractor leaked into fleet")
		}
	}
}
