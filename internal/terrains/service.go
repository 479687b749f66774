package terrains

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"agromech-backend/internal/recommend/engine"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

type CreateInput struct {
	Name            string
	SoilType        string
	SlopePercentage float64
	AltitudeMeters  float64
	TemperatureC    float64
	AreaHectares    float64
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Terrain, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Terrain{}, errors.New("owner id is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return Terrain{}, invalid("name is required")
	}
	if !finiteNonNegative(in.SlopePercentage) {
		return Terrain{}, invalid("slopePercentage must be a non-negative number")
	}
	if !finiteNonNegative(in.AltitudeMeters) {
		return Terrain{}, invalid("altitudeMeters must be a non-negative number")
	}
	soil := engine.ParseSoil(in.SoilType)
	if soil == engine.SoilUnknown && strings.TrimSpace(in.SoilType) != "" {
		return Terrain{}, invalid("soilType is not recognized")
	}

	terrain := Terrain{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		Name:            strings.TrimSpace(in.Name),
		SoilType:        soil,
		SlopePercentage: in.SlopePercentage,
		AltitudeMeters:  in.AltitudeMeters,
		TemperatureC:    in.TemperatureC,
		AreaHectares:    in.AreaHectares,
	}
	if err := s.Repo.Create(ctx, terrain); err != nil {
		return Terrain{}, err
	}
	return s.Repo.GetByID(ctx, ownerID, terrain.ID)
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (Terrain, error) {
	if strings.TrimSpace(id) == "" {
		return Terrain{}, invalid("terrain id is required")
	}
	return s.Repo.GetByID(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]Terrain, error) {
	return s.Repo.List(ctx, ownerID, limit, offset)
}

func (s *Service) Update(ctx context.Context, ownerID, id string, in CreateInput) (Terrain, error) {
	existing, err := s.Repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return Terrain{}, err
	}
	if strings.TrimSpace(in.Name) != "" {
		existing.Name = strings.TrimSpace(in.Name)
	}
	if strings.TrimSpace(in.SoilType) != "" {
		soil := engine.ParseSoil(in.SoilType)
		if soil == engine.SoilUnknown {
			return Terrain{}, invalid("soilType is not recognized")
		}
		existing.SoilType = soil
	}
	if in.SlopePercentage > 0 {
		if !finiteNonNegative(in.SlopePercentage) {
			return Terrain{}, invalid("slopePercentage must be a non-negative number")
		}
		existing.SlopePercentage = in.SlopePercentage
	}
	if in.AltitudeMeters > 0 {
		if !finiteNonNegative(in.AltitudeMeters) {
			return Terrain{}, invalid("altitudeMeters must be a non-negative number")
		}
		existing.AltitudeMeters = in.AltitudeMeters
	}
	if in.TemperatureC != 0 {
		existing.TemperatureC = in.TemperatureC
	}
	if in.AreaHectares > 0 {
		existing.AreaHectares = in.AreaHectares
	}
	if err := s.Repo.Update(ctx, existing); err != nil {
		return Terrain{}, err
	}
	return s.Repo.GetByID(ctx, ownerID, id)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("terrain id is required")
	}
	return s.Repo.Delete(ctx, ownerID, id)
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
