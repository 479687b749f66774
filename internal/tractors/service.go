package tractors

import (
	"context"
	"errors"
	"fmt"
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

// CreateInput carries raw values from the transport layer. Traction and
// status are normalized here, once, before anything else sees them.
type CreateInput struct {
	Name          string
	Brand         string
	Model         string
	EnginePowerHP float64
	WeightKG      float64
	TractionType  string
	Status        string
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Tractor, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Tractor{}, errors.New("owner id is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return Tractor{}, invalid("name is required")
	}
	if in.EnginePowerHP <= 0 {
		return Tractor{}, invalid("enginePowerHp must be positive")
	}
	if in.WeightKG < 0 {
		return Tractor{}, invalid("weightKg must not be negative")
	}
	traction := engine.ParseTraction(in.TractionType)
	if traction == engine.TractionUnknown {
		return Tractor{}, invalid("tractionType is not recognized")
	}
	status := engine.ParseStatus(in.Status)
	if strings.TrimSpace(in.Status) == "" {
		status = engine.StatusAvailable
	}

	tractor := Tractor{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(in.Name),
		Brand:         strings.TrimSpace(in.Brand),
		Model:         strings.TrimSpace(in.Model),
		EnginePowerHP: in.EnginePowerHP,
		WeightKG:      in.WeightKG,
		TractionType:  traction,
		Status:        status,
	}
	if err := s.Repo.Create(ctx, tractor); err != nil {
		return Tractor{}, err
	}
	return s.Repo.GetByID(ctx, ownerID, tractor.ID)
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (Tractor, error) {
	if strings.TrimSpace(id) == "" {
		return Tractor{}, invalid("tractor id is required")
	}
	return s.Repo.GetByID(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]Tractor, error) {
	return s.Repo.List(ctx, ownerID, limit, offset)
}

// ListAvailable returns the owner's working fleet, the candidate pool for
// recommendations.
func (s *Service) ListAvailable(ctx context.Context, ownerID string) ([]Tractor, error) {
	return s.Repo.ListAvailable(ctx, ownerID)
}

func (s *Service) Update(ctx context.Context, ownerID, id string, in CreateInput) (Tractor, error) {
	existing, err := s.Repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return Tractor{}, err
	}
	if strings.TrimSpace(in.Name) != "" {
		existing.Name = strings.TrimSpace(in.Name)
	}
	if in.Brand != "" {
		existing.Brand = strings.TrimSpace(in.Brand)
	}
	if in.Model != "" {
		existing.Model = strings.TrimSpace(in.Model)
	}
	if in.EnginePowerHP > 0 {
		existing.EnginePowerHP = in.EnginePowerHP
	}
	if in.WeightKG > 0 {
		existing.WeightKG = in.WeightKG
	}
	if strings.TrimSpace(in.TractionType) != "" {
		traction := engine.ParseTraction(in.TractionType)
		if traction == engine.TractionUnknown {
			return Tractor{}, invalid("tractionType is not recognized")
		}
		existing.TractionType = traction
	}
	if strings.TrimSpace(in.Status) != "" {
		existing.Status = engine.ParseStatus(in.Status)
	}
	if err := s.Repo.Update(ctx, existing); err != nil {
		return Tractor{}, err
	}
	return s.Repo.GetByID(ctx, ownerID, id)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("tractor id is required")
	}
	return s.Repo.Delete(ctx, ownerID, id)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
