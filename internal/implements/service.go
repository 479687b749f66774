package implements

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

type CreateInput struct {
	Name               string
	ImplementType      string
	PowerRequirementHP float64
	WorkingDepthM      float64
	WorkingWidthM      float64
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Implement, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Implement{}, errors.New("owner id is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return Implement{}, invalid("name is required")
	}
	if in.PowerRequirementHP <= 0 {
		return Implement{}, invalid("powerRequirementHp must be positive")
	}
	if in.WorkingDepthM < 0 || in.WorkingWidthM < 0 {
		return Implement{}, invalid("working dimensions must not be negative")
	}

	implement := Implement{
		ID:                 uuid.NewString(),
		OwnerID:            ownerID,
		Name:               strings.TrimSpace(in.Name),
		ImplementType:      strings.TrimSpace(in.ImplementType),
		PowerRequirementHP: in.PowerRequirementHP,
		WorkingDepthM:      in.WorkingDepthM,
		WorkingWidthM:      in.WorkingWidthM,
	}
	if err := s.Repo.Create(ctx, implement); err != nil {
		return Implement{}, err
	}
	return s.Repo.GetByID(ctx, ownerID, implement.ID)
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (Implement, error) {
	if strings.TrimSpace(id) == "" {
		return Implement{}, invalid("implement id is required")
	}
	return s.Repo.GetByID(ctx, ownerID, id)
}

func (s *Service) List(ctx context.Context, ownerID string, limit, offset int) ([]Implement, error) {
	return s.Repo.List(ctx, ownerID, limit, offset)
}

func (s *Service) Update(ctx context.Context, ownerID, id string, in CreateInput) (Implement, error) {
	existing, err := s.Repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return Implement{}, err
	}
	if strings.TrimSpace(in.Name) != "" {
		existing.Name = strings.TrimSpace(in.Name)
	}
	if strings.TrimSpace(in.ImplementType) != "" {
		existing.ImplementType = strings.TrimSpace(in.ImplementType)
	}
	if in.PowerRequirementHP > 0 {
		existing.PowerRequirementHP = in.PowerRequirementHP
	}
	if in.WorkingDepthM > 0 {
		existing.WorkingDepthM = in.WorkingDepthM
	}
	if in.WorkingWidthM > 0 {
		existing.WorkingWidthM = in.WorkingWidthM
	}
	if err := s.Repo.Update(ctx, existing); err != nil {
		return Implement{}, err
	}
	return s.Repo.GetByID(ctx, ownerID, id)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("implement id is required")
	}
	return s.Repo.Delete(ctx, ownerID, id)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}
