package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"agromech-backend/internal/implements"
	"agromech-backend/internal/recommend/engine"
	"agromech-backend/internal/shared/metrics"
	"agromech-backend/internal/shared/telemetry"
	"agromech-backend/internal/terrains"
	"agromech-backend/internal/tractors"
)

var (
	ErrTerrainNotFound   = errors.New("terrain not found")
	ErrImplementNotFound = errors.New("implement not found")
	ErrInvalidInput      = errors.New("invalid input")
)

type Service struct {
	Repo       Repo
	Terrains   *terrains.Service
	Implements *implements.Service
	Tractors   *tractors.Service
	Params     engine.Params
}

func NewService(repo Repo, terrainsSvc *terrains.Service, implementsSvc *implements.Service, tractorsSvc *tractors.Service) *Service {
	return &Service{
		Repo:       repo,
		Terrains:   terrainsSvc,
		Implements: implementsSvc,
		Tractors:   tractorsSvc,
		Params:     engine.DefaultParams(),
	}
}

type GenerateInput struct {
	TerrainID   string `json:"terrainId"`
	ImplementID string `json:"implementId"`
	Options     struct {
		Limit int `json:"limit"`
	} `json:"options"`
}

// GenerateResponse is the full envelope returned to the caller and stored in
// history. The embedded result flattens success, recommendations, terrain
// analysis and summary to the top level.
type GenerateResponse struct {
	ID            string               `json:"id,omitempty"`
	TerrainID     string               `json:"terrainId"`
	ImplementID   string               `json:"implementId"`
	RequiredPower engine.RequiredPower `json:"requiredPower"`
	engine.Result
}

// Generate loads the terrain and implement, derives the required power,
// runs the ranking over the user's available tractors and stores the run.
func (s *Service) Generate(ctx context.Context, userID string, in GenerateInput) (GenerateResponse, error) {
	if strings.TrimSpace(in.TerrainID) == "" {
		return GenerateResponse{}, engine.ErrTerrainRequired
	}
	if strings.TrimSpace(in.ImplementID) == "" {
		return GenerateResponse{}, ErrInvalidInput
	}

	started := metrics.NowMillis()

	terrain, err := s.Terrains.Get(ctx, userID, in.TerrainID)
	if err != nil {
		if errors.Is(err, terrains.ErrNotFound) {
			return GenerateResponse{}, ErrTerrainNotFound
		}
		return GenerateResponse{}, err
	}
	implement, err := s.Implements.Get(ctx, userID, in.ImplementID)
	if err != nil {
		if errors.Is(err, implements.ErrNotFound) {
			return GenerateResponse{}, ErrImplementNotFound
		}
		return GenerateResponse{}, err
	}
	fleet, err := s.Tractors.ListAvailable(ctx, userID)
	if err != nil {
		return GenerateResponse{}, err
	}

	engineTerrain := terrain.ForEngine()
	required := engine.MinimumPower(s.Params, implement.ForEngine(), engineTerrain)

	candidates := make([]engine.Tractor, 0, len(fleet))
	for _, t := range fleet {
		candidates = append(candidates, t.Candidate())
	}

	result, err := engine.Generate(s.Params, engine.Input{
		Terrain:         &engineTerrain,
		Implement:       implement.ForEngine(),
		Tractors:        candidates,
		RequiredPowerHP: required.TotalHP,
		Options:         engine.Options{Limit: in.Options.Limit},
	})
	if err != nil {
		metrics.IncRecommendationFailed()
		return GenerateResponse{}, err
	}

	response := GenerateResponse{
		ID:            uuid.NewString(),
		TerrainID:     terrain.ID,
		ImplementID:   implement.ID,
		RequiredPower: required,
		Result:        result,
	}

	metrics.IncRecommendationGenerated()
	metrics.ObserveRecommendationDurationMs(metrics.NowMillis() - started)

	s.persist(ctx, userID, response)
	return response, nil
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Recommendation, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// persist stores the run best-effort. History failures never fail the
// generation itself.
func (s *Service) persist(ctx context.Context, userID string, response GenerateResponse) {
	if s.Repo == nil || userID == "" {
		return
	}
	payload, err := json.Marshal(response)
	if err != nil {
		telemetry.Error("recommend.history_marshal_failed", map[string]any{"error": err.Error()})
		return
	}
	rec := Recommendation{
		ID:              response.ID,
		UserID:          userID,
		TerrainID:       response.TerrainID,
		ImplementID:     response.ImplementID,
		RequiredPowerHP: response.RequiredPower.TotalHP,
		Success:         response.Success,
		Result:          payload,
	}
	if response.Success && len(response.Recommendations) > 0 {
		top := response.Recommendations[0].Score.Total
		rec.TopScore = &top
	}
	if err := s.Repo.Insert(ctx, rec); err != nil {
		telemetry.Error("recommend.history_insert_failed", map[string]any{
			"error":             err.Error(),
			"recommendation_id": rec.ID,
		})
	}
}
