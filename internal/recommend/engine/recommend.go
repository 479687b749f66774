package engine

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrTerrainRequired is returned when no terrain record is supplied.
	ErrTerrainRequired = errors.New("terrain es requerido")
	// ErrTractorsRequired is returned when the candidate list is absent.
	ErrTractorsRequired = errors.New("tractors debe ser un array")
	// ErrRequiredPowerInvalid is returned when required power is not a
	// positive finite number.
	ErrRequiredPowerInvalid = errors.New("requiredPower debe ser un número positivo")
)

// Options tunes a single Generate call. Limit of zero or less means no cap.
type Options struct {
	Limit int `json:"limit"`
}

// Input is everything Generate needs, already fetched by the caller.
type Input struct {
	Terrain         *Terrain  `json:"terrain"`
	Implement       Implement `json:"implement"`
	Tractors        []Tractor `json:"tractors"`
	RequiredPowerHP float64   `json:"requiredPower"`
	Options         Options   `json:"options"`
}

// Compatibility is the sizing arithmetic attached to every entry.
type Compatibility struct {
	RequiredPowerHP    float64 `json:"requiredPower"`
	TractorPowerHP     float64 `json:"tractorPower"`
	SurplusHP          float64 `json:"surplusHP"`
	UtilizationPercent int     `json:"utilizationPercent"`
}

// Classification is the utilization band an entry falls into.
type Classification struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Entry is one ranked recommendation. Entries are built once and never
// mutated; ordering is fixed at construction time.
type Entry struct {
	Rank           int            `json:"rank"`
	Tractor        Tractor        `json:"tractor"`
	Score          Score          `json:"score"`
	Compatibility  Compatibility  `json:"compatibility"`
	Classification Classification `json:"classification"`
}

// Summary aggregates a Generate call.
type Summary struct {
	TotalEvaluated  int     `json:"totalEvaluated"`
	CompatibleCount int     `json:"compatibleCount"`
	TopScore        float64 `json:"topScore,omitempty"`
	TopTractor      string  `json:"topTractor,omitempty"`
	Reason          string  `json:"reason,omitempty"`
}

// Result is the sole return value of Generate. No side effects, nothing
// external mutated.
type Result struct {
	Success         bool     `json:"success"`
	Recommendations []Entry  `json:"recommendations"`
	TerrainAnalysis Analysis `json:"terrainAnalysis"`
	Summary         Summary  `json:"summary"`
}

// Generate runs the full pipeline: validate, analyze the terrain once,
// hard-filter, score, stable-sort, truncate, rank, classify, summarize.
// An empty compatible set is a normal answer, not an error.
func Generate(p Params, in Input) (Result, error) {
	if in.Terrain == nil {
		return Result{}, ErrTerrainRequired
	}
	if in.Tractors == nil {
		return Result{}, ErrTractorsRequired
	}
	required := in.RequiredPowerHP
	if !(required > 0) || math.IsInf(required, 0) {
		return Result{}, ErrRequiredPowerInvalid
	}

	analysis := Analyze(p, *in.Terrain)

	survivors := make([]Tractor, 0, len(in.Tractors))
	for _, t := range in.Tractors {
		if t.EnginePowerHP < required {
			continue
		}
		if analysis.RequiresHighTraction && t.Traction != TractionFourWheel && t.Traction != TractionTracked {
			continue
		}
		survivors = append(survivors, t)
	}

	if len(survivors) == 0 {
		return Result{
			Success:         false,
			Recommendations: []Entry{},
			TerrainAnalysis: analysis,
			Summary: Summary{
				TotalEvaluated:  len(in.Tractors),
				CompatibleCount: 0,
				Reason:          noCompatibleReason(analysis),
			},
		}, nil
	}

	entries := make([]Entry, 0, len(survivors))
	for _, t := range survivors {
		entries = append(entries, Entry{
			Tractor: t,
			Score:   ComputeScore(p, t, analysis, required),
		})
	}

	// Stable: input order is the tie-break among equal totals.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score.Total > entries[j].Score.Total
	})

	if in.Options.Limit > 0 && len(entries) > in.Options.Limit {
		entries = entries[:in.Options.Limit]
	}

	bands := RecommendationBands()
	for i := range entries {
		hp := entries[i].Tractor.EnginePowerHP
		// Band assignment uses the exact percentage; the rounded value is
		// only for display.
		utilizationPct := required / hp * 100
		entries[i].Rank = i + 1
		entries[i].Compatibility = Compatibility{
			RequiredPowerHP:    required,
			TractorPowerHP:     hp,
			SurplusHP:          hp - required,
			UtilizationPercent: int(math.Round(utilizationPct)),
		}
		band := Classify(utilizationPct, bands)
		entries[i].Classification = Classification{
			Label:       band.Label,
			Description: band.Description,
		}
	}

	return Result{
		Success:         true,
		Recommendations: entries,
		TerrainAnalysis: analysis,
		Summary: Summary{
			TotalEvaluated:  len(in.Tractors),
			CompatibleCount: len(survivors),
			TopScore:        entries[0].Score.Total,
			TopTractor:      topTractorName(entries[0].Tractor),
		},
	}, nil
}

func noCompatibleReason(analysis Analysis) string {
	if analysis.RequiresHighTraction {
		return "ningún tractor cumple los requisitos de potencia y tracción para pendiente pronunciada"
	}
	return "ningún tractor cumple el requisito de potencia mínima"
}

func topTractorName(t Tractor) string {
	if t.Name != "" {
		return t.Name
	}
	return t.ID
}
