package terrains

import (
	"context"
	"database/sql"
	"errors"

	"agromech-backend/internal/recommend/engine"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, terrain Terrain) error {
	const query = `
INSERT INTO terrains (id, owner_id, name, soil_type, slope_percentage, altitude_meters, temperature_celsius, area_hectares, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		terrain.ID,
		terrain.OwnerID,
		terrain.Name,
		string(terrain.SoilType),
		terrain.SlopePercentage,
		terrain.AltitudeMeters,
		nullableFloat(terrain.TemperatureC),
		nullableFloat(terrain.AreaHectares),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, ownerID, id string) (Terrain, error) {
	const query = `
SELECT id, owner_id, name, soil_type, slope_percentage, altitude_meters, temperature_celsius, area_hectares, created_at, updated_at
FROM terrains
WHERE id = $1 AND owner_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id, ownerID)
	terrain, err := scanTerrain(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Terrain{}, ErrNotFound
		}
		return Terrain{}, err
	}
	return terrain, nil
}

func (r *PGRepo) List(ctx context.Context, ownerID string, limit, offset int) ([]Terrain, error) {
	const query = `
SELECT id, owner_id, name, soil_type, slope_percentage, altitude_meters, temperature_celsius, area_hectares, created_at, updated_at
FROM terrains
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Terrain, 0, 16)
	for rows.Next() {
		terrain, err := scanTerrain(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, terrain)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, terrain Terrain) error {
	const query = `
UPDATE terrains SET
  name = $3,
  soil_type = $4,
  slope_percentage = $5,
  altitude_meters = $6,
  temperature_celsius = $7,
  area_hectares = $8,
  updated_at = now()
WHERE id = $1 AND owner_id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		terrain.ID,
		terrain.OwnerID,
		terrain.Name,
		string(terrain.SoilType),
		terrain.SlopePercentage,
		terrain.AltitudeMeters,
		nullableFloat(terrain.TemperatureC),
		nullableFloat(terrain.AreaHectares),
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM terrains WHERE id = $1 AND owner_id = $2`
	res, err := r.DB.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTerrain(row rowScanner) (Terrain, error) {
	var terrain Terrain
	var soil string
	var temperature sql.NullFloat64
	var area sql.NullFloat64
	err := row.Scan(
		&terrain.ID,
		&terrain.OwnerID,
		&terrain.Name,
		&soil,
		&terrain.SlopePercentage,
		&terrain.AltitudeMeters,
		&temperature,
		&area,
		&terrain.CreatedAt,
		&terrain.UpdatedAt,
	)
	if err != nil {
		return Terrain{}, err
	}
	terrain.SoilType = engine.ParseSoil(soil)
	if temperature.Valid {
		terrain.TemperatureC = temperature.Float64
	}
	if area.Valid {
		terrain.AreaHectares = area.Float64
	}
	return terrain, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableFloat(value float64) any {
	if value == 0 {
		return nil
	}
	return value
}
