package tractors

import (
	"context"
	"database/sql"
	"errors"

	"agromech-backend/internal/recommend/engine"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, tractor Tractor) error {
	const query = `
INSERT INTO tractors (id, owner_id, name, brand, model, engine_power_hp, weight_kg, traction_type, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		tractor.ID,
		tractor.OwnerID,
		tractor.Name,
		nullableString(tractor.Brand),
		nullableString(tractor.Model),
		tractor.EnginePowerHP,
		tractor.WeightKG,
		string(tractor.TractionType),
		string(tractor.Status),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, ownerID, id string) (Tractor, error) {
	const query = `
SELECT id, owner_id, name, brand, model, engine_power_hp, weight_kg, traction_type, status, created_at, updated_at
FROM tractors
WHERE id = $1 AND owner_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id, ownerID)
	tractor, err := scanTractor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Tractor{}, ErrNotFound
		}
		return Tractor{}, err
	}
	return tractor, nil
}

func (r *PGRepo) List(ctx context.Context, ownerID string, limit, offset int) ([]Tractor, error) {
	const query = `
SELECT id, owner_id, name, brand, model, engine_power_hp, weight_kg, traction_type, status, created_at, updated_at
FROM tractors
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTractors(rows)
}

func (r *PGRepo) ListAvailable(ctx context.Context, ownerID string) ([]Tractor, error) {
	const query = `
SELECT id, owner_id, name, brand, model, engine_power_hp, weight_kg, traction_type, status, created_at, updated_at
FROM tractors
WHERE owner_id = $1 AND status IN ('available', 'in_use')
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTractors(rows)
}

func (r *PGRepo) Update(ctx context.Context, tractor Tractor) error {
	const query = `
UPDATE tractors SET
  name = $3,
  brand = $4,
  model = $5,
  engine_power_hp = $6,
  weight_kg = $7,
  traction_type = $8,
  status = $9,
  updated_at = now()
WHERE id = $1 AND owner_id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		tractor.ID,
		tractor.OwnerID,
		tractor.Name,
		nullableString(tractor.Brand),
		nullableString(tractor.Model),
		tractor.EnginePowerHP,
		tractor.WeightKG,
		string(tractor.TractionType),
		string(tractor.Status),
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM tractors WHERE id = $1 AND owner_id = $2`
	res, err := r.DB.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTractor(row rowScanner) (Tractor, error) {
	var tractor Tractor
	var brand sql.NullString
	var model sql.NullString
	var traction string
	var status string
	err := row.Scan(
		&tractor.ID,
		&tractor.OwnerID,
		&tractor.Name,
		&brand,
		&model,
		&tractor.EnginePowerHP,
		&tractor.WeightKG,
		&traction,
		&status,
		&tractor.CreatedAt,
		&tractor.UpdatedAt,
	)
	if err != nil {
		return Tractor{}, err
	}
	if brand.Valid {
		tractor.Brand = brand.String
	}
	if model.Valid {
		tractor.Model = model.String
	}
	tractor.TractionType = engine.ParseTraction(traction)
	tractor.Status = engine.ParseStatus(status)
	return tractor, nil
}

func collectTractors(rows *sql.Rows) ([]Tractor, error) {
	out := make([]Tractor, 0, 16)
	for rows.Next() {
		tractor, err := scanTractor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tractor)
	}
	return out, rows.Err()
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

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
