package implements

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, implement Implement) error {
	const query = `
INSERT INTO implements (id, owner_id, name, implement_type, power_requirement_hp, working_depth_m, working_width_m, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		implement.ID,
		implement.OwnerID,
		implement.Name,
		nullableString(implement.ImplementType),
		implement.PowerRequirementHP,
		nullableFloat(implement.WorkingDepthM),
		nullableFloat(implement.WorkingWidthM),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, ownerID, id string) (Implement, error) {
	const query = `
SELECT id, owner_id, name, implement_type, power_requirement_hp, working_depth_m, working_width_m, created_at, updated_at
FROM implements
WHERE id = $1 AND owner_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id, ownerID)
	implement, err := scanImplement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Implement{}, ErrNotFound
		}
		return Implement{}, err
	}
	return implement, nil
}

func (r *PGRepo) List(ctx context.Context, ownerID string, limit, offset int) ([]Implement, error) {
	const query = `
SELECT id, owner_id, name, implement_type, power_requirement_hp, working_depth_m, working_width_m, created_at, updated_at
FROM implements
WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Implement, 0, 16)
	for rows.Next() {
		implement, err := scanImplement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, implement)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, implement Implement) error {
	const query = `
UPDATE implements SET
  name = $3,
  implement_type = $4,
  power_requirement_hp = $5,
  working_depth_m = $6,
  working_width_m = $7,
  updated_at = now()
WHERE id = $1 AND owner_id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		implement.ID,
		implement.OwnerID,
		implement.Name,
		nullableString(implement.ImplementType),
		implement.PowerRequirementHP,
		nullableFloat(implement.WorkingDepthM),
		nullableFloat(implement.WorkingWidthM),
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM implements WHERE id = $1 AND owner_id = $2`
	res, err := r.DB.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanImplement(row rowScanner) (Implement, error) {
	var implement Implement
	var implementType sql.NullString
	var depth sql.NullFloat64
	var width sql.NullFloat64
	err := row.Scan(
		&implement.ID,
		&implement.OwnerID,
		&implement.Name,
		&implementType,
		&implement.PowerRequirementHP,
		&depth,
		&width,
		&implement.CreatedAt,
		&implement.UpdatedAt,
	)
	if err != nil {
		return Implement{}, err
	}
	if implementType.Valid {
		implement.ImplementType = implementType.String
	}
	if depth.Valid {
		implement.WorkingDepthM = depth.Float64
	}
	if width.Valid {
		implement.WorkingWidthM = width.Float64
	}
	return implement, nil
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

func nullableFloat(value float64) any {
	if value == 0 {
		return nil
	}
	return value
}
