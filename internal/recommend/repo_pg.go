package recommend

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Insert(ctx context.Context, rec Recommendation) error {
	const stmt = `
INSERT INTO recommendations (id, user_id, terrain_id, implement_id, required_power_hp, success, top_score, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`
	var topScore any
	if rec.TopScore != nil {
		topScore = *rec.TopScore
	}
	_, err := r.DB.ExecContext(ctx, stmt,
		rec.ID,
		rec.UserID,
		rec.TerrainID,
		rec.ImplementID,
		rec.RequiredPowerHP,
		rec.Success,
		topScore,
		[]byte(rec.Result),
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Recommendation, error) {
	const stmt = `
SELECT id, user_id, terrain_id, implement_id, required_power_hp, success, top_score, result, created_at
FROM recommendations
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, stmt, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]Recommendation, 0)
	for rows.Next() {
		var rec Recommendation
		var topScore sql.NullFloat64
		var result []byte
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.TerrainID,
			&rec.ImplementID,
			&rec.RequiredPowerHP,
			&rec.Success,
			&topScore,
			&result,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if topScore.Valid {
			value := topScore.Float64
			rec.TopScore = &value
		}
		rec.Result = result
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
