package calc

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Insert(ctx context.Context, query Query) error {
	const stmt = `
INSERT INTO calculation_queries (id, user_id, query_type, request, result, created_at)
VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.DB.ExecContext(ctx, stmt,
		query.ID,
		query.UserID,
		query.QueryType,
		[]byte(query.Request),
		[]byte(query.Result),
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Query, error) {
	const stmt = `
SELECT id, user_id, query_type, request, result, created_at
FROM calculation_queries
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, stmt, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	queries := make([]Query, 0)
	for rows.Next() {
		var q Query
		var request []byte
		var result []byte
		if err := rows.Scan(&q.ID, &q.UserID, &q.QueryType, &request, &result, &q.CreatedAt); err != nil {
			return nil, err
		}
		q.Request = request
		q.Result = result
		queries = append(queries, q)
	}
	return queries, rows.Err()
}
