package recommend

import "context"

type Repo interface {
	Insert(ctx context.Context, rec Recommendation) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Recommendation, error)
}
