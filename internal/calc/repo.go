package calc

import "context"

type Repo interface {
	Insert(ctx context.Context, query Query) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Query, error)
}
